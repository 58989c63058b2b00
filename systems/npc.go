package systems

import (
	"log"

	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/patrol"
	"github.com/automoto/wallblade/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateNPCs advances every patrol and places the NPC's feet on the
// returned position.
func UpdateNPCs(ecs *ecs.ECS) {
	dt := tickDuration()
	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		npc := components.NPC.Get(e)
		if npc.Patrol == nil {
			return
		}
		obj := components.Object.Get(e)

		feet := math.Vec2{X: obj.X + obj.W/2, Y: obj.Bottom()}
		before := npc.Patrol.Mode()
		next := npc.Patrol.Tick(dt, feet)
		if before == patrol.Moving && npc.Patrol.Mode() == patrol.Waiting {
			logPatrolArrival(npc)
		}

		obj.X = next.X - obj.W/2
		obj.Y = next.Y - obj.H
	})
}

func logPatrolArrival(npc *components.NPCData) {
	target := npc.Patrol.Target()
	log.Printf("[patrol] %s waiting %.1fs, next target (%.0f, %.0f)",
		npc.Name, npc.Patrol.WaitRemaining(), target.X, target.Y)
}
