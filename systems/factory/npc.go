package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/patrol"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NPCPatrolConfig merges an NPC's overrides with the current tuning.
func NPCPatrolConfig(npc *components.NPCData) patrol.Config {
	pc := patrol.Config{
		Speed:         cfg.Patrol.Speed,
		WaitTime:      cfg.Patrol.WaitTime,
		ReachDistance: cfg.Patrol.ReachDistance,
	}
	if npc.Speed > 0 {
		pc.Speed = npc.Speed
	}
	if npc.WaitTime > 0 {
		pc.WaitTime = npc.WaitTime
	}
	return pc
}

// CreateNPC spawns a patrolling NPC with its feet on spawn.A.
func CreateNPC(ecs *ecs.ECS, spawn assets.NPCSpawn) (*donburi.Entry, error) {
	data := components.NPCData{
		Name:          spawn.Name,
		A:             spawn.A,
		B:             spawn.B,
		Speed:         spawn.Speed,
		WaitTime:      spawn.WaitTime,
		TuningVersion: cfg.TuningVersion,
	}

	animator := components.NewAnimatorData()
	p, err := patrol.New(NPCPatrolConfig(&data), spawn.A, spawn.B, animator)
	if err != nil {
		return nil, err
	}
	data.Patrol = p

	w := float64(cfg.Patrol.CollisionWidth)
	h := float64(cfg.Patrol.CollisionHeight)

	npc := archetypes.NPC.Spawn(ecs)

	obj := resolv.NewObject(spawn.A.X-w/2, spawn.A.Y-h, w, h, "character", tags.ResolvNPC)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = npc
	components.Object.SetValue(npc, components.ObjectData{Object: obj})

	components.NPC.SetValue(npc, data)
	components.Animator.Set(npc, animator)
	components.Animation.Set(npc, GenerateAnimations("npc", cfg.NPCWalk))
	components.Flash.SetValue(npc, components.FlashData{})

	addToSpace(ecs, obj)

	return npc, nil
}
