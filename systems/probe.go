package systems

import (
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/gamemath"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProbes moves every probe to its anchor on the owner and records
// whether it overlaps an object with its tag.
func UpdateProbes(ecs *ecs.ECS) {
	tags.Probe.Each(ecs.World, func(e *donburi.Entry) {
		probe := components.Probe.Get(e)
		obj := components.Object.Get(e).Object

		if probe.Owner == nil || !probe.Owner.Valid() {
			probe.Hit = false
			return
		}

		owner := components.Object.Get(probe.Owner)
		cx, cy := probe.Center(owner.X, owner.Y, owner.W, owner.H, ownerFacing(probe.Owner))
		obj.X = cx - probe.Radius
		obj.Y = cy - probe.Radius
		obj.Update()

		probe.Hit = probeHits(obj, probe.Tag, cx, cy, probe.Radius)
	})
}

// probeHits reports whether the circle at (cx, cy) overlaps any object
// tagged tag near the probe object.
func probeHits(obj *resolv.Object, tag string, cx, cy, r float64) bool {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, o := range check.ObjectsByTags(tag) {
		if gamemath.CircleOverlapsRect(cx, cy, r, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

func ownerFacing(e *donburi.Entry) float64 {
	if e.HasComponent(components.Player) {
		return components.Player.Get(e).Facing
	}
	if e.HasComponent(components.NPC) {
		if p := components.NPC.Get(e).Patrol; p != nil {
			return p.Facing()
		}
	}
	return 1
}
