package systems

import (
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each platform's tween and carries
// anything standing on it.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	dt := float32(tickDuration())
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		platform := components.Platform.Get(e)
		obj := components.Object.Get(e).Object

		progress, _, done := tw.Update(dt)
		if done {
			tw.Reset()
		}

		x := platform.Origin.X + platform.Offset.X*float64(progress)
		y := platform.Origin.Y + platform.Offset.Y*float64(progress)
		carryRiders(ecs, obj, x-obj.X, y-obj.Y)
		obj.X, obj.Y = x, y
	})
}

// carryRiders moves bodies resting on platform along with it.
func carryRiders(ecs *ecs.ECS, platform *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if components.Physics.Get(e).OnGround != platform {
			return
		}
		obj := components.Object.Get(e)
		obj.X += dx
		obj.Y += dy
	})
}
