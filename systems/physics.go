package systems

import (
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tickDuration is the fixed simulation step in seconds.
func tickDuration() float64 {
	return 1.0 / float64(cfg.C.TPS)
}

// UpdatePhysics integrates gravity for airborne bodies.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := tickDuration()
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		applyGravity(physics, dt)
	})
}

func applyGravity(physics *components.PhysicsData, dt float64) {
	if physics.OnGround == nil {
		physics.SpeedY += physics.Gravity * dt
	}
	if physics.MaxFallSpeed > 0 && physics.SpeedY > physics.MaxFallSpeed {
		physics.SpeedY = physics.MaxFallSpeed
	}
}
