package systems

import (
	"github.com/automoto/wallblade/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects counts down hit flashes.
func UpdateEffects(ecs *ecs.ECS) {
	dt := tickDuration()
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
		}
		if flash.Remaining < 0 {
			flash.Remaining = 0
		}
	})
}

// TriggerFlash starts a white flash on the entity.
func TriggerFlash(e *donburi.Entry, duration float64) {
	if !e.HasComponent(components.Flash) {
		return
	}
	flash := components.Flash.Get(e)
	flash.Remaining = duration
	flash.Duration = duration
}
