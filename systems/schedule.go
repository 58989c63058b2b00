package systems

import "github.com/yohamta/donburi/ecs"

// Gameplay returns the per-tick simulation systems in run order. Scenes
// add input, camera, audio and scene switching around them.
func Gameplay() []ecs.System {
	return []ecs.System{
		UpdateProbes,
		UpdatePhysics,
		UpdatePlayer,
		UpdateNPCs,
		UpdateFloatingPlatforms,
		UpdateCollisions,
		UpdateHitboxes,
		UpdateObjects,
		UpdateAnimations,
		UpdateCombat,
		UpdateEffects,
	}
}
