package systems

import (
	"math"

	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	target := dmath.Vec2{
		X: playerObject.X + playerObject.W/2,
		Y: playerObject.Y + playerObject.H/2,
	}
	target = clampCameraTarget(target,
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCameraTarget keeps the view inside the level. Levels smaller than
// the screen on an axis are centered on that axis.
func clampCameraTarget(target dmath.Vec2, screenW, screenH, levelW, levelH float64) dmath.Vec2 {
	return dmath.Vec2{
		X: clampAxis(target.X, screenW, levelW),
		Y: clampAxis(target.Y, screenH, levelH),
	}
}

func clampAxis(v, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, v))
}
