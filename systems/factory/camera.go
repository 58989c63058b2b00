package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera starts the camera centered on the given point.
func CreateCamera(ecs *ecs.ECS, center math.Vec2) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: center})
}
