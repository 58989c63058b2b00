package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	"github.com/automoto/wallblade/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateFloatingPlatform creates a ground platform that travels by
// spawn.Offset and back, spawn.Duration seconds each way.
func CreateFloatingPlatform(ecs *ecs.ECS, spawn assets.PlatformSpawn) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	r := spawn.Rect
	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height,
		tags.ResolvSolid, tags.ResolvGround, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, r.Width, r.Height))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})

	components.Platform.SetValue(platform, components.PlatformData{
		Origin: math.Vec2{X: r.X, Y: r.Y},
		Offset: spawn.Offset,
	})

	// The floating platform moves using a *gween.Sequence of tweens over
	// its travel progress, moving it back and forth.
	d := float32(spawn.Duration)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, d, ease.InOutQuad),
		gween.New(1, 0, d, ease.InOutQuad),
	)
	components.Tween.Set(platform, tw)

	addToSpace(ecs, obj)

	return platform
}
