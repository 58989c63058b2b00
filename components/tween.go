package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

var Tween = donburi.NewComponentType[gween.Sequence]()

// PlatformData anchors a tweened platform. The tween yields progress from
// 0 to 1 along Offset.
type PlatformData struct {
	Origin math.Vec2
	Offset math.Vec2
}

var Platform = donburi.NewComponentType[PlatformData]()
