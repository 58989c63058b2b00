package components

import (
	"github.com/automoto/wallblade/patrol"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type NPCData struct {
	Name   string
	Patrol *patrol.Patrol
	A, B   math.Vec2
	Hits   int
	// TuningVersion is the config.TuningVersion the patrol was built with.
	TuningVersion int
	// Speed and WaitTime override the global patrol tuning when non-zero.
	Speed    float64
	WaitTime float64
}

var NPC = donburi.NewComponentType[NPCData]()
