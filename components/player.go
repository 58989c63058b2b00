package components

import (
	"github.com/automoto/wallblade/locomotion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Controller *locomotion.Controller
	Facing     float64
	State      locomotion.State

	GroundProbe *donburi.Entry
	WallProbe   *donburi.Entry
	Sword       *donburi.Entry
	Shield      *donburi.Entry

	Spawn math.Vec2
	// TuningVersion is the config.TuningVersion the controller was built with.
	TuningVersion int
}

var Player = donburi.NewComponentType[PlayerData]()
