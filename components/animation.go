package components

import (
	"github.com/automoto/wallblade/assets/animations"
	"github.com/automoto/wallblade/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	Defs             map[config.StateID]config.AnimationDef
}

// SetAnimation switches clips and reports whether the clip changed.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return false
	}

	anim, ok := a.Animations[state]
	if ok {
		a.CurrentAnimation = anim
		a.CurrentSheet = state
		a.CurrentAnimation.Restart()
	} else {
		// No animation for this state, clear current
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
	return true
}

// FrameEvents returns the events authored on the current clip's frame.
func (a *AnimationData) FrameEvents() []config.FrameEvent {
	if a.CurrentAnimation == nil {
		return nil
	}
	return a.Defs[a.CurrentSheet].Events[a.CurrentAnimation.Frame()]
}

var Animation = donburi.NewComponentType[AnimationData]()
