package factory

import (
	"fmt"

	"github.com/automoto/wallblade/assets/animations"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
)

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "npc") which maps to a set of animation definitions in config.
func GenerateAnimations(key string, initial cfg.StateID) *components.AnimationData {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		panic(fmt.Sprintf("No animation definitions found for key: %s", key))
	}

	animData := &components.AnimationData{
		Animations: make(map[cfg.StateID]*animations.Animation, len(defs)),
		Defs:       defs,
	}
	for state, def := range defs {
		anim := animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
		anim.FreezeOnComplete = def.Once
		animData.Animations[state] = anim
	}
	animData.SetAnimation(initial)

	return animData
}
