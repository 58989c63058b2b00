package systems

import (
	"log"

	cfg "github.com/automoto/wallblade/config"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdatePause returns to the menu scene when pause is pressed.
// This system should run AFTER UpdateInput.
func NewUpdatePause(loader SceneLoader) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionPause).JustPressed {
			return
		}
		if err := loader.LoadScene(cfg.SceneMenu); err != nil {
			log.Printf("Warning: Could not return to menu: %v", err)
		}
	}
}
