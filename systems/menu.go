package systems

import (
	"fmt"
	"log"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/yohamta/donburi/ecs"
)

// SceneLoader switches the running scene by name and stops the game loop.
type SceneLoader interface {
	LoadScene(name string) error
	Quit()
}

// MenuController dispatches main menu selections. It keeps no state;
// the selection lives in the Menu component.
type MenuController struct {
	Loader    SceneLoader
	PlayScene string
}

// Dispatch runs the command for option and returns the status line to
// show under the buttons.
func (m MenuController) Dispatch(option components.MainMenuOption) string {
	switch option {
	case components.MainMenuPlay:
		log.Printf("[menu] Play: loading scene %q", m.PlayScene)
		if err := m.Loader.LoadScene(m.PlayScene); err != nil {
			log.Printf("Warning: Could not load scene %q: %v", m.PlayScene, err)
			return fmt.Sprintf("Could not load %s", m.PlayScene)
		}
		return ""
	case components.MainMenuSettings:
		log.Printf("[menu] Open Settings")
		return "Settings: F11 fullscreen, F1 debug, M mute"
	case components.MainMenuQuit:
		log.Printf("[menu] Game exited")
		m.Loader.Quit()
		return ""
	}
	return ""
}

// NewUpdateMenu handles keyboard and gamepad navigation of the main menu.
func NewUpdateMenu(ctrl MenuController) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		if option, ok := navigateMenu(menu, input); ok {
			PlaySFX(e, cfg.SoundMenuSelect)
			menu.Status = ctrl.Dispatch(option)
			return
		}
		if GetAction(input, cfg.ActionMenuUp).JustPressed || GetAction(input, cfg.ActionMenuDown).JustPressed {
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
	}
}

// navigateMenu moves the selection with wrap-around and returns the option
// chosen this tick, if any. Back selects Quit.
func navigateMenu(menu *components.MenuData, input *components.InputData) (components.MainMenuOption, bool) {
	numOptions := len(menu.VisibleOptions)
	if numOptions == 0 {
		return 0, false
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		return menu.VisibleOptions[menu.SelectedIndex], true
	}
	if GetAction(input, cfg.ActionMenuBack).JustPressed {
		return components.MainMenuQuit, true
	}
	return 0, false
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			VisibleOptions: []components.MainMenuOption{
				components.MainMenuPlay,
				components.MainMenuSettings,
				components.MainMenuQuit,
			},
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
