package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/systems"
	"github.com/automoto/wallblade/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs    *ecs.ECS
	ui     *ui.MenuUI
	loader systems.SceneLoader
	once   sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(loader systems.SceneLoader) *MenuScene {
	return &MenuScene{loader: loader}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.ui.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ui == nil {
		return
	}
	ms.ui.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	ctrl := systems.MenuController{
		Loader:    ms.loader,
		PlayScene: cfg.Menu.PlayScene,
	}

	// Minimal systems for menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ctrl))
	ms.ecs.AddSystem(systems.UpdateSettings)
	ms.ecs.AddSystem(systems.UpdateAudio)
	systems.GetOrCreateAudio(ms.ecs)

	ms.ui = ui.NewMenuUI(systems.GetOrCreateMenu(ms.ecs), func(option components.MainMenuOption) string {
		systems.PlaySFX(ms.ecs, cfg.SoundMenuSelect)
		return ctrl.Dispatch(option)
	})
}
