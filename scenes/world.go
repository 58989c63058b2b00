package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/systems"
	"github.com/automoto/wallblade/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the level.
type WorldScene struct {
	ecs     *ecs.ECS
	loader  systems.SceneLoader
	watcher *cfg.Watcher
	once    sync.Once
}

// NewWorldScene creates the level scene. watcher may be nil.
func NewWorldScene(loader systems.SceneLoader, watcher *cfg.Watcher) *WorldScene {
	return &WorldScene{loader: loader, watcher: watcher}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	if err := assets.LoadShaders(); err != nil {
		panic("failed to load shaders: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.NewUpdateTuning(ws.watcher))
	for _, system := range systems.Gameplay() {
		ecs.AddSystem(system)
	}
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateSettings)
	// Last: it replaces this scene.
	ecs.AddSystem(systems.NewUpdatePause(ws.loader))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	ws.ecs = ecs
	// Created up front so systems never add it mid-iteration.
	systems.GetOrCreateAudio(ws.ecs)

	level := factory.CreateLevel(ws.ecs)
	levelData := components.Level.Get(level)

	if _, err := factory.PopulateWorld(ws.ecs, levelData.CurrentLevel); err != nil {
		panic(err)
	}
}
