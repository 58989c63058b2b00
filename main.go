package main

import (
	"flag"
	"fmt"
	"image"
	"log"

	"github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/fonts"
	"github.com/automoto/wallblade/scenes"
	"github.com/automoto/wallblade/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.Watcher
	quit    bool
}

// LoadScene switches to the named scene. The new scene configures itself
// on its first update.
func (g *Game) LoadScene(name string) error {
	switch name {
	case config.SceneMenu:
		g.scene = scenes.NewMenuScene(g)
	case config.SceneWorld:
		g.scene = scenes.NewWorldScene(g, g.watcher)
	default:
		return fmt.Errorf("unknown scene %q", name)
	}
	return nil
}

// Quit stops the game loop after the current update.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame(watcher *config.Watcher) *Game {
	g := &Game{
		bounds:  image.Rectangle{},
		watcher: watcher,
	}

	first := config.SceneMenu
	if config.Debug.SkipMenu {
		first = config.SceneWorld
	}
	if err := g.LoadScene(first); err != nil {
		log.Fatal(err)
	}

	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "Skip the menu and start in the level")
	flag.BoolVar(&config.Debug.ShowOverlay, "debug", false, "Draw probes, hitboxes and patrol endpoints")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "Load tuning from a YAML file instead of the embedded one")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "Reload the -tuning file when it changes")
	flag.Parse()

	if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	var watcher *config.Watcher
	if config.Debug.Watch {
		if config.Debug.TuningPath == "" {
			log.Printf("Warning: -watch needs -tuning, ignoring")
		} else {
			w, err := config.NewWatcher(config.Debug.TuningPath)
			if err != nil {
				log.Printf("Warning: Could not watch %s: %v", config.Debug.TuningPath, err)
			} else {
				watcher = w
				defer watcher.Close()
			}
		}
	}

	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.Menu.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame(watcher)); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
