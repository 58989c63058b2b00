package systems

import (
	"fmt"

	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD shows the level title and the player's locomotion state.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Regular.Get()
	lineHeight := int(cfg.UI.HUDFontSize) + 4

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if lvl := components.Level.Get(levelEntry).CurrentLevel; lvl != nil && lvl.Title != "" {
			text.Draw(screen, lvl.Title, fonts.Bold.Get(), hudMargin, hudMargin+lineHeight, cfg.UI.HUDTextColor)
		}
	}

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	text.Draw(screen, hudStatus(player), face, hudMargin, hudMargin+2*lineHeight, cfg.UI.HUDTextColor)
}

func hudStatus(player *components.PlayerData) string {
	facing := "right"
	if player.Facing < 0 {
		facing = "left"
	}
	status := fmt.Sprintf("%s  facing %s", player.State, facing)
	if player.Controller.IsBlocking() {
		status += "  blocking"
	}
	return status
}
