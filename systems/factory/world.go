package factory

import (
	"fmt"

	"github.com/automoto/wallblade/assets"
	cfg "github.com/automoto/wallblade/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PopulateWorld creates the collision space, level geometry, player, NPCs
// and camera for level. It returns the player entry.
func PopulateWorld(ecs *ecs.ECS, level *assets.Level) (*donburi.Entry, error) {
	if err := level.Validate(); err != nil {
		return nil, err
	}

	CreateSpace(ecs, level.Width, level.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	BuildLevelGeometry(ecs, level)

	spawn := level.PlayerSpawns[0]
	player, err := CreatePlayer(ecs, spawn)
	if err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	for _, npc := range level.NPCs {
		if _, err := CreateNPC(ecs, npc); err != nil {
			return nil, fmt.Errorf("spawn npc %q: %w", npc.Name, err)
		}
	}

	// Start the camera on the player to prevent panning from (0,0)
	CreateCamera(ecs, math.Vec2{X: spawn.X, Y: spawn.Y})

	return player, nil
}
