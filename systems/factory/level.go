package factory

import (
	"github.com/automoto/wallblade/archetypes"
	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	loader := assets.NewLevelLoader()
	return CreateLevelFrom(ecs, loader.MustLoadLevels(), levelIndex)
}

// CreateLevelFrom stores already loaded levels. Out of range indexes fall
// back to the first level.
func CreateLevelFrom(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	if len(levels) == 0 {
		panic("No levels found in assets/levels directory")
	}

	level := archetypes.Level.Spawn(ecs)

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})

	return level
}

// BuildLevelGeometry creates the collision geometry of the current level.
func BuildLevelGeometry(ecs *ecs.ECS, level *assets.Level) {
	for _, r := range level.Ground {
		CreateGround(ecs, r)
	}
	for _, r := range level.Walls {
		CreateWall(ecs, r)
	}
	for _, p := range level.Platforms {
		CreateFloatingPlatform(ecs, p)
	}
}
