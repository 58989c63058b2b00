package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// Object group names read from level files.
const (
	GroupGround      = "Ground"
	GroupWalls       = "Walls"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupNPCs        = "NPCs"
	GroupPlatforms   = "Platforms"
)

// Rect is an axis-aligned box in level pixels.
type Rect struct {
	X, Y, Width, Height float64
}

// PlayerSpawn is the point the player's feet start on.
type PlayerSpawn struct {
	X, Y   float64
	Facing float64
}

// NPCSpawn is a patrolling NPC. A and B are the feet positions of the
// patrol endpoints; zero Speed or WaitTime means use the defaults.
type NPCSpawn struct {
	Name     string
	A, B     math.Vec2
	Speed    float64
	WaitTime float64
}

// PlatformSpawn is a moving platform that travels by Offset and back
// over Duration seconds each way.
type PlatformSpawn struct {
	Name     string
	Rect     Rect
	Offset   math.Vec2
	Duration float64
}

type Level struct {
	Name         string
	Title        string
	Width        int
	Height       int
	Ground       []Rect
	Walls        []Rect
	PlayerSpawns []PlayerSpawn
	NPCs         []NPCSpawn
	Platforms    []PlatformSpawn
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// LevelPaths lists the embedded level files in name order.
func LevelPaths() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, "levels/"+entry.Name())
		}
	}
	sort.Strings(paths)
	return paths, nil
}

func (l *LevelLoader) MustLoadLevels() []Level {
	paths, err := LevelPaths()
	if err != nil {
		panic(err)
	}
	if len(paths) == 0 {
		panic("No level files found in assets/levels directory")
	}

	levels := make([]Level, 0, len(paths))
	for _, path := range paths {
		levels = append(levels, l.MustLoadLevel(path))
	}
	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	level, err := l.LoadLevel(levelPath)
	if err != nil {
		panic(err)
	}
	return level
}

// LoadLevel parses a level file and checks that it can be played.
func (l *LevelLoader) LoadLevel(levelPath string) (Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		return Level{}, fmt.Errorf("load %s: %w", levelPath, err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	if levelMap.Properties != nil {
		level.Title = levelMap.Properties.GetString("title")
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, objectRect(o))
			}
		case GroupWalls:
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, objectRect(o))
			}
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				facing := o.Properties.GetFloat("facing")
				if facing == 0 {
					facing = 1
				}
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X:      o.X,
					Y:      o.Y,
					Facing: facing,
				})
			}
		case GroupNPCs:
			for _, o := range og.Objects {
				npc, err := parseNPC(o)
				if err != nil {
					return Level{}, fmt.Errorf("%s: %w", levelPath, err)
				}
				level.NPCs = append(level.NPCs, npc)
			}
		case GroupPlatforms:
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformSpawn{
					Name: o.Name,
					Rect: objectRect(o),
					Offset: math.Vec2{
						X: o.Properties.GetFloat("dx"),
						Y: o.Properties.GetFloat("dy"),
					},
					Duration: o.Properties.GetFloat("duration"),
				})
			}
		}
	}

	if err := level.Validate(); err != nil {
		return Level{}, fmt.Errorf("%s: %w", levelPath, err)
	}
	return level, nil
}

// Validate reports level data the world scene cannot run with.
func (lv Level) Validate() error {
	if len(lv.PlayerSpawns) == 0 {
		return fmt.Errorf("no player spawn points defined in map")
	}
	if len(lv.Ground) == 0 {
		return fmt.Errorf("no ground defined in map")
	}
	for _, p := range lv.Platforms {
		if p.Duration <= 0 {
			return fmt.Errorf("platform %q needs a positive duration", p.Name)
		}
	}
	return nil
}

func objectRect(o *tiled.Object) Rect {
	return Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// parseNPC reads the patrol endpoints from the first and last point of
// the object's polyline.
func parseNPC(o *tiled.Object) (NPCSpawn, error) {
	if len(o.PolyLines) == 0 || o.PolyLines[0].Points == nil || len(*o.PolyLines[0].Points) < 2 {
		return NPCSpawn{}, fmt.Errorf("npc %q needs a polyline with two points", o.Name)
	}

	points := *o.PolyLines[0].Points
	first, last := points[0], points[len(points)-1]
	npc := NPCSpawn{
		Name:     o.Name,
		A:        math.Vec2{X: o.X + first.X, Y: o.Y + first.Y},
		B:        math.Vec2{X: o.X + last.X, Y: o.Y + last.Y},
		Speed:    o.Properties.GetFloat("speed"),
		WaitTime: o.Properties.GetFloat("waitTime"),
	}
	if npc.A == npc.B {
		return NPCSpawn{}, fmt.Errorf("npc %q has identical patrol endpoints", o.Name)
	}
	return npc, nil
}
