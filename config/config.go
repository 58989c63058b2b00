package config

import "image/color"

// Config holds the window and simulation rate.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PlayerConfig contains all player-related configuration values.
// Speeds are pixels per second.
type PlayerConfig struct {
	// Movement
	Speed            float64 `yaml:"speed"`
	JumpForce        float64 `yaml:"jump_force"`
	WallSlideSpeed   float64 `yaml:"wall_slide_speed"`
	WallJumpForceX   float64 `yaml:"wall_jump_force_x"`
	WallJumpForceY   float64 `yaml:"wall_jump_force_y"`
	WallJumpDuration float64 `yaml:"wall_jump_duration"` // seconds

	// Dimensions
	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`

	// Hitboxes, relative to the player's facing edge
	SwordWidth   float64 `yaml:"sword_width"`
	SwordHeight  float64 `yaml:"sword_height"`
	ShieldWidth  float64 `yaml:"shield_width"`
	ShieldHeight float64 `yaml:"shield_height"`
}

// ProbeConfig places the ground and wall probes relative to the player's
// collision box. Offsets are measured from the box center.
type ProbeConfig struct {
	Radius       float64 `yaml:"radius"`
	GroundOffset float64 `yaml:"ground_offset"` // below center
	WallOffsetX  float64 `yaml:"wall_offset_x"` // mirrored with facing
	WallOffsetY  float64 `yaml:"wall_offset_y"`
}

// PatrolConfig contains NPC patrol configuration values.
type PatrolConfig struct {
	Speed         float64 `yaml:"speed"`
	WaitTime      float64 `yaml:"wait_time"` // seconds
	ReachDistance float64 `yaml:"reach_distance"`

	CollisionWidth  int `yaml:"collision_width"`
	CollisionHeight int `yaml:"collision_height"`
}

// PhysicsConfig contains physics-related configuration values.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`        // px/s²
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // px/s
	CellSize     int     `yaml:"cell_size"`
}

// CombatConfig contains combat feedback values.
type CombatConfig struct {
	HitFlashDuration float64 `yaml:"hit_flash_duration"` // seconds
}

// CameraConfig contains camera behavior configuration.
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 0.0-1.0 per tick
}

// MenuConfig contains main menu configuration values.
type MenuConfig struct {
	Title            string
	PlayScene        string
	BackgroundColor  color.RGBA
	TitleColor       color.RGBA
	PanelColor       color.RGBA
	ButtonIdle       color.RGBA
	ButtonHover      color.RGBA
	ButtonPressed    color.RGBA
	TextColorNormal  color.RGBA
	TextColorFocused color.RGBA
	ButtonWidth      int
	ButtonHeight     int
	MenuOptions      []string
}

// UIConfig contains HUD, debug and placeholder drawing colors.
type UIConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	WallColor       color.RGBA
	PlatformColor   color.RGBA
	PlayerColor     color.RGBA
	BlockingColor   color.RGBA
	NPCColor        color.RGBA
	HitFlashColor   color.RGBA
	HUDTextColor    color.RGBA

	DebugProbeOff  color.RGBA
	DebugProbeOn   color.RGBA
	DebugSword     color.RGBA
	DebugShield    color.RGBA
	DebugPatrolEnd color.RGBA

	HUDFontSize   float64
	DebugFontSize float64
}

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu    bool   // Skip menu and go directly to game
	ShowOverlay bool   // Draw probes, hitboxes and patrol endpoints
	TuningPath  string // Load tuning from disk instead of the embedded file
	Watch       bool   // Reload TuningPath when it changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Probe ProbeConfig
var Patrol PatrolConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Camera CameraConfig
var Menu MenuConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      1200,
		MaxFallSpeed: 600,
		CellSize:     16,
	}

	Player = PlayerConfig{
		Speed:            160,
		JumpForce:        420,
		WallSlideSpeed:   64,
		WallJumpForceX:   256,
		WallJumpForceY:   384,
		WallJumpDuration: 0.2,

		CollisionWidth:  16,
		CollisionHeight: 32,

		SwordWidth:   22,
		SwordHeight:  12,
		ShieldWidth:  6,
		ShieldHeight: 24,
	}

	// Radius is a few pixels so the probes register contact through the
	// one-pixel gap that collision resolution leaves behind.
	Probe = ProbeConfig{
		Radius:       3,
		GroundOffset: 16,
		WallOffsetX:  8,
		WallOffsetY:  0,
	}

	Patrol = PatrolConfig{
		Speed:           64,
		WaitTime:        2,
		ReachDistance:   3,
		CollisionWidth:  16,
		CollisionHeight: 28,
	}

	Combat = CombatConfig{
		HitFlashDuration: 0.15,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
	}

	Menu = MenuConfig{
		Title:            "WALLBLADE",
		PlayScene:        SceneWorld,
		BackgroundColor:  color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:       Orange,
		PanelColor:       color.RGBA{R: 20, G: 20, B: 40, A: 220},
		ButtonIdle:       DarkBlue,
		ButtonHover:      LightBlue,
		ButtonPressed:    BrightOrange,
		TextColorNormal:  White,
		TextColorFocused: BrightOrange,
		ButtonWidth:      180,
		ButtonHeight:     30,
		MenuOptions:      []string{"Play", "Settings", "Quit"},
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 24, G: 28, B: 40, A: 255},
		GroundColor:     color.RGBA{R: 90, G: 70, B: 50, A: 255},
		WallColor:       color.RGBA{R: 110, G: 110, B: 130, A: 255},
		PlatformColor:   color.RGBA{R: 70, G: 130, B: 90, A: 255},
		PlayerColor:     LightBlue,
		BlockingColor:   Blue,
		NPCColor:        Yellow,
		HitFlashColor:   White,
		HUDTextColor:    White,

		DebugProbeOff:  color.RGBA{R: 255, G: 255, B: 255, A: 160},
		DebugProbeOn:   Green,
		DebugSword:     Red,
		DebugShield:    Blue,
		DebugPatrolEnd: Magenta,

		HUDFontSize:   14,
		DebugFontSize: 10,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
	}
}
