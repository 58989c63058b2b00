package systems

import (
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the global toggles: F11 fullscreen, F1 debug
// overlay and M mute. Changes are saved immediately.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	before := *settings
	if !applySettingsInput(settings, input) {
		return
	}

	if settings.Fullscreen != before.Fullscreen {
		ebiten.SetFullscreen(settings.Fullscreen)
	}
	if settings.Muted != before.Muted {
		SetMuted(settings.Muted)
	}
	cfg.Debug.ShowOverlay = settings.ShowDebug
	SaveCurrentSettings(settings)
}

// applySettingsInput flips the settings whose toggle was just pressed and
// reports whether anything changed.
func applySettingsInput(s *components.SettingsData, input *components.InputData) bool {
	changed := false
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		s.Fullscreen = !s.Fullscreen
		changed = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		s.ShowDebug = !s.ShowDebug
		changed = true
	}
	if GetAction(input, cfg.ActionToggleMute).JustPressed {
		s.Muted = !s.Muted
		changed = true
	}
	return changed
}

// GetOrCreateSettings returns the singleton Settings component, seeded
// from the live settings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Fullscreen: ebiten.IsFullscreen(),
			ShowDebug:  cfg.Debug.ShowOverlay,
			Muted:      globalMuted,
		})
	}
	return components.Settings.Get(entry)
}
