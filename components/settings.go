package components

import "github.com/yohamta/donburi"

// SettingsData mirrors the persisted settings for the running scene.
type SettingsData struct {
	Fullscreen bool
	ShowDebug  bool
	Muted      bool
}

var Settings = donburi.NewComponentType[SettingsData]()
