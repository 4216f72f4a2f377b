package components

import "github.com/yohamta/donburi"

// SettingsData holds the global toggles.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
