package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
)

// UpdateSettings handles the global toggles: debug overlay and fullscreen.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionDebug).JustPressed {
		settings.Debug = !settings.Debug
		cfg.Debug.Overlay = settings.Debug // keep it across restarts
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
	}
}

// GetOrCreateSettings returns the singleton Settings component, creating it
// from the command-line defaults if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      cfg.Debug.Overlay,
			Fullscreen: ebiten.IsFullscreen(),
		})
	}
	return components.Settings.Get(entry)
}
