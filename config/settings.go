package config

// WindowConfig contains the desktop window settings
type WindowConfig struct {
	Title      string
	Scale      int // window size as a multiple of the logical screen
	Fullscreen bool
}

// Window is the global window configuration
var Window WindowConfig

func init() {
	Window = WindowConfig{
		Title: "I wanna pygame",
		Scale: 1,
	}
}
