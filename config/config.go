package config

import (
	"fmt"
	"image/color"
	"log"

	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

// Default is the only render layer; renderers draw in registration order.
const Default ecs.LayerID = 0

// PlayerConfig contains the player's sprite dimensions. The hitbox comes
// from the collision mask image.
type PlayerConfig struct {
	FrameWidth  int
	FrameHeight int
}

// GameOverConfig contains the game over banner configuration values
type GameOverConfig struct {
	Title      string
	Hint       string
	TitleColor color.RGBA
	HintColor  color.RGBA
	TitleY     float64 // relative to the banner
	HintY      float64
	FadeTicks  int // banner fade-in duration
}

// UIConfig contains HUD and debug overlay configuration values
type UIConfig struct {
	HUDTextColor   color.RGBA
	HUDTextBgColor color.RGBA

	DebugHitboxColors map[string]color.RGBA

	HUDFontSize   float64
	TitleFontSize float64
	DebugFontSize float64
}

// PathConfig points at the on-disk data directories. Files found there
// override the embedded copies.
type PathConfig struct {
	Data   string
	Images string
	Sounds string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool   // draw hitboxes and the state HUD
	Watch   bool   // reload the level when its file changes
	Level   string // overrides the revision's level
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Rev tuning.Revision
var Player PlayerConfig
var GameOver GameOverConfig
var UI UIConfig
var Paths PathConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 160, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Rev = tuning.Tilemap()

	C = &Config{
		Width:  Rev.ScreenWidth,
		Height: Rev.ScreenHeight,
		TPS:    tuning.TicksPerSecond,
	}

	Player = PlayerConfig{
		FrameWidth:  32,
		FrameHeight: 32,
	}

	GameOver = GameOverConfig{
		Title:      "GAME OVER",
		Hint:       "PRESS F2 TO TRY AGAIN",
		TitleColor: DarkRed,
		HintColor:  White,
		TitleY:     140,
		HintY:      220,
		FadeTicks:  20,
	}

	UI = UIConfig{
		HUDTextColor:   White,
		HUDTextBgColor: BlackOverlay,
		DebugHitboxColors: map[string]color.RGBA{
			"player": Green,
			"solid":  Yellow,
			"hazard": Red,
			"bullet": Magenta,
		},
		HUDFontSize:   14,
		TitleFontSize: 72,
		DebugFontSize: 12,
	}

	Paths = PathConfig{
		Data:   "data",
		Images: "data/images",
		Sounds: "data/sounds",
	}

	// defaults, can be overridden by CLI flags
	Debug = DebugConfig{}
}

// Apply selects the named revision, looking it up in profilesYAML first and
// in the built-in revisions second, and resizes the screen to match.
func Apply(name string, profilesYAML []byte) error {
	var profiles map[string]tuning.Revision
	if len(profilesYAML) > 0 {
		var err error
		profiles, err = tuning.ParseProfiles(profilesYAML)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	rev, err := tuning.Select(profiles, name)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if Debug.Level != "" {
		rev.Level = Debug.Level
	}

	Rev = rev
	C.Width, C.Height = rev.ScreenWidth, rev.ScreenHeight
	log.Printf("Using revision %q (level %s)", rev.Name, rev.Level)
	return nil
}
