package tuning

import (
	"errors"
	"fmt"
)

// GroundRule decides when the player counts as standing for jump purposes.
type GroundRule string

const (
	// GroundAirTime allows a ground jump while air time is within CoyoteTicks.
	GroundAirTime GroundRule = "air_time"
	// GroundScreenBottom allows a ground jump only when touching the bottom
	// of the screen.
	GroundScreenBottom GroundRule = "screen_bottom"
)

var ErrInvalidRevision = errors.New("tuning: invalid revision")

// Revision collects every constant and policy that differs between releases
// of the game. One Revision is selected at startup and copied into the
// entities that need it.
type Revision struct {
	Name  string `yaml:"name"`
	Level string `yaml:"level"`

	// Movement, px/tick and px/tick²
	JumpSpeed  float64 `yaml:"jump_speed"`
	DJumpSpeed float64 `yaml:"djump_speed"`
	Gravity    float64 `yaml:"gravity"`
	MaxHSpeed  float64 `yaml:"max_hspeed"`
	MaxVSpeed  float64 `yaml:"max_vspeed"`

	GroundRule  GroundRule `yaml:"ground_rule"`
	CoyoteTicks int        `yaml:"coyote_ticks"` // air time still treated as grounded
	AnimEpsilon float64    `yaml:"anim_epsilon"`

	VJumpThreshold      float64 `yaml:"vjump_threshold"` // vspeed must be below -threshold
	VJumpFactor         float64 `yaml:"vjump_factor"`
	VJumpAlways         bool    `yaml:"vjump_always"`
	DoubleJumpUnlimited bool    `yaml:"double_jump_unlimited"`

	// ScreenBounded treats the left, right and bottom screen edges as walls.
	ScreenBounded bool `yaml:"screen_bounded"`

	ProjectileLimit      int     `yaml:"projectile_limit"`
	ProjectileSpeed      float64 `yaml:"projectile_speed"`
	ProjectileTTL        int     `yaml:"projectile_ttl"`
	ProjectileFrameTicks int     `yaml:"projectile_frame_ticks"`

	BloodPerTick    int     `yaml:"blood_per_tick"`
	BloodWindow     int     `yaml:"blood_window"`
	BloodSpeedMin   float64 `yaml:"blood_speed_min"`
	BloodSpeedMax   float64 `yaml:"blood_speed_max"`
	BloodGravityMin float64 `yaml:"blood_gravity_min"`
	BloodGravityMax float64 `yaml:"blood_gravity_max"`

	GameOverDelay    int     `yaml:"game_over_delay"`
	GameOverCentered bool    `yaml:"game_over_centered"`
	GameOverX        float64 `yaml:"game_over_x"`
	GameOverY        float64 `yaml:"game_over_y"`

	PlayerFrameTicks int     `yaml:"player_frame_ticks"`
	DrawOffsetX      float64 `yaml:"draw_offset_x"`
	DrawOffsetY      float64 `yaml:"draw_offset_y"`

	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	MusicVolume float64 `yaml:"music_volume"`
	SFXVolume   float64 `yaml:"sfx_volume"`
}

// Tilemap is the tile-map release: tick timers, air-time ground rule.
func Tilemap() Revision {
	return Revision{
		Name:  "tilemap",
		Level: "levels/stage01.json",

		JumpSpeed:  7,
		DJumpSpeed: 6,
		Gravity:    0.3,
		MaxHSpeed:  2,
		MaxVSpeed:  9,

		GroundRule:  GroundAirTime,
		CoyoteTicks: 2,
		AnimEpsilon: 0.05,

		VJumpThreshold:      0.05,
		VJumpFactor:         0.45,
		DoubleJumpUnlimited: true,

		ProjectileLimit:      4,
		ProjectileSpeed:      14,
		ProjectileTTL:        42,
		ProjectileFrameTicks: 5,

		BloodPerTick:    40,
		BloodWindow:     20,
		BloodSpeedMin:   3,
		BloodSpeedMax:   6,
		BloodGravityMin: 0.1,
		BloodGravityMax: 0.3,

		GameOverDelay: 30,
		GameOverX:     0,
		GameOverY:     140,

		PlayerFrameTicks: 7,
		DrawOffsetX:      -11,
		DrawOffsetY:      -11,

		ScreenWidth:  800,
		ScreenHeight: 608,

		MusicVolume: 0.5,
		SFXVolume:   0.5,
	}
}

// Classic is the first release: a single screen with no tiles, the screen
// bottom as floor and second-based timers converted to ticks.
func Classic() Revision {
	r := Tilemap()
	r.Name = "classic"
	r.Level = "levels/classic.json"

	r.JumpSpeed = 8.5
	r.DJumpSpeed = 7
	r.Gravity = 0.35

	r.GroundRule = GroundScreenBottom
	r.CoyoteTicks = 0
	r.VJumpAlways = true
	r.ScreenBounded = true

	r.ProjectileSpeed = 15
	r.ProjectileTTL = 1 * TicksPerSecond
	r.ProjectileFrameTicks = 6

	r.BloodWindow = 24 // 0.4s
	r.BloodSpeedMin = 6
	r.BloodSpeedMax = 6

	r.GameOverDelay = 1 * TicksPerSecond
	r.GameOverCentered = true

	r.PlayerFrameTicks = 6
	r.DrawOffsetX = -10
	return r
}

// Builtin returns the built-in revision with the given name.
func Builtin(name string) (Revision, bool) {
	switch name {
	case "tilemap", "":
		return Tilemap(), true
	case "classic":
		return Classic(), true
	}
	return Revision{}, false
}

// Validate rejects revisions whose values would stall or divide by zero.
func (r Revision) Validate() error {
	switch r.GroundRule {
	case GroundAirTime, GroundScreenBottom:
	default:
		return fmt.Errorf("%w: %s: unknown ground rule %q", ErrInvalidRevision, r.Name, r.GroundRule)
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"max_hspeed", r.MaxHSpeed},
		{"max_vspeed", r.MaxVSpeed},
		{"projectile_frame_ticks", float64(r.ProjectileFrameTicks)},
		{"player_frame_ticks", float64(r.PlayerFrameTicks)},
		{"screen_width", float64(r.ScreenWidth)},
		{"screen_height", float64(r.ScreenHeight)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s: %s must be positive", ErrInvalidRevision, r.Name, p.name)
		}
	}

	if r.ProjectileLimit < 0 || r.ProjectileTTL < 0 || r.BloodPerTick < 0 ||
		r.BloodWindow < 0 || r.GameOverDelay < 0 || r.CoyoteTicks < 0 {
		return fmt.Errorf("%w: %s: counts and tick timers must not be negative", ErrInvalidRevision, r.Name)
	}
	if r.BloodSpeedMin > r.BloodSpeedMax || r.BloodGravityMin > r.BloodGravityMax {
		return fmt.Errorf("%w: %s: blood ranges are inverted", ErrInvalidRevision, r.Name)
	}
	return nil
}
