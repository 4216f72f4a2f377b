// Package platformer is the fixed-tick simulation of the player and the
// things the player spawns: projectiles, the blood burst and the game-over
// timer. It talks to the rest of the game only through the small interfaces
// below, so it runs headless in tests.
package platformer

import (
	"math/rand"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

// TileQuerier returns the solid tile rectangles around a world point.
type TileQuerier interface {
	RectsNear(x, y float64) []gamemath.Rect
}

// HazardTester reports whether a mask placed at (x, y) touches a hazard.
type HazardTester interface {
	Hits(mask gamemath.Mask, x, y float64) bool
}

// AudioSink plays cues. Implementations must not block.
type AudioSink interface {
	PlaySFX(sound tuning.SoundID)
	PlayDeathMusic()
}

// Controller reports the held state of the horizontal movement keys.
type Controller interface {
	MoveLeft() bool
	MoveRight() bool
}

// Deps is everything a Player needs from the outside world.
type Deps struct {
	Tiles   TileQuerier
	Hazards HazardTester
	Audio   AudioSink
	Rand    *rand.Rand

	// Mask is the player's collision mask; its size is the player's size.
	Mask gamemath.Mask
	// Clips holds the frame count of each player animation clip.
	Clips map[tuning.StateID]int
	// BulletFrames is the frame count of the projectile animation.
	BulletFrames int
	// BulletW/BulletH size a projectile.
	BulletW, BulletH float64
	// BloodVariants is the number of blood droplet images.
	BloodVariants int
	// BloodW/BloodH size a blood droplet.
	BloodW, BloodH float64
}

type noTiles struct{}

func (noTiles) RectsNear(float64, float64) []gamemath.Rect { return nil }

type noHazards struct{}

func (noHazards) Hits(gamemath.Mask, float64, float64) bool { return false }

type noAudio struct{}

func (noAudio) PlaySFX(tuning.SoundID) {}
func (noAudio) PlayDeathMusic()        {}

func (d Deps) withDefaults() Deps {
	if d.Tiles == nil {
		d.Tiles = noTiles{}
	}
	if d.Hazards == nil {
		d.Hazards = noHazards{}
	}
	if d.Audio == nil {
		d.Audio = noAudio{}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(1))
	}
	if d.Mask.W == 0 || d.Mask.H == 0 {
		d.Mask = gamemath.FullMask(11, 21)
	}
	if d.BulletFrames <= 0 {
		d.BulletFrames = 1
	}
	if d.BulletW <= 0 || d.BulletH <= 0 {
		d.BulletW, d.BulletH = 4, 4
	}
	if d.BloodVariants <= 0 {
		d.BloodVariants = 1
	}
	if d.BloodW <= 0 || d.BloodH <= 0 {
		d.BloodW, d.BloodH = 2, 2
	}
	return d
}
