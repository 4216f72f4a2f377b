package config

import "github.com/GrapeSkin2191/iwanna/shared/tuning"

// SoundID represents a logical sound effect
type SoundID = tuning.SoundID

const (
	SoundNone  = tuning.SoundNone
	SoundJump  = tuning.SoundJump
	SoundDJump = tuning.SoundDJump
	SoundShoot = tuning.SoundShoot
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate int
}

// SoundConfig maps sound IDs to file paths under Paths.Sounds
type SoundConfig struct {
	StageMusic        string
	DeathMusic        string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate: 44100,
	}

	Sound = SoundConfig{
		StageMusic: "bgm2014.ogg",
		DeathMusic: "sndOnDeath.mp3",
		SFXPaths: map[SoundID]string{
			SoundJump:  "sndJump.wav",
			SoundDJump: "sndDJump.wav",
			SoundShoot: "sndShoot.wav",
		},
		VolumeMultipliers: map[SoundID]float64{},
	}
}
