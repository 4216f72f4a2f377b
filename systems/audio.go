package systems

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	audioInitOnce      sync.Once
	missingSounds      = map[string]bool{}
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, assets.NewOverlay(cfg.Paths.Sounds))
	})
}

// warnMissing logs a sound that failed to load, once per file.
func warnMissing(path string, err error) {
	if missingSounds[path] {
		return
	}
	missingSounds[path] = true
	log.Printf("Warning: Could not load sound %s: %v", path, err)
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			warnMissing(path, err)
		}
	}
}

// UpdateAudio plays the sounds queued during this tick.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]

	if audioData.DeathMusic {
		audioData.DeathMusic = false
		PlayMusic(cfg.Sound.DeathMusic, false)
	}
}

func playSFX(soundID cfg.SoundID) {
	volume := cfg.Rev.SFXVolume
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		warnMissing(path, err)
		return
	}

	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic replaces the current track. Looping tracks that are already
// playing are left alone.
func PlayMusic(musicPath string, loop bool) {
	initGlobalAudio()

	if loop && globalMusicKey == musicPath && globalMusicPlayer != nil && globalMusicPlayer.IsPlaying() {
		return
	}

	StopMusic()

	player, err := globalAudioLoader.LoadMusic(musicPath, loop)
	if err != nil {
		warnMissing(musicPath, err)
		return
	}

	player.SetVolume(cfg.Rev.MusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// queuedAudio lets the simulation request sounds without touching the
// audio context; requests are played by UpdateAudio.
type queuedAudio struct {
	e *ecs.ECS
}

// AudioSink returns the player's view of the scene's audio queue.
func AudioSink(e *ecs.ECS) platformer.AudioSink {
	return queuedAudio{e: e}
}

func (q queuedAudio) PlaySFX(sound cfg.SoundID) {
	PlaySFX(q.e, sound)
}

func (q queuedAudio) PlayDeathMusic() {
	GetOrCreateAudio(q.e).DeathMusic = true
}
