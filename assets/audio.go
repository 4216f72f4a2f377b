package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

func (l *AudioLoader) decode(p string) (decodedStream, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	rate := l.context.SampleRate()
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(rate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", p, err)
		}
		return stream, nil
	case ".wav":
		stream, err := wav.DecodeWithSampleRate(rate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", p, err)
		}
		return stream, nil
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(rate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode mp3 %s: %w", p, err)
		}
		return stream, nil
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}

	stream, err := l.decode(p)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect each time.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

// LoadMusic returns a streaming player for a music track. Looping tracks
// restart from the beginning forever.
func (l *AudioLoader) LoadMusic(p string, loop bool) (*audio.Player, error) {
	stream, err := l.decode(p)
	if err != nil {
		return nil, err
	}
	if loop {
		return l.context.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	}
	return l.context.NewPlayer(stream)
}
