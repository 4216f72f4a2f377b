package animations

import "github.com/GrapeSkin2191/iwanna/shared/tuning"

// Animation cycles through the frames of the active clip, showing each frame
// for FrameTicks updates.
type Animation struct {
	FrameTicks int // how many ticks before next frame
	clip       tuning.StateID
	frames     int
	counter    int
}

func NewAnimation(clip tuning.StateID, frames, frameTicks int) *Animation {
	if frameTicks < 1 {
		frameTicks = 1
	}
	return &Animation{
		FrameTicks: frameTicks,
		clip:       clip,
		frames:     frames,
	}
}

// Set switches to another clip. The tick counter carries over, so switching
// between clips does not restart the cycle.
func (a *Animation) Set(clip tuning.StateID, frames int) {
	a.clip = clip
	a.frames = frames
}

func (a *Animation) Clip() tuning.StateID {
	return a.clip
}

func (a *Animation) Update() {
	if a.frames <= 0 {
		return
	}
	a.counter = (a.counter + 1) % (a.FrameTicks * a.frames)
}

// Frame returns the index of the frame to draw, always within the clip.
func (a *Animation) Frame() int {
	if a.frames <= 0 {
		return 0
	}
	return (a.counter / a.FrameTicks) % a.frames
}

func (a *Animation) Restart() {
	a.counter = 0
}
