package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/GrapeSkin2191/iwanna/config"
)

// AnimationData holds the frames drawn for each clip. Which clip and frame
// is current lives in the simulation's animation state.
type AnimationData struct {
	Frames      map[config.StateID][]*ebiten.Image
	FrameWidth  int
	FrameHeight int

	// Things the player spawns are drawn from the player's entity.
	Bullet []*ebiten.Image
	Blood  []*ebiten.Image
}

// Image returns frame i of clip, or nil when the clip has no frames.
func (a *AnimationData) Image(clip config.StateID, i int) *ebiten.Image {
	frames := a.Frames[clip]
	if len(frames) == 0 {
		return nil
	}
	return frames[i%len(frames)]
}

var Animation = donburi.NewComponentType[AnimationData]()
