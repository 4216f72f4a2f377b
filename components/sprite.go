package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a static image placed in the room.
type SpriteData struct {
	Image *ebiten.Image
	X, Y  float64
	FlipH bool
	FlipV bool
}

var Sprite = donburi.NewComponentType[SpriteData]()
