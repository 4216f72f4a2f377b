package factory

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
)

// playerAnimations collects the frames of every player clip plus the bullet
// and blood images the player spawns.
func playerAnimations() *components.AnimationData {
	defs := cfg.CharacterAnimations["player"]

	animData := &components.AnimationData{
		Frames:      make(map[cfg.StateID][]*ebiten.Image, len(defs)),
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
	}
	for state := range defs {
		animData.Frames[state] = assets.PlayerFrames(state)
	}
	animData.Bullet = assets.BulletFrames()
	animData.Blood = assets.BloodImages()
	return animData
}
