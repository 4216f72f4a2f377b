package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverData fades the game over banner in once it becomes visible.
type GameOverData struct {
	Fade  *gween.Tween
	Alpha float32
}

var GameOver = donburi.NewComponentType[GameOverData]()
