package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/GrapeSkin2191/iwanna/config"
)

// AudioData queues sound requests made during the tick. The audio system
// drains it once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
	DeathMusic bool // switch to the death track
}

var Audio = donburi.NewComponentType[AudioData]()
