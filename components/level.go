package components

import (
	"github.com/yohamta/donburi"

	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Path         string
	Hazards      *platformer.HazardField
}

var Level = donburi.NewComponentType[LevelData]()
