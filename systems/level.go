package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
)

// DrawLevel fills the screen with the room's background colour.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		screen.Fill(leveldata.DefaultBackground)
		return
	}

	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		screen.Fill(leveldata.DefaultBackground)
		return
	}
	screen.Fill(levelData.CurrentLevel.Background)
}
