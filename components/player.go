package components

import (
	"github.com/yohamta/donburi"

	"github.com/GrapeSkin2191/iwanna/shared/platformer"
)

// PlayerData wraps the headless simulation. Systems drive it and mirror its
// rectangle into the entity's resolv object.
type PlayerData struct {
	*platformer.Player
}

var Player = donburi.NewComponentType[PlayerData]()
