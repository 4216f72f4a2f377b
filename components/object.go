package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the scene's collision space, sized to the room. It is the hazard
// broadphase; solid tiles and the player are added so the debug overlay can
// draw them.
var Space = donburi.NewComponentType[resolv.Space]()
