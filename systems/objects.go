package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
)

// UpdateObjects moves each simulated body's resolv object to where the
// simulation left it. Only the debug overlay reads those objects.
func UpdateObjects(ecs *ecs.ECS) {
	if !GetOrCreateSettings(ecs).Debug {
		return
	}
	for e := range components.Player.Iter(ecs.World) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)
		obj.X, obj.Y = player.Rect.X, player.Rect.Y
		obj.Update()
	}
}
