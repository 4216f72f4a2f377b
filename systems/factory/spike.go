package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/archetypes"
	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
)

// CreateSpike spawns a spike at the tile's pixel position and adds its
// flipped mask to the hazard field.
func CreateSpike(ecs *ecs.ECS, hazards *platformer.HazardField, t leveldata.Tile) *donburi.Entry {
	spike := archetypes.Spike.Spawn(ecs)

	hazards.Add(t.X, t.Y, assets.SpikeMask().Flip(t.FlipH, t.FlipV))

	components.Sprite.SetValue(spike, components.SpriteData{
		Image: assets.SpikeImage(),
		X:     t.X,
		Y:     t.Y,
		FlipH: t.FlipH,
		FlipV: t.FlipV,
	})
	return spike
}
