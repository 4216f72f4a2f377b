package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/archetypes"
	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	"github.com/GrapeSkin2191/iwanna/shared/leveldata"
	"github.com/GrapeSkin2191/iwanna/tags"
)

// CreateBlock spawns a solid tile. Collision is answered by the tile grid;
// the resolv object is there for the debug overlay.
func CreateBlock(ecs *ecs.ECS, t leveldata.Tile, x, y, size float64) *donburi.Entry {
	block := archetypes.Block.Spawn(ecs)

	obj := resolv.NewObject(x, y, size, size, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = block // Link for O(1) lookup
	components.Object.SetValue(block, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Sprite.SetValue(block, components.SpriteData{
		Image: assets.TileImage(t.Type, t.Variant),
		X:     x,
		Y:     y,
		FlipH: t.FlipH,
		FlipV: t.FlipV,
	})
	return block
}

// CreateDecor spawns a tile that is drawn but never collides.
func CreateDecor(ecs *ecs.ECS, t leveldata.Tile, x, y float64) *donburi.Entry {
	decor := archetypes.Decor.Spawn(ecs)
	components.Sprite.SetValue(decor, components.SpriteData{
		Image: assets.TileImage(t.Type, t.Variant),
		X:     x,
		Y:     y,
		FlipH: t.FlipH,
		FlipV: t.FlipV,
	})
	return decor
}
