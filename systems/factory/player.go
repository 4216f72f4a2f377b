package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/archetypes"
	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
	"github.com/GrapeSkin2191/iwanna/shared/sprites"
	"github.com/GrapeSkin2191/iwanna/tags"
)

// CreatePlayer spawns the player at (x, y). deps supplies the room queries
// and audio sink; the mask and sprite counts are filled in here.
func CreatePlayer(ecs *ecs.ECS, x, y float64, deps platformer.Deps) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	deps.Mask = assets.PlayerMask()
	deps.Clips = assets.ClipFrames()
	deps.BulletFrames = len(assets.BulletFrames())
	deps.BulletW, deps.BulletH = sprites.BulletSize, sprites.BulletSize
	deps.BloodVariants = len(assets.BloodImages())
	deps.BloodW, deps.BloodH = sprites.BloodSize, sprites.BloodSize

	body := platformer.NewPlayer(cfg.Rev, x, y, deps)
	components.Player.SetValue(player, components.PlayerData{Player: body})

	obj := resolv.NewObject(x, y, body.Rect.W, body.Rect.H, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, body.Rect.W, body.Rect.H))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Animation.Set(player, playerAnimations())

	return player
}
