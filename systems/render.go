package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
	"github.com/GrapeSkin2191/iwanna/tags"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// drawImage draws img with its top-left corner at (x, y), mirrored in place.
func drawImage(screen, img *ebiten.Image, x, y float64, flipH, flipV bool) {
	if img == nil {
		return
	}
	w, h := img.Bounds().Dx(), img.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if flipH {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(w), 0)
	}
	if flipV {
		drawOp.GeoM.Scale(1, -1)
		drawOp.GeoM.Translate(0, float64(h))
	}
	drawOp.GeoM.Translate(x, y)
	screen.DrawImage(img, drawOp)
}

// DrawSprites renders decor, blocks and spikes, in that order.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	drawSprite := func(e *donburi.Entry) {
		s := components.Sprite.Get(e)
		drawImage(screen, s.Image, s.X, s.Y, s.FlipH, s.FlipV)
	}
	tags.Decor.Each(ecs.World, drawSprite)
	tags.Block.Each(ecs.World, drawSprite)
	tags.Spike.Each(ecs.World, drawSprite)
}

// DrawPlayer renders the live player at the revision's draw offset, then its
// bullets and blood.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	anim := components.Animation.Get(entry)

	if !player.Dead {
		img := anim.Image(player.Anim.Clip(), player.Anim.Frame())
		x := player.Rect.X + cfg.Rev.DrawOffsetX
		y := player.Rect.Y + cfg.Rev.DrawOffsetY
		drawImage(screen, img, x, y, player.FacingLeft, false)
	}

	if len(anim.Bullet) > 0 {
		player.Bullets.Each(func(b *platformer.Projectile) {
			img := anim.Bullet[b.Anim.Frame()%len(anim.Bullet)]
			drawImage(screen, img, b.Rect.X, b.Rect.Y, false, false)
		})
	}

	if player.Blood != nil && len(anim.Blood) > 0 {
		for _, p := range player.Blood.Particles {
			img := anim.Blood[p.Variant%len(anim.Blood)]
			drawImage(screen, img, p.Rect.X, p.Rect.Y, false, false)
		}
	}
}
