package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/fonts"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
	"github.com/GrapeSkin2191/iwanna/tags"
)

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := cfg.UI.DebugHitboxColors["solid"]
			if obj.HasTags(tags.ResolvPlayer) {
				c = cfg.UI.DebugHitboxColors["player"]
			}
			strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, c)
		}
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		if hazards := components.Level.Get(levelEntry).Hazards; hazards != nil {
			for _, r := range hazards.Bounds() {
				strokeRect(screen, r.X, r.Y, r.W, r.H, cfg.UI.DebugHitboxColors["hazard"])
			}
		}
	}

	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	player.Bullets.Each(func(b *platformer.Projectile) {
		strokeRect(screen, b.Rect.X, b.Rect.Y, b.Rect.W, b.Rect.H, cfg.UI.DebugHitboxColors["bullet"])
	})

	drawHUD(screen, player.Player)
}

func drawHUD(screen *ebiten.Image, p *platformer.Player) {
	c := p.Collisions
	lines := []string{
		fmt.Sprintf("revision %s  tps %.0f", p.Revision().Name, ebiten.ActualTPS()),
		fmt.Sprintf("x %.1f  y %.1f", p.Rect.X, p.Rect.Y),
		fmt.Sprintf("hspeed %.2f  vspeed %.2f", p.HSpeed, p.VSpeed),
		fmt.Sprintf("air_time %d  djump %v", p.AirTime, p.HasDJump),
		fmt.Sprintf("up %v  down %v  left %v  right %v", c.Up, c.Down, c.Left, c.Right),
		fmt.Sprintf("clip %s  frame %d", p.Anim.Clip(), p.Anim.Frame()),
		fmt.Sprintf("bullets %d  dead %v  death ticks %d", p.Bullets.Len(), p.Dead, p.DeathTicks()),
	}

	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()
	vector.FillRect(screen, 0, 0, 300, float32(lineHeight*len(lines)+8), cfg.UI.HUDTextBgColor, false)
	for i, line := range lines {
		text.Draw(screen, line, face, 4, 4+lineHeight*(i+1)-2, cfg.UI.HUDTextColor)
	}
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
