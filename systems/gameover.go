package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/fonts"
	"github.com/GrapeSkin2191/iwanna/tags"
)

// UpdateGameOver starts the banner fade once the player's death timer has
// run out, and advances it one tick per update.
func UpdateGameOver(e *ecs.ECS) {
	gameOver := GetOrCreateGameOver(e)

	if gameOver.Fade == nil {
		entry, ok := tags.Player.First(e.World)
		if !ok || !components.Player.Get(entry).GameOverVisible() {
			return
		}
		ticks := float32(cfg.GameOver.FadeTicks)
		if ticks <= 0 {
			ticks = 1
		}
		gameOver.Fade = gween.New(0, 1, ticks, ease.OutQuad)
	}

	gameOver.Alpha, _ = gameOver.Fade.Update(1)
}

// DrawGameOver renders the game over banner
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	if gameOver.Alpha <= 0 {
		return
	}

	banner := assets.GameOverImage()
	bw, bh := banner.Bounds().Dx(), banner.Bounds().Dy()
	x, y := cfg.Rev.GameOverX, cfg.Rev.GameOverY
	if cfg.Rev.GameOverCentered {
		x = float64(cfg.C.Width-bw) / 2
		y = float64(cfg.C.Height-bh) / 2
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.ScaleAlpha(gameOver.Alpha)
	screen.DrawImage(banner, drawOp)

	// The real banner has its lettering baked in.
	if assets.HasImage(cfg.ImageFiles.GameOver) {
		return
	}
	drawCentered(screen, cfg.GameOver.Title, fonts.Title.Get(), y+cfg.GameOver.TitleY, fade(cfg.GameOver.TitleColor, gameOver.Alpha))
	drawCentered(screen, cfg.GameOver.Hint, fonts.Regular.Get(), y+cfg.GameOver.HintY, fade(cfg.GameOver.HintColor, gameOver.Alpha))
}

func drawCentered(screen *ebiten.Image, s string, face font.Face, baseline float64, c color.Color) {
	width := font.MeasureString(face, s).Round()
	x := (screen.Bounds().Dx() - width) / 2
	text.Draw(screen, s, face, x, int(baseline), c)
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	a := float32(c.A) * alpha
	scale := a / 255
	return color.RGBA{
		R: uint8(float32(c.R) * scale),
		G: uint8(float32(c.G) * scale),
		B: uint8(float32(c.B) * scale),
		A: uint8(a),
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.GameOver))
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
