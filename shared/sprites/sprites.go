// Package sprites draws the placeholder art used when the image files under
// data/images are missing. Everything here is deterministic and free of
// ebiten so masks can be derived from it in tests.
package sprites

import (
	"image"
	"image/color"

	"github.com/GrapeSkin2191/iwanna/shared/tuning"
)

const (
	FrameSize = 32 // player frame and tile edge

	// The player's hitbox sits inside its 32x32 frame at this offset.
	MaskX, MaskY = 11, 11
	MaskW, MaskH = 11, 21

	BulletSize = 4
	BloodSize  = 2

	GameOverW, GameOverH = 800, 328
)

// ClipFrames is the number of frames drawn for each player clip.
var ClipFrames = map[tuning.StateID]int{
	tuning.Idle:    4,
	tuning.Running: 4,
	tuning.Jump:    2,
	tuning.Fall:    2,
}

var (
	skin    = color.RGBA{250, 214, 170, 255}
	cape    = color.RGBA{200, 30, 40, 255}
	shirt   = color.RGBA{40, 60, 160, 255}
	boots   = color.RGBA{60, 40, 20, 255}
	outline = color.RGBA{0, 0, 0, 255}
	steel   = color.RGBA{180, 180, 190, 255}
	brick   = color.RGBA{110, 90, 70, 255}
	mortar  = color.RGBA{70, 55, 40, 255}
	grass   = color.RGBA{60, 170, 60, 255}
	gold    = color.RGBA{255, 230, 60, 255}
)

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

// PlayerMask is the opaque hitbox image the player's collision mask is
// built from.
func PlayerMask() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, MaskW, MaskH))
	fill(img, img.Bounds(), outline)
	return img
}

// PlayerFrames draws the frames of one player clip, facing right.
func PlayerFrames(clip tuning.StateID) []*image.RGBA {
	n := ClipFrames[clip]
	if n == 0 {
		n = 1
	}
	frames := make([]*image.RGBA, n)
	for i := range frames {
		frames[i] = playerFrame(clip, i)
	}
	return frames
}

func playerFrame(clip tuning.StateID, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	x0, y0 := MaskX, MaskY

	bob := 0
	if clip == tuning.Idle && frame%2 == 1 {
		bob = 1
	}

	// cape trails behind, flaps while airborne
	capeLen := 4
	if clip == tuning.Jump || clip == tuning.Fall {
		capeLen = 6 + frame
	}
	fill(img, image.Rect(x0-capeLen+3, y0+8+bob, x0+3, y0+15), cape)

	// head
	fill(img, image.Rect(x0+2, y0+bob, x0+10, y0+8+bob), skin)
	img.Set(x0+8, y0+3+bob, outline)

	// body
	fill(img, image.Rect(x0+1, y0+8+bob, x0+10, y0+16), shirt)

	// legs
	stride := 0
	if clip == tuning.Running {
		stride = []int{0, 2, 0, -2}[frame%4]
	}
	legTop := y0 + 16
	if clip == tuning.Jump {
		legTop -= 1
	}
	fill(img, image.Rect(x0+2+stride, legTop, x0+5+stride, y0+MaskH), boots)
	fill(img, image.Rect(x0+6-stride, legTop, x0+9-stride, y0+MaskH), boots)

	return img
}

// Spike is an upward pointing triangle filling a tile.
func Spike() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	for y := 0; y < FrameSize; y++ {
		half := (y + 1) / 2
		fill(img, image.Rect(FrameSize/2-half, y, FrameSize/2+half, y+1), steel)
		if half > 0 {
			img.Set(FrameSize/2-half, y, outline)
			img.Set(FrameSize/2+half-1, y, outline)
		}
	}
	return img
}

// Block is a solid wall tile.
func Block() *image.RGBA {
	return bricks(brick, mortar)
}

// Blocks returns the tile variants: brick, grass-topped brick and stone.
func Blocks() []*image.RGBA {
	grassy := bricks(brick, mortar)
	fill(grassy, image.Rect(0, 0, FrameSize, 6), grass)
	return []*image.RGBA{
		Block(),
		grassy,
		bricks(color.RGBA{140, 140, 150, 255}, color.RGBA{90, 90, 100, 255}),
	}
}

func bricks(face, joint color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, FrameSize, FrameSize))
	fill(img, img.Bounds(), joint)
	for row := 0; row < 4; row++ {
		shift := (row % 2) * 8
		for col := -1; col < 2; col++ {
			x := col*16 + shift
			fill(img, image.Rect(x+1, row*8+1, x+15, row*8+7), face)
		}
	}
	return img
}

// Blood returns the droplet variants.
func Blood() []*image.RGBA {
	shades := []color.RGBA{
		{200, 0, 0, 255},
		{150, 0, 0, 255},
		{230, 30, 30, 255},
	}
	out := make([]*image.RGBA, len(shades))
	for i, c := range shades {
		img := image.NewRGBA(image.Rect(0, 0, BloodSize, BloodSize))
		fill(img, img.Bounds(), c)
		out[i] = img
	}
	return out
}

// Bullet returns the two frames of the projectile blink.
func Bullet() []*image.RGBA {
	out := make([]*image.RGBA, 2)
	for i := range out {
		img := image.NewRGBA(image.Rect(0, 0, BulletSize, BulletSize))
		fill(img, image.Rect(1, 0, 3, 4), gold)
		fill(img, image.Rect(0, 1, 4, 3), gold)
		if i == 1 {
			img.Set(1, 1, color.White)
		}
		out[i] = img
	}
	return out
}

// GameOver is the banner shown after death. The caption is drawn on top
// of it at runtime.
func GameOver() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, GameOverW, GameOverH))
	fill(img, img.Bounds(), color.RGBA{0, 0, 0, 160})
	fill(img, image.Rect(0, 0, GameOverW, 6), cape)
	fill(img, image.Rect(0, GameOverH-6, GameOverW, GameOverH), cape)
	return img
}
