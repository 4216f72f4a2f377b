package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
	"github.com/GrapeSkin2191/iwanna/shared/sprites"
)

// DecodeImage reads and decodes one image file from fsys.
func DecodeImage(fsys fs.FS, p string) (image.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("assets: open image %s: %w", p, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode image %s: %w", p, err)
	}
	return img, nil
}

// DecodeDir decodes every .png in dir, ordered by file name.
func DecodeDir(fsys fs.FS, dir string) ([]image.Image, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read image dir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(path.Ext(e.Name()), ".png") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("assets: no images in %s", dir)
	}

	out := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := DecodeImage(fsys, path.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, nil
}

// ImageLoader loads sprites from the images directory and caches them.
// Missing files are replaced by placeholder art.
type ImageLoader struct {
	fsys   fs.FS
	cache  map[string]image.Image
	frames map[string][]image.Image
	gpu    map[image.Image]*ebiten.Image
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{
		fsys:   fsys,
		cache:  make(map[string]image.Image),
		frames: make(map[string][]image.Image),
		gpu:    make(map[image.Image]*ebiten.Image),
	}
}

// Source returns the decoded image at p, or fallback() when it can't be read.
func (l *ImageLoader) Source(p string, fallback func() *image.RGBA) image.Image {
	if img, ok := l.cache[p]; ok {
		return img
	}

	img, err := DecodeImage(l.fsys, p)
	if err != nil {
		log.Printf("Warning: %v, using placeholder", err)
		img = fallback()
	}
	l.cache[p] = img
	return img
}

// SourceFrames is Source for a directory of numbered frames.
func (l *ImageLoader) SourceFrames(dir string, fallback func() []*image.RGBA) []image.Image {
	if imgs, ok := l.frames[dir]; ok {
		return imgs
	}

	imgs, err := DecodeDir(l.fsys, dir)
	if err != nil {
		log.Printf("Warning: %v, using placeholder", err)
		placeholder := fallback()
		imgs = make([]image.Image, len(placeholder))
		for i, p := range placeholder {
			imgs[i] = p
		}
	}
	l.frames[dir] = imgs
	return imgs
}

// Image returns the GPU copy of Source.
func (l *ImageLoader) Image(p string, fallback func() *image.RGBA) *ebiten.Image {
	return l.toEbiten(l.Source(p, fallback))
}

// Frames returns the GPU copies of SourceFrames.
func (l *ImageLoader) Frames(dir string, fallback func() []*image.RGBA) []*ebiten.Image {
	src := l.SourceFrames(dir, fallback)
	out := make([]*ebiten.Image, len(src))
	for i, img := range src {
		out[i] = l.toEbiten(img)
	}
	return out
}

// Mask builds a collision mask from the alpha channel of Source.
func (l *ImageLoader) Mask(p string, fallback func() *image.RGBA) gamemath.Mask {
	return gamemath.MaskFromImage(l.Source(p, fallback))
}

func (l *ImageLoader) toEbiten(img image.Image) *ebiten.Image {
	if e, ok := l.gpu[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	l.gpu[img] = e
	return e
}

// Sprite set used by the game, loaded once per process.
var images *ImageLoader

func loader() *ImageLoader {
	if images == nil {
		images = NewImageLoader(NewOverlay(config.Paths.Images))
	}
	return images
}

// PlayerMask is the player's hitbox mask.
func PlayerMask() gamemath.Mask {
	return loader().Mask(config.ImageFiles.PlayerMask, sprites.PlayerMask)
}

// PlayerFrames returns the frames of one player clip.
func PlayerFrames(state config.StateID) []*ebiten.Image {
	def := config.CharacterAnimations["player"][state]
	return loader().Frames(def.Dir, func() []*image.RGBA { return sprites.PlayerFrames(state) })
}

// ClipFrames counts the frames available for each player clip.
func ClipFrames() map[config.StateID]int {
	out := make(map[config.StateID]int)
	for state := range config.CharacterAnimations["player"] {
		out[state] = len(PlayerFrames(state))
	}
	return out
}

func BulletFrames() []*ebiten.Image {
	def := config.CharacterAnimations["bullet"][config.Bullet]
	return loader().Frames(def.Dir, sprites.Bullet)
}

func BloodImages() []*ebiten.Image {
	return loader().Frames(config.ImageFiles.BloodDir, sprites.Blood)
}

// TileImage returns the image for one tile variant, read from
// tiles/<type>/. Unknown variants wrap around.
func TileImage(tileType string, variant int) *ebiten.Image {
	frames := loader().Frames(path.Join(config.ImageFiles.TilesDir, tileType), sprites.Blocks)
	if variant < 0 {
		variant = -variant
	}
	return frames[variant%len(frames)]
}

func SpikeImage() *ebiten.Image {
	return loader().Image(config.ImageFiles.Spike, sprites.Spike)
}

// SpikeMask is the unflipped spike mask.
func SpikeMask() gamemath.Mask {
	return loader().Mask(config.ImageFiles.Spike, sprites.Spike)
}

func GameOverImage() *ebiten.Image {
	return loader().Image(config.ImageFiles.GameOver, sprites.GameOver)
}

// PreloadAll decodes and uploads every sprite so the first frame of play
// does not stall.
func PreloadAll() {
	_ = PlayerMask()
	for state := range config.CharacterAnimations["player"] {
		_ = PlayerFrames(state)
	}
	_ = BulletFrames()
	_ = BloodImages()
	_ = SpikeImage()
	_ = TileImage("block", 0)
	_ = GameOverImage()
}

// HasImage reports whether p exists in the images directory or the
// embedded data, as opposed to being drawn from placeholder art.
func HasImage(p string) bool {
	_, err := fs.Stat(loader().fsys, p)
	return err == nil
}
