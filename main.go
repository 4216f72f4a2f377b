package main

import (
	"errors"
	"flag"
	"image"
	"log"
	"path"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/fonts"
	"github.com/GrapeSkin2191/iwanna/scenes"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(watcher *scenes.LevelWatcher) (*Game, error) {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize, config.UI.DebugFontSize); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	first := scenes.NewPlatformerScene(g, config.Rev.Level, watcher)
	if err := first.Prepare(); err != nil {
		return nil, err
	}
	g.scene = first

	return g, nil
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	revision := flag.String("revision", "tilemap", "revision profile to play (classic, tilemap or a name from the profiles file)")
	level := flag.String("level", "", "room file relative to the data dir, overrides the revision's level")
	profiles := flag.String("profiles", assets.ProfilesFile, "revision profiles YAML")
	dataDir := flag.String("data", config.Paths.Data, "directory whose files override the embedded levels, images and sounds")
	debug := flag.Bool("debug", false, "draw hitboxes and the player state HUD")
	watch := flag.Bool("watch", false, "reload the room when its file changes on disk")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	config.Paths.Data = *dataDir
	config.Paths.Images = filepath.Join(*dataDir, "images")
	config.Paths.Sounds = filepath.Join(*dataDir, "sounds")
	config.Debug.Overlay = *debug
	config.Debug.Watch = *watch
	config.Debug.Level = *level
	config.Window.Fullscreen = *fullscreen

	profileData, err := assets.LoadProfiles(*profiles)
	if err != nil {
		log.Fatalf("Failed to read profiles: %v", err)
	}
	if err := config.Apply(*revision, profileData); err != nil {
		log.Fatalf("Failed to select revision: %v", err)
	}

	var watcher *scenes.LevelWatcher
	if config.Debug.Watch {
		dir := filepath.Join(config.Paths.Data, filepath.FromSlash(path.Dir(config.Rev.Level)))
		w, err := scenes.NewLevelWatcher(dir)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", dir, err)
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.C.Width*config.Window.Scale, config.C.Height*config.Window.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(config.Window.Fullscreen)
	ebiten.SetTPS(config.C.TPS)

	game, err := NewGame(watcher)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
