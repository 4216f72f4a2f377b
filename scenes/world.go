package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
	"github.com/GrapeSkin2191/iwanna/systems"
	"github.com/GrapeSkin2191/iwanna/systems/factory"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene runs one room until it is restarted or reloaded.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *LevelWatcher // nil unless -watch
	levelPath    string
	once         sync.Once
	err          error
}

// NewPlatformerScene creates a scene for the room at levelPath.
func NewPlatformerScene(sc SceneChanger, levelPath string, watcher *LevelWatcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelPath: levelPath, watcher: watcher}
}

// Prepare builds the scene now instead of on the first Update, so a bad
// room can be reported before the scene is shown.
func (ps *PlatformerScene) Prepare() error {
	ps.once.Do(func() { ps.err = ps.configure() })
	return ps.err
}

func (ps *PlatformerScene) Update() error {
	if err := ps.Prepare(); err != nil {
		return err
	}
	ps.ecs.Update()

	if systems.Action(ps.ecs, cfg.ActionQuit).JustPressed {
		return ebiten.Termination
	}
	if systems.Action(ps.ecs, cfg.ActionRestart).JustPressed {
		ps.restart()
		return nil
	}
	ps.checkReload()
	return nil
}

// restart rebuilds the room from its file, as after death.
func (ps *PlatformerScene) restart() {
	next := NewPlatformerScene(ps.sceneChanger, ps.levelPath, ps.watcher)
	if err := next.Prepare(); err != nil {
		log.Printf("Warning: Could not restart %s: %v", ps.levelPath, err)
		return
	}
	ps.sceneChanger.ChangeScene(next)
}

func (ps *PlatformerScene) checkReload() {
	if ps.watcher == nil {
		return
	}
	select {
	case err, ok := <-ps.watcher.Errors:
		if ok {
			log.Printf("Warning: level watcher: %v", err)
		}
	default:
	}

	name, ok := ps.watcher.Changed()
	if !ok {
		return
	}
	log.Printf("Level file %s changed, reloading", name)
	ps.restart()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() error {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadAll()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so the previous tick's requests play)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateGameOver)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	level, err := factory.CreateLevel(ecs, ps.levelPath)
	if err != nil {
		return fmt.Errorf("scenes: %w", err)
	}
	levelData := components.Level.Get(level)

	factory.CreatePlayer(ecs,
		levelData.CurrentLevel.SpawnX,
		levelData.CurrentLevel.SpawnY,
		platformer.Deps{
			Tiles:   levelData.CurrentLevel,
			Hazards: levelData.Hazards,
			Audio:   systems.AudioSink(ecs),
			Rand:    rand.New(rand.NewSource(time.Now().UnixNano())),
		},
	)

	systems.PlayMusic(cfg.Sound.StageMusic, true)

	ps.ecs = ecs
	return nil
}
