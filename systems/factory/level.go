package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/GrapeSkin2191/iwanna/archetypes"
	"github.com/GrapeSkin2191/iwanna/assets"
	"github.com/GrapeSkin2191/iwanna/components"
	cfg "github.com/GrapeSkin2191/iwanna/config"
	"github.com/GrapeSkin2191/iwanna/shared/platformer"
)

// CreateLevel loads the room at path, creates the collision space sized to
// the room and spawns its spikes, decor and blocks. Spikes are taken out of
// the grid into the hazard field, which shares the scene's space, so the
// player only collides with the blocks that remain. The player is spawned
// separately from the returned level's spawn point.
func CreateLevel(ecs *ecs.ECS, path string) (*donburi.Entry, error) {
	lvl, err := assets.LoadLevel(path)
	if err != nil {
		return nil, err
	}

	width, height := lvl.Extent()
	space := CreateSpace(ecs, max(width, cfg.C.Width), max(height, cfg.C.Height), lvl.TileSize, lvl.TileSize)

	level := archetypes.Level.Spawn(ecs)
	size := float64(lvl.TileSize)

	hazards := platformer.NewHazardFieldInSpace(components.Space.Get(space))
	for _, t := range lvl.Extract("spike", false) {
		CreateSpike(ecs, hazards, t)
	}

	for _, loc := range lvl.SortedLocs(false) {
		t, _ := lvl.Get(loc, false)
		CreateDecor(ecs, t, float64(loc.X)*size, float64(loc.Y)*size)
	}
	for _, t := range lvl.Offgrid {
		CreateDecor(ecs, t, t.X, t.Y)
	}
	for _, loc := range lvl.SortedLocs(true) {
		t, _ := lvl.Get(loc, true)
		CreateBlock(ecs, t, float64(loc.X)*size, float64(loc.Y)*size, size)
	}

	components.Level.SetValue(level, components.LevelData{
		CurrentLevel: lvl,
		Path:         path,
		Hazards:      hazards,
	})
	return level, nil
}
