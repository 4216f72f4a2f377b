// Package leveldata provides the room tile grid and its loaders.
// It has no dependencies on ebitengine, donburi, or resolv: pure data only.
package leveldata

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrMissingField = errors.New("leveldata: missing field")

// Map types understood by the loaders.
const (
	MapRoom   = "room"
	MapTitle  = "title"
	MapSelect = "select"
)

// DefaultBackground is the sky colour used when a room does not set one.
var DefaultBackground = color.RGBA{R: 200, G: 255, B: 255, A: 255}

// Loc is a grid cell coordinate.
type Loc struct {
	X, Y int
}

// ParseLoc parses the "x;y" keys used by room files.
func ParseLoc(s string) (Loc, error) {
	xs, ys, ok := strings.Cut(s, ";")
	if !ok {
		return Loc{}, fmt.Errorf("leveldata: bad tile key %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Loc{}, fmt.Errorf("leveldata: bad tile key %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Loc{}, fmt.Errorf("leveldata: bad tile key %q: %w", s, err)
	}
	return Loc{X: x, Y: y}, nil
}

func (l Loc) String() string {
	return strconv.Itoa(l.X) + ";" + strconv.Itoa(l.Y)
}

// Tile is one placed tile. Grid tiles store X/Y in cells, offgrid tiles and
// tiles returned by Extract store X/Y in pixels.
type Tile struct {
	Type    string
	Variant int
	X, Y    float64
	FlipH   bool
	FlipV   bool
}

// Level is a loaded room: a sparse solid grid used for collision, a sparse
// decor grid, free-placed offgrid tiles and the player spawn.
type Level struct {
	Name       string
	MapType    string
	Background color.RGBA
	TileSize   int
	Solid      map[Loc]Tile
	Decor      map[Loc]Tile
	Offgrid    []Tile
	SpawnX     float64
	SpawnY     float64
	HasSpawn   bool
	RoomTo     string
}

// NewLevel returns an empty room with the given cell size.
func NewLevel(tileSize int) *Level {
	return &Level{
		MapType:    MapRoom,
		Background: DefaultBackground,
		TileSize:   tileSize,
		Solid:      make(map[Loc]Tile),
		Decor:      make(map[Loc]Tile),
	}
}

func (l *Level) validate(path string) error {
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: %s: tile_size must be positive", ErrMissingField, path)
	}
	switch l.MapType {
	case MapTitle:
		if l.RoomTo == "" {
			return fmt.Errorf("%w: %s: title map needs room_to", ErrMissingField, path)
		}
	case MapSelect:
	default:
		if !l.HasSpawn {
			return fmt.Errorf("%w: %s: player spawn", ErrMissingField, path)
		}
	}
	return nil
}
