package leveldata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strings"
)

// rawTile mirrors one tile entry of a room file.
type rawTile struct {
	Type    string     `json:"type"`
	Variant int        `json:"variant"`
	Pos     [2]float64 `json:"pos"`
	Flip    [2]flag    `json:"flip"`
}

type rawLevel struct {
	MapType    string             `json:"map_type"`
	Background []int              `json:"background"`
	TileSize   int                `json:"tile_size"`
	SolidTile  map[string]rawTile `json:"solid_tile"`
	Tile       map[string]rawTile `json:"tile"`
	Offgrid    []rawTile          `json:"offgrid"`
	Player     []float64          `json:"player"`
	RoomTo     string             `json:"room_to"`
}

// flag accepts both JSON booleans and 0/1 numbers, since room files written
// by hand use either.
type flag bool

func (f *flag) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch string(b) {
	case "true", "1":
		*f = true
	case "false", "0", "null":
		*f = false
	default:
		return fmt.Errorf("leveldata: bad flip value %s", b)
	}
	return nil
}

func (t rawTile) tile() Tile {
	return Tile{
		Type:    t.Type,
		Variant: t.Variant,
		X:       t.Pos[0],
		Y:       t.Pos[1],
		FlipH:   bool(t.Flip[0]),
		FlipV:   bool(t.Flip[1]),
	}
}

// Load reads a room, choosing the format from the file extension.
func Load(fsys fs.FS, p string) (*Level, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return LoadJSON(fsys, p)
	case ".tmx":
		return LoadTMX(fsys, p)
	}
	return nil, fmt.Errorf("leveldata: unsupported level format %s", p)
}

// LoadJSON parses a room file. It takes an fs.FS so callers can pass the
// embedded levels or os.DirFS for rooms edited on disk.
func LoadJSON(fsys fs.FS, p string) (*Level, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", p, err)
	}

	var raw rawLevel
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("leveldata: unmarshal %s: %w", p, err)
	}

	lvl := NewLevel(raw.TileSize)
	lvl.Name = strings.TrimSuffix(path.Base(p), path.Ext(p))
	if raw.MapType != "" {
		lvl.MapType = raw.MapType
	}
	lvl.RoomTo = raw.RoomTo

	if len(raw.Background) > 0 {
		if len(raw.Background) < 3 {
			return nil, fmt.Errorf("leveldata: %s: background needs three channels", p)
		}
		lvl.Background = color.RGBA{R: channel(raw.Background[0]), G: channel(raw.Background[1]), B: channel(raw.Background[2]), A: 255}
	}

	if len(raw.Player) >= 2 {
		lvl.SpawnX, lvl.SpawnY = raw.Player[0], raw.Player[1]
		lvl.HasSpawn = true
	}

	for key, rt := range raw.SolidTile {
		loc, err := ParseLoc(key)
		if err != nil {
			return nil, fmt.Errorf("leveldata: %s: %w", p, err)
		}
		lvl.Solid[loc] = rt.tile()
	}
	for key, rt := range raw.Tile {
		loc, err := ParseLoc(key)
		if err != nil {
			return nil, fmt.Errorf("leveldata: %s: %w", p, err)
		}
		lvl.Decor[loc] = rt.tile()
	}
	for _, rt := range raw.Offgrid {
		lvl.Offgrid = append(lvl.Offgrid, rt.tile())
	}

	if err := lvl.validate(p); err != nil {
		return nil, err
	}
	return lvl, nil
}

func channel(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
