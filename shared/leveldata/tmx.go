package leveldata

import (
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Tiled layer and object group names read by LoadTMX.
const (
	tmxSolidLayer   = "solid"
	tmxDecorLayer   = "decor"
	tmxOffgridGroup = "offgrid"
	tmxPlayerGroup  = "player"
)

// LoadTMX parses a Tiled map into a room. Tiles on the "solid" layer collide,
// tiles on the "decor" layer are drawn only. A tileset tile may set "type"
// and "variant" properties; otherwise the tile is a block whose variant is
// its tileset index. Objects in the "offgrid" group become offgrid tiles
// typed by their class, and the first object in the "player" group is the
// spawn. The room background is the map's background colour, overridden by
// a "background" property on the map and then on any layer. "map_type" and
// "room_to" are read from the same places.
func LoadTMX(fsys fs.FS, p string) (*Level, error) {
	levelMap, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("leveldata: load TMX %s: %w", p, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("leveldata: %s: tiles must be square, got %dx%d", p, levelMap.TileWidth, levelMap.TileHeight)
	}

	lvl := NewLevel(levelMap.TileWidth)
	lvl.Name = strings.TrimSuffix(path.Base(p), path.Ext(p))

	if levelMap.BackgroundColor != nil {
		lvl.Background = opaque(levelMap.BackgroundColor)
	}
	if levelMap.Properties != nil {
		if err := applyRoomProperties(lvl, *levelMap.Properties); err != nil {
			return nil, fmt.Errorf("leveldata: %s: %w", p, err)
		}
	}

	for _, layer := range levelMap.Layers {
		if err := applyRoomProperties(lvl, layer.Properties); err != nil {
			return nil, fmt.Errorf("leveldata: %s: layer %s: %w", p, layer.Name, err)
		}

		var solid bool
		switch layer.Name {
		case tmxSolidLayer:
			solid = true
		case tmxDecorLayer:
			solid = false
		default:
			continue
		}

		for i, lt := range layer.Tiles {
			if lt == nil || lt.IsNil() {
				continue
			}
			loc := Loc{X: i % levelMap.Width, Y: i / levelMap.Width}
			t := Tile{
				Type:    "block",
				Variant: int(lt.ID),
				FlipH:   lt.HorizontalFlip,
				FlipV:   lt.VerticalFlip,
			}
			if tilesetTile, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil {
				if v := tilesetTile.Properties.GetString("type"); v != "" {
					t.Type = v
				}
				if v := tilesetTile.Properties.GetString("variant"); v != "" {
					if n, err := strconv.Atoi(v); err == nil {
						t.Variant = n
					}
				}
			}
			lvl.Set(loc, t, solid)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tmxOffgridGroup:
			for _, o := range og.Objects {
				tileType := o.Class
				if tileType == "" {
					tileType = o.Type //nolint:staticcheck // older TMX files use type=
				}
				if tileType == "" {
					tileType = o.Properties.GetString("type")
				}
				lvl.Offgrid = append(lvl.Offgrid, Tile{
					Type:    tileType,
					Variant: o.Properties.GetInt("variant"),
					X:       o.X,
					Y:       o.Y,
					FlipH:   o.Properties.GetBool("flip_h"),
					FlipV:   o.Properties.GetBool("flip_v"),
				})
			}
		case tmxPlayerGroup:
			if len(og.Objects) > 0 && !lvl.HasSpawn {
				lvl.SpawnX, lvl.SpawnY = og.Objects[0].X, og.Objects[0].Y
				lvl.HasSpawn = true
			}
		}
	}

	// Keep offgrid order stable for tests and drawing.
	sort.SliceStable(lvl.Offgrid, func(i, j int) bool {
		if lvl.Offgrid[i].Y != lvl.Offgrid[j].Y {
			return lvl.Offgrid[i].Y < lvl.Offgrid[j].Y
		}
		return lvl.Offgrid[i].X < lvl.Offgrid[j].X
	})

	if err := lvl.validate(p); err != nil {
		return nil, err
	}
	return lvl, nil
}

// applyRoomProperties copies the room settings found in props onto lvl.
func applyRoomProperties(lvl *Level, props tiled.Properties) error {
	if bg := props.GetString("background"); bg != "" {
		c, err := parseHexColor(bg)
		if err != nil {
			return err
		}
		lvl.Background = c
	}
	if mt := props.GetString("map_type"); mt != "" {
		lvl.MapType = mt
	}
	if rt := props.GetString("room_to"); rt != "" {
		lvl.RoomTo = rt
	}
	return nil
}

// parseHexColor reads a Tiled colour (#rrggbb or #aarrggbb). Rooms are
// always opaque, so alpha is dropped.
func parseHexColor(s string) (color.RGBA, error) {
	hc, err := tiled.ParseHexColor(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return opaque(&hc), nil
}

func opaque(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
