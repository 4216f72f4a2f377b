package leveldata

import (
	"math"
	"sort"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
)

// neighborOffsets covers the 3x3 block around a cell, each cell once.
var neighborOffsets = [9]Loc{
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1}, {1, 0}, {0, 0}, {-1, 1}, {0, 1}, {1, 1},
}

// CellAt returns the cell containing the world point (x, y).
// Floor division keeps negative coordinates in the right cell.
func (l *Level) CellAt(x, y float64) Loc {
	size := float64(l.TileSize)
	return Loc{X: int(math.Floor(x / size)), Y: int(math.Floor(y / size))}
}

// Set stores a tile in the solid or decor grid, replacing any tile already
// at that cell.
func (l *Level) Set(loc Loc, t Tile, solid bool) {
	t.X, t.Y = float64(loc.X), float64(loc.Y)
	l.layer(solid)[loc] = t
}

// Get returns the tile at loc in the solid or decor grid.
func (l *Level) Get(loc Loc, solid bool) (Tile, bool) {
	t, ok := l.layer(solid)[loc]
	return t, ok
}

func (l *Level) layer(solid bool) map[Loc]Tile {
	if solid {
		return l.Solid
	}
	return l.Decor
}

// TilesNear returns the solid tiles in the 3x3 block of cells around (x, y).
// Cells without a tile are skipped; there is no bounds checking.
func (l *Level) TilesNear(x, y float64) []Tile {
	return l.TilesNearLayer(x, y, true)
}

// TilesNearLayer is TilesNear over either grid.
func (l *Level) TilesNearLayer(x, y float64, solid bool) []Tile {
	grid := l.layer(solid)
	center := l.CellAt(x, y)

	tiles := make([]Tile, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		if t, ok := grid[Loc{X: center.X + off.X, Y: center.Y + off.Y}]; ok {
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// RectsNear returns the world-space rectangles of the solid tiles around
// (x, y).
func (l *Level) RectsNear(x, y float64) []gamemath.Rect {
	size := float64(l.TileSize)
	tiles := l.TilesNear(x, y)

	rects := make([]gamemath.Rect, len(tiles))
	for i, t := range tiles {
		rects[i] = gamemath.NewRect(t.X*size, t.Y*size, size, size)
	}
	return rects
}

// Extract returns every tile of the given type from the offgrid list, the
// solid grid and the decor grid, in that order. Grid tiles come back with
// pixel positions. Unless keep is set the matches are removed from the room.
// Grid matches are ordered by row then column.
func (l *Level) Extract(tileType string, keep bool) []Tile {
	var matches []Tile

	remaining := l.Offgrid[:0:0]
	for _, t := range l.Offgrid {
		if t.Type == tileType {
			matches = append(matches, t)
			if !keep {
				continue
			}
		}
		remaining = append(remaining, t)
	}
	l.Offgrid = remaining

	size := float64(l.TileSize)
	for _, grid := range []map[Loc]Tile{l.Solid, l.Decor} {
		var locs []Loc
		for loc, t := range grid {
			if t.Type == tileType {
				locs = append(locs, loc)
			}
		}
		sortLocs(locs)

		for _, loc := range locs {
			t := grid[loc]
			t.X *= size
			t.Y *= size
			matches = append(matches, t)
			if !keep {
				delete(grid, loc)
			}
		}
	}
	return matches
}

// Extent returns the pixel size of the area from the origin that holds every
// tile and the spawn. Negative positions do not grow it.
func (l *Level) Extent() (w, h int) {
	size := float64(l.TileSize)
	var maxX, maxY float64
	grow := func(right, bottom float64) {
		maxX = math.Max(maxX, right)
		maxY = math.Max(maxY, bottom)
	}
	for _, grid := range []map[Loc]Tile{l.Solid, l.Decor} {
		for loc := range grid {
			grow(float64(loc.X+1)*size, float64(loc.Y+1)*size)
		}
	}
	for _, t := range l.Offgrid {
		grow(t.X+size, t.Y+size)
	}
	if l.HasSpawn {
		grow(l.SpawnX+size, l.SpawnY+size)
	}
	return int(math.Ceil(maxX)), int(math.Ceil(maxY))
}

// SortedLocs returns the cells of one grid ordered by row then column.
func (l *Level) SortedLocs(solid bool) []Loc {
	grid := l.layer(solid)
	locs := make([]Loc, 0, len(grid))
	for loc := range grid {
		locs = append(locs, loc)
	}
	sortLocs(locs)
	return locs
}

func sortLocs(locs []Loc) {
	sort.Slice(locs, func(i, j int) bool {
		if locs[i].Y != locs[j].Y {
			return locs[i].Y < locs[j].Y
		}
		return locs[i].X < locs[j].X
	})
}
