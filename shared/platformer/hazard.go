package platformer

import (
	"github.com/solarlune/resolv"

	"github.com/GrapeSkin2191/iwanna/shared/gamemath"
)

// HazardTag marks hazard objects in the broadphase space.
const HazardTag = "hazard"

const probeTag = "probe"

// HazardField holds the room's static hazards. resolv narrows a query down
// to the hazards sharing a cell with the probe; masks decide the hit. The
// space may be shared with other objects; only HazardTag objects count.
type HazardField struct {
	space *resolv.Space
	probe *resolv.Object
	count int
}

// NewHazardField builds an empty field in its own space covering a
// width×height room split into cellSize cells.
func NewHazardField(width, height, cellSize int) *HazardField {
	if cellSize <= 0 {
		cellSize = 32
	}
	return NewHazardFieldInSpace(resolv.NewSpace(width, height, cellSize, cellSize))
}

// NewHazardFieldInSpace builds an empty field whose hazards live in space.
// Hazards outside the space's cells are never hit, so the space must cover
// the whole room.
func NewHazardFieldInSpace(space *resolv.Space) *HazardField {
	h := &HazardField{space: space}
	h.probe = resolv.NewObject(0, 0, 1, 1, probeTag)
	h.space.Add(h.probe)
	return h
}

// Add places a hazard with its top-left corner at (x, y).
func (h *HazardField) Add(x, y float64, mask gamemath.Mask) {
	w, ht := float64(mask.W), float64(mask.H)
	obj := resolv.NewObject(x, y, w, ht, HazardTag)
	obj.SetShape(resolv.NewRectangle(0, 0, w, ht))
	obj.Data = mask
	h.space.Add(obj)
	h.count++
}

// Len is the number of hazards in the field.
func (h *HazardField) Len() int {
	return h.count
}

// Hits reports whether mask placed at (x, y) overlaps any hazard pixel.
func (h *HazardField) Hits(mask gamemath.Mask, x, y float64) bool {
	if h.count == 0 || mask.W == 0 || mask.H == 0 {
		return false
	}

	h.probe.X, h.probe.Y = x, y
	h.probe.W, h.probe.H = float64(mask.W), float64(mask.H)
	h.probe.Update()

	check := h.probe.Check(0, 0, HazardTag)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(HazardTag) {
		hazard, ok := obj.Data.(gamemath.Mask)
		if !ok {
			continue
		}
		if gamemath.Overlap(mask, x, y, hazard, obj.X, obj.Y) {
			return true
		}
	}
	return false
}

// Bounds returns the bounding box of every hazard, for debug drawing.
func (h *HazardField) Bounds() []gamemath.Rect {
	var out []gamemath.Rect
	for _, obj := range h.space.Objects() {
		if obj.HasTags(HazardTag) {
			out = append(out, gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H))
		}
	}
	return out
}
