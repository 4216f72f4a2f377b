package gamemath

import (
	"image"
	"math"
)

// maskAlphaThreshold matches the default threshold used when a mask is
// built from a sprite: pixels at or above half opacity are solid.
const maskAlphaThreshold = 128

// Mask is a per-pixel occupancy grid used for pixel-accurate contact tests.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask returns an empty mask of the given size.
func NewMask(w, h int) Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Mask{W: w, H: h, bits: make([]bool, w*h)}
}

// FullMask returns a mask with every pixel set.
func FullMask(w, h int) Mask {
	m := NewMask(w, h)
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// MaskFromImage builds a mask from the alpha channel of img.
func MaskFromImage(img image.Image) Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if a>>8 >= maskAlphaThreshold {
				m.bits[y*m.W+x] = true
			}
		}
	}
	return m
}

// At reports whether the pixel at (x, y) is set. Out of range reads are false.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set marks the pixel at (x, y). Out of range writes are ignored.
func (m Mask) Set(x, y int) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = true
}

// Count returns the number of set pixels.
func (m Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FlipH returns a horizontally mirrored copy.
func (m Mask) FlipH() Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			out.bits[y*m.W+(m.W-1-x)] = m.bits[y*m.W+x]
		}
	}
	return out
}

// FlipV returns a vertically mirrored copy.
func (m Mask) FlipV() Mask {
	out := NewMask(m.W, m.H)
	for y := 0; y < m.H; y++ {
		copy(out.bits[(m.H-1-y)*m.W:(m.H-y)*m.W], m.bits[y*m.W:(y+1)*m.W])
	}
	return out
}

// Flip applies FlipH and/or FlipV.
func (m Mask) Flip(h, v bool) Mask {
	if h {
		m = m.FlipH()
	}
	if v {
		m = m.FlipV()
	}
	return m
}

// Overlap reports whether mask a placed at (ax, ay) shares a set pixel with
// mask b placed at (bx, by). Positions are floored to whole pixels.
func Overlap(a Mask, ax, ay float64, b Mask, bx, by float64) bool {
	axi, ayi := int(math.Floor(ax)), int(math.Floor(ay))
	bxi, byi := int(math.Floor(bx)), int(math.Floor(by))

	x0, x1 := max(axi, bxi), min(axi+a.W, bxi+b.W)
	y0, y1 := max(ayi, byi), min(ayi+a.H, byi+b.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.At(x-axi, y-ayi) && b.At(x-bxi, y-byi) {
				return true
			}
		}
	}
	return false
}
