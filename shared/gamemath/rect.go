package gamemath

// Rect is an axis-aligned box in world pixels. X/Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (r *Rect) SetLeft(v float64)   { r.X = v }
func (r *Rect) SetRight(v float64)  { r.X = v - r.W }
func (r *Rect) SetTop(v float64)    { r.Y = v }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.H }

// SetCenter moves the rectangle so its midpoint lands on (cx, cy).
func (r *Rect) SetCenter(cx, cy float64) {
	r.X = cx - r.W/2
	r.Y = cy - r.H/2
}

// Overlaps reports whether the interiors of r and o intersect.
// Rectangles that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Moved returns a copy of r translated by (dx, dy).
func (r Rect) Moved(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
