package gamemath

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.Set(0, 0, color.RGBA{A: 255})
	img.Set(3, 2, color.RGBA{R: 10, A: 200})
	img.Set(1, 1, color.RGBA{A: 40}) // below threshold

	m := MaskFromImage(img)
	if m.W != 4 || m.H != 3 {
		t.Fatalf("size = %dx%d, want 4x3", m.W, m.H)
	}
	if !m.At(0, 0) || !m.At(3, 2) {
		t.Fatalf("expected opaque pixels to be set")
	}
	if m.At(1, 1) {
		t.Fatalf("translucent pixel should not be set")
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d, want 2", m.Count())
	}
}

func TestMaskFromSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(5, 5, color.RGBA{A: 255})
	sub := img.SubImage(image.Rect(4, 4, 8, 8))

	m := MaskFromImage(sub)
	if !m.At(1, 1) || m.Count() != 1 {
		t.Fatalf("sub-image mask not relative to its bounds")
	}
}

func TestMaskFlip(t *testing.T) {
	m := NewMask(3, 2)
	m.Set(0, 0)

	h := m.FlipH()
	if !h.At(2, 0) || h.At(0, 0) {
		t.Fatalf("FlipH moved pixel incorrectly")
	}
	v := m.FlipV()
	if !v.At(0, 1) || v.At(0, 0) {
		t.Fatalf("FlipV moved pixel incorrectly")
	}
	hv := m.Flip(true, true)
	if !hv.At(2, 1) || hv.Count() != 1 {
		t.Fatalf("Flip(true, true) moved pixel incorrectly")
	}
	if !m.At(0, 0) {
		t.Fatalf("flip mutated the source mask")
	}
}

func TestOverlap(t *testing.T) {
	square := FullMask(4, 4)

	// A single pixel in the bottom-right corner.
	corner := NewMask(4, 4)
	corner.Set(3, 3)

	tests := []struct {
		name   string
		a      Mask
		ax, ay float64
		b      Mask
		bx, by float64
		want   bool
	}{
		{"identical position", square, 0, 0, square, 0, 0, true},
		{"adjacent", square, 0, 0, square, 4, 0, false},
		{"one pixel shared", square, 0, 0, square, 3, 3, true},
		{"bounding boxes overlap, pixels do not", corner, 0, 0, corner, 2, 2, false},
		{"corner pixels meet", corner, 0, 0, square, 3, 3, true},
		{"fractional positions floor", square, 0.9, 0, square, 4.5, 0, false},
		{"negative coordinates", square, -2, -2, square, 1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlap(tt.a, tt.ax, tt.ay, tt.b, tt.bx, tt.by); got != tt.want {
				t.Fatalf("Overlap = %v, want %v", got, tt.want)
			}
		})
	}
}
