package hyperdisk

import "math"

// Viewport is the pixel rectangle the disk is drawn into.
//
// The disk is centered in the rectangle and its radius is half of the
// shorter side, so the mapping is aspect-preserving.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// NewViewport returns a viewport anchored at the origin.
func NewViewport(width, height float64) Viewport {
	return Viewport{Width: width, Height: height}
}

// Empty reports whether the viewport has no area.
func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

// Contains reports whether p lies inside the rectangle, edges included.
func (v Viewport) Contains(p ScreenPoint) bool {
	return p.X >= v.X && p.X <= v.X+v.Width &&
		p.Y >= v.Y && p.Y <= v.Y+v.Height
}

// Center returns the pixel coordinate of the disk center.
func (v Viewport) Center() ScreenPoint {
	return ScreenPoint{X: v.X + v.Width/2, Y: v.Y + v.Height/2}
}

// Scale returns the disk radius in pixels.
func (v Viewport) Scale() float64 {
	return math.Min(v.Width, v.Height) / 2
}

// ToScreen returns the matrix mapping normalized coordinates to pixels.
// The vertical axis is flipped.
func (v Viewport) ToScreen() Matrix {
	c := v.Center()
	s := v.Scale()
	return Translate(c.X, c.Y).Multiply(Scale(s, -s))
}

// FromScreen returns the matrix mapping pixels to normalized coordinates,
// the inverse of ToScreen. The viewport center maps exactly to the origin.
// The second result is false for an empty viewport.
func (v Viewport) FromScreen() (Matrix, bool) {
	if v.Empty() {
		return Identity(), false
	}
	c := v.Center()
	k := 1 / v.Scale()
	return Scale(k, -k).Multiply(Translate(-c.X, -c.Y)), true
}
