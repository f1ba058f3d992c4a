package hyperdisk

import "math"

// maxKleinRadius bounds the intermediate point produced by the
// component-wise tanh in HyperbolicToNormalized. tanh bounds each axis but
// not the Euclidean norm, so points far out along a diagonal are saturated
// radially to this radius instead of producing a NaN.
const maxKleinRadius = 1 - 1e-12

// HyperbolicToNormalized projects a hyperbolic point into the unit disk.
//
// Each axis is squashed with tanh, then the azimuthal correction
// 1 + sqrt(1 - x² - y²) pulls the result into the disk. The result is
// strictly inside the unit disk for every finite input.
func HyperbolicToNormalized(p HyperbolicPoint) NormalizedPoint {
	xb := math.Tanh(p.X)
	yb := math.Tanh(p.Y)

	r2 := xb*xb + yb*yb
	if r2 >= maxKleinRadius*maxKleinRadius {
		k := maxKleinRadius / math.Sqrt(r2)
		xb *= k
		yb *= k
		r2 = xb*xb + yb*yb
	}

	s := 1 + math.Sqrt(1-r2)
	return NormalizedPoint{X: xb / s, Y: yb / s}
}

// NormalizedToHyperbolic is the inverse of HyperbolicToNormalized.
//
// It returns false for the exact disk center, where the radial rescale is
// singular, and for points on or outside the unit circle, where atanh
// diverges. It never returns non-finite coordinates.
func NormalizedToHyperbolic(p NormalizedPoint) (HyperbolicPoint, bool) {
	rp := p.Length()
	if rp == 0 || !isFinite(rp) || rp >= 1 {
		return HyperbolicPoint{}, false
	}

	rb := 2 * rp / (1 + rp*rp)
	k := rb / rp

	h := HyperbolicPoint{
		X: math.Atanh(p.X * k),
		Y: math.Atanh(p.Y * k),
	}
	if !h.IsFinite() {
		return HyperbolicPoint{}, false
	}
	return h, true
}

// ScreenToNormalized maps a pixel inside vp to the disk frame.
//
// It returns false when p is outside the viewport rectangle or outside the
// drawn disk. Points exactly on the circle are accepted.
func ScreenToNormalized(p ScreenPoint, vp Viewport) (NormalizedPoint, bool) {
	if !vp.Contains(p) {
		return NormalizedPoint{}, false
	}
	m, ok := vp.FromScreen()
	if !ok {
		return NormalizedPoint{}, false
	}

	x, y := m.Apply(p.X, p.Y)
	n := NormalizedPoint{X: x, Y: y}
	if n.LengthSquared() > 1 {
		return NormalizedPoint{}, false
	}
	return n, true
}

// NormalizedToScreen maps a disk point to its pixel position in vp.
func NormalizedToScreen(p NormalizedPoint, vp Viewport) ScreenPoint {
	x, y := vp.ToScreen().Apply(p.X, p.Y)
	return ScreenPoint{X: x, Y: y}
}

// HyperbolicToScreen projects a hyperbolic point straight to pixels.
func HyperbolicToScreen(p HyperbolicPoint, vp Viewport) ScreenPoint {
	return NormalizedToScreen(HyperbolicToNormalized(p), vp)
}

// Distance returns the hyperbolic distance between a and b, measured in
// the Poincaré metric on their normalized images.
func Distance(a, b HyperbolicPoint) float64 {
	u := HyperbolicToNormalized(a)
	v := HyperbolicToNormalized(b)

	d2 := u.Sub(v).LengthSquared()
	if d2 == 0 {
		return 0
	}
	den := (1 - u.LengthSquared()) * (1 - v.LengthSquared())
	return math.Acosh(1 + 2*d2/den)
}
