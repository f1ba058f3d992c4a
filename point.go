package hyperdisk

import (
	"fmt"
	"math"
)

// HyperbolicPoint is a position in hyperbolic model space.
//
// Coordinates are unbounded. HyperbolicPoint is the durable representation
// of a user-placed point; the Graph stores these and nothing else.
type HyperbolicPoint struct {
	X, Y float64
}

// Hyp is a convenience function to create a HyperbolicPoint.
func Hyp(x, y float64) HyperbolicPoint {
	return HyperbolicPoint{X: x, Y: y}
}

// IsFinite reports whether both coordinates are finite.
func (p HyperbolicPoint) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

// Approx reports whether p and q are equal within epsilon on both axes.
func (p HyperbolicPoint) Approx(q HyperbolicPoint, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

func (p HyperbolicPoint) String() string {
	return fmt.Sprintf("H(%g, %g)", p.X, p.Y)
}

// NormalizedPoint is a position in the disk frame.
// Valid values lie in the open unit disk; the origin is the disk center
// and Y grows upward.
type NormalizedPoint struct {
	X, Y float64
}

// Norm is a convenience function to create a NormalizedPoint.
func Norm(x, y float64) NormalizedPoint {
	return NormalizedPoint{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p NormalizedPoint) Add(q NormalizedPoint) NormalizedPoint {
	return NormalizedPoint{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p NormalizedPoint) Sub(q NormalizedPoint) NormalizedPoint {
	return NormalizedPoint{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p NormalizedPoint) Mul(s float64) NormalizedPoint {
	return NormalizedPoint{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p NormalizedPoint) Dot(q NormalizedPoint) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p NormalizedPoint) Cross(q NormalizedPoint) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the distance from the disk center.
func (p NormalizedPoint) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// LengthSquared returns the squared distance from the disk center.
func (p NormalizedPoint) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the Euclidean distance between two points.
func (p NormalizedPoint) Distance(q NormalizedPoint) float64 {
	return p.Sub(q).Length()
}

// Angle returns the polar angle of the point around the disk center.
func (p NormalizedPoint) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// InDisk reports whether the point lies strictly inside the unit disk.
func (p NormalizedPoint) InDisk() bool {
	return p.LengthSquared() < 1
}

// Approx reports whether p and q are equal within epsilon on both axes.
func (p NormalizedPoint) Approx(q NormalizedPoint, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}

func (p NormalizedPoint) String() string {
	return fmt.Sprintf("N(%g, %g)", p.X, p.Y)
}

// ScreenPoint is a pixel coordinate. The origin is the top-left corner
// of the window and Y grows downward.
type ScreenPoint struct {
	X, Y float64
}

// Px is a convenience function to create a ScreenPoint.
func Px(x, y float64) ScreenPoint {
	return ScreenPoint{X: x, Y: y}
}

func (p ScreenPoint) String() string {
	return fmt.Sprintf("S(%g, %g)", p.X, p.Y)
}

func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
