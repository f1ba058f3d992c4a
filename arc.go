package hyperdisk

import (
	"fmt"
	"log/slog"
	"math"
)

// collinearEpsilon is the cross-product magnitude below which the two
// endpoints and the disk center are treated as collinear.
const collinearEpsilon = 1e-10

// Arc is the drawable form of a geodesic in the disk frame.
//
// For a true arc, Center and Radius describe a circle orthogonal to the
// unit circle and the arc runs counter-clockwise from StartAngle through
// the minor sweep to EndAngle. EndAngle may be numerically smaller than
// StartAngle; use Sweep for the angular extent.
//
// For a straight chord through the disk center, Straight is true, Center is
// the origin, Radius is +Inf, and StartAngle/EndAngle are the polar angles
// of the two endpoints. Renderers draw the segment From-To in that case.
type Arc struct {
	Center     NormalizedPoint
	Radius     float64
	StartAngle float64
	EndAngle   float64
	Straight   bool

	// From and To are the endpoints in line order. They are not swapped
	// when the angles are.
	From, To NormalizedPoint
}

// Sweep returns the counter-clockwise angular extent from StartAngle to
// EndAngle, in [0, π] for arcs produced by ResolveArc. It is zero for
// straight chords.
func (a Arc) Sweep() float64 {
	if a.Straight {
		return 0
	}
	s := a.EndAngle - a.StartAngle
	for s < 0 {
		s += 2 * math.Pi
	}
	for s >= 2*math.Pi {
		s -= 2 * math.Pi
	}
	return s
}

// PointAt returns the point at parameter t in [0, 1] along the arc.
// t=0 is at StartAngle (or From for a chord).
func (a Arc) PointAt(t float64) NormalizedPoint {
	if a.Straight {
		return a.From.Add(a.To.Sub(a.From).Mul(t))
	}
	theta := a.StartAngle + t*a.Sweep()
	return NormalizedPoint{
		X: a.Center.X + a.Radius*math.Cos(theta),
		Y: a.Center.Y + a.Radius*math.Sin(theta),
	}
}

// ResolveArc computes the geodesic between two disk points.
//
// If u, v and the disk center are collinear the geodesic is a diameter
// chord and a Straight arc is returned. Otherwise the unique circle
// through u and v orthogonal to the unit circle is solved from
//
//	x² + y² + a·x + b·y + 1 = 0
//
// and the minor arc between the endpoints is selected.
//
// ErrNegativeRadicand is returned, together with an arc whose radius is
// clamped to zero, when the radius cannot be computed. Finite inputs inside
// the open disk never trigger it; non-finite inputs do.
func ResolveArc(u, v NormalizedPoint) (Arc, error) {
	d := u.Cross(v)
	if math.Abs(d) < collinearEpsilon {
		return Arc{
			Center:     NormalizedPoint{},
			Radius:     math.Inf(1),
			StartAngle: u.Angle(),
			EndAngle:   v.Angle(),
			Straight:   true,
			From:       u,
			To:         v,
		}, nil
	}

	uu := u.LengthSquared() + 1
	vv := v.LengthSquared() + 1
	a := (u.Y*vv - v.Y*uu) / d
	b := (v.X*uu - u.X*vv) / d

	arc := Arc{
		Center: NormalizedPoint{X: -a / 2, Y: -b / 2},
		From:   u,
		To:     v,
	}

	var err error
	rad2 := (a/2)*(a/2) + (b/2)*(b/2) - 1
	if !(rad2 >= 0) {
		err = fmt.Errorf("%w: %g for %v-%v", ErrNegativeRadicand, rad2, u, v)
		rad2 = 0
	}
	arc.Radius = math.Sqrt(rad2)

	start := u.Sub(arc.Center).Angle()
	end := v.Sub(arc.Center).Angle()
	if end < start {
		end += 2 * math.Pi
	}
	if end-start > math.Pi {
		start, end = end, start
	}
	arc.StartAngle = start
	arc.EndAngle = end

	return arc, err
}

// GeodesicArc returns the drawable geodesic between two hyperbolic points.
//
// A negative radicand is an internal invariant violation: it panics when
// built with the hyperdiskdebug tag, and otherwise is logged and the
// radius is clamped to zero.
func GeodesicArc(a, b HyperbolicPoint) Arc {
	arc, err := ResolveArc(HyperbolicToNormalized(a), HyperbolicToNormalized(b))
	if err != nil {
		if debugAssertions {
			panic(err)
		}
		Logger().Error("hyperdisk: geodesic radius clamped",
			slog.Any("err", err),
			slog.String("from", a.String()),
			slog.String("to", b.String()))
	}
	return arc
}
