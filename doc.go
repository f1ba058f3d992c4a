// Package hyperdisk models points and geodesics in the Poincaré disk.
//
// # Overview
//
// hyperdisk is the geometry engine behind an interactive editor that lets a
// user place points in the hyperbolic plane and join them with geodesics.
// It converts between coordinate frames, resolves each geodesic into a
// drawable circular arc, and stores the points and lines as a graph.
//
// # Quick Start
//
//	import "github.com/gogpu/hyperdisk"
//
//	g := hyperdisk.NewGraph()
//	a := g.AddPoint(hyperdisk.Hyp(0.5, 0.2))
//	b := g.AddPoint(hyperdisk.Hyp(-0.3, 0.9))
//	id := g.AddLine(a, b)
//
//	arc, _ := g.Arc(id)
//	fmt.Println(arc.Center, arc.Radius)
//
// # Coordinate Frames
//
// Three frames are used, each with its own type so they cannot be mixed by
// accident:
//   - [HyperbolicPoint]: unbounded model coordinates, the stored form
//   - [NormalizedPoint]: the open unit disk, Y up, origin at the center
//   - [ScreenPoint]: pixels inside a [Viewport], Y down
//
// Conversions are [HyperbolicToNormalized], [NormalizedToHyperbolic],
// [ScreenToNormalized] and [NormalizedToScreen]. Inputs with no image in the
// target frame produce a false second result rather than an error.
//
// # Geodesics
//
// [ResolveArc] returns the circle orthogonal to the unit circle through two
// disk points, or a straight chord when the points are collinear with the
// center. Angles are in the normalized frame (counter-clockwise, Y up);
// renderers working in pixel space must negate them.
//
// # Graph
//
// [Graph] stores points under stable [PointID] handles. Lines refer to
// handles, never to copies, and removing a point removes every line
// touching it. Proximity lookup uses a first-match policy, see
// [Graph.FindPointNearWithin].
//
// # Concurrency
//
// Nothing in this package blocks. Graph is not safe for concurrent use;
// the conversion functions are pure and safe everywhere.
package hyperdisk

// Version is the current version of the library.
const Version = "0.1.0"
