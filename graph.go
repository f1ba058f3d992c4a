package hyperdisk

import (
	"fmt"
	"iter"
	"log/slog"
	"slices"
)

// PointID is a stable handle to a point in a Graph.
// The zero value never refers to a point.
type PointID uint32

func (id PointID) String() string { return fmt.Sprintf("p%d", uint32(id)) }

// LineID is a stable handle to a line in a Graph.
// The zero value never refers to a line.
type LineID uint32

func (id LineID) String() string { return fmt.Sprintf("l%d", uint32(id)) }

// Line connects two points by handle. A Line never copies its endpoints:
// moving a point moves every line attached to it.
type Line struct {
	Start, End PointID
}

// Touches reports whether id is one of the line's endpoints.
func (l Line) Touches(id PointID) bool {
	return l.Start == id || l.End == id
}

type lineEntry struct {
	id   LineID
	line Line
}

// Graph holds the user's points and the lines between them.
//
// Points live in an arena addressed by PointID; two points with equal
// coordinates are still distinct. Removing a point removes every line
// that references it in the same call.
//
// Graph is not safe for concurrent use. Hosts with more than one goroutine
// must serialize access.
type Graph struct {
	points    map[PointID]HyperbolicPoint
	order     []PointID
	lines     []lineEntry
	nextPoint PointID
	nextLine  LineID
	opts      graphOptions
}

// NewGraph returns an empty graph.
//
// Example:
//
//	g := hyperdisk.NewGraph(hyperdisk.WithProximityThreshold(0.05))
//	a := g.AddPoint(hyperdisk.Hyp(0.5, 0))
//	b := g.AddPoint(hyperdisk.Hyp(0, 0.5))
//	g.AddLine(a, b)
func NewGraph(opts ...GraphOption) *Graph {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Graph{
		points: make(map[PointID]HyperbolicPoint),
		opts:   o,
	}
}

// AddPoint inserts p and returns its handle. No deduplication is done.
func (g *Graph) AddPoint(p HyperbolicPoint) PointID {
	g.nextPoint++
	id := g.nextPoint
	g.points[id] = p
	g.order = append(g.order, id)
	Logger().Debug("hyperdisk: point added", slog.String("id", id.String()), slog.String("at", p.String()))
	return id
}

// AddLine inserts a line from a to b and returns its handle.
//
// The caller must pass two distinct handles that are currently in the
// graph; AddLine does not check.
func (g *Graph) AddLine(a, b PointID) LineID {
	g.nextLine++
	id := g.nextLine
	g.lines = append(g.lines, lineEntry{id: id, line: Line{Start: a, End: b}})
	Logger().Debug("hyperdisk: line added", slog.String("id", id.String()),
		slog.String("start", a.String()), slog.String("end", b.String()))
	return id
}

// Point returns the coordinates stored under id.
func (g *Graph) Point(id PointID) (HyperbolicPoint, bool) {
	p, ok := g.points[id]
	return p, ok
}

// HasPoint reports whether id is in the graph.
func (g *Graph) HasPoint(id PointID) bool {
	_, ok := g.points[id]
	return ok
}

// SetPoint replaces the coordinates of an existing point. Lines attached to
// id follow automatically. It returns false if id is not in the graph.
func (g *Graph) SetPoint(id PointID, p HyperbolicPoint) bool {
	if _, ok := g.points[id]; !ok {
		return false
	}
	g.points[id] = p
	return true
}

// Line returns the line stored under id.
func (g *Graph) Line(id LineID) (Line, bool) {
	for _, e := range g.lines {
		if e.id == id {
			return e.line, true
		}
	}
	return Line{}, false
}

// NumPoints returns the number of points.
func (g *Graph) NumPoints() int { return len(g.order) }

// NumLines returns the number of lines.
func (g *Graph) NumLines() int { return len(g.lines) }

// Points iterates over the points in insertion order.
// The graph must not be mutated during iteration.
func (g *Graph) Points() iter.Seq2[PointID, HyperbolicPoint] {
	return func(yield func(PointID, HyperbolicPoint) bool) {
		for _, id := range g.order {
			if !yield(id, g.points[id]) {
				return
			}
		}
	}
}

// Lines iterates over the lines in insertion order.
// The graph must not be mutated during iteration.
func (g *Graph) Lines() iter.Seq2[LineID, Line] {
	return func(yield func(LineID, Line) bool) {
		for _, e := range g.lines {
			if !yield(e.id, e.line) {
				return
			}
		}
	}
}

// RemovePoint deletes id and every line attached to it.
func (g *Graph) RemovePoint(id PointID) {
	g.RemovePoints(id)
}

// RemovePoints deletes the given points and every line attached to any of
// them. The point set and line set are both rewritten before returning, so
// no caller can observe a line with a missing endpoint. Unknown handles are
// ignored. It returns the number of points removed.
func (g *Graph) RemovePoints(ids ...PointID) int {
	if len(ids) == 0 {
		return 0
	}
	doomed := NewPointSet(ids...)

	removed := 0
	g.order = slices.DeleteFunc(g.order, func(id PointID) bool {
		if doomed.Contains(id) {
			delete(g.points, id)
			removed++
			return true
		}
		return false
	})

	before := len(g.lines)
	g.lines = slices.DeleteFunc(g.lines, func(e lineEntry) bool {
		return doomed.Contains(e.line.Start) || doomed.Contains(e.line.End)
	})

	Logger().Debug("hyperdisk: points removed",
		slog.Int("points", removed), slog.Int("lines", before-len(g.lines)))
	return removed
}

// Clear empties the graph. Handles are not reused afterwards.
func (g *Graph) Clear() {
	clear(g.points)
	g.order = g.order[:0]
	g.lines = g.lines[:0]
	Logger().Debug("hyperdisk: graph cleared")
}

// ProximityThreshold returns the default radius used by FindPointNear.
func (g *Graph) ProximityThreshold() float64 {
	return g.opts.proximityThreshold
}

// FindPointNear returns the first point, in insertion order, whose
// normalized image lies within the graph's proximity threshold of target.
// See FindPointNearWithin.
func (g *Graph) FindPointNear(target NormalizedPoint) (PointID, bool) {
	return g.FindPointNearWithin(target, g.opts.proximityThreshold)
}

// FindPointNearWithin returns the first point, in insertion order, whose
// normalized image is closer than threshold to target.
//
// This is a first-match policy, not nearest-match: when two points are
// both within threshold the older one wins even if the newer one is
// closer. A non-positive threshold or non-finite target finds nothing.
func (g *Graph) FindPointNearWithin(target NormalizedPoint, threshold float64) (PointID, bool) {
	if !(threshold > 0) || !isFinite(target.X) || !isFinite(target.Y) {
		return 0, false
	}
	for _, id := range g.order {
		if HyperbolicToNormalized(g.points[id]).Distance(target) < threshold {
			return id, true
		}
	}
	return 0, false
}

// adjacency builds the undirected neighbor lists implied by the lines.
func (g *Graph) adjacency() map[PointID][]PointID {
	adj := make(map[PointID][]PointID, len(g.order))
	for _, e := range g.lines {
		adj[e.line.Start] = append(adj[e.line.Start], e.line.End)
		adj[e.line.End] = append(adj[e.line.End], e.line.Start)
	}
	return adj
}

// ConnectedComponent returns every point reachable from start through any
// chain of lines, start included. Lines are undirected for this purpose.
func (g *Graph) ConnectedComponent(start PointID) PointSet {
	return component(g.adjacency(), start)
}

func component(adj map[PointID][]PointID, start PointID) PointSet {
	seen := NewPointSet(start)
	queue := []PointID{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if seen.Contains(next) {
				continue
			}
			seen.Add(next)
			queue = append(queue, next)
		}
	}
	return seen
}

// Components partitions the graph into its connected components, ordered
// by the insertion order of each component's oldest point.
func (g *Graph) Components() []PointSet {
	adj := g.adjacency()
	assigned := make(PointSet, len(g.order))

	var out []PointSet
	for _, id := range g.order {
		if assigned.Contains(id) {
			continue
		}
		c := component(adj, id)
		for member := range c {
			assigned.Add(member)
		}
		out = append(out, c)
	}
	return out
}

// Arc resolves the drawable geodesic for the line stored under id.
func (g *Graph) Arc(id LineID) (Arc, bool) {
	l, ok := g.Line(id)
	if !ok {
		return Arc{}, false
	}
	return g.LineArc(l)
}

// LineArc resolves the drawable geodesic for l. It returns false when
// either endpoint is not in the graph.
func (g *Graph) LineArc(l Line) (Arc, bool) {
	a, ok := g.points[l.Start]
	if !ok {
		return Arc{}, false
	}
	b, ok := g.points[l.End]
	if !ok {
		return Arc{}, false
	}
	return GeodesicArc(a, b), true
}

// TranslatePoints moves every point in ids by delta, measured in the
// normalized frame. Each point is projected to the disk, offset, kept
// inside the disk rim, and mapped back to hyperbolic space.
//
// The move is all-or-nothing: if any handle is unknown or any moved point
// lands where it has no hyperbolic preimage, nothing changes and an error
// wrapping ErrUnknownPoint or ErrOutsideDisk is returned.
func (g *Graph) TranslatePoints(ids PointSet, delta NormalizedPoint) error {
	moved := make(map[PointID]HyperbolicPoint, len(ids))
	for _, id := range ids.Sorted() {
		p, ok := g.points[id]
		if !ok {
			return fmt.Errorf("translate %v: %w", id, ErrUnknownPoint)
		}
		n := OffsetInDisk(HyperbolicToNormalized(p), delta)
		h, ok := NormalizedToHyperbolic(n)
		if !ok {
			Logger().Warn("hyperdisk: translate rejected", slog.String("id", id.String()), slog.String("to", n.String()))
			return fmt.Errorf("translate %v to %v: %w", id, n, ErrOutsideDisk)
		}
		moved[id] = h
	}
	for id, h := range moved {
		g.points[id] = h
	}
	return nil
}

// rimRadius is the largest normalized radius OffsetInDisk produces.
const rimRadius = 0.999

// OffsetInDisk returns n+delta, pulled back radially onto the disk rim if
// it would leave the disk.
func OffsetInDisk(n, delta NormalizedPoint) NormalizedPoint {
	out := n.Add(delta)
	if r := out.Length(); r > rimRadius {
		out = out.Mul(rimRadius / r)
	}
	return out
}
