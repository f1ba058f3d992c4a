package hyperdisk

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

func TestGraph_AddPointNoDedup(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(1, 2))
	b := g.AddPoint(Hyp(1, 2))
	if a == b {
		t.Fatalf("equal coordinates must yield distinct handles, both %v", a)
	}
	if g.NumPoints() != 2 {
		t.Errorf("NumPoints = %d, want 2", g.NumPoints())
	}
	if a == 0 || b == 0 {
		t.Error("zero handle must never be issued")
	}
}

func TestGraph_IterationOrder(t *testing.T) {
	g := NewGraph()
	want := []PointID{
		g.AddPoint(Hyp(3, 0)),
		g.AddPoint(Hyp(1, 0)),
		g.AddPoint(Hyp(2, 0)),
	}
	var got []PointID
	for id := range g.Points() {
		got = append(got, id)
	}
	if !slices.Equal(got, want) {
		t.Errorf("Points() order = %v, want %v", got, want)
	}

	l1 := g.AddLine(want[0], want[1])
	l2 := g.AddLine(want[1], want[2])
	var lines []LineID
	for id, l := range g.Lines() {
		lines = append(lines, id)
		if l.Start == 0 || l.End == 0 {
			t.Errorf("line %v has zero endpoint", id)
		}
	}
	if !slices.Equal(lines, []LineID{l1, l2}) {
		t.Errorf("Lines() order = %v, want [%v %v]", lines, l1, l2)
	}
}

func TestGraph_SetPointMovesLines(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.5, 0))
	b := g.AddPoint(Hyp(0, 0.5))
	id := g.AddLine(a, b)

	before, _ := g.Arc(id)
	if !g.SetPoint(a, Hyp(-0.5, 0.1)) {
		t.Fatal("SetPoint on live handle returned false")
	}
	after, _ := g.Arc(id)
	if before.From == after.From {
		t.Error("arc did not follow the edited point")
	}
	if g.SetPoint(999, Hyp(0, 0)) {
		t.Error("SetPoint on unknown handle returned true")
	}
}

func TestGraph_RemovePointCascades(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0, 0))
	b := g.AddPoint(Hyp(1, 0))
	c := g.AddPoint(Hyp(0, 1))
	g.AddLine(a, b)
	g.AddLine(b, c)
	keep := g.AddLine(c, a)

	g.RemovePoint(b)

	if g.HasPoint(b) {
		t.Error("removed point still present")
	}
	if g.NumLines() != 1 {
		t.Fatalf("NumLines = %d, want 1", g.NumLines())
	}
	if _, ok := g.Line(keep); !ok {
		t.Error("unrelated line was removed")
	}
	for id, l := range g.Lines() {
		if l.Touches(b) {
			t.Errorf("line %v still references %v", id, b)
		}
	}
}

func TestGraph_RemovePointsCascadeRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 8))
	for round := 0; round < 50; round++ {
		g := NewGraph()
		var ids []PointID
		for i := 0; i < 20; i++ {
			ids = append(ids, g.AddPoint(Hyp(r.Float64(), r.Float64())))
		}
		for i := 0; i < 40; i++ {
			a, b := ids[r.IntN(len(ids))], ids[r.IntN(len(ids))]
			if a != b {
				g.AddLine(a, b)
			}
		}

		var doomed []PointID
		for _, id := range ids {
			if r.IntN(3) == 0 {
				doomed = append(doomed, id)
			}
		}
		if n := g.RemovePoints(doomed...); n != len(doomed) {
			t.Fatalf("RemovePoints removed %d, want %d", n, len(doomed))
		}

		for id, l := range g.Lines() {
			if !g.HasPoint(l.Start) || !g.HasPoint(l.End) {
				t.Fatalf("round %d: dangling line %v %+v", round, id, l)
			}
		}
		if g.NumPoints() != len(ids)-len(doomed) {
			t.Fatalf("NumPoints = %d, want %d", g.NumPoints(), len(ids)-len(doomed))
		}
	}
}

func TestGraph_RemovePointsIgnoresUnknown(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0, 0))
	if n := g.RemovePoints(a, 42, a); n != 1 {
		t.Errorf("RemovePoints = %d, want 1", n)
	}
	if n := g.RemovePoints(); n != 0 {
		t.Errorf("RemovePoints() = %d, want 0", n)
	}
}

func TestGraph_ConnectedComponent(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.1, 0))
	b := g.AddPoint(Hyp(0.2, 0))
	c := g.AddPoint(Hyp(0.3, 0))
	d := g.AddPoint(Hyp(0.4, 0))
	g.AddLine(a, b)
	g.AddLine(b, c)

	tests := []struct {
		name  string
		start PointID
		want  []PointID
	}{
		{"from A", a, []PointID{a, b, c}},
		{"from C (reverse direction)", c, []PointID{a, b, c}},
		{"isolated D", d, []PointID{d}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ConnectedComponent(tt.start).Sorted()
			if !slices.Equal(got, tt.want) {
				t.Errorf("ConnectedComponent(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestGraph_ConnectedComponentCycle(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.1, 0))
	b := g.AddPoint(Hyp(0.2, 0))
	c := g.AddPoint(Hyp(0.3, 0))
	g.AddLine(a, b)
	g.AddLine(b, c)
	g.AddLine(c, a)
	g.AddLine(a, b) // parallel line

	if got := g.ConnectedComponent(b).Len(); got != 3 {
		t.Errorf("component size = %d, want 3", got)
	}
}

func TestGraph_Components(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.1, 0))
	b := g.AddPoint(Hyp(0.2, 0))
	c := g.AddPoint(Hyp(0.3, 0))
	d := g.AddPoint(Hyp(0.4, 0))
	e := g.AddPoint(Hyp(0.5, 0))
	g.AddLine(a, c)
	g.AddLine(d, b)

	comps := g.Components()
	if len(comps) != 3 {
		t.Fatalf("len(Components) = %d, want 3", len(comps))
	}
	want := [][]PointID{{a, c}, {b, d}, {e}}
	for i, c := range comps {
		if !slices.Equal(c.Sorted(), want[i]) {
			t.Errorf("component %d = %v, want %v", i, c.Sorted(), want[i])
		}
	}
}

func TestGraph_FindPointNear(t *testing.T) {
	g := NewGraph()
	origin := g.AddPoint(Hyp(0, 0))

	if id, ok := g.FindPointNear(Norm(0.02, 0)); !ok || id != origin {
		t.Errorf("FindPointNear(0.02, 0) = %v, %v, want %v", id, ok, origin)
	}
	if id, ok := g.FindPointNear(Norm(0.05, 0)); ok {
		t.Errorf("FindPointNear(0.05, 0) = %v, want none", id)
	}
}

func TestGraph_FindPointNearFirstMatch(t *testing.T) {
	g := NewGraph()
	// Both points lie within threshold of the target; the newer one is closer.
	n1, _ := NormalizedToHyperbolic(Norm(0.5, 0))
	n2, _ := NormalizedToHyperbolic(Norm(0.515, 0))
	older := g.AddPoint(n1)
	g.AddPoint(n2)

	id, ok := g.FindPointNear(Norm(0.52, 0))
	if !ok || id != older {
		t.Errorf("FindPointNear = %v, %v, want the older point %v", id, ok, older)
	}
}

func TestGraph_FindPointNearWithin(t *testing.T) {
	g := NewGraph(WithProximityThreshold(0.1))
	p := g.AddPoint(Hyp(0, 0))

	if g.ProximityThreshold() != 0.1 {
		t.Errorf("ProximityThreshold = %v, want 0.1", g.ProximityThreshold())
	}
	if id, ok := g.FindPointNear(Norm(0.05, 0)); !ok || id != p {
		t.Errorf("configured threshold not used: %v, %v", id, ok)
	}

	tests := []struct {
		name      string
		target    NormalizedPoint
		threshold float64
		wantOK    bool
	}{
		{"inside", Norm(0.01, 0), 0.03, true},
		{"boundary is exclusive", Norm(0.03, 0), 0.03, false},
		{"zero threshold", Norm(0, 0), 0, false},
		{"negative threshold", Norm(0, 0), -1, false},
		{"nan target", Norm(0, math.NaN()), 0.03, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := g.FindPointNearWithin(tt.target, tt.threshold); ok != tt.wantOK {
				t.Errorf("FindPointNearWithin ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestGraph_Clear(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0, 0))
	b := g.AddPoint(Hyp(1, 0))
	g.AddLine(a, b)
	g.Clear()

	if g.NumPoints() != 0 || g.NumLines() != 0 {
		t.Errorf("after Clear: %d points, %d lines", g.NumPoints(), g.NumLines())
	}
	if c := g.AddPoint(Hyp(0, 0)); c == a || c == b {
		t.Errorf("handle %v reused after Clear", c)
	}
}

func TestGraph_ArcUnknown(t *testing.T) {
	g := NewGraph()
	if _, ok := g.Arc(7); ok {
		t.Error("Arc on unknown line returned ok")
	}
	a := g.AddPoint(Hyp(0.2, 0.3))
	if _, ok := g.LineArc(Line{Start: a, End: 99}); ok {
		t.Error("LineArc with missing endpoint returned ok")
	}
}

func TestGraph_TranslatePoints(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.2, 0))
	b := g.AddPoint(Hyp(0, 0.3))

	delta := Norm(0.1, -0.05)
	wantA := HyperbolicToNormalized(Hyp(0.2, 0)).Add(delta)
	if err := g.TranslatePoints(NewPointSet(a), delta); err != nil {
		t.Fatalf("TranslatePoints: %v", err)
	}
	pa, _ := g.Point(a)
	if got := HyperbolicToNormalized(pa); !got.Approx(wantA, 1e-9) {
		t.Errorf("moved point at %v, want %v", got, wantA)
	}
	if pb, _ := g.Point(b); pb != Hyp(0, 0.3) {
		t.Errorf("unselected point moved to %v", pb)
	}
}

func TestGraph_TranslatePointsClampsToRim(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.5, 0))
	if err := g.TranslatePoints(NewPointSet(a), Norm(5, 0)); err != nil {
		t.Fatalf("TranslatePoints: %v", err)
	}
	pa, _ := g.Point(a)
	if !pa.IsFinite() {
		t.Fatalf("point became %v", pa)
	}
	if n := HyperbolicToNormalized(pa); !n.InDisk() {
		t.Errorf("point left the disk: %v", n)
	}
}

func TestGraph_TranslatePointsAtomic(t *testing.T) {
	g := NewGraph()
	a := g.AddPoint(Hyp(0.2, 0))

	err := g.TranslatePoints(NewPointSet(a, 404), Norm(0.1, 0))
	if !errors.Is(err, ErrUnknownPoint) {
		t.Fatalf("err = %v, want ErrUnknownPoint", err)
	}
	if pa, _ := g.Point(a); pa != Hyp(0.2, 0) {
		t.Errorf("point moved despite rejected translate: %v", pa)
	}

	// Landing exactly on the disk center has no hyperbolic preimage.
	n := HyperbolicToNormalized(Hyp(0.2, 0))
	err = g.TranslatePoints(NewPointSet(a), Norm(-n.X, -n.Y))
	if !errors.Is(err, ErrOutsideDisk) {
		t.Fatalf("err = %v, want ErrOutsideDisk", err)
	}
}
