package hyperdisk

import (
	"math"
	"testing"
)

func TestNormalizedPoint_Arithmetic(t *testing.T) {
	p, q := Norm(0.3, 0.4), Norm(-0.1, 0.2)

	if got := p.Add(q); !got.Approx(Norm(0.2, 0.6), 1e-15) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(q); !got.Approx(Norm(0.4, 0.2), 1e-15) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(2); got != Norm(0.6, 0.8) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.Length(); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("Length = %v, want 0.5", got)
	}
	if got := p.Cross(q); math.Abs(got-0.1) > 1e-15 {
		t.Errorf("Cross = %v, want 0.1", got)
	}
	if got := p.Dot(q); math.Abs(got-0.05) > 1e-15 {
		t.Errorf("Dot = %v, want 0.05", got)
	}
}

func TestNormalizedPoint_InDisk(t *testing.T) {
	tests := []struct {
		p    NormalizedPoint
		want bool
	}{
		{Norm(0, 0), true},
		{Norm(0.6, 0.79), true},
		{Norm(1, 0), false},
		{Norm(0.8, 0.8), false},
	}
	for _, tt := range tests {
		if got := tt.p.InDisk(); got != tt.want {
			t.Errorf("%v.InDisk() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestHyperbolicPoint_IsFinite(t *testing.T) {
	if !Hyp(1e300, -1e300).IsFinite() {
		t.Error("large finite point reported non-finite")
	}
	if Hyp(math.Inf(-1), 0).IsFinite() || Hyp(0, math.NaN()).IsFinite() {
		t.Error("non-finite point reported finite")
	}
}

func TestPointSet(t *testing.T) {
	s := NewPointSet(3, 1, 2, 1)
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	s.Remove(2)
	s.Add(5)
	if s.Contains(2) || !s.Contains(5) {
		t.Errorf("unexpected membership: %v", s.Sorted())
	}

	c := s.Clone()
	c.Union(NewPointSet(9))
	if s.Contains(9) {
		t.Error("Clone shares storage with original")
	}
	if got := c.Sorted(); len(got) != 4 || got[0] != 1 || got[3] != 9 {
		t.Errorf("Sorted = %v", got)
	}
}
