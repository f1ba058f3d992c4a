package hyperdisk

import "slices"

// PointSet is an unordered set of point handles.
type PointSet map[PointID]struct{}

// NewPointSet returns a set holding ids.
func NewPointSet(ids ...PointID) PointSet {
	s := make(PointSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id.
func (s PointSet) Add(id PointID) { s[id] = struct{}{} }

// Remove deletes id.
func (s PointSet) Remove(id PointID) { delete(s, id) }

// Contains reports whether id is in the set.
func (s PointSet) Contains(id PointID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of handles.
func (s PointSet) Len() int { return len(s) }

// Union adds every handle of other to s.
func (s PointSet) Union(other PointSet) {
	for id := range other {
		s[id] = struct{}{}
	}
}

// Clone returns a copy of s.
func (s PointSet) Clone() PointSet {
	out := make(PointSet, len(s))
	out.Union(s)
	return out
}

// Sorted returns the handles in ascending order, which is also insertion
// order.
func (s PointSet) Sorted() []PointID {
	out := make([]PointID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
