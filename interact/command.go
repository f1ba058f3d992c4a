package interact

import (
	"fmt"

	"github.com/gogpu/hyperdisk"
)

// Command is a discrete graph mutation produced by the editor.
// Apply runs it against g; commands that create entities record the new
// handle on the command itself.
type Command interface {
	Apply(g *hyperdisk.Graph) error
	String() string
}

// AddPoint inserts a point.
type AddPoint struct {
	At hyperdisk.HyperbolicPoint
	ID hyperdisk.PointID
}

func (c *AddPoint) Apply(g *hyperdisk.Graph) error {
	c.ID = g.AddPoint(c.At)
	return nil
}

func (c *AddPoint) String() string { return fmt.Sprintf("AddPoint(%v) -> %v", c.At, c.ID) }

// AddLine joins two existing points.
type AddLine struct {
	Start, End hyperdisk.PointID
	ID         hyperdisk.LineID
}

func (c *AddLine) Apply(g *hyperdisk.Graph) error {
	if !g.HasPoint(c.Start) || !g.HasPoint(c.End) {
		return fmt.Errorf("add line %v-%v: %w", c.Start, c.End, hyperdisk.ErrUnknownPoint)
	}
	c.ID = g.AddLine(c.Start, c.End)
	return nil
}

func (c *AddLine) String() string {
	return fmt.Sprintf("AddLine(%v, %v) -> %v", c.Start, c.End, c.ID)
}

// RemovePoints deletes points and every attached line.
type RemovePoints struct {
	IDs     []hyperdisk.PointID
	Removed int
}

func (c *RemovePoints) Apply(g *hyperdisk.Graph) error {
	c.Removed = g.RemovePoints(c.IDs...)
	return nil
}

func (c *RemovePoints) String() string { return fmt.Sprintf("RemovePoints(%v)", c.IDs) }

// BeginTranslate marks the start of a drag. It does not change the graph
// but checks that every dragged point exists.
type BeginTranslate struct {
	IDs hyperdisk.PointSet
}

func (c *BeginTranslate) Apply(g *hyperdisk.Graph) error {
	for id := range c.IDs {
		if !g.HasPoint(id) {
			return fmt.Errorf("begin translate %v: %w", id, hyperdisk.ErrUnknownPoint)
		}
	}
	return nil
}

func (c *BeginTranslate) String() string {
	return fmt.Sprintf("BeginTranslate(%v)", c.IDs.Sorted())
}

// CommitTranslate moves points by a normalized-frame offset.
type CommitTranslate struct {
	IDs   hyperdisk.PointSet
	Delta hyperdisk.NormalizedPoint
}

func (c *CommitTranslate) Apply(g *hyperdisk.Graph) error {
	return g.TranslatePoints(c.IDs, c.Delta)
}

func (c *CommitTranslate) String() string {
	return fmt.Sprintf("CommitTranslate(%v, %v)", c.IDs.Sorted(), c.Delta)
}

// ClearGraph empties the graph.
type ClearGraph struct{}

func (c *ClearGraph) Apply(g *hyperdisk.Graph) error {
	g.Clear()
	return nil
}

func (c *ClearGraph) String() string { return "ClearGraph" }
