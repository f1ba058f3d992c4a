package interact

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/hyperdisk"
)

// dragState tracks an in-flight translate.
type dragState struct {
	ids    hyperdisk.PointSet
	anchor hyperdisk.NormalizedPoint
	delta  hyperdisk.NormalizedPoint
}

// Editor is the interaction state machine in front of a Graph.
//
// It owns the UI state (mode, selection, pending point, drag) and turns
// events into Commands, which it applies to the graph immediately and
// records in its journal. The graph itself knows nothing about modes.
//
// Editor is not safe for concurrent use.
type Editor struct {
	g       *hyperdisk.Graph
	vp      hyperdisk.Viewport
	mode    Mode
	sel     hyperdisk.PointSet
	pending hyperdisk.PointID
	drag    *dragState
	journal []Command
}

// NewEditor returns an editor in select mode operating on g, with device
// input interpreted in vp.
func NewEditor(g *hyperdisk.Graph, vp hyperdisk.Viewport) *Editor {
	return &Editor{
		g:   g,
		vp:  vp,
		sel: make(hyperdisk.PointSet),
	}
}

// Graph returns the edited graph.
func (e *Editor) Graph() *hyperdisk.Graph { return e.g }

// Viewport returns the viewport used to interpret pixel events.
func (e *Editor) Viewport() hyperdisk.Viewport { return e.vp }

// SetViewport changes the viewport, e.g. after a window resize.
func (e *Editor) SetViewport(vp hyperdisk.Viewport) { e.vp = vp }

// Mode returns the current mode.
func (e *Editor) Mode() Mode { return e.mode }

// Selection returns a copy of the selected handles.
func (e *Editor) Selection() hyperdisk.PointSet { return e.sel.Clone() }

// Pending returns the point the next line in add mode starts from.
func (e *Editor) Pending() (hyperdisk.PointID, bool) {
	return e.pending, e.pending != 0
}

// Dragging reports whether a translate is in progress.
func (e *Editor) Dragging() bool { return e.drag != nil }

// Journal returns the commands applied so far, oldest first.
func (e *Editor) Journal() []Command { return e.journal }

// Preview returns the displayed position of every point being dragged.
//
// Offsets are applied in the normalized frame, exactly as CommitTranslate
// will apply them, so the preview matches the committed result. It is
// empty when no drag is in progress.
func (e *Editor) Preview() map[hyperdisk.PointID]hyperdisk.NormalizedPoint {
	if e.drag == nil {
		return nil
	}
	out := make(map[hyperdisk.PointID]hyperdisk.NormalizedPoint, len(e.drag.ids))
	for id := range e.drag.ids {
		p, ok := e.g.Point(id)
		if !ok {
			continue
		}
		out[id] = hyperdisk.OffsetInDisk(hyperdisk.HyperbolicToNormalized(p), e.drag.delta)
	}
	return out
}

// Handle feeds one event to the state machine. Events that do not address
// anything (a press outside the disk, a release with no drag) are
// no-ops. An error means a command was rejected by the graph; the graph is
// left unchanged by that command.
func (e *Editor) Handle(ev Event) error {
	switch ev := ev.(type) {
	case SetMode:
		e.setMode(ev.Mode)
		return nil
	case KeyPress:
		return e.key(ev.Key)
	case Press:
		return e.press(ev.At)
	case Drag:
		e.dragTo(ev.At)
		return nil
	case Release:
		return e.release(ev.At)
	default:
		return fmt.Errorf("interact: unsupported event %T", ev)
	}
}

// HandleAll feeds events in order and stops at the first error.
func (e *Editor) HandleAll(events []Event) error {
	for i, ev := range events {
		if err := e.Handle(ev); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

func (e *Editor) exec(cmd Command) error {
	if err := cmd.Apply(e.g); err != nil {
		return err
	}
	e.journal = append(e.journal, cmd)
	hyperdisk.Logger().Debug("interact: command applied", slog.String("cmd", cmd.String()))
	return nil
}

func (e *Editor) setMode(m Mode) {
	if m == e.mode {
		return
	}
	e.drag = nil
	if m != ModeAdd {
		e.pending = 0
	}
	e.mode = m
}

func (e *Editor) key(k Key) error {
	switch k {
	case KeyDelete:
		if e.sel.Len() == 0 {
			return nil
		}
		cmd := &RemovePoints{IDs: e.sel.Sorted()}
		if err := e.exec(cmd); err != nil {
			return err
		}
		if e.sel.Contains(e.pending) {
			e.pending = 0
		}
		e.sel = make(hyperdisk.PointSet)
		e.drag = nil
	case KeyEscape:
		e.pending = 0
		e.sel = make(hyperdisk.PointSet)
		e.drag = nil
	case KeySelectComponent:
		grown := e.sel.Clone()
		for id := range e.sel {
			grown.Union(e.g.ConnectedComponent(id))
		}
		e.sel = grown
	case KeyClear:
		if err := e.exec(&ClearGraph{}); err != nil {
			return err
		}
		e.pending = 0
		e.sel = make(hyperdisk.PointSet)
		e.drag = nil
	default:
		return fmt.Errorf("interact: unsupported key %v", k)
	}
	return nil
}

func (e *Editor) press(at hyperdisk.ScreenPoint) error {
	n, ok := hyperdisk.ScreenToNormalized(at, e.vp)
	if !ok {
		return nil
	}
	hit, onPoint := e.g.FindPointNear(n)

	switch e.mode {
	case ModeAdd:
		return e.pressAdd(n, hit, onPoint)
	case ModeSelect:
		if !onPoint {
			e.sel = make(hyperdisk.PointSet)
			return nil
		}
		if e.sel.Contains(hit) {
			e.sel.Remove(hit)
		} else {
			e.sel.Add(hit)
		}
	case ModeTranslate:
		if !onPoint {
			return nil
		}
		ids := e.g.ConnectedComponent(hit)
		if e.sel.Contains(hit) {
			ids = e.sel.Clone()
		}
		if err := e.exec(&BeginTranslate{IDs: ids}); err != nil {
			return err
		}
		e.drag = &dragState{ids: ids, anchor: n}
	}
	return nil
}

func (e *Editor) pressAdd(n hyperdisk.NormalizedPoint, hit hyperdisk.PointID, onPoint bool) error {
	target := hit
	if !onPoint {
		h, ok := hyperdisk.NormalizedToHyperbolic(n)
		if !ok {
			return nil
		}
		add := &AddPoint{At: h}
		if err := e.exec(add); err != nil {
			return err
		}
		target = add.ID
	}

	if e.pending != 0 && e.pending != target && e.g.HasPoint(e.pending) {
		if err := e.exec(&AddLine{Start: e.pending, End: target}); err != nil {
			return err
		}
	}
	e.pending = target
	return nil
}

func (e *Editor) dragTo(at hyperdisk.ScreenPoint) {
	if e.drag == nil {
		return
	}
	// Motion outside the disk keeps the last valid offset.
	if n, ok := hyperdisk.ScreenToNormalized(at, e.vp); ok {
		e.drag.delta = n.Sub(e.drag.anchor)
	}
}

func (e *Editor) release(at hyperdisk.ScreenPoint) error {
	if e.drag == nil {
		return nil
	}
	e.dragTo(at)
	d := e.drag
	e.drag = nil

	if d.delta == (hyperdisk.NormalizedPoint{}) {
		return nil
	}
	return e.exec(&CommitTranslate{IDs: d.ids, Delta: d.delta})
}
