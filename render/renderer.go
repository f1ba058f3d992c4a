// Package render draws a hyperdisk graph with the gg 2D library.
//
// The renderer is a read-only consumer of the core: every frame it walks
// the graph's points and lines, resolves each line into an Arc and projects
// the result into the viewport.
package render

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/hyperdisk"
)

// maxArcRadiusPx is the pixel radius above which an arc is drawn as a
// straight segment between its endpoints.
const maxArcRadiusPx = 1e6

// Scene is what a single frame shows.
type Scene struct {
	Graph *hyperdisk.Graph

	// Selection is drawn in the selected color.
	Selection hyperdisk.PointSet

	// Pending is drawn with a ring when non-zero.
	Pending hyperdisk.PointID

	// Preview overrides the position of points being dragged.
	Preview map[hyperdisk.PointID]hyperdisk.NormalizedPoint
}

// position returns where id is drawn in the normalized frame.
func (s Scene) position(id hyperdisk.PointID) (hyperdisk.NormalizedPoint, bool) {
	if n, ok := s.Preview[id]; ok {
		return n, true
	}
	p, ok := s.Graph.Point(id)
	if !ok {
		return hyperdisk.NormalizedPoint{}, false
	}
	return hyperdisk.HyperbolicToNormalized(p), true
}

// Renderer draws scenes into gg contexts.
type Renderer struct {
	opts options
	vp   hyperdisk.Viewport
	face text.Face
}

// New returns a renderer. Label fonts are loaded only when labels are on.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("render: invalid size %dx%d", o.width, o.height)
	}

	r := &Renderer{
		opts: o,
		vp:   hyperdisk.NewViewport(float64(o.width), float64(o.height)),
	}
	if o.labels {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("render: load label font: %w", err)
		}
		r.face = source.Face(o.fontSize)
	}
	return r, nil
}

// Viewport returns the pixel rectangle the disk is drawn in. Interaction
// code should interpret device input in the same viewport.
func (r *Renderer) Viewport() hyperdisk.Viewport { return r.vp }

// Render draws s into a new context. The caller owns the context.
func (r *Renderer) Render(s Scene) (*gg.Context, error) {
	dc := gg.NewContext(r.opts.width, r.opts.height)
	if err := r.Draw(dc, s); err != nil {
		_ = dc.Close()
		return nil, err
	}
	return dc, nil
}

// WritePNG renders s and encodes it as PNG to w.
func (r *Renderer) WritePNG(w io.Writer, s Scene) error {
	dc, err := r.Render(s)
	if err != nil {
		return err
	}
	defer dc.Close()
	return dc.EncodePNG(w)
}

// SavePNG renders s into a PNG file at path.
func (r *Renderer) SavePNG(path string, s Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := r.WritePNG(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Draw paints s into dc: background, disk, geodesics, then points.
func (r *Renderer) Draw(dc *gg.Context, s Scene) error {
	if s.Graph == nil {
		return fmt.Errorf("render: scene has no graph")
	}
	th := r.opts.theme

	dc.ClearWithColor(th.Background)

	c := r.vp.Center()
	radius := r.vp.Scale()
	dc.SetColor(th.Disk.Color())
	dc.DrawCircle(c.X, c.Y, radius)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: disk: %w", err)
	}
	dc.SetColor(th.Boundary.Color())
	dc.SetLineWidth(1.5)
	dc.DrawCircle(c.X, c.Y, radius)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: boundary: %w", err)
	}

	dc.SetColor(th.Line.Color())
	dc.SetLineWidth(r.opts.lineWidth)
	for id, l := range s.Graph.Lines() {
		if err := r.drawLine(dc, s, id, l); err != nil {
			return err
		}
	}

	for id := range s.Graph.Points() {
		if err := r.drawPoint(dc, s, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawLine(dc *gg.Context, s Scene, id hyperdisk.LineID, l hyperdisk.Line) error {
	u, ok := s.position(l.Start)
	if !ok {
		return nil
	}
	v, ok := s.position(l.End)
	if !ok {
		return nil
	}

	arc, err := hyperdisk.ResolveArc(u, v)
	if err != nil {
		hyperdisk.Logger().Warn("render: line skipped", slog.String("line", id.String()), slog.Any("err", err))
		return nil
	}

	if arc.Straight || arc.Radius*r.vp.Scale() > maxArcRadiusPx {
		from := hyperdisk.NormalizedToScreen(arc.From, r.vp)
		to := hyperdisk.NormalizedToScreen(arc.To, r.vp)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
	} else {
		// Pixel space flips Y, which negates angles and reverses the sweep.
		center := hyperdisk.NormalizedToScreen(arc.Center, r.vp)
		sweep := arc.Sweep()
		a1 := -(arc.StartAngle + sweep)
		a2 := -arc.StartAngle
		dc.DrawArc(center.X, center.Y, arc.Radius*r.vp.Scale(), a1, a2)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: line %v: %w", id, err)
	}
	return nil
}

func (r *Renderer) drawPoint(dc *gg.Context, s Scene, id hyperdisk.PointID) error {
	n, ok := s.position(id)
	if !ok {
		return nil
	}
	th := r.opts.theme
	p := hyperdisk.NormalizedToScreen(n, r.vp)

	// Markers shrink toward the rim the way the disk contracts distances.
	size := r.opts.pointRadius * math.Max(0.35, 1-n.LengthSquared())

	col := th.Point
	if s.Selection.Contains(id) {
		col = th.Selected
	}
	dc.SetColor(col.Color())
	dc.DrawCircle(p.X, p.Y, size)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("render: point %v: %w", id, err)
	}

	if id == s.Pending {
		dc.SetColor(th.Pending.Color())
		dc.SetLineWidth(1.5)
		dc.DrawCircle(p.X, p.Y, size+3)
		err := dc.Stroke()
		dc.SetLineWidth(r.opts.lineWidth)
		if err != nil {
			return fmt.Errorf("render: pending ring: %w", err)
		}
	}

	if r.face != nil {
		dc.SetFont(r.face)
		dc.SetColor(th.Label.Color())
		dc.DrawString(id.String(), p.X+size+2, p.Y-size-2)
	}
	return nil
}
