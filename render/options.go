package render

import "github.com/gogpu/gg"

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := render.New(render.WithSize(1024, 1024), render.WithLabels(true))
type Option func(*options)

// Theme holds the colors used for each element.
type Theme struct {
	Background gg.RGBA
	Disk       gg.RGBA
	Boundary   gg.RGBA
	Line       gg.RGBA
	Point      gg.RGBA
	Selected   gg.RGBA
	Pending    gg.RGBA
	Label      gg.RGBA
}

// DefaultTheme returns the built-in dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: gg.Hex("#1e1e24"),
		Disk:       gg.Hex("#f4f1ea"),
		Boundary:   gg.Hex("#3a3a46"),
		Line:       gg.Hex("#2b59c3"),
		Point:      gg.Hex("#1b1b1f"),
		Selected:   gg.Hex("#e4572e"),
		Pending:    gg.Hex("#29a35a"),
		Label:      gg.Hex("#5c5c66"),
	}
}

// options holds optional configuration for Renderer creation.
type options struct {
	width, height int
	lineWidth     float64
	pointRadius   float64
	labels        bool
	fontSize      float64
	theme         Theme
}

func defaultOptions() options {
	return options{
		width:       800,
		height:      800,
		lineWidth:   2,
		pointRadius: 4,
		fontSize:    12,
		theme:       DefaultTheme(),
	}
}

// WithSize sets the output image size in pixels.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithLineWidth sets the stroke width of geodesics.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithPointRadius sets the radius of point markers in pixels.
func WithPointRadius(r float64) Option {
	return func(o *options) {
		if r > 0 {
			o.pointRadius = r
		}
	}
}

// WithLabels draws each point's handle next to it.
func WithLabels(on bool) Option {
	return func(o *options) {
		o.labels = on
	}
}

// WithFontSize sets the label size in points.
func WithFontSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.fontSize = size
		}
	}
}

// WithTheme replaces the color theme.
func WithTheme(t Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}
