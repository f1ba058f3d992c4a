// Package script loads recorded interaction sessions.
//
// A session is a viewport plus an ordered list of device events. Replaying
// it through an interact.Editor rebuilds the graph the user drew. Sessions
// are written in YAML or TOML:
//
//	viewport:
//	  width: 800
//	  height: 800
//	events:
//	  - mode: add
//	  - press: [600, 400]
//	  - press: [400, 200]
//	  - key: escape
package script

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/hyperdisk"
	"github.com/gogpu/hyperdisk/interact"
)

// Format is a session file encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// ErrUnknownFormat is returned for file extensions other than .yaml, .yml
// and .toml.
var ErrUnknownFormat = errors.New("script: unknown session format")

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// file is the on-disk shape shared by both encodings.
type file struct {
	Viewport viewportSpec `yaml:"viewport" toml:"viewport"`
	Events   []eventSpec  `yaml:"events" toml:"events"`
}

type viewportSpec struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

type eventSpec struct {
	Mode    string    `yaml:"mode,omitempty" toml:"mode,omitempty"`
	Key     string    `yaml:"key,omitempty" toml:"key,omitempty"`
	Press   []float64 `yaml:"press,omitempty" toml:"press,omitempty"`
	Drag    []float64 `yaml:"drag,omitempty" toml:"drag,omitempty"`
	Release []float64 `yaml:"release,omitempty" toml:"release,omitempty"`
}

// Session is a decoded recording.
type Session struct {
	Viewport hyperdisk.Viewport
	Events   []interact.Event
}

// Load reads a session file, choosing the decoder from its extension.
func Load(path string) (*Session, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a session from data.
func Parse(data []byte, format Format) (*Session, error) {
	var f file
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("script: decode yaml: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, fmt.Errorf("script: decode toml: %w", err)
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, fmt.Errorf("script: unknown toml key %q", undec[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return f.session()
}

func (f file) session() (*Session, error) {
	vp := hyperdisk.Viewport{X: f.Viewport.X, Y: f.Viewport.Y, Width: f.Viewport.Width, Height: f.Viewport.Height}
	if vp.Empty() {
		return nil, fmt.Errorf("script: viewport must have positive width and height, got %gx%g", vp.Width, vp.Height)
	}

	s := &Session{Viewport: vp, Events: make([]interact.Event, 0, len(f.Events))}
	for i, raw := range f.Events {
		ev, err := raw.event()
		if err != nil {
			return nil, fmt.Errorf("script: event %d: %w", i, err)
		}
		s.Events = append(s.Events, ev)
	}
	return s, nil
}

func (e eventSpec) event() (interact.Event, error) {
	var out []interact.Event

	if e.Mode != "" {
		m, err := interact.ParseMode(e.Mode)
		if err != nil {
			return nil, err
		}
		out = append(out, interact.SetMode{Mode: m})
	}
	if e.Key != "" {
		k, err := interact.ParseKey(e.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, interact.KeyPress{Key: k})
	}
	for _, c := range []struct {
		name  string
		xy    []float64
		build func(hyperdisk.ScreenPoint) interact.Event
	}{
		{"press", e.Press, func(p hyperdisk.ScreenPoint) interact.Event { return interact.Press{At: p} }},
		{"drag", e.Drag, func(p hyperdisk.ScreenPoint) interact.Event { return interact.Drag{At: p} }},
		{"release", e.Release, func(p hyperdisk.ScreenPoint) interact.Event { return interact.Release{At: p} }},
	} {
		if c.xy == nil {
			continue
		}
		if len(c.xy) != 2 {
			return nil, fmt.Errorf("%s needs [x, y], got %d values", c.name, len(c.xy))
		}
		out = append(out, c.build(hyperdisk.Px(c.xy[0], c.xy[1])))
	}

	switch len(out) {
	case 0:
		return nil, errors.New("empty event")
	case 1:
		return out[0], nil
	default:
		return nil, fmt.Errorf("event sets %d actions, want exactly one", len(out))
	}
}

// Replay runs the session through a fresh editor over g and returns it.
func (s *Session) Replay(g *hyperdisk.Graph) (*interact.Editor, error) {
	e := interact.NewEditor(g, s.Viewport)
	if err := e.HandleAll(s.Events); err != nil {
		return e, fmt.Errorf("script: replay: %w", err)
	}
	return e, nil
}
