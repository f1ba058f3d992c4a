package interact

import (
	"fmt"

	"github.com/gogpu/hyperdisk"
)

// Mode is the editing mode that decides what a press does.
type Mode int

const (
	// ModeSelect toggles points in and out of the selection.
	ModeSelect Mode = iota
	// ModeTranslate drags the selection, or the pressed point's component.
	ModeTranslate
	// ModeAdd places points and chains them with lines.
	ModeAdd
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSelect:
		return "select"
	case ModeTranslate:
		return "translate"
	case ModeAdd:
		return "add"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "select":
		return ModeSelect, nil
	case "translate":
		return ModeTranslate, nil
	case "add":
		return ModeAdd, nil
	}
	return 0, fmt.Errorf("interact: unknown mode %q", s)
}

// Key is a keyboard action.
type Key int

const (
	// KeyDelete removes the selected points.
	KeyDelete Key = iota + 1
	// KeyEscape drops the pending point, the selection and any drag.
	KeyEscape
	// KeySelectComponent grows the selection to whole connected components.
	KeySelectComponent
	// KeyClear empties the graph.
	KeyClear
)

var keyNames = map[Key]string{
	KeyDelete:          "delete",
	KeyEscape:          "escape",
	KeySelectComponent: "component",
	KeyClear:           "clear",
}

// String returns the key name.
func (k Key) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// ParseKey returns the key named s.
func ParseKey(s string) (Key, error) {
	for k, name := range keyNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("interact: unknown key %q", s)
}

// Event is a device input delivered to an Editor.
type Event interface {
	isEvent()
}

// Press is a pointer press at a pixel position.
type Press struct{ At hyperdisk.ScreenPoint }

// Drag is pointer motion with the button held.
type Drag struct{ At hyperdisk.ScreenPoint }

// Release is the end of a press.
type Release struct{ At hyperdisk.ScreenPoint }

// SetMode switches the editing mode.
type SetMode struct{ Mode Mode }

// KeyPress is a keyboard action.
type KeyPress struct{ Key Key }

func (Press) isEvent()    {}
func (Drag) isEvent()     {}
func (Release) isEvent()  {}
func (SetMode) isEvent()  {}
func (KeyPress) isEvent() {}
