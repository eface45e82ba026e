package entity

import "strings"

// Key names follow the DOM KeyboardEvent.key convention.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyPageUp     = "PageUp"
	KeyPageDown   = "PageDown"
)

// Modifiers captures the modifier keys held during an event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Meta  bool
}

// None reports whether no modifier is held.
func (m Modifiers) None() bool {
	return !m.Ctrl && !m.Shift && !m.Alt && !m.Meta
}

// Primary reports whether the platform "command" modifier is held (Ctrl or Meta).
func (m Modifiers) Primary() bool {
	return m.Ctrl || m.Meta
}

// String renders modifiers as a "Ctrl+Shift+" style prefix.
func (m Modifiers) String() string {
	var b strings.Builder
	if m.Ctrl {
		b.WriteString("Ctrl+")
	}
	if m.Alt {
		b.WriteString("Alt+")
	}
	if m.Meta {
		b.WriteString("Meta+")
	}
	if m.Shift {
		b.WriteString("Shift+")
	}
	return b.String()
}

// KeyEvent is a keydown as seen by a pattern.
type KeyEvent struct {
	Key  string
	Mods Modifiers
}

// Key builds an unmodified key event.
func Key(key string) KeyEvent {
	return KeyEvent{Key: key}
}

// String renders the event the way key scripts spell it.
func (e KeyEvent) String() string {
	key := e.Key
	if key == KeySpace {
		key = "Space"
	}
	return e.Mods.String() + key
}

// Printable returns the character carried by the event, if any.
// Modified chords other than Shift never count as text.
func (e KeyEvent) Printable() (rune, bool) {
	if e.Mods.Ctrl || e.Mods.Alt || e.Mods.Meta {
		return 0, false
	}
	runes := []rune(e.Key)
	if len(runes) != 1 {
		return 0, false
	}
	r := runes[0]
	if r < ' ' || r == 0x7f {
		return 0, false
	}
	return r, true
}

// InputKind tells whether a text edit added or removed characters.
type InputKind int

const (
	InputInsert InputKind = iota
	InputDelete
)

// String returns a human-readable kind.
func (k InputKind) String() string {
	switch k {
	case InputInsert:
		return "insert"
	case InputDelete:
		return "delete"
	default:
		return "unknown"
	}
}
