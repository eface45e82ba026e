// Package input translates host keyboard and pointer input into engine events.
package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/listnav/internal/domain/entity"
)

var keyByName = map[string]string{
	"escape":     entity.KeyEscape,
	"esc":        entity.KeyEscape,
	"return":     entity.KeyEnter,
	"enter":      entity.KeyEnter,
	"tab":        entity.KeyTab,
	"space":      entity.KeySpace,
	"backspace":  entity.KeyBackspace,
	"delete":     entity.KeyDelete,
	"del":        entity.KeyDelete,
	"home":       entity.KeyHome,
	"end":        entity.KeyEnd,
	"pageup":     entity.KeyPageUp,
	"page_up":    entity.KeyPageUp,
	"pgup":       entity.KeyPageUp,
	"pagedown":   entity.KeyPageDown,
	"page_down":  entity.KeyPageDown,
	"pgdown":     entity.KeyPageDown,
	"left":       entity.KeyArrowLeft,
	"arrowleft":  entity.KeyArrowLeft,
	"right":      entity.KeyArrowRight,
	"arrowright": entity.KeyArrowRight,
	"up":         entity.KeyArrowUp,
	"arrowup":    entity.KeyArrowUp,
	"down":       entity.KeyArrowDown,
	"arrowdown":  entity.KeyArrowDown,
	"plus":       "+",
	"comma":      ",",
	"minus":      "-",
}

// ParseError reports a malformed key or key sequence.
type ParseError struct {
	Input  string
	Pos    int // Index of the offending step in a sequence, or 0
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse key %q (step %d): %s", e.Input, e.Pos, e.Reason)
}

// ParseKey parses a single combination such as "Shift+ArrowDown", "ctrl+a"
// or "space". Uppercase single letters imply Shift, like typing them would.
func ParseKey(s string) (entity.KeyEvent, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return entity.KeyEvent{}, &ParseError{Input: raw, Reason: "empty key"}
	}
	if s == "+" {
		return entity.Key("+"), nil
	}

	var mods entity.Modifiers
	var keyPart string
	for _, part := range strings.Split(s, "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods.Ctrl = true
		case "shift":
			mods.Shift = true
		case "alt", "option":
			mods.Alt = true
		case "meta", "cmd", "super":
			mods.Meta = true
		default:
			if keyPart != "" {
				return entity.KeyEvent{}, &ParseError{Input: raw, Reason: "more than one key"}
			}
			keyPart = part
		}
	}

	// "ctrl++" names the "+" key.
	if keyPart == "" && strings.HasSuffix(s, "++") {
		keyPart = "+"
	}
	if keyPart == "" {
		return entity.KeyEvent{}, &ParseError{Input: raw, Reason: "modifiers without a key"}
	}

	if name, ok := keyByName[strings.ToLower(keyPart)]; ok {
		return entity.KeyEvent{Key: name, Mods: mods}, nil
	}
	if utf8.RuneCountInString(keyPart) != 1 {
		return entity.KeyEvent{}, &ParseError{Input: raw, Reason: fmt.Sprintf("unknown key %q", keyPart)}
	}
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		mods.Shift = true
	}
	return entity.KeyEvent{Key: keyPart, Mods: mods}, nil
}

// ParseKeySequence parses a comma-separated script such as
// `ArrowDown, Shift+ArrowDown, "Appl", Enter`. Quoted steps expand into one
// key event per character.
func ParseKeySequence(s string) ([]entity.KeyEvent, error) {
	steps, err := splitSteps(s)
	if err != nil {
		return nil, err
	}

	events := make([]entity.KeyEvent, 0, len(steps))
	for i, step := range steps {
		if text, ok := quoted(step); ok {
			for _, r := range text {
				events = append(events, entity.Key(string(r)))
			}
			continue
		}
		ev, err := ParseKey(step)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Input, pe.Pos = s, i
			}
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func quoted(step string) (string, bool) {
	if len(step) >= 2 && step[0] == '"' && step[len(step)-1] == '"' {
		return step[1 : len(step)-1], true
	}
	return "", false
}

// splitSteps splits on commas outside double quotes.
func splitSteps(s string) ([]string, error) {
	var steps []string
	var cur strings.Builder
	inQuote := false

	flush := func() {
		if step := strings.TrimSpace(cur.String()); step != "" {
			steps = append(steps, step)
		}
		cur.Reset()
	}

	for _, r := range s {
		switch {
		case r == '"':
			inQuote = !inQuote
			cur.WriteRune(r)
		case r == ',' && !inQuote:
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if inQuote {
		return nil, &ParseError{Input: s, Pos: len(steps), Reason: "unterminated quote"}
	}
	flush()

	if len(steps) == 0 {
		return nil, &ParseError{Input: s, Reason: "empty sequence"}
	}
	return steps, nil
}
