package input

import (
	"github.com/rivo/uniseg"

	"github.com/bnema/listnav/internal/domain/entity"
)

// LineEditor is the text surface of a combobox input. The caret is always
// at the end of the text; a non-empty selection range is a pending
// completion suffix.
type LineEditor interface {
	Text() string
	SelectionRange() (int, int)
	OnInput(value string, kind entity.InputKind)
}

// TypeRune inserts r, replacing a pending completion range.
func TypeRune(e LineEditor, r rune) {
	text := e.Text()
	if start, end := e.SelectionRange(); start < end {
		text = GraphemePrefix(text, start)
	}
	e.OnInput(text+string(r), entity.InputInsert)
}

// Backspace removes the completion range, or else the last grapheme.
// It reports false when there was nothing to delete.
func Backspace(e LineEditor) bool {
	text := e.Text()
	if text == "" {
		return false
	}
	start, end := e.SelectionRange()
	if start < end {
		text = GraphemePrefix(text, start)
	} else {
		text = GraphemePrefix(text, uniseg.GraphemeClusterCount(text)-1)
	}
	e.OnInput(text, entity.InputDelete)
	return true
}

// GraphemePrefix returns the first n grapheme clusters of s.
func GraphemePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	g := uniseg.NewGraphemes(s)
	end := 0
	for i := 0; i < n && g.Next(); i++ {
		_, end = g.Positions()
	}
	return s[:end]
}
