package styles

import (
	"strings"

	"github.com/rivo/uniseg"
)

const caret = "▏"

// RenderComboInput renders combobox text with the grapheme range [start, end)
// highlighted as a pending completion. An empty range shows a caret there.
func (t *Theme) RenderComboInput(text string, start, end int, focused bool, width int) string {
	var before, selected, after strings.Builder

	g := uniseg.NewGraphemes(text)
	for i := 0; g.Next(); i++ {
		switch {
		case i < start:
			before.WriteString(g.Str())
		case i < end:
			selected.WriteString(g.Str())
		default:
			after.WriteString(g.Str())
		}
	}

	var body string
	switch {
	case !focused:
		body = t.Normal.Render(text)
	case selected.Len() > 0:
		body = t.Normal.Render(before.String()) + t.Completion.Render(selected.String()) + t.Normal.Render(after.String())
	default:
		body = t.Normal.Render(before.String()) + t.Highlight.Render(caret) + t.Normal.Render(after.String())
	}

	style := t.Input
	if focused {
		style = t.InputFocused
	}
	// The border adds two cells outside the width.
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(body)
}
