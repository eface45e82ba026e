package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/listnav/internal/ui/component"
)

// ScrollOffset returns the first visible row so that active stays within a
// window of height rows, moving the window as little as possible.
func ScrollOffset(active, offset, height, total int) int {
	if height <= 0 || total <= height {
		return 0
	}
	if active >= 0 {
		if active < offset {
			offset = active
		} else if active >= offset+height {
			offset = active - height + 1
		}
	}
	if offset > total-height {
		offset = total - height
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// RenderOptions renders rows [offset, offset+height) of items, one line each,
// padded to width cells.
func (t *Theme) RenderOptions(items []component.ItemSnapshot, width, height, offset int) string {
	if len(items) == 0 {
		return t.Subtle.Render("  (no items)")
	}
	end := len(items)
	if height > 0 && offset+height < end {
		end = offset + height
	}

	lines := make([]string, 0, end-offset)
	for _, it := range items[offset:end] {
		lines = append(lines, t.renderOption(it, width))
	}
	if offset > 0 || end < len(items) {
		lines = append(lines, t.Subtle.Render(scrollHint(offset, end, len(items))))
	}
	return strings.Join(lines, "\n")
}

func (t *Theme) renderOption(it component.ItemSnapshot, width int) string {
	cursor := markerNone
	if it.Active {
		cursor = markerActive
	}
	check := markerNone
	if it.Selected {
		check = markerSelected
	}

	prefix := cursor + check + " " + strings.Repeat("  ", it.Depth)
	if it.Parent {
		if it.Expanded {
			prefix += markerExpanded + " "
		} else {
			prefix += markerCollapse + " "
		}
	} else if it.Depth > 0 {
		prefix += markerLeaf + " "
	}

	label := Truncate(it.Label, width-runewidth.StringWidth(prefix))
	row := prefix + label
	if pad := width - runewidth.StringWidth(row); pad > 0 {
		row += strings.Repeat(" ", pad)
	}

	style := t.Option
	switch {
	case it.Disabled:
		style = t.OptionDisabled
	case it.Selected:
		style = t.OptionSelected
	}
	if it.Active {
		style = style.Background(t.SurfaceVariant)
	}
	return style.Render(row)
}

// Truncate shortens s to at most width terminal cells, ending with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func scrollHint(from, to, total int) string {
	return lipgloss.NewStyle().PaddingLeft(3).Render(
		formatInt(from+1) + "-" + formatInt(to) + " of " + formatInt(total))
}
