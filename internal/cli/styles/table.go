package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/listnav/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// SourceTableColumns returns columns for the sources table.
func SourceTableColumns() []table.Column {
	return []table.Column{
		{Title: "Name", Width: 18},
		{Title: "Kind", Width: 8},
		{Title: "Items", Width: 6},
		{Title: "Description", Width: 44},
	}
}

// RenderSources renders sources as a static table.
func (t *Theme) RenderSources(sources []*entity.Source) string {
	if len(sources) == 0 {
		return t.Subtle.Render("  no item sources")
	}

	rows := make([]table.Row, len(sources))
	width := 0
	for i, src := range sources {
		rows[i] = table.Row{src.Name, string(src.Kind), formatInt(src.Count), src.Description}
	}
	for _, c := range SourceTableColumns() {
		width += c.Width + 2
	}

	tbl := NewStyledTable(t, SourceTableColumns(), rows, width, len(rows)+1)
	return strings.TrimRight(tbl.View(), " \n")
}

// formatInt formats an integer for display.
func formatInt(n int) string {
	return strconv.Itoa(n)
}
