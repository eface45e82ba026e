package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/ui/component"
)

// RenderTabBar renders a tab list snapshot. The selected tab is filled, the
// active one is underlined when it differs.
func (t *Theme) RenderTabBar(snap component.ListSnapshot, width int) string {
	tabs := make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		style := t.InactiveTab
		switch {
		case it.Disabled:
			style = t.DisabledTab
		case it.Selected:
			style = t.ActiveTab
		}
		if it.Active && !it.Selected {
			style = style.Underline(true)
		}
		tabs = append(tabs, style.Render(it.Label))
	}

	gap := lipgloss.NewStyle().
		Foreground(t.Border).
		Render(" │ ")

	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)
	if snap.TextDirection == entity.DirectionRTL {
		row = lipgloss.JoinHorizontal(lipgloss.Top, reverse(join(tabs, gap))...)
	}
	return t.TabBar.Width(width).Render(row)
}

// RenderPanel renders the visible tab panel, or nothing when every panel is hidden.
func (t *Theme) RenderPanel(panels []component.PanelState, body func(component.PanelState) string, width int) string {
	for _, p := range panels {
		if p.Visible {
			return t.Panel.Width(width).Render(body(p))
		}
	}
	return ""
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

func reverse(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[len(items)-1-i] = s
	}
	return out
}
