package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// PathEntry is one labelled location printed by `config path`.
type PathEntry struct {
	Label string
	Path  string
	Icon  string
}

// RenderPaths renders labelled file locations.
func (r *ConfigRenderer) RenderPaths(entries []PathEntry) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Normal.Width(10)
	pathStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			iconStyle.Render(e.Icon),
			labelStyle.Render(e.Label),
			pathStyle.Render(e.Path),
		))
	}
	return sb.String()
}

// RenderSection renders a titled block of key = value lines.
func (r *ConfigRenderer) RenderSection(title string, pairs [][2]string) string {
	keyStyle := r.theme.Highlight
	valueStyle := r.theme.Normal

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s\n", r.theme.Title.Render("["+title+"]")))
	for _, kv := range pairs {
		sb.WriteString(fmt.Sprintf("    %s = %s\n", keyStyle.Render(kv[0]), valueStyle.Render(kv[1])))
	}
	return sb.String()
}

// RenderSuccess renders a one-line success message.
func (r *ConfigRenderer) RenderSuccess(msg string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconCheck), msg)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
