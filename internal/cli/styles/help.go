package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// DemoKeyMap lists the keys a demo host understands. Only Quit and Help are
// handled by the host; the rest document what the pattern does with them.
type DemoKeyMap struct {
	Move      key.Binding
	Edges     key.Binding
	Select    key.Binding
	Range     key.Binding
	SelectAll key.Binding
	Typeahead key.Binding
	Expand    key.Binding
	Commit    key.Binding
	Escape    key.Binding
	Disable   key.Binding
	Focus     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k DemoKeyMap) ShortHelp() []key.Binding {
	return enabled(k.Move, k.Select, k.Commit, k.Focus, k.Help, k.Quit)
}

// FullHelp returns keybindings for expanded help.
func (k DemoKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		enabled(k.Move, k.Edges, k.Expand),
		enabled(k.Select, k.Range, k.SelectAll, k.Commit),
		enabled(k.Typeahead, k.Escape, k.Disable, k.Focus),
		{k.Help, k.Quit},
	}
}

func enabled(bindings ...key.Binding) []key.Binding {
	out := bindings[:0:0]
	for _, b := range bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

// DefaultDemoKeyMap returns the bindings shared by every demo.
func DefaultDemoKeyMap() DemoKeyMap {
	return DemoKeyMap{
		Move: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "move"),
		),
		Edges: key.NewBinding(
			key.WithKeys("home", "end"),
			key.WithHelp("home/end", "first/last"),
		),
		Select: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Range: key.NewBinding(
			key.WithKeys("shift+up", "shift+down"),
			key.WithHelp("S-↑/↓", "extend"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("C-a", "select all"),
		),
		Typeahead: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a-z", "jump"),
		),
		Expand: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "collapse/expand"),
			key.WithDisabled(),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit"),
			key.WithDisabled(),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/clear"),
			key.WithDisabled(),
		),
		Disable: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("C-d", "toggle disabled"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus in/out"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// TabsKeyMap adapts the demo bindings to a horizontal tab list.
func TabsKeyMap() DemoKeyMap {
	k := DefaultDemoKeyMap()
	k.Move = key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move"))
	k.Range.SetEnabled(false)
	k.SelectAll.SetEnabled(false)
	k.Disable.SetEnabled(false)
	k.Select.SetHelp("space/enter", "activate")
	return k
}

// ComboboxKeyMap adapts the demo bindings to a combobox input.
func ComboboxKeyMap(tree bool) DemoKeyMap {
	k := DefaultDemoKeyMap()
	k.Select.SetEnabled(false)
	k.Range.SetEnabled(false)
	k.SelectAll.SetEnabled(false)
	k.Disable.SetEnabled(false)
	k.Typeahead = key.NewBinding(key.WithKeys("a"), key.WithHelp("type", "filter"))
	k.Commit.SetEnabled(true)
	k.Escape.SetEnabled(true)
	k.Expand.SetEnabled(tree)
	return k
}

// TreeKeyMap adapts the demo bindings to a tree.
func TreeKeyMap() DemoKeyMap {
	k := DefaultDemoKeyMap()
	k.Expand.SetEnabled(true)
	k.Disable.SetEnabled(false)
	k.Commit = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle"))
	return k
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
