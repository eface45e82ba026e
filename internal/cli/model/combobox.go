package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/ui/component"
	"github.com/bnema/listnav/internal/ui/input"
)

// inputRows is the height of the bordered input box; the popup box adds
// one border row above its first option.
const (
	inputRows    = 3
	popupTopRows = inputRows + 1
)

// ComboboxModel hosts a ComboboxPattern behind an input.LineEditor.
type ComboboxModel struct {
	demoBase
	combo *component.ComboboxPattern
}

// ComboboxSource is either a flat item list or a tree.
type ComboboxSource struct {
	Items []entity.Item
	Tree  []*entity.TreeNode
}

// NewComboboxModel creates a combobox demo.
func NewComboboxModel(opts DemoOptions, src ComboboxSource) *ComboboxModel {
	m := &ComboboxModel{demoBase: newDemoBase(opts, styles.ComboboxKeyMap(src.Tree != nil))}
	m.combo = component.NewComboboxPattern(opts.Ctx, component.ComboboxOptions{
		ID:        "demo-combobox",
		Config:    comboboxConfig(opts.Config),
		Source:    collection.NewView(src.Items),
		Tree:      src.Tree,
		Scheduler: opts.Scheduler,
	})
	m.destroy = m.combo.Destroy
	return m
}

func comboboxConfig(cfg *config.Config) component.ComboboxConfig {
	return component.ComboboxConfig{
		FilterMode: cfg.Combobox.FilterMode,
		Match:      cfg.Combobox.Match,
		List:       cfg.Combobox.List,
	}
}

// Combobox exposes the hosted pattern.
func (m *ComboboxModel) Combobox() *component.ComboboxPattern {
	return m.combo
}

// Init implements tea.Model.
func (m *ComboboxModel) Init() tea.Cmd {
	m.combo.OnFocus()
	return nil
}

// ApplyConfig implements Demo.
func (m *ComboboxModel) ApplyConfig(cfg *config.Config) {
	m.combo.SetConfig(comboboxConfig(cfg))
	m.flash("config reloaded")
}

// Update implements tea.Model.
func (m *ComboboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKey(msg)

	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.handleClick(msg.Y)
	}
	return m, nil
}

func (m *ComboboxModel) handleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyShiftTab:
		m.toggleFocus()
		return
	}
	if !m.focused {
		return
	}
	if msg.Type == tea.KeyBackspace {
		input.Backspace(m.combo)
		return
	}

	for _, ev := range m.keyEvents(msg) {
		if m.combo.OnKeydown(ev) {
			continue
		}
		if r, ok := ev.Printable(); ok {
			input.TypeRune(m.combo, r)
		}
	}
}

func (m *ComboboxModel) toggleFocus() {
	m.focused = !m.focused
	if m.focused {
		m.combo.OnFocus()
	} else {
		m.combo.OnBlur(false)
	}
}

func (m *ComboboxModel) handleClick(y int) {
	if y >= bodyTop && y < bodyTop+inputRows {
		if !m.focused {
			m.focused = true
			m.combo.OnFocus()
			return
		}
		m.combo.OnClick()
		return
	}

	if !m.combo.Open() {
		return
	}
	row := y - bodyTop - popupTopRows
	if row < 0 || row >= m.popupRows() {
		return
	}
	m.focused = true
	m.combo.OnPointerdown(m.offset + row)
}

func (m *ComboboxModel) popupRows() int {
	return max(1, m.rows-popupTopRows-1)
}

// View implements tea.Model.
func (m *ComboboxModel) View() string {
	snap := m.combo.Snapshot()
	input := m.theme.RenderComboInput(snap.Text, snap.SelectionStart, snap.SelectionEnd, m.focused, m.width)

	body := input
	if snap.Open {
		active := -1
		for _, it := range snap.Items {
			if it.Active {
				active = it.Index
				break
			}
		}
		m.offset = styles.ScrollOffset(active, m.offset, m.popupRows(), len(snap.Items))
		body += "\n" + m.theme.Box.Render(m.theme.RenderOptions(snap.Items, m.width-4, m.popupRows(), m.offset))
	}

	status := fmt.Sprintf("value: [%s]  mode: %s", joinIDs(snap.Value), snap.FilterMode)
	if snap.CompletionSuffix != "" {
		status += fmt.Sprintf("  completion: %q", snap.CompletionSuffix)
	}
	return m.frame(body, status)
}

var _ Demo = (*ComboboxModel)(nil)
