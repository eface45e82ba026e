package model

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/ui/component"
	"github.com/bnema/listnav/internal/ui/input"
)

// TreeModel hosts a standalone TreePattern.
type TreeModel struct {
	demoBase
	tree *component.TreePattern
}

// NewTreeModel creates a tree demo over roots.
func NewTreeModel(opts DemoOptions, roots []*entity.TreeNode) *TreeModel {
	m := &TreeModel{demoBase: newDemoBase(opts, styles.TreeKeyMap())}
	m.tree = component.NewTreePattern(opts.Ctx, component.TreeOptions{
		ID:        "demo-tree",
		Config:    opts.Config.Listbox,
		Roots:     roots,
		Scheduler: opts.Scheduler,
	})
	m.hover = input.NewHoverDebouncer(opts.Ctx, m.timers, 0, m.tree.List().SetActive)
	m.destroy = m.tree.Destroy
	return m
}

// Tree exposes the hosted pattern.
func (m *TreeModel) Tree() *component.TreePattern {
	return m.tree
}

// Init implements tea.Model.
func (m *TreeModel) Init() tea.Cmd {
	m.tree.List().OnFocusIn()
	return nil
}

// ApplyConfig implements Demo. Trees stay vertical whatever the listbox says.
func (m *TreeModel) ApplyConfig(cfg *config.Config) {
	next := cfg.Listbox
	next.Orientation = entity.OrientationVertical
	m.tree.List().SetConfig(next)
	m.flash("config reloaded")
}

// Update implements tea.Model.
func (m *TreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			m.focused = !m.focused
			if m.focused {
				m.tree.List().OnFocusIn()
			} else {
				m.tree.List().OnFocusOut(false)
			}
			return m, nil
		}
		if !m.focused {
			return m, nil
		}
		for _, ev := range m.keyEvents(msg) {
			m.tree.OnKeydown(ev)
		}

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		row := msg.Y - bodyTop
		i := m.offset + row
		if row < 0 || row >= m.rows || i >= m.tree.List().Items().Len() {
			m.hover.Leave()
			return m, nil
		}
		switch {
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			m.focused = true
			m.tree.OnPointerdown(i, mouseMods(msg))
		case msg.Action == tea.MouseActionMotion:
			m.hover.Enter(i)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *TreeModel) View() string {
	snap := m.tree.Snapshot()
	m.offset = styles.ScrollOffset(snap.ActiveIndex, m.offset, m.rows, len(snap.Items))

	body := m.theme.RenderOptions(snap.Items, m.width, m.rows, m.offset)
	status := fmt.Sprintf("value: [%s]  visible: %d", joinIDs(snap.Value), len(snap.Items))
	return m.frame(body, status)
}

var _ Demo = (*TreeModel)(nil)
