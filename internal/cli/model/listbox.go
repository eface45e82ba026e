package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/ui/component"
	"github.com/bnema/listnav/internal/ui/input"
)

// bodyTop is the screen row of the first body line.
const bodyTop = 2

// ListboxModel hosts a ListPattern. Items live in an arena so the demo can
// flip their disabled state while the pattern is running.
type ListboxModel struct {
	demoBase
	arena *collection.Arena
	list  *component.ListPattern
}

// NewListboxModel creates a listbox demo over items.
func NewListboxModel(opts DemoOptions, items []entity.Item) *ListboxModel {
	m := &ListboxModel{
		demoBase: newDemoBase(opts, styles.DefaultDemoKeyMap()),
		arena:    collection.NewArena(items...),
	}
	m.list = component.NewListPattern(opts.Ctx, component.ListOptions{
		ID:        "demo-listbox",
		Config:    opts.Config.Listbox,
		Items:     m.arena.Snapshot(),
		Scheduler: opts.Scheduler,
	})
	m.hover = input.NewHoverDebouncer(opts.Ctx, m.timers, 0, m.list.SetActive)
	m.destroy = m.list.Destroy
	return m
}

// List exposes the hosted pattern.
func (m *ListboxModel) List() *component.ListPattern {
	return m.list
}

// Init implements tea.Model.
func (m *ListboxModel) Init() tea.Cmd {
	m.list.OnFocusIn()
	return nil
}

// ApplyConfig implements Demo.
func (m *ListboxModel) ApplyConfig(cfg *config.Config) {
	m.list.SetConfig(cfg.Listbox)
	m.flash("config reloaded")
}

// Update implements tea.Model.
func (m *ListboxModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			m.toggleFocus()
			return m, nil
		}
		if !m.focused {
			return m, nil
		}
		if key.Matches(msg, m.keys.Disable) {
			m.toggleDisabled()
			return m, nil
		}
		for _, ev := range m.keyEvents(msg) {
			m.list.OnKeydown(ev)
		}

	case tea.MouseMsg:
		if !m.mouse {
			return m, nil
		}
		i, ok := m.rowAt(msg.Y)
		switch {
		case !ok:
			m.hover.Leave()
		case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
			if !m.focused {
				m.toggleFocus()
			}
			m.list.OnPointerdown(i, mouseMods(msg))
		case msg.Action == tea.MouseActionMotion:
			m.hover.Enter(i)
		}
	}
	return m, nil
}

func (m *ListboxModel) toggleFocus() {
	m.focused = !m.focused
	if m.focused {
		m.list.OnFocusIn()
	} else {
		m.list.OnFocusOut(false)
	}
}

// toggleDisabled flips the disabled flag of the active item and hands the
// pattern a fresh view. Active and selected IDs are re-resolved by the pattern.
func (m *ListboxModel) toggleDisabled() {
	i := m.list.ActiveIndex()
	if !collection.InRange(m.list.Items(), i) {
		return
	}
	item := m.list.Items().At(i)
	m.arena.SetDisabled(item.ID, !item.Disabled)
	m.list.SetCollection(m.arena.Snapshot())

	state := "disabled"
	if item.Disabled {
		state = "enabled"
	}
	m.flash(fmt.Sprintf("%s %s", item.ID, state))
}

func (m *ListboxModel) rowAt(y int) (int, bool) {
	row := y - bodyTop
	if row < 0 || row >= m.rows {
		return 0, false
	}
	i := m.offset + row
	return i, i < m.list.Items().Len()
}

// View implements tea.Model.
func (m *ListboxModel) View() string {
	snap := m.list.Snapshot()
	m.offset = styles.ScrollOffset(snap.ActiveIndex, m.offset, m.rows, len(snap.Items))

	body := m.theme.RenderOptions(snap.Items, m.width, m.rows, m.offset)
	return m.frame(body, listStatus(snap))
}

func listStatus(snap component.ListSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "value: [%s]", joinIDs(snap.Value))
	if snap.Multi {
		b.WriteString("  multi")
	}
	b.WriteString("  " + string(snap.FocusMode))
	if snap.Typeahead != "" {
		fmt.Fprintf(&b, "  typeahead: %q", snap.Typeahead)
	}
	return b.String()
}

func joinIDs(ids []entity.ItemID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = string(id)
	}
	return strings.Join(parts, ", ")
}

var _ Demo = (*ListboxModel)(nil)
