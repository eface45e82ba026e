package model

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/ui/component"
)

const panelPreview = 6

// TabPage is one tab and the lines shown in its panel.
type TabPage struct {
	Item  entity.Item
	Lines []string
}

// TabsModel hosts a TabsPattern.
type TabsModel struct {
	demoBase
	tabs  *component.TabsPattern
	pages map[entity.ItemID]TabPage
	order []entity.ItemID
}

// NewTabsModel creates a tabs demo with one tab per page.
func NewTabsModel(opts DemoOptions, pages []TabPage) *TabsModel {
	m := &TabsModel{
		demoBase: newDemoBase(opts, styles.TabsKeyMap()),
		pages:    make(map[entity.ItemID]TabPage, len(pages)),
	}
	// The tab bar needs room for every label on one row.
	m.width = max(m.width, 60)

	tabs := make([]component.Tab, len(pages))
	for i, p := range pages {
		tabs[i] = component.Tab{Item: p.Item}
		m.pages[p.Item.ID] = p
		m.order = append(m.order, p.Item.ID)
	}
	m.tabs = component.NewTabsPattern(opts.Ctx, component.TabsOptions{
		ID:        "demo-tabs",
		Config:    opts.Config.Tabs,
		Tabs:      tabs,
		Scheduler: opts.Scheduler,
	})
	m.destroy = m.tabs.Destroy
	return m
}

// Tabs exposes the hosted pattern.
func (m *TabsModel) Tabs() *component.TabsPattern {
	return m.tabs
}

// Init implements tea.Model.
func (m *TabsModel) Init() tea.Cmd {
	m.tabs.OnFocusIn()
	return nil
}

// ApplyConfig implements Demo.
func (m *TabsModel) ApplyConfig(cfg *config.Config) {
	m.tabs.SetConfig(cfg.Tabs)
	m.flash("config reloaded")
}

// Update implements tea.Model.
func (m *TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.handleCommon(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyTab || msg.Type == tea.KeyShiftTab {
			m.focused = !m.focused
			if m.focused {
				m.tabs.OnFocusIn()
			} else {
				m.tabs.OnFocusOut(false)
			}
			return m, nil
		}
		if !m.focused {
			return m, nil
		}
		for _, ev := range m.keyEvents(msg) {
			m.tabs.OnKeydown(ev)
		}

	case tea.MouseMsg:
		if !m.mouse || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.tabAt(msg.X, msg.Y); ok {
			m.focused = true
			m.tabs.OnPointerdown(i)
		}
	}
	return m, nil
}

// tabAt maps a click to a tab index using the rendered tab widths:
// two cells of padding each side and a three-cell separator.
func (m *TabsModel) tabAt(x, y int) (int, bool) {
	if y != bodyTop {
		return 0, false
	}
	labels := make([]string, len(m.order))
	for i, id := range m.order {
		labels[i] = m.pages[id].Item.Label
	}
	if m.tabs.List().Config().TextDirection == entity.DirectionRTL {
		x = tabRowWidth(labels) - 1 - x
	}

	pos := 0
	for i, label := range labels {
		w := runewidth.StringWidth(label) + 4
		if x >= pos && x < pos+w {
			return i, true
		}
		pos += w + 3
	}
	return 0, false
}

func tabRowWidth(labels []string) int {
	w := 0
	for i, label := range labels {
		if i > 0 {
			w += 3
		}
		w += runewidth.StringWidth(label) + 4
	}
	return w
}

// View implements tea.Model.
func (m *TabsModel) View() string {
	snap := m.tabs.Snapshot()
	bar := m.theme.RenderTabBar(snap.List, m.width)
	panel := m.theme.RenderPanel(snap.Panels, m.panelBody, m.width)

	status := fmt.Sprintf("selected: [%s]  panel: %s", joinIDs(snap.List.Value), visiblePanel(snap.Panels))
	return m.frame(bar+"\n"+panel, status)
}

func (m *TabsModel) panelBody(p component.PanelState) string {
	page := m.pages[p.Tab]
	lines := page.Lines
	more := ""
	if len(lines) > panelPreview {
		more = fmt.Sprintf("\n… %d more", len(lines)-panelPreview)
		lines = lines[:panelPreview]
	}
	return strings.Join(lines, "\n") + more
}

func visiblePanel(panels []component.PanelState) string {
	for _, p := range panels {
		if p.Visible {
			return p.ID
		}
	}
	return "none"
}

var _ Demo = (*TabsModel)(nil)
