package component

import (
	"context"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/logging"
)

// Tab is a tab item with the id of the panel it controls.
type Tab struct {
	entity.Item
	Panel string
}

// TabsOptions holds configuration for creating a TabsPattern. Scheduler is required.
type TabsOptions struct {
	ID        string
	Config    entity.ListConfig
	Tabs      []Tab
	Value     entity.ItemID
	Scheduler port.Scheduler
	Sink      port.FocusSink
	Direction port.DirectionProvider
}

// PanelState is the visibility of one tab panel.
type PanelState struct {
	ID      string        `json:"id"`
	Tab     entity.ItemID `json:"tab"`
	Visible bool          `json:"visible"`
	Inert   bool          `json:"inert"`
}

// TabsSnapshot is the render state of a tab list and its panels.
type TabsSnapshot struct {
	List   ListSnapshot `json:"list"`
	Panels []PanelState `json:"panels"`
}

// TabsPattern is a single-select list whose selection decides which panel
// is visible.
type TabsPattern struct {
	list   *ListPattern
	panels map[entity.ItemID]string
	order  []entity.ItemID
}

// NewTabsPattern creates a tab list. Without an initial value the first
// enabled tab is selected.
func NewTabsPattern(ctx context.Context, opts TabsOptions) *TabsPattern {
	t := &TabsPattern{}
	items := t.index(opts.Tabs)

	cfg := opts.Config
	cfg.Multi = false

	var value []entity.ItemID
	if opts.Value != "" {
		value = []entity.ItemID{opts.Value}
	}
	t.list = newListPattern(ctx, "tablist", ListOptions{
		ID:        opts.ID,
		Config:    cfg,
		Items:     items,
		Value:     value,
		Scheduler: opts.Scheduler,
		Sink:      opts.Sink,
		Direction: opts.Direction,
	})
	t.ensureSelection()
	return t
}

func (t *TabsPattern) index(tabs []Tab) *collection.View {
	t.panels = make(map[entity.ItemID]string, len(tabs))
	t.order = make([]entity.ItemID, 0, len(tabs))
	items := make([]entity.Item, len(tabs))
	for i, tab := range tabs {
		items[i] = tab.Item
		panel := tab.Panel
		if panel == "" {
			panel = string(tab.ID) + "-panel"
		}
		t.panels[tab.ID] = panel
		t.order = append(t.order, tab.ID)
	}
	return collection.NewView(items)
}

// ensureSelection selects the first enabled tab when nothing valid is selected.
func (t *TabsPattern) ensureSelection() {
	if len(t.list.Value()) > 0 {
		return
	}
	i := collection.FirstEnabled(t.list.Items())
	if i < 0 {
		return
	}
	id := t.list.Items().At(i).ID
	t.list.Select(id)
	t.list.active = id
	logging.FromContext(t.list.ctx).Debug().Str("tab", string(id)).Msg("selected first enabled tab")
}

// List exposes the underlying list pattern.
func (t *TabsPattern) List() *ListPattern {
	return t.list
}

// SetTabs replaces the tabs, keeping the selected tab by identity.
func (t *TabsPattern) SetTabs(tabs []Tab) {
	t.list.SetCollection(t.index(tabs))
	t.ensureSelection()
}

// SetConfig replaces the configuration; multi-select stays off.
func (t *TabsPattern) SetConfig(cfg entity.ListConfig) {
	cfg.Multi = false
	t.list.SetConfig(cfg)
}

// OnKeydown handles a key event and reports whether it was consumed.
func (t *TabsPattern) OnKeydown(ev entity.KeyEvent) bool {
	return t.list.OnKeydown(ev)
}

// OnPointerdown handles a press on tab i.
func (t *TabsPattern) OnPointerdown(i int) bool {
	return t.list.OnPointerdown(i, entity.Modifiers{})
}

// OnFocusIn is called when focus enters the tab list.
func (t *TabsPattern) OnFocusIn() {
	t.list.OnFocusIn()
}

// OnFocusOut is called when focus leaves the tab list.
func (t *TabsPattern) OnFocusOut(relatedInside bool) {
	t.list.OnFocusOut(relatedInside)
}

// Selected returns the selected tab.
func (t *TabsPattern) Selected() (entity.ItemID, bool) {
	value := t.list.Value()
	if len(value) == 0 {
		return "", false
	}
	return value[0], true
}

// Panels reports panel visibility in tab order. Exactly one panel is visible
// whenever a tab is selected; all others are inert.
func (t *TabsPattern) Panels() []PanelState {
	selected, ok := t.Selected()
	panels := make([]PanelState, len(t.order))
	for i, id := range t.order {
		visible := ok && id == selected
		panels[i] = PanelState{ID: t.panels[id], Tab: id, Visible: visible, Inert: !visible}
	}
	return panels
}

// Snapshot returns the render state.
func (t *TabsPattern) Snapshot() TabsSnapshot {
	snap := t.list.Snapshot()
	for i := range snap.Items {
		snap.Items[i].Controls = t.panels[snap.Items[i].ID]
	}
	return TabsSnapshot{List: snap, Panels: t.Panels()}
}

// Destroy releases the pattern.
func (t *TabsPattern) Destroy() {
	t.list.Destroy()
}
