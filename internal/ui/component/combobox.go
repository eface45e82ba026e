package component

import (
	"context"

	"github.com/rivo/uniseg"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/autocomplete"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/selection"
	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

// completionKey names the timer that applies the completion selection range.
const completionKey = "completion"

// ComboboxConfig holds combobox options. List configures the popup.
type ComboboxConfig struct {
	FilterMode entity.FilterMode    `mapstructure:"filter_mode" json:"filter_mode"`
	Match      entity.MatchStrategy `mapstructure:"match" json:"match"`
	List       entity.ListConfig    `mapstructure:"list" json:"list"`
}

// DefaultComboboxConfig returns manual filtering by substring over an
// active-descendant popup.
func DefaultComboboxConfig() ComboboxConfig {
	list := entity.DefaultListConfig()
	list.FocusMode = entity.FocusActiveDescendant
	return ComboboxConfig{
		FilterMode: entity.FilterManual,
		Match:      entity.MatchSubstring,
		List:       list,
	}
}

// Normalize replaces unsupported values with their defaults.
func (c ComboboxConfig) Normalize() ComboboxConfig {
	c.FilterMode = c.FilterMode.Normalize()
	c.Match = c.Match.Normalize()
	c.List = c.List.Normalize()
	return c
}

// popupConfig derives the popup list config. Focus stays in the input, the
// popup is single-select and vertical, and manual mode never selects on
// navigation.
func (c ComboboxConfig) popupConfig() entity.ListConfig {
	cfg := c.List
	cfg.Multi = false
	cfg.Orientation = entity.OrientationVertical
	cfg.FocusMode = entity.FocusActiveDescendant
	cfg.SelectionMode = entity.SelectionFollow
	if c.FilterMode == entity.FilterManual {
		cfg.SelectionMode = entity.SelectionExplicit
	}
	return cfg
}

// ComboboxOptions holds configuration for creating a ComboboxPattern.
// Tree, when set, replaces Source with a tree popup. Scheduler is required.
type ComboboxOptions struct {
	ID        string
	Config    ComboboxConfig
	Source    collection.Collection
	Tree      []*entity.TreeNode
	Value     entity.ItemID
	Scheduler port.Scheduler
	Sink      port.FocusSink
	Direction port.DirectionProvider
}

// ComboboxSnapshot is the render state of a combobox.
type ComboboxSnapshot struct {
	ID               string            `json:"id"`
	Open             bool              `json:"open"`
	Text             string            `json:"text"`
	SelectionStart   int               `json:"selectionStart"`
	SelectionEnd     int               `json:"selectionEnd"`
	CompletionSuffix string            `json:"completionSuffix,omitempty"`
	FilterMode       entity.FilterMode `json:"filterMode"`
	ActiveDescendant entity.ItemID     `json:"activeDescendant,omitempty"`
	Value            []entity.ItemID   `json:"value"`
	Tree             bool              `json:"tree,omitempty"`
	// Items is nil until the popup opens for the first time.
	Items []ItemSnapshot `json:"items"`
}

// ComboboxPattern is an input with a filtered popup.
// It is driven from a single UI loop and is not safe for concurrent use.
type ComboboxPattern struct {
	ctx  context.Context
	id   string
	opts ComboboxOptions
	cfg  ComboboxConfig

	timers *mainloop.Timers
	popup  Popup

	open   bool
	text   string
	filter string

	suffix   string
	selStart int
	selEnd   int

	// initial holds the value until the popup exists.
	initial   entity.ItemID
	destroyed bool
}

// NewComboboxPattern creates a closed combobox. The popup is built on first open.
func NewComboboxPattern(ctx context.Context, opts ComboboxOptions) *ComboboxPattern {
	if opts.Source == nil {
		opts.Source = collection.Empty
	}
	c := &ComboboxPattern{
		ctx:     logging.WithPattern(ctx, "combobox", opts.ID),
		id:      opts.ID,
		opts:    opts,
		cfg:     opts.Config.Normalize(),
		timers:  newPatternTimers("combobox", opts.Scheduler),
		initial: opts.Value,
	}
	if label, ok := c.label(opts.Value); ok {
		c.text = label
	}
	c.clearRange()
	return c
}

// ID returns the widget id.
func (c *ComboboxPattern) ID() string {
	return c.id
}

// Config returns the current configuration.
func (c *ComboboxPattern) Config() ComboboxConfig {
	return c.cfg
}

// SetConfig replaces the configuration from the next event on.
func (c *ComboboxPattern) SetConfig(cfg ComboboxConfig) {
	c.cfg = cfg.Normalize()
	if c.popup != nil {
		c.popup.List().SetConfig(c.cfg.popupConfig())
	}
}

// Open reports whether the popup is shown.
func (c *ComboboxPattern) Open() bool {
	return c.open
}

// Text returns the input value.
func (c *ComboboxPattern) Text() string {
	return c.text
}

// SelectionRange returns the input's selected range in grapheme clusters.
// Start equals End when nothing is selected.
func (c *ComboboxPattern) SelectionRange() (int, int) {
	return c.selStart, c.selEnd
}

// CompletionSuffix returns the inline completion currently in the input.
func (c *ComboboxPattern) CompletionSuffix() (string, bool) {
	return c.suffix, c.suffix != ""
}

// Popup returns the popup, or nil before the first open.
func (c *ComboboxPattern) Popup() Popup {
	return c.popup
}

// Value returns the selected item resolved against the full source. Items
// hidden by the current filter are still reported.
func (c *ComboboxPattern) Value() []entity.ItemID {
	if c.popup == nil {
		if c.initial == "" {
			return []entity.ItemID{}
		}
		return selection.NewState(c.initial).Values(c.source())
	}
	return c.popup.List().Selection().Values(c.popup.Source())
}

// OnFocus opens the popup.
func (c *ComboboxPattern) OnFocus() {
	c.show()
}

// OnClick opens the popup.
func (c *ComboboxPattern) OnClick() {
	c.show()
}

// OnKeydown handles a key event on the input and reports whether it was consumed.
// Text keys are left to the input and arrive through OnInput.
func (c *ComboboxPattern) OnKeydown(ev entity.KeyEvent) bool {
	if c.destroyed || c.cfg.List.Disabled {
		return false
	}

	switch ev.Key {
	case entity.KeyArrowDown, entity.KeyArrowUp:
		if !c.open {
			c.show()
			// Opening keeps an existing active item in place.
			if ev.Mods.Alt || c.popup == nil || c.popup.List().ActiveIndex() >= 0 {
				return true
			}
		}
		return c.navigate(ev)

	case entity.KeyEnter:
		if !c.open {
			return false
		}
		if item, ok := c.popup.List().ActiveItem(); ok && item.Enabled() {
			if t, isTree := c.popup.(*TreePattern); isTree && t.IsParent(item.ID) {
				return t.OnKeydown(ev)
			}
			c.commit(item.ID)
			return true
		}
		c.hide()
		return true

	case entity.KeyEscape:
		if c.open {
			if c.suffix != "" {
				c.removeSuffix()
				return true
			}
			c.hide()
			return true
		}
		if c.text == "" && len(c.Value()) == 0 {
			return false
		}
		c.clear()
		return true
	}

	if c.open && c.tree() {
		switch ev.Key {
		case entity.KeyArrowLeft, entity.KeyArrowRight:
			// Expand and collapse only when the caret has nothing to do.
			if c.text == "" {
				return c.popup.OnKeydown(ev)
			}
		}
	}
	return false
}

// OnInput handles an input value change. Deletions filter but never complete.
func (c *ComboboxPattern) OnInput(value string, kind entity.InputKind) {
	if c.destroyed || c.cfg.List.Disabled || c.cfg.List.Readonly {
		return
	}
	c.timers.Cancel(completionKey)
	c.text = value
	c.filter = value
	c.suffix = ""
	c.clearRange()

	if !c.open {
		c.show()
	} else {
		c.popup.Filter(value, c.cfg.Match)
	}

	if c.cfg.FilterMode == entity.FilterManual {
		return
	}

	list := c.popup.List()
	items := list.Items()
	if value == "" {
		list.ClearSelection()
		list.SetActive(-1)
		return
	}

	target := collection.FirstEnabled(items)
	var completion autocomplete.Completion
	completing := false
	if c.cfg.FilterMode == entity.FilterHighlight && kind == entity.InputInsert {
		completion, completing = autocomplete.Complete(items, value)
		if completing {
			target = completion.Index
		}
	}
	if target < 0 {
		list.ClearSelection()
		return
	}
	list.SetActive(target)
	list.Select(items.At(target).ID)

	if !completing {
		return
	}

	// The input shows the full label; the range over its tail lands one tick later.
	c.suffix = completion.Suffix
	c.text = completion.Value
	start, end := completion.Start, completion.End
	c.timers.Schedule(completionKey, 0, func() {
		if !c.open || c.suffix == "" {
			return
		}
		c.selStart, c.selEnd = start, end
	})

	logging.FromContext(c.ctx).Debug().
		Str("typed", value).
		Str("suffix", completion.Suffix).
		Int("start", start).
		Int("end", end).
		Msg("completion scheduled")
}

// OnBlur handles focus leaving the input. relatedInside reports that focus
// moved into the popup, which keeps the combobox open.
func (c *ComboboxPattern) OnBlur(relatedInside bool) {
	if c.destroyed || relatedInside {
		return
	}
	if c.popup == nil {
		c.hide()
		return
	}

	list := c.popup.List()
	switch c.cfg.FilterMode {
	case entity.FilterManual:
		if i := autocomplete.ExactMatch(c.popup.Source(), c.text); i >= 0 {
			c.commit(c.popup.Source().At(i).ID)
			return
		}
		list.ClearSelection()
	default:
		if value := c.Value(); len(value) > 0 {
			c.commit(value[0])
			return
		}
		if item, ok := list.ActiveItem(); ok && item.Enabled() {
			c.commit(item.ID)
			return
		}
	}
	c.hide()
}

// OnPointerdown handles a press on visible popup item i.
func (c *ComboboxPattern) OnPointerdown(i int) bool {
	if c.destroyed || !c.open {
		return false
	}
	items := c.popup.List().Items()
	if !collection.InRange(items, i) {
		return false
	}
	id := items.At(i).ID
	handled := c.popup.OnPointerdown(i, entity.Modifiers{})
	if t, ok := c.popup.(*TreePattern); ok && t.IsParent(id) {
		return handled
	}
	if c.popup.List().Selection().Has(id) && items.At(i).Enabled() {
		c.commit(id)
	}
	return handled
}

// Snapshot returns the render state.
func (c *ComboboxPattern) Snapshot() ComboboxSnapshot {
	snap := ComboboxSnapshot{
		ID:               c.id,
		Open:             c.open,
		Text:             c.text,
		SelectionStart:   c.selStart,
		SelectionEnd:     c.selEnd,
		CompletionSuffix: c.suffix,
		FilterMode:       c.cfg.FilterMode,
		Value:            c.Value(),
		Tree:             c.tree(),
	}
	if c.popup != nil {
		list := c.popup.Snapshot()
		snap.Items = list.Items
		if c.open {
			snap.ActiveDescendant = list.ActiveDescendant
		}
	}
	return snap
}

// Destroy cancels pending timers and releases the popup.
func (c *ComboboxPattern) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	c.open = false
	c.timers.Destroy()
	if c.popup != nil {
		c.popup.Destroy()
	}
	logging.FromContext(c.ctx).Debug().Msg("pattern destroyed")
}

func (c *ComboboxPattern) show() {
	if c.destroyed || c.cfg.List.Disabled || c.open {
		return
	}
	if c.popup == nil {
		c.popup = c.newPopup()
	}
	c.popup.Filter(c.filter, c.cfg.Match)
	c.open = true
	logging.FromContext(c.ctx).Debug().
		Int("items", c.popup.List().Items().Len()).
		Msg("popup opened")
}

func (c *ComboboxPattern) hide() {
	c.timers.Cancel(completionKey)
	if !c.open {
		return
	}
	c.open = false
	c.suffix = ""
	c.clearRange()
	logging.FromContext(c.ctx).Debug().Msg("popup closed")
}

func (c *ComboboxPattern) newPopup() Popup {
	var value []entity.ItemID
	if c.initial != "" {
		value = []entity.ItemID{c.initial}
	}
	if c.tree() {
		return NewTreePattern(c.ctx, TreeOptions{
			ID:        c.id + "-tree",
			Config:    c.cfg.popupConfig(),
			Roots:     c.opts.Tree,
			Value:     value,
			Scheduler: c.opts.Scheduler,
			Sink:      c.opts.Sink,
			Direction: c.opts.Direction,
		})
	}
	list := NewListPattern(c.ctx, ListOptions{
		ID:        c.id + "-listbox",
		Config:    c.cfg.popupConfig(),
		Items:     c.opts.Source,
		Value:     value,
		Scheduler: c.opts.Scheduler,
		Sink:      c.opts.Sink,
		Direction: c.opts.Direction,
	})
	return &listPopup{list: list, source: c.opts.Source}
}

func (c *ComboboxPattern) navigate(ev entity.KeyEvent) bool {
	list := c.popup.List()
	if list.ActiveIndex() < 0 {
		// Entering the popup lands on the nearest end instead of stepping past it.
		i := collection.FirstEnabled(list.Items())
		if ev.Key == entity.KeyArrowUp {
			i = collection.LastEnabled(list.Items())
		}
		if i < 0 {
			return true
		}
		list.SetActive(i)
		if c.cfg.FilterMode != entity.FilterManual {
			list.Select(list.Items().At(i).ID)
		}
		return true
	}
	if c.suffix != "" {
		c.removeSuffix()
	}
	return c.popup.OnKeydown(entity.KeyEvent{Key: ev.Key})
}

func (c *ComboboxPattern) commit(id entity.ItemID) {
	list := c.popup.List()
	list.Select(id)
	list.active = id
	if label, ok := c.label(id); ok {
		c.text = label
	}
	c.filter = ""
	c.hide()
	logging.FromContext(c.ctx).Debug().Str("value", string(id)).Msg("value committed")
}

func (c *ComboboxPattern) clear() {
	c.timers.Cancel(completionKey)
	c.text, c.filter, c.suffix = "", "", ""
	c.initial = ""
	c.clearRange()
	if c.popup != nil {
		c.popup.List().ClearSelection()
		c.popup.List().SetActive(-1)
	}
}

func (c *ComboboxPattern) removeSuffix() {
	c.timers.Cancel(completionKey)
	c.text = c.text[:len(c.text)-len(c.suffix)]
	c.suffix = ""
	c.clearRange()
}

// clearRange collapses the selection to a caret at the end of the text.
func (c *ComboboxPattern) clearRange() {
	n := graphemeLen(c.text)
	c.selStart, c.selEnd = n, n
}

func (c *ComboboxPattern) tree() bool {
	return len(c.opts.Tree) > 0
}

func (c *ComboboxPattern) source() collection.Collection {
	if c.popup != nil {
		return c.popup.Source()
	}
	if c.tree() {
		return treeItems(c.opts.Tree)
	}
	return c.opts.Source
}

func (c *ComboboxPattern) label(id entity.ItemID) (string, bool) {
	if id == "" {
		return "", false
	}
	item, ok := collection.Get(c.source(), id)
	if !ok {
		return "", false
	}
	return item.Label, true
}

func graphemeLen(s string) int {
	return uniseg.GraphemeClusterCount(s)
}
