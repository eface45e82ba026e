package component

import (
	"context"
	"strings"

	"github.com/bnema/listnav/internal/application/port"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/focus"
	"github.com/bnema/listnav/internal/domain/navigation"
	"github.com/bnema/listnav/internal/domain/selection"
	"github.com/bnema/listnav/internal/domain/typeahead"
	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

// ListOptions holds configuration for creating a ListPattern.
// Scheduler is required and must deliver callbacks on the loop that drives
// the pattern; Items and Sink default to empty and no-op.
type ListOptions struct {
	ID        string
	Config    entity.ListConfig
	Items     collection.Collection
	Value     []entity.ItemID
	Scheduler port.Scheduler
	Sink      port.FocusSink
	Direction port.DirectionProvider
}

// ListPattern is the listbox interaction contract: navigation, selection,
// typeahead and focus exposure behind one event surface.
// It is driven from a single UI loop and is not safe for concurrent use.
type ListPattern struct {
	ctx  context.Context
	id   string
	kind string

	cfg   entity.ListConfig
	items collection.Collection
	sink  port.FocusSink
	dir   port.DirectionProvider

	active    entity.ItemID
	sel       selection.State
	timers    *mainloop.Timers
	typeahead *typeahead.Buffer

	focused   bool
	destroyed bool
}

// newPatternTimers panics with the pattern kind when sched is missing.
func newPatternTimers(kind string, sched port.Scheduler) *mainloop.Timers {
	if sched == nil {
		panic("component: " + kind + " pattern requires a Scheduler")
	}
	return mainloop.NewTimers(sched)
}

// NewListPattern creates a listbox pattern. The initial value's first
// enabled item becomes active.
func NewListPattern(ctx context.Context, opts ListOptions) *ListPattern {
	return newListPattern(ctx, "listbox", opts)
}

func newListPattern(ctx context.Context, kind string, opts ListOptions) *ListPattern {
	items := opts.Items
	if items == nil {
		items = collection.Empty
	}
	sink := opts.Sink
	if sink == nil {
		sink = port.NopFocusSink{}
	}

	timers := newPatternTimers(kind, opts.Scheduler)
	p := &ListPattern{
		ctx:       logging.WithPattern(ctx, kind, opts.ID),
		id:        opts.ID,
		kind:      kind,
		cfg:       opts.Config.Normalize(),
		items:     items,
		sink:      sink,
		dir:       opts.Direction,
		timers:    timers,
		typeahead: typeahead.NewBuffer(timers),
	}
	p.sel = selection.SelectIDs(items, opts.Value, p.cfg)
	if i := focus.Default(items, p.sel.Has); i >= 0 && len(opts.Value) > 0 {
		p.active = items.At(i).ID
	}

	logging.FromContext(p.ctx).Debug().
		Int("items", items.Len()).
		Str("focus_mode", string(p.cfg.FocusMode)).
		Str("selection_mode", string(p.cfg.SelectionMode)).
		Bool("multi", p.cfg.Multi).
		Msg("pattern created")
	return p
}

// ID returns the widget id.
func (p *ListPattern) ID() string {
	return p.id
}

// Config returns the configuration in effect for the next event.
func (p *ListPattern) Config() entity.ListConfig {
	cfg := p.cfg
	if p.dir != nil {
		cfg.TextDirection = p.dir.TextDirection()
	}
	return cfg.Normalize()
}

// SetConfig replaces the configuration. Settled selection is never changed
// retroactively; the new config applies from the next event on.
func (p *ListPattern) SetConfig(cfg entity.ListConfig) {
	p.cfg = cfg.Normalize()
}

// Items returns the current collection.
func (p *ListPattern) Items() collection.Collection {
	return p.items
}

// SetCollection swaps the collection. Active item and selection are kept by
// identity and re-resolve against the new collection.
func (p *ListPattern) SetCollection(c collection.Collection) {
	if c == nil {
		c = collection.Empty
	}
	p.items = c
}

// ActiveIndex returns the effective active index, or -1.
func (p *ListPattern) ActiveIndex() int {
	return focus.Effective(p.items, p.items.IndexOf(p.active), p.Config())
}

// ActiveItem returns the effective active item.
func (p *ListPattern) ActiveItem() (entity.Item, bool) {
	i := p.ActiveIndex()
	if i < 0 {
		return entity.Item{}, false
	}
	return p.items.At(i), true
}

// SetActive moves the active item without touching selection.
func (p *ListPattern) SetActive(i int) {
	if !collection.InRange(p.items, i) {
		p.active = ""
		return
	}
	p.moveTo(i)
}

// Selection returns the raw selection state, including unresolved identities.
func (p *ListPattern) Selection() selection.State {
	return p.sel
}

// Value returns the selected ids that resolve in the current collection.
func (p *ListPattern) Value() []entity.ItemID {
	return p.sel.Values(p.items)
}

// Select replaces the selection programmatically. Disabled items are dropped.
func (p *ListPattern) Select(ids ...entity.ItemID) {
	p.sel = selection.SelectIDs(p.items, ids, p.Config())
}

// ClearSelection empties the selection.
func (p *ListPattern) ClearSelection() {
	p.sel = selection.State{}
}

// Exposure returns the focus contract for the current state.
func (p *ListPattern) Exposure() focus.Exposure {
	return focus.Resolve(p.items, p.items.IndexOf(p.active), p.sel.Has, p.Config())
}

// OnFocusIn is called when focus enters the widget. With nothing active yet
// the default item becomes active.
func (p *ListPattern) OnFocusIn() {
	if p.destroyed {
		return
	}
	p.focused = true
	cfg := p.Config()
	if cfg.Disabled || p.ActiveIndex() >= 0 {
		return
	}
	if i := focus.Default(p.items, p.sel.Has); i >= 0 {
		p.moveTo(i)
		p.sel = selection.Follow(p.sel, p.items, i, cfg)
	}
}

// OnFocusOut is called when focus leaves the widget. relatedInside reports
// that focus moved to another element of the same widget.
func (p *ListPattern) OnFocusOut(relatedInside bool) {
	if relatedInside || p.destroyed {
		return
	}
	p.focused = false
	p.typeahead.Reset()
}

// Focused reports whether focus is inside the widget.
func (p *ListPattern) Focused() bool {
	return p.focused
}

// OnKeydown handles a key event and reports whether it was consumed.
func (p *ListPattern) OnKeydown(ev entity.KeyEvent) bool {
	if p.destroyed {
		return false
	}
	cfg := p.Config()
	if cfg.Disabled || p.items.Len() == 0 {
		return false
	}
	log := logging.FromContext(p.ctx)
	mods := ev.Mods

	switch {
	case cfg.Multi && mods.Primary() && !mods.Shift && strings.EqualFold(ev.Key, "a"):
		p.sel = selection.Compute(p.sel, p.items, selection.All(p.ActiveIndex()), cfg)
		log.Debug().Int("selected", len(p.Value())).Msg("select all toggled")
		return true

	case ev.Key == entity.KeySpace && mods.None() && p.typeahead.InProgress():
		return p.typeChar(' ', cfg)

	case ev.Key == entity.KeySpace || ev.Key == entity.KeyEnter:
		return p.selectCurrent(mods, cfg)
	}

	if intent, ok := navigation.IntentForKey(ev.Key, cfg); ok {
		if mods.Alt {
			return false
		}
		return p.navigate(intent, mods, cfg)
	}

	if ch, ok := ev.Printable(); ok {
		return p.typeChar(ch, cfg)
	}
	return false
}

// OnPointerdown handles a press on item i.
func (p *ListPattern) OnPointerdown(i int, mods entity.Modifiers) bool {
	if p.destroyed {
		return false
	}
	cfg := p.Config()
	if cfg.Disabled || !collection.InRange(p.items, i) {
		return false
	}

	item := p.items.At(i)
	if item.Disabled {
		if !cfg.SkipDisabled {
			p.moveTo(i)
		}
		return true
	}

	prev := p.ActiveIndex()
	p.moveTo(i)

	switch {
	case cfg.Multi && mods.Shift:
		p.sel = selection.Compute(p.sel, p.items, selection.Range(pivot(prev, i), i), cfg)
	case cfg.Multi && (mods.Primary() || !cfg.Follows()):
		p.sel = selection.Compute(p.sel, p.items, selection.Flip(i), cfg)
	default:
		p.sel = selection.Compute(p.sel, p.items, selection.One(i), cfg)
	}
	return true
}

// Destroy cancels pending timers. Later events are ignored.
func (p *ListPattern) Destroy() {
	if p.destroyed {
		return
	}
	p.destroyed = true
	p.timers.Destroy()
	logging.FromContext(p.ctx).Debug().Msg("pattern destroyed")
}

// start returns the index navigation steps from: the effective active item,
// else the focus default.
func (p *ListPattern) start() int {
	if i := p.ActiveIndex(); i >= 0 {
		return i
	}
	return focus.Default(p.items, p.sel.Has)
}

func (p *ListPattern) navigate(intent navigation.Intent, mods entity.Modifiers, cfg entity.ListConfig) bool {
	prev := p.ActiveIndex()
	from := prev
	if from < 0 && (intent.Kind == navigation.MoveNext || intent.Kind == navigation.MovePrev) {
		from = p.start()
	}

	next := navigation.Compute(from, p.items, intent, cfg)
	if next < 0 {
		return true
	}

	logging.FromContext(p.ctx).Trace().
		Str("intent", intent.Kind.String()).
		Int("from", prev).
		Int("to", next).
		Msg("navigate")

	p.moveTo(next)

	switch {
	case cfg.Multi && mods.Shift:
		p.sel = selection.Compute(p.sel, p.items, selection.Range(pivot(prev, from), next), cfg)
	case cfg.Multi && mods.Primary():
		// Focus moves, selection stays.
	default:
		p.sel = selection.Follow(p.sel, p.items, next, cfg)
		if !cfg.Follows() && p.items.At(next).Enabled() {
			p.sel = p.sel.WithAnchor(p.items.At(next).ID)
		}
	}
	return true
}

func (p *ListPattern) selectCurrent(mods entity.Modifiers, cfg entity.ListConfig) bool {
	i := p.start()
	if i < 0 {
		return true
	}
	if p.ActiveIndex() < 0 {
		p.moveTo(i)
	}

	var intent selection.Intent
	switch {
	case cfg.Multi && mods.Shift:
		intent = selection.Range(i, i)
	case cfg.Multi && mods.Primary():
		intent = selection.Flip(i)
	case cfg.Multi && !cfg.Follows():
		intent = selection.Flip(i)
	default:
		intent = selection.One(i)
	}
	p.sel = selection.Compute(p.sel, p.items, intent, cfg)
	logging.FromContext(p.ctx).Debug().
		Str("intent", intent.Kind.String()).
		Int("index", i).
		Msg("selection changed")
	return true
}

func (p *ListPattern) typeChar(ch rune, cfg entity.ListConfig) bool {
	index, ok := p.typeahead.Type(p.items, p.ActiveIndex(), ch, cfg)
	if !ok {
		return true
	}
	p.moveTo(index)
	p.sel = selection.Follow(p.sel, p.items, index, cfg)
	return true
}

func (p *ListPattern) moveTo(i int) {
	id := p.items.At(i).ID
	p.active = id
	if p.Config().FocusMode == entity.FocusRoving {
		p.sink.FocusItem(id)
	}
	p.sink.ScrollIntoView(id)
}

// pivot picks the range start when no anchor is set: the previous active
// index, else fallback.
func pivot(prev, fallback int) int {
	if prev >= 0 {
		return prev
	}
	return fallback
}
