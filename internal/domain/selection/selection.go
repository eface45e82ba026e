package selection

import (
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// Kind enumerates selection intents.
type Kind int

const (
	// SelectOne replaces the selection with the item at Index.
	SelectOne Kind = iota
	// Toggle flips the membership of the item at Index (multi) or selects it (single).
	Toggle
	// ExtendRange unions the anchor→Index range into the selection.
	// From is the pivot used when the anchor is null.
	ExtendRange
	// SelectAll selects every enabled item, or collapses to Index when all are selected.
	SelectAll
	// Clear empties the selection.
	Clear
)

// String returns a human-readable intent name.
func (k Kind) String() string {
	switch k {
	case SelectOne:
		return "select-one"
	case Toggle:
		return "toggle"
	case ExtendRange:
		return "extend-range"
	case SelectAll:
		return "select-all"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}

// Intent is a selection request expressed over collection indexes.
type Intent struct {
	Kind  Kind
	Index int
	From  int
}

// One builds a SelectOne intent.
func One(i int) Intent { return Intent{Kind: SelectOne, Index: i} }

// Flip builds a Toggle intent.
func Flip(i int) Intent { return Intent{Kind: Toggle, Index: i} }

// Range builds an ExtendRange intent from pivot to i.
func Range(from, i int) Intent { return Intent{Kind: ExtendRange, From: from, Index: i} }

// All builds a SelectAll intent with the currently active index.
func All(active int) Intent { return Intent{Kind: SelectAll, Index: active} }

// Compute returns the selection after applying intent to st.
// Invalid targets (out of range, disabled) leave the selection untouched;
// disabled or readonly widgets never change selection.
func Compute(st State, c collection.Collection, intent Intent, cfg entity.ListConfig) State {
	if cfg.Disabled || cfg.Readonly || c == nil {
		return st
	}

	switch intent.Kind {
	case SelectOne:
		return selectOne(st, c, intent.Index)
	case Toggle:
		if !cfg.Multi {
			return selectOne(st, c, intent.Index)
		}
		return toggle(st, c, intent.Index)
	case ExtendRange:
		if !cfg.Multi {
			return selectOne(st, c, intent.Index)
		}
		return extendRange(st, c, intent.From, intent.Index)
	case SelectAll:
		if !cfg.Multi {
			return st
		}
		return selectAll(st, c, intent.Index)
	case Clear:
		return State{}
	default:
		return st
	}
}

// Follow applies follow-mode selection for a navigation that landed on active.
// Explicit mode, readonly and disabled widgets return st unchanged.
func Follow(st State, c collection.Collection, active int, cfg entity.ListConfig) State {
	if !cfg.Follows() {
		return st
	}
	return Compute(st, c, One(active), cfg)
}

// SelectIDs replaces the selection with ids, dropping disabled items.
// Unknown ids are kept unresolved; single-select keeps only the first usable id.
func SelectIDs(c collection.Collection, ids []entity.ItemID, cfg entity.ListConfig) State {
	next := NewState()
	for _, id := range ids {
		if item, ok := collection.Get(c, id); ok && item.Disabled {
			continue
		}
		next.selected[id] = struct{}{}
		if next.anchor == "" {
			next.anchor = id
		}
		if !cfg.Multi {
			break
		}
	}
	return next
}

func selectOne(st State, c collection.Collection, i int) State {
	if !collection.EnabledAt(c, i) {
		return st
	}
	id := c.At(i).ID
	return State{selected: map[entity.ItemID]struct{}{id: {}}, anchor: id}
}

func toggle(st State, c collection.Collection, i int) State {
	if !collection.EnabledAt(c, i) {
		return st
	}
	id := c.At(i).ID
	next := st.clone()
	if next.Has(id) {
		delete(next.selected, id)
	} else {
		next.selected[id] = struct{}{}
	}
	next.anchor = id
	return next
}

func extendRange(st State, c collection.Collection, from, to int) State {
	if !collection.InRange(c, to) {
		return st
	}
	pivot := st.AnchorIndex(c)
	if pivot < 0 {
		pivot = from
	}
	if !collection.InRange(c, pivot) {
		pivot = to
	}

	lo, hi := pivot, to
	if lo > hi {
		lo, hi = hi, lo
	}

	next := st.clone()
	for i := lo; i <= hi; i++ {
		if item := c.At(i); item.Enabled() {
			next.selected[item.ID] = struct{}{}
		}
	}
	next.anchor = c.At(pivot).ID
	return next
}

// selectAll is a two-state toggle re-derived from the current selection:
// anything short of "every enabled item selected" selects them all, and a
// full selection collapses to the active item.
func selectAll(st State, c collection.Collection, active int) State {
	enabled := 0
	missing := false
	for i := 0; i < c.Len(); i++ {
		item := c.At(i)
		if !item.Enabled() {
			continue
		}
		enabled++
		if !st.Has(item.ID) {
			missing = true
		}
	}
	if enabled == 0 {
		return st
	}

	if missing {
		next := st.clone()
		for i := 0; i < c.Len(); i++ {
			if item := c.At(i); item.Enabled() {
				next.selected[item.ID] = struct{}{}
			}
		}
		return next
	}

	collapsed := State{selected: map[entity.ItemID]struct{}{}, anchor: st.anchor}
	if collection.EnabledAt(c, active) {
		collapsed.selected[c.At(active).ID] = struct{}{}
	}
	return collapsed
}
