// Package selection computes selection-set transitions for list patterns.
package selection

import (
	"sort"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// State is an immutable selection: a set of identities plus the range anchor.
// Identities that are not in the current collection are kept but unresolved,
// so a filtered-out selection comes back when its item reappears.
type State struct {
	selected map[entity.ItemID]struct{}
	anchor   entity.ItemID
}

// NewState returns a state selecting ids, without an anchor.
func NewState(ids ...entity.ItemID) State {
	s := State{selected: make(map[entity.ItemID]struct{}, len(ids))}
	for _, id := range ids {
		s.selected[id] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set, resolved or not.
func (s State) Has(id entity.ItemID) bool {
	_, ok := s.selected[id]
	return ok
}

// Len returns the size of the set including unresolved identities.
func (s State) Len() int {
	return len(s.selected)
}

// IDs returns every identity in the set, sorted for stable output.
func (s State) IDs() []entity.ItemID {
	ids := make([]entity.ItemID, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Anchor returns the range anchor identity, or "" when there is none.
func (s State) Anchor() entity.ItemID {
	return s.anchor
}

// AnchorIndex resolves the anchor against c; -1 means null.
func (s State) AnchorIndex(c collection.Collection) int {
	if s.anchor == "" || c == nil {
		return -1
	}
	return c.IndexOf(s.anchor)
}

// WithAnchor returns a copy of s anchored at id.
func (s State) WithAnchor(id entity.ItemID) State {
	next := s.clone()
	next.anchor = id
	return next
}

// Values returns the selected items that resolve in c and are enabled,
// in ascending collection order.
func (s State) Values(c collection.Collection) []entity.ItemID {
	if c == nil || len(s.selected) == 0 {
		return []entity.ItemID{}
	}
	indexes := make([]int, 0, len(s.selected))
	for id := range s.selected {
		if i := c.IndexOf(id); i >= 0 && c.At(i).Enabled() {
			indexes = append(indexes, i)
		}
	}
	sort.Ints(indexes)
	out := make([]entity.ItemID, len(indexes))
	for k, i := range indexes {
		out[k] = c.At(i).ID
	}
	return out
}

// Equal reports whether a and b select the same identities with the same anchor.
func Equal(a, b State) bool {
	if a.anchor != b.anchor || len(a.selected) != len(b.selected) {
		return false
	}
	for id := range a.selected {
		if !b.Has(id) {
			return false
		}
	}
	return true
}

func (s State) clone() State {
	next := State{
		selected: make(map[entity.ItemID]struct{}, len(s.selected)+1),
		anchor:   s.anchor,
	}
	for id := range s.selected {
		next.selected[id] = struct{}{}
	}
	return next
}
