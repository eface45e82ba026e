package collection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/bnema/listnav/internal/domain/entity"
)

// Arena is the host-owned registry of item descriptors keyed by stable ID.
// Insertion order is navigation order. Patterns never see the arena
// directly; they receive Snapshot or Filter views of it.
type Arena struct {
	items *orderedmap.OrderedMap[entity.ItemID, entity.Item]
}

// NewArena creates an arena pre-populated with items.
func NewArena(items ...entity.Item) *Arena {
	a := &Arena{items: orderedmap.New[entity.ItemID, entity.Item]()}
	for _, item := range items {
		a.Upsert(item)
	}
	return a
}

// Len returns the number of registered items.
func (a *Arena) Len() int {
	return a.items.Len()
}

// Upsert registers item, keeping the original position when the ID exists.
// Returns true when the item is new.
func (a *Arena) Upsert(item entity.Item) bool {
	_, existed := a.items.Set(item.ID, item)
	return !existed
}

// Remove drops id. Returns false when it was not registered.
func (a *Arena) Remove(id entity.ItemID) bool {
	_, ok := a.items.Delete(id)
	return ok
}

// Get returns the item registered under id.
func (a *Arena) Get(id entity.ItemID) (entity.Item, bool) {
	return a.items.Get(id)
}

// SetDisabled toggles the disabled flag of id.
func (a *Arena) SetDisabled(id entity.ItemID, disabled bool) bool {
	item, ok := a.items.Get(id)
	if !ok {
		return false
	}
	item.Disabled = disabled
	a.items.Set(id, item)
	return true
}

// MoveBefore repositions id ahead of mark. Returns false if either is missing.
func (a *Arena) MoveBefore(id, mark entity.ItemID) bool {
	return a.items.MoveBefore(id, mark) == nil
}

// Snapshot returns an immutable view over every registered item.
func (a *Arena) Snapshot() *View {
	items := make([]entity.Item, 0, a.items.Len())
	for pair := a.items.Oldest(); pair != nil; pair = pair.Next() {
		items = append(items, pair.Value)
	}
	return NewView(items)
}

// Filter returns a view over the registered items accepted by keep.
func (a *Arena) Filter(keep func(entity.Item) bool) *View {
	items := make([]entity.Item, 0, a.items.Len())
	for pair := a.items.Oldest(); pair != nil; pair = pair.Next() {
		if keep(pair.Value) {
			items = append(items, pair.Value)
		}
	}
	return NewView(items)
}
