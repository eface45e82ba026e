// Package collection provides the ordered item views that every interaction
// engine navigates over, plus the enabled-index lookups they share.
package collection

import "github.com/bnema/listnav/internal/domain/entity"

// Collection is an ordered, indexable view over items.
// Order defines navigation order and the Home/End targets.
type Collection interface {
	Len() int
	// At returns the item at i. Callers must stay within [0, Len()).
	At(i int) entity.Item
	// IndexOf returns the index of id, or -1 when it is not in the view.
	IndexOf(id entity.ItemID) int
}

// View is an immutable slice-backed Collection.
type View struct {
	items []entity.Item
	index map[entity.ItemID]int
}

// Empty is a collection with no items.
var Empty Collection = NewView(nil)

// NewView copies items into a new View. Later duplicates of an ID are
// reachable by index but IndexOf reports the first occurrence.
func NewView(items []entity.Item) *View {
	v := &View{
		items: make([]entity.Item, len(items)),
		index: make(map[entity.ItemID]int, len(items)),
	}
	copy(v.items, items)
	for i, item := range v.items {
		if _, dup := v.index[item.ID]; !dup {
			v.index[item.ID] = i
		}
	}
	return v
}

// Len implements Collection.
func (v *View) Len() int {
	if v == nil {
		return 0
	}
	return len(v.items)
}

// At implements Collection.
func (v *View) At(i int) entity.Item {
	return v.items[i]
}

// IndexOf implements Collection.
func (v *View) IndexOf(id entity.ItemID) int {
	if v == nil {
		return -1
	}
	if i, ok := v.index[id]; ok {
		return i
	}
	return -1
}

// Items returns a copy of the items in order.
func (v *View) Items() []entity.Item {
	out := make([]entity.Item, v.Len())
	if v != nil {
		copy(out, v.items)
	}
	return out
}

// Filter returns a new View holding the items of c accepted by keep, in order.
func Filter(c Collection, keep func(entity.Item) bool) *View {
	items := make([]entity.Item, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if item := c.At(i); keep(item) {
			items = append(items, item)
		}
	}
	return NewView(items)
}

// Contains reports whether id resolves in c.
func Contains(c Collection, id entity.ItemID) bool {
	return c != nil && c.IndexOf(id) >= 0
}

// Get resolves id to its item.
func Get(c Collection, id entity.ItemID) (entity.Item, bool) {
	if c == nil {
		return entity.Item{}, false
	}
	i := c.IndexOf(id)
	if i < 0 {
		return entity.Item{}, false
	}
	return c.At(i), true
}

// InRange reports whether i indexes c.
func InRange(c Collection, i int) bool {
	return c != nil && i >= 0 && i < c.Len()
}
