package component

import (
	"github.com/bnema/listnav/internal/domain/autocomplete"
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// Popup is the pattern a combobox drives inside its popup.
type Popup interface {
	OnKeydown(ev entity.KeyEvent) bool
	OnPointerdown(i int, mods entity.Modifiers) bool
	// Filter recomputes the visible items from the full source.
	Filter(query string, strategy entity.MatchStrategy)
	// Source is the full unfiltered collection; values resolve against it.
	Source() collection.Collection
	List() *ListPattern
	Snapshot() ListSnapshot
	Destroy()
}

// listPopup is a flat listbox popup.
type listPopup struct {
	list   *ListPattern
	source collection.Collection
}

func (l *listPopup) OnKeydown(ev entity.KeyEvent) bool {
	return l.list.OnKeydown(ev)
}

func (l *listPopup) OnPointerdown(i int, mods entity.Modifiers) bool {
	return l.list.OnPointerdown(i, mods)
}

func (l *listPopup) Filter(query string, strategy entity.MatchStrategy) {
	l.list.SetCollection(autocomplete.Filter(l.source, query, strategy))
}

func (l *listPopup) Source() collection.Collection { return l.source }
func (l *listPopup) List() *ListPattern            { return l.list }
func (l *listPopup) Snapshot() ListSnapshot        { return l.list.Snapshot() }
func (l *listPopup) Destroy()                      { l.list.Destroy() }
