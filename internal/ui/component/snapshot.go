package component

import (
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/domain/focus"
)

// ItemSnapshot is the per-item state a host surfaces to assistive technology.
type ItemSnapshot struct {
	Index    int           `json:"index"`
	ID       entity.ItemID `json:"id"`
	Label    string        `json:"label"`
	Selected bool          `json:"selected"`
	Disabled bool          `json:"disabled"`
	Active   bool          `json:"active"`
	Tabbable bool          `json:"tabbable"`
	// Controls links a tab to its panel, or an option to itself.
	Controls string `json:"controls,omitempty"`

	Depth    int  `json:"depth,omitempty"`
	Expanded bool `json:"expanded,omitempty"`
	Parent   bool `json:"parent,omitempty"`
}

// ListSnapshot is the render state of a list pattern.
type ListSnapshot struct {
	ID                string               `json:"id"`
	Role              string               `json:"role"`
	Orientation       entity.Orientation   `json:"orientation"`
	TextDirection     entity.TextDirection `json:"textDirection"`
	FocusMode         entity.FocusMode     `json:"focusMode"`
	Multi             bool                 `json:"multi"`
	Disabled          bool                 `json:"disabled"`
	Readonly          bool                 `json:"readonly"`
	ContainerTabbable bool                 `json:"containerTabbable"`
	TabbableIndex     int                  `json:"tabbableIndex"`
	ActiveDescendant  entity.ItemID        `json:"activeDescendant,omitempty"`
	ActiveIndex       int                  `json:"activeIndex"`
	Value             []entity.ItemID      `json:"value"`
	Typeahead         string               `json:"typeahead,omitempty"`
	Items             []ItemSnapshot       `json:"items"`
}

// Snapshot returns the render state of the pattern.
func (p *ListPattern) Snapshot() ListSnapshot {
	cfg := p.Config()
	exp := p.Exposure()

	return ListSnapshot{
		ID:                p.id,
		Role:              p.kind,
		Orientation:       cfg.Orientation,
		TextDirection:     cfg.TextDirection,
		FocusMode:         cfg.FocusMode,
		Multi:             cfg.Multi,
		Disabled:          cfg.Disabled,
		Readonly:          cfg.Readonly,
		ContainerTabbable: exp.ContainerTabbable,
		TabbableIndex:     exp.TabbableIndex,
		ActiveDescendant:  exp.ActiveDescendant,
		ActiveIndex:       exp.EffectiveActive,
		Value:             p.Value(),
		Typeahead:         p.typeahead.State().Buffer,
		Items:             itemSnapshots(p, exp),
	}
}

func itemSnapshots(p *ListPattern, exp focus.Exposure) []ItemSnapshot {
	items := make([]ItemSnapshot, p.items.Len())
	for i := range items {
		it := p.items.At(i)
		items[i] = ItemSnapshot{
			Index:    i,
			ID:       it.ID,
			Label:    it.Label,
			Selected: it.Enabled() && p.sel.Has(it.ID),
			Disabled: it.Disabled,
			Active:   i == exp.EffectiveActive,
			Tabbable: exp.Tabbable(i),
			Controls: string(it.ID),
		}
	}
	return items
}
