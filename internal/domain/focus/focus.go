// Package focus decides how the active item is exposed: as the single
// tabbable item (roving tabindex) or as the container's active descendant.
package focus

import (
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// Exposure is the focus contract for one render of a widget.
type Exposure struct {
	Mode entity.FocusMode

	// TabbableIndex is the only item with tabindex 0 in roving mode, else -1.
	TabbableIndex int
	// ContainerTabbable reports whether the container itself takes tab focus.
	ContainerTabbable bool
	// ActiveDescendant is the published active id in active-descendant mode.
	ActiveDescendant entity.ItemID

	// EffectiveActive is the active index after the disabled fallback, or -1
	// when nothing has been made active yet.
	EffectiveActive int
	// Default is where focus lands when nothing is active yet.
	Default int
}

// Default returns the first selected enabled item, else the first enabled
// item, else -1.
func Default(c collection.Collection, isSelected func(entity.ItemID) bool) int {
	if c == nil {
		return -1
	}
	if isSelected != nil {
		for i := 0; i < c.Len(); i++ {
			if item := c.At(i); item.Enabled() && isSelected(item.ID) {
				return i
			}
		}
	}
	return collection.FirstEnabled(c)
}

// Effective resolves active against c. An active index that points at a
// disabled item while skipDisabled is set falls back to the first enabled item.
func Effective(c collection.Collection, active int, cfg entity.ListConfig) int {
	if !collection.InRange(c, active) {
		return -1
	}
	if c.At(active).Disabled && cfg.SkipDisabled {
		return collection.FirstEnabled(c)
	}
	return active
}

// Resolve computes the exposure for active under cfg.
func Resolve(c collection.Collection, active int, isSelected func(entity.ItemID) bool, cfg entity.ListConfig) Exposure {
	cfg = cfg.Normalize()
	exp := Exposure{
		Mode:            cfg.FocusMode,
		TabbableIndex:   -1,
		EffectiveActive: Effective(c, active, cfg),
		Default:         Default(c, isSelected),
	}

	if cfg.Disabled {
		return exp
	}

	if cfg.FocusMode == entity.FocusActiveDescendant {
		exp.ContainerTabbable = true
		if exp.EffectiveActive >= 0 {
			exp.ActiveDescendant = c.At(exp.EffectiveActive).ID
		}
		return exp
	}

	candidate := exp.EffectiveActive
	if candidate < 0 {
		candidate = exp.Default
	}
	exp.TabbableIndex = candidate
	exp.ContainerTabbable = candidate < 0
	return exp
}

// Tabbable reports whether item i takes tab focus under exp.
func (e Exposure) Tabbable(i int) bool {
	return e.Mode == entity.FocusRoving && i >= 0 && i == e.TabbableIndex
}
