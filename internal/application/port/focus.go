package port

//go:generate mockgen -source=focus.go -destination=mocks/mock_focus.go -package=mocks

import "github.com/bnema/listnav/internal/domain/entity"

// FocusSink receives focus side effects from interaction patterns.
// Hosts move real focus (roving mode) and keep the item visible.
type FocusSink interface {
	FocusItem(id entity.ItemID)
	ScrollIntoView(id entity.ItemID)
}

// DirectionProvider reports the text direction the host currently renders in.
type DirectionProvider interface {
	TextDirection() entity.TextDirection
}

// NopFocusSink drops focus requests, for hosts that render from snapshots only.
type NopFocusSink struct{}

func (NopFocusSink) FocusItem(entity.ItemID)      {}
func (NopFocusSink) ScrollIntoView(entity.ItemID) {}
