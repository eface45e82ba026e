package input

import (
	"context"
	"time"

	"github.com/bnema/listnav/internal/logging"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

const (
	// HoverFocusDelay is the delay before pointer hover moves the active item.
	HoverFocusDelay = 150 * time.Millisecond

	hoverKey = "hover.focus"
)

// HoverCallback is called with the item index the pointer settled on.
type HoverCallback func(index int)

// HoverDebouncer turns pointer hover into an active-item change once the
// pointer rests on an item. A new hover replaces the pending one and leaving
// cancels it.
type HoverDebouncer struct {
	ctx    context.Context
	timers *mainloop.Timers
	delay  time.Duration
	onRest HoverCallback
	last   int
}

// NewHoverDebouncer creates a debouncer that schedules through timers.
func NewHoverDebouncer(ctx context.Context, timers *mainloop.Timers, delay time.Duration, onRest HoverCallback) *HoverDebouncer {
	if delay <= 0 {
		delay = HoverFocusDelay
	}
	return &HoverDebouncer{ctx: ctx, timers: timers, delay: delay, onRest: onRest, last: -1}
}

// Enter records the pointer over item index.
func (h *HoverDebouncer) Enter(index int) {
	if index == h.last && h.timers.Pending(hoverKey) {
		return
	}
	h.last = index

	h.timers.Schedule(hoverKey, h.delay, func() {
		logging.FromContext(h.ctx).Trace().Int("index", index).Msg("hover settled")
		if h.onRest != nil {
			h.onRest(index)
		}
	})
}

// Leave cancels any pending hover focus.
func (h *HoverDebouncer) Leave() {
	h.last = -1
	h.timers.Cancel(hoverKey)
}
