package typeahead

import (
	"time"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// Scheduler runs keyed callbacks after a delay. Scheduling under a pending
// key replaces it; Cancel on an idle key is a no-op.
type Scheduler interface {
	Schedule(key string, d time.Duration, fn func())
	Cancel(key string)
	Now() time.Time
}

// ResetKey is the timer key used for the buffer reset.
const ResetKey = "typeahead.reset"

// Buffer owns a typeahead State and clears it once the delay elapses
// without new input.
type Buffer struct {
	sched Scheduler
	state State
}

// NewBuffer returns an empty buffer driven by sched.
func NewBuffer(sched Scheduler) *Buffer {
	return &Buffer{sched: sched}
}

// State returns the current buffer state.
func (b *Buffer) State() State {
	return b.state
}

// InProgress reports whether a search is running, so a Space keystroke
// belongs to the search rather than to selection.
func (b *Buffer) InProgress() bool {
	return b.state.Buffer != ""
}

// Type feeds ch into the search and re-arms the reset timer on a match.
func (b *Buffer) Type(c collection.Collection, active int, ch rune, cfg entity.ListConfig) (int, bool) {
	next, index, ok := OnCharacter(b.state, c, active, ch, cfg, b.sched.Now())
	if !ok {
		return -1, false
	}
	b.state = next

	delay := cfg.TypeaheadDelay
	if delay <= 0 {
		delay = entity.DefaultTypeaheadDelay
	}
	b.sched.Schedule(ResetKey, delay, b.Reset)
	return index, true
}

// Reset clears the buffer and cancels any pending reset.
func (b *Buffer) Reset() {
	b.state = State{}
	b.sched.Cancel(ResetKey)
}
