package mainloop

import (
	"sync"
	"time"

	"github.com/bnema/listnav/internal/application/port"
)

// Timers is a keyed group of cancellable callbacks on top of a scheduler.
// Scheduling under a pending key replaces it. Cancel is idempotent, and a
// callback that fires after Cancel or Destroy is swallowed.
type Timers struct {
	mu        sync.Mutex
	backend   port.Scheduler
	entries   map[string]*timerEntry
	gen       uint64
	destroyed bool
}

type timerEntry struct {
	gen   uint64
	timer port.Timer
}

func NewTimers(backend port.Scheduler) *Timers {
	if backend == nil {
		panic("mainloop.NewTimers: scheduler cannot be nil")
	}
	return &Timers{
		backend: backend,
		entries: make(map[string]*timerEntry),
	}
}

// Schedule runs fn after d under key, replacing any pending timer for key.
func (t *Timers) Schedule(key string, d time.Duration, fn func()) {
	if key == "" || fn == nil {
		return
	}

	t.mu.Lock()
	if t.destroyed {
		t.mu.Unlock()
		return
	}
	if old, ok := t.entries[key]; ok {
		old.timer.Stop()
		delete(t.entries, key)
	}
	t.gen++
	entry := &timerEntry{gen: t.gen}
	t.entries[key] = entry
	t.mu.Unlock()

	timer := t.backend.AfterFunc(d, func() {
		t.mu.Lock()
		current, ok := t.entries[key]
		if t.destroyed || !ok || current.gen != entry.gen {
			t.mu.Unlock()
			return
		}
		delete(t.entries, key)
		t.mu.Unlock()

		fn()
	})

	t.mu.Lock()
	entry.timer = timer
	if t.entries[key] != entry {
		// Replaced or canceled while the backend was arming it.
		timer.Stop()
	}
	t.mu.Unlock()
}

// Cancel stops the timer under key. Unknown or fired keys are a no-op.
func (t *Timers) Cancel(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if entry, ok := t.entries[key]; ok {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(t.entries, key)
	}
}

// Pending reports whether a timer is armed under key.
func (t *Timers) Pending(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[key]
	return ok
}

// Now returns the backend clock.
func (t *Timers) Now() time.Time {
	return t.backend.Now()
}

// Destroy cancels every pending timer and turns later scheduling into a no-op.
func (t *Timers) Destroy() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.destroyed = true
	for key, entry := range t.entries {
		if entry.timer != nil {
			entry.timer.Stop()
		}
		delete(t.entries, key)
	}
}
