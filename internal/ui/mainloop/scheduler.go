package mainloop

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/listnav/internal/application/port"
)

// ClockScheduler fires callbacks on the wall clock and hands them back to the
// UI loop through post, so callbacks never run concurrently with event handling.
type ClockScheduler struct {
	post func(func())
}

var _ port.Scheduler = (*ClockScheduler)(nil)

// NewClockScheduler returns a scheduler that delivers callbacks through post.
func NewClockScheduler(post func(func())) *ClockScheduler {
	if post == nil {
		panic("mainloop.NewClockScheduler: post function cannot be nil")
	}
	return &ClockScheduler{post: post}
}

// AfterFunc implements port.Scheduler.
func (s *ClockScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	return time.AfterFunc(d, func() { s.post(fn) })
}

// Now implements port.Scheduler.
func (s *ClockScheduler) Now() time.Time {
	return time.Now()
}

// ManualScheduler is a deterministic scheduler whose clock only moves on
// Advance. Callbacks run synchronously inside Advance and Flush.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

var _ port.Scheduler = (*ManualScheduler)(nil)

type manualTimer struct {
	s       *ManualScheduler
	due     time.Time
	seq     uint64
	fn      func()
	stopped bool
}

// Stop implements port.Timer.
func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// NewManualScheduler starts the clock at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// AfterFunc implements port.Scheduler.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) port.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d < 0 {
		d = 0
	}
	s.seq++
	t := &manualTimer{s: s, due: s.now.Add(d), seq: s.seq, fn: fn}
	s.pending = append(s.pending, t)
	return t
}

// Now implements port.Scheduler.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Pending returns the number of timers that have neither fired nor stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped {
			n++
		}
	}
	return n
}

// Advance moves the clock by d, firing due timers in due order. Timers
// scheduled by a callback fire too when they fall inside the window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		t := s.popDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	s.mu.Lock()
	if s.now.Before(target) {
		s.now = target
	}
	s.mu.Unlock()
}

// Flush fires every timer due at the current instant, such as zero-delay ticks.
func (s *ManualScheduler) Flush() {
	s.Advance(0)
}

func (s *ManualScheduler) popDue(target time.Time) *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.pending[:0]
	for _, t := range s.pending {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.pending = live

	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due.Equal(s.pending[j].due) {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due.Before(s.pending[j].due)
	})

	if len(s.pending) == 0 || s.pending[0].due.After(target) {
		return nil
	}
	t := s.pending[0]
	s.pending = s.pending[1:]
	t.stopped = true
	if t.due.After(s.now) {
		s.now = t.due
	}
	return t
}
