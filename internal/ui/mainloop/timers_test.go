package mainloop

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManual() *ManualScheduler {
	return NewManualScheduler(time.Unix(1000, 0))
}

func TestTimersReplaceInsteadOfStack(t *testing.T) {
	sched := newManual()
	timers := NewTimers(sched)

	var fired []string
	timers.Schedule("reset", 500*time.Millisecond, func() { fired = append(fired, "first") })
	sched.Advance(300 * time.Millisecond)
	timers.Schedule("reset", 500*time.Millisecond, func() { fired = append(fired, "second") })

	sched.Advance(300 * time.Millisecond)
	assert.Empty(t, fired, "replaced timer must not fire")

	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"second"}, fired)
	assert.False(t, timers.Pending("reset"))
}

func TestTimersCancelIsIdempotent(t *testing.T) {
	sched := newManual()
	timers := NewTimers(sched)

	fired := false
	timers.Schedule("completion", 0, func() { fired = true })
	timers.Cancel("completion")
	timers.Cancel("completion")
	timers.Cancel("never-scheduled")

	sched.Flush()
	assert.False(t, fired)
	assert.Equal(t, 0, sched.Pending())

	timers.Schedule("completion", 0, func() { fired = true })
	sched.Flush()
	assert.True(t, fired)
	timers.Cancel("completion")
}

func TestTimersDestroySwallowsLateCallbacks(t *testing.T) {
	sched := newManual()
	timers := NewTimers(sched)

	fired := false
	timers.Schedule("reset", time.Second, func() { fired = true })
	timers.Destroy()
	timers.Schedule("reset", time.Second, func() { fired = true })

	sched.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.False(t, timers.Pending("reset"))
}

func TestTimersNowFollowsBackend(t *testing.T) {
	sched := newManual()
	timers := NewTimers(sched)

	start := timers.Now()
	sched.Advance(time.Minute)
	assert.Equal(t, time.Minute, timers.Now().Sub(start))
}

func TestManualSchedulerFiresInDueOrder(t *testing.T) {
	sched := newManual()

	var order []int
	sched.AfterFunc(30*time.Millisecond, func() { order = append(order, 3) })
	sched.AfterFunc(10*time.Millisecond, func() { order = append(order, 1) })
	sched.AfterFunc(10*time.Millisecond, func() {
		order = append(order, 2)
		sched.AfterFunc(5*time.Millisecond, func() { order = append(order, 25) })
	})

	sched.Advance(20 * time.Millisecond)
	assert.Equal(t, []int{1, 2, 25}, order)

	sched.Advance(20 * time.Millisecond)
	assert.Equal(t, []int{1, 2, 25, 3}, order)
}

func TestManualTimerStopAfterFire(t *testing.T) {
	sched := newManual()
	timer := sched.AfterFunc(0, func() {})
	sched.Flush()
	assert.False(t, timer.Stop())
}

func TestClockSchedulerPostsCallbacks(t *testing.T) {
	posted := make(chan func(), 1)
	sched := NewClockScheduler(func(fn func()) { posted <- fn })

	var ran atomic.Bool
	sched.AfterFunc(time.Millisecond, func() { ran.Store(true) })

	select {
	case fn := <-posted:
		assert.False(t, ran.Load(), "callback must wait for the loop")
		fn()
		assert.True(t, ran.Load())
	case <-time.After(2 * time.Second):
		require.FailNow(t, "callback was never posted")
	}

	stopped := sched.AfterFunc(time.Hour, func() {})
	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop())
}

func TestNewClockSchedulerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewClockScheduler(nil) })
}
