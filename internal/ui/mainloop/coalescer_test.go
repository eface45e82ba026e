package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoalescerMergesBurstIntoSingleTask(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("config-reload", func() { value = v })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending("config-reload"))
	queue[0]()

	assert.Equal(t, 5, value, "latest callback should run")
	assert.False(t, c.Pending("config-reload"))
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	var ran []string
	c.Post("a", func() { ran = append(ran, "a") })
	c.Post("b", func() { ran = append(ran, "b") })
	require.Len(t, queue, 2)

	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []string{"a", "b"}, ran)
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(func(fn func()) { queue = append(queue, fn) })

	ran := false
	c.Post("config-reload", func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran, "queued work must be dropped after destroy")

	c.Post("config-reload", func() { ran = true })
	assert.Len(t, queue, 1, "no new callback after destroy")
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
