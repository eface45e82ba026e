// Package mainloop keeps deferred work on the host's single UI loop: keyed
// timers, scheduler backends and burst coalescing.
package mainloop

import "sync"

// Coalescer merges bursts of same-key loop tasks. Only the latest callback
// posted under a key runs, once, on the next loop turn.
type Coalescer struct {
	mu        sync.Mutex
	pending   map[string]bool
	callbacks map[string]func()
	post      func(func())
	destroyed bool
}

func NewCoalescer(post func(func())) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		pending:   make(map[string]bool),
		callbacks: make(map[string]func()),
		post:      post,
	}
}

func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.callbacks[key] = fn
	if c.pending[key] {
		c.mu.Unlock()
		return
	}
	c.pending[key] = true
	post := c.post
	c.mu.Unlock()

	post(func() { c.run(key) })
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.callbacks[key]
	delete(c.pending, key)
	delete(c.callbacks, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if destroyed || fn == nil {
		return
	}
	fn()
}

// Pending reports whether work under key is waiting for the loop.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[key]
}

func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.pending = map[string]bool{}
	c.callbacks = map[string]func(){}
	c.mu.Unlock()
}
