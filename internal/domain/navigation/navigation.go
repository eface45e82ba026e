// Package navigation computes the next active index for a movement intent.
package navigation

import (
	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// Kind enumerates movement intents.
type Kind int

const (
	MoveNone Kind = iota
	MoveNext
	MovePrev
	MoveHome
	MoveEnd
	// MoveTo targets an explicit index (pointer). Disabled targets are allowed.
	MoveTo
)

// String returns a human-readable intent name.
func (k Kind) String() string {
	switch k {
	case MoveNext:
		return "next"
	case MovePrev:
		return "prev"
	case MoveHome:
		return "home"
	case MoveEnd:
		return "end"
	case MoveTo:
		return "to"
	default:
		return "none"
	}
}

// Intent is a movement request.
type Intent struct {
	Kind  Kind
	Index int // Only for MoveTo
}

// Next, Prev, Home and End are the keyboard intents.
var (
	Next = Intent{Kind: MoveNext}
	Prev = Intent{Kind: MovePrev}
	Home = Intent{Kind: MoveHome}
	End  = Intent{Kind: MoveEnd}
)

// To builds a pointer intent.
func To(i int) Intent {
	return Intent{Kind: MoveTo, Index: i}
}

// IntentForKey maps an arrow/Home/End key onto an intent for cfg.
// Arrow keys off the configured axis are not recognized, and RTL
// horizontal lists swap Left and Right.
func IntentForKey(key string, cfg entity.ListConfig) (Intent, bool) {
	switch key {
	case entity.KeyHome:
		return Home, true
	case entity.KeyEnd:
		return End, true
	}

	if cfg.Horizontal() {
		rtl := cfg.TextDirection == entity.DirectionRTL
		switch key {
		case entity.KeyArrowRight:
			if rtl {
				return Prev, true
			}
			return Next, true
		case entity.KeyArrowLeft:
			if rtl {
				return Next, true
			}
			return Prev, true
		}
		return Intent{}, false
	}

	switch key {
	case entity.KeyArrowDown:
		return Next, true
	case entity.KeyArrowUp:
		return Prev, true
	}
	return Intent{}, false
}

// Compute returns the active index after applying intent.
// start is the index navigation begins from; callers resolve the
// "no active item yet" case (-1) to the focus default before calling.
// The result equals start whenever the intent is a no-op.
func Compute(start int, c collection.Collection, intent Intent, cfg entity.ListConfig) int {
	if cfg.Disabled || c == nil || c.Len() == 0 {
		return start
	}

	switch intent.Kind {
	case MoveHome:
		return orStart(collection.FirstEnabled(c), start)
	case MoveEnd:
		return orStart(collection.LastEnabled(c), start)
	case MoveTo:
		if !collection.InRange(c, intent.Index) {
			return start
		}
		return intent.Index
	case MoveNext:
		return step(start, c, 1, cfg)
	case MovePrev:
		return step(start, c, -1, cfg)
	default:
		return start
	}
}

func step(start int, c collection.Collection, delta int, cfg entity.ListConfig) int {
	n := c.Len()
	if start < 0 || start >= n {
		// Nothing to step from: land on the nearest end.
		if delta > 0 {
			return orStart(boundary(c, true, cfg), start)
		}
		return orStart(boundary(c, false, cfg), start)
	}

	if cfg.SkipDisabled {
		var next int
		if delta > 0 {
			next = collection.NextEnabled(c, start, cfg.Wrap)
		} else {
			next = collection.PrevEnabled(c, start, cfg.Wrap)
		}
		return orStart(next, start)
	}

	next := start + delta
	if next < 0 || next >= n {
		if !cfg.Wrap {
			return start
		}
		next = (next + n) % n
	}
	return next
}

// boundary returns the first (or last) reachable index under cfg.
func boundary(c collection.Collection, first bool, cfg entity.ListConfig) int {
	if cfg.SkipDisabled {
		if first {
			return collection.FirstEnabled(c)
		}
		return collection.LastEnabled(c)
	}
	if first {
		return 0
	}
	return c.Len() - 1
}

func orStart(i, start int) int {
	if i < 0 {
		return start
	}
	return i
}
