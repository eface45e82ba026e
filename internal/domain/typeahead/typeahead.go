// Package typeahead resolves a keyboard search buffer to the first item
// whose label starts with it.
package typeahead

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

// State is the search buffer and the time of the keystroke that last
// extended or reset it. Start is the active index when the search began;
// every keystroke of the same search scans from there.
type State struct {
	Buffer    string
	LastInput time.Time
	Start     int
}

// Active reports whether a search is in progress at now.
func (s State) Active(now time.Time, delay time.Duration) bool {
	return s.Buffer != "" && now.Sub(s.LastInput) < delay
}

// Fold case-folds s for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// OnCharacter feeds ch into the search. A fresh search scans after active;
// a continued one keeps scanning after its recorded start, so an item that
// still matches the longer buffer keeps focus. It returns the next state and the
// matched index; ok is false on a non-match, in which case st is returned
// unchanged and the caller must not move focus or selection.
func OnCharacter(
	st State,
	c collection.Collection,
	active int,
	ch rune,
	cfg entity.ListConfig,
	now time.Time,
) (next State, index int, ok bool) {
	if c == nil || c.Len() == 0 || cfg.Disabled {
		return st, -1, false
	}

	delay := cfg.TypeaheadDelay
	if delay <= 0 {
		delay = entity.DefaultTypeaheadDelay
	}

	buffer := Fold(string(ch))
	start := active
	if st.Active(now, delay) {
		buffer = st.Buffer + buffer
		start = st.Start
	}

	index = Match(c, start, buffer, cfg.SkipDisabled)
	if index < 0 {
		return st, -1, false
	}
	return State{Buffer: buffer, LastInput: now, Start: start}, index, true
}

// Match returns the first index after active, wrapping, whose folded label
// starts with the folded prefix. The active item itself is checked last.
func Match(c collection.Collection, active int, prefix string, skipDisabled bool) int {
	n := c.Len()
	if n == 0 || prefix == "" {
		return -1
	}
	if active < -1 || active >= n {
		active = -1
	}

	prefix = Fold(prefix)
	for step := 1; step <= n; step++ {
		i := (active + step) % n
		item := c.At(i)
		if skipDisabled && item.Disabled {
			continue
		}
		if strings.HasPrefix(Fold(item.Label), prefix) {
			return i
		}
	}
	return -1
}
