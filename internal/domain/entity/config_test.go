package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   ListConfig
		want ListConfig
	}{
		{
			name: "defaults are untouched",
			in:   DefaultListConfig(),
			want: DefaultListConfig(),
		},
		{
			name: "unknown enums fall back",
			in: ListConfig{
				Orientation:    "diagonal",
				TextDirection:  "ttb",
				FocusMode:      "magic",
				SelectionMode:  "sometimes",
				TypeaheadDelay: time.Second,
				Wrap:           true,
			},
			want: ListConfig{
				Orientation:    OrientationVertical,
				TextDirection:  DirectionLTR,
				FocusMode:      FocusRoving,
				SelectionMode:  SelectionFollow,
				TypeaheadDelay: time.Second,
				Wrap:           true,
			},
		},
		{
			name: "non-positive delay uses default",
			in: ListConfig{
				Orientation:    OrientationHorizontal,
				TextDirection:  DirectionRTL,
				FocusMode:      FocusActiveDescendant,
				SelectionMode:  SelectionExplicit,
				TypeaheadDelay: -time.Second,
			},
			want: ListConfig{
				Orientation:    OrientationHorizontal,
				TextDirection:  DirectionRTL,
				FocusMode:      FocusActiveDescendant,
				SelectionMode:  SelectionExplicit,
				TypeaheadDelay: DefaultTypeaheadDelay,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestFilterModeNormalize(t *testing.T) {
	assert.Equal(t, FilterHighlight, FilterHighlight.Normalize())
	assert.Equal(t, FilterAutoSelect, FilterAutoSelect.Normalize())
	assert.Equal(t, FilterManual, FilterMode("bogus").Normalize())
	assert.Equal(t, MatchFuzzy, MatchFuzzy.Normalize())
	assert.Equal(t, MatchSubstring, MatchStrategy("").Normalize())
}

func TestKeyEventPrintable(t *testing.T) {
	tests := []struct {
		name   string
		event  KeyEvent
		want   rune
		wantOK bool
	}{
		{name: "letter", event: Key("a"), want: 'a', wantOK: true},
		{name: "shifted letter", event: KeyEvent{Key: "A", Mods: Modifiers{Shift: true}}, want: 'A', wantOK: true},
		{name: "space", event: Key(KeySpace), want: ' ', wantOK: true},
		{name: "unicode", event: Key("é"), want: 'é', wantOK: true},
		{name: "ctrl chord", event: KeyEvent{Key: "a", Mods: Modifiers{Ctrl: true}}, wantOK: false},
		{name: "named key", event: Key(KeyArrowDown), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.event.Printable()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestKeyEventString(t *testing.T) {
	assert.Equal(t, "Ctrl+Shift+Home", KeyEvent{Key: KeyHome, Mods: Modifiers{Ctrl: true, Shift: true}}.String())
	assert.Equal(t, "Space", Key(KeySpace).String())
}
