package input

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entity.KeyEvent
	}{
		{"escape", "escape", entity.Key(entity.KeyEscape)},
		{"esc alias", "esc", entity.Key(entity.KeyEscape)},
		{"enter alias", "return", entity.Key(entity.KeyEnter)},
		{"space", "space", entity.Key(entity.KeySpace)},
		{"plus symbol", "+", entity.Key("+")},
		{"ctrl plus", "ctrl++", entity.KeyEvent{Key: "+", Mods: entity.Modifiers{Ctrl: true}}},
		{"shift arrow", "Shift+ArrowDown", entity.KeyEvent{Key: entity.KeyArrowDown, Mods: entity.Modifiers{Shift: true}}},
		{"short arrow", "up", entity.Key(entity.KeyArrowUp)},
		{"ctrl shift home", "ctrl+shift+home", entity.KeyEvent{Key: entity.KeyHome, Mods: entity.Modifiers{Ctrl: true, Shift: true}}},
		{"select all", "ctrl+a", entity.KeyEvent{Key: "a", Mods: entity.Modifiers{Ctrl: true}}},
		{"uppercase implies shift", "B", entity.KeyEvent{Key: "B", Mods: entity.Modifiers{Shift: true}}},
		{"meta alias", "cmd+a", entity.KeyEvent{Key: "a", Mods: entity.Modifiers{Meta: true}}},
		{"unicode letter", "é", entity.Key("é")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "ctrl+shift", "ctrl+a+b", "hyper"} {
		_, err := ParseKey(in)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe), "input %q", in)
	}
}

func TestParseKeySequence(t *testing.T) {
	got, err := ParseKeySequence(`ArrowDown, Shift+ArrowDown, "Ap,", Enter`)
	require.NoError(t, err)

	want := []entity.KeyEvent{
		entity.Key(entity.KeyArrowDown),
		{Key: entity.KeyArrowDown, Mods: entity.Modifiers{Shift: true}},
		entity.Key("A"),
		entity.Key("p"),
		entity.Key(","),
		entity.Key(entity.KeyEnter),
	}
	assert.Equal(t, want, got)
}

func TestParseKeySequence_ReportsStep(t *testing.T) {
	_, err := ParseKeySequence("down, up, nope")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Pos)
	assert.Equal(t, "down, up, nope", pe.Input)

	_, err = ParseKeySequence(`"open`)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "unterminated quote", pe.Reason)

	_, err = ParseKeySequence(" , ")
	require.Error(t, err)
}

func TestFromTeaKey(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []entity.KeyEvent
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, []entity.KeyEvent{entity.Key(entity.KeyArrowDown)}},
		{"shift down", tea.KeyMsg{Type: tea.KeyShiftDown}, []entity.KeyEvent{{Key: entity.KeyArrowDown, Mods: entity.Modifiers{Shift: true}}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []entity.KeyEvent{entity.Key(entity.KeySpace)}},
		{"ctrl space", tea.KeyMsg{Type: tea.KeyCtrlAt}, []entity.KeyEvent{{Key: entity.KeySpace, Mods: entity.Modifiers{Ctrl: true}}}},
		{"ctrl a", tea.KeyMsg{Type: tea.KeyCtrlA}, []entity.KeyEvent{{Key: "a", Mods: entity.Modifiers{Ctrl: true}}}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []entity.KeyEvent{entity.Key(entity.KeyEscape)}},
		{"runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Bl")}, []entity.KeyEvent{entity.Key("B"), entity.Key("l")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromTeaKey(tt.msg))
		})
	}
}

func TestHoverDebouncer(t *testing.T) {
	sched := mainloop.NewManualScheduler(time.Unix(0, 0))
	timers := mainloop.NewTimers(sched)

	var settled []int
	h := NewHoverDebouncer(context.Background(), timers, 0, func(i int) { settled = append(settled, i) })

	h.Enter(1)
	sched.Advance(100 * time.Millisecond)
	h.Enter(2)
	sched.Advance(100 * time.Millisecond)
	assert.Empty(t, settled, "moving on must restart the delay")

	sched.Advance(HoverFocusDelay)
	assert.Equal(t, []int{2}, settled)

	h.Enter(3)
	h.Leave()
	h.Leave()
	sched.Advance(time.Second)
	assert.Equal(t, []int{2}, settled)
}
