package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/listnav/internal/domain/entity"
)

// FromTeaKey translates a bubbletea key message into engine key events.
// Typed runes become one event each; unknown keys yield nothing.
func FromTeaKey(msg tea.KeyMsg) []entity.KeyEvent {
	switch msg.Type {
	case tea.KeyRunes:
		mods := entity.Modifiers{Alt: msg.Alt}
		events := make([]entity.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, entity.KeyEvent{Key: string(r), Mods: mods})
		}
		return events
	case tea.KeySpace:
		return []entity.KeyEvent{{Key: entity.KeySpace, Mods: entity.Modifiers{Alt: msg.Alt}}}
	case tea.KeyCtrlAt:
		// Terminals report Ctrl+Space as NUL.
		return []entity.KeyEvent{{Key: entity.KeySpace, Mods: entity.Modifiers{Ctrl: true}}}
	}

	ev, err := ParseKey(msg.String())
	if err != nil {
		return nil
	}
	return []entity.KeyEvent{ev}
}
