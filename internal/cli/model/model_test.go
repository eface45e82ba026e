package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/cli/styles"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

func testOptions(t *testing.T) (DemoOptions, *mainloop.ManualScheduler) {
	t.Helper()
	sched := mainloop.NewManualScheduler(time.Unix(0, 0))
	return DemoOptions{
		Ctx:       context.Background(),
		Theme:     styles.NewTheme(),
		Scheduler: sched,
		Config:    config.DefaultConfig(),
		Title:     "test",
		Width:     30,
	}, sched
}

func fruitItems() []entity.Item {
	return []entity.Item{
		entity.NewItem("apple", "Apple"),
		entity.NewItem("banana", "Banana"),
		{ID: "durian", Label: "Durian", Disabled: true},
		entity.NewItem("fig", "Fig"),
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestListboxModel_ArrowKeysMoveAndFollow(t *testing.T) {
	opts, _ := testOptions(t)
	m := NewListboxModel(opts, fruitItems())
	m.Init()

	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyDown))

	snap := m.List().Snapshot()
	assert.Equal(t, 3, snap.ActiveIndex, "disabled durian is skipped")
	assert.Equal(t, []entity.ItemID{"fig"}, snap.Value)
	assert.Contains(t, m.View(), "value: [fig]")
}

func TestListboxModel_TabMovesFocusOut(t *testing.T) {
	opts, _ := testOptions(t)
	m := NewListboxModel(opts, fruitItems())
	m.Init()

	m.Update(keyMsg(tea.KeyTab))
	assert.False(t, m.List().Focused())
	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 0, m.List().ActiveIndex(), "keys are ignored while focus is outside")

	m.Update(keyMsg(tea.KeyTab))
	assert.True(t, m.List().Focused())
}

func TestListboxModel_CtrlDTogglesDisabled(t *testing.T) {
	opts, _ := testOptions(t)
	m := NewListboxModel(opts, fruitItems())
	m.Init()
	m.Update(keyMsg(tea.KeyDown))

	m.Update(keyMsg(tea.KeyCtrlD))
	snap := m.List().Snapshot()
	assert.True(t, snap.Items[1].Disabled)
	assert.Contains(t, m.View(), "banana disabled")

	m.Update(keyMsg(tea.KeyHome))
	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, 3, m.List().ActiveIndex(), "banana and durian are both skipped")
}

func TestListboxModel_TypeaheadExpiresOnTimer(t *testing.T) {
	opts, sched := testOptions(t)
	m := NewListboxModel(opts, fruitItems())
	m.Init()

	m.Update(runes("f"))
	assert.Equal(t, "f", m.List().Snapshot().Typeahead)

	sched.Advance(time.Second)
	assert.Empty(t, m.List().Snapshot().Typeahead)
}

func TestDemo_RunMsgRunsOnLoop(t *testing.T) {
	opts, _ := testOptions(t)
	m := NewListboxModel(opts, fruitItems())

	ran := false
	_, cmd := m.Update(RunMsg(func() { ran = true }))
	assert.True(t, ran)
	assert.Nil(t, cmd)
}

func TestDemo_QuitDestroysTimers(t *testing.T) {
	opts, sched := testOptions(t)
	m := NewListboxModel(opts, fruitItems())
	m.Init()
	m.Update(runes("b"))
	require.Positive(t, sched.Pending())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Zero(t, sched.Pending())
}

func TestDemo_ApplyConfigFlashes(t *testing.T) {
	opts, sched := testOptions(t)
	m := NewListboxModel(opts, fruitItems())

	cfg := config.DefaultConfig()
	cfg.Listbox.Wrap = false
	m.ApplyConfig(cfg)

	assert.False(t, m.List().Config().Wrap)
	assert.Contains(t, m.View(), "config reloaded")
	sched.Advance(3 * time.Second)
	assert.NotContains(t, m.View(), "config reloaded")
}

func TestComboboxModel_TypingReplacesCompletion(t *testing.T) {
	opts, sched := testOptions(t)
	opts.Config.Combobox.FilterMode = entity.FilterHighlight
	m := NewComboboxModel(opts, ComboboxSource{Items: fruitItems()})
	m.Init()

	m.Update(runes("b"))
	sched.Flush()
	assert.Equal(t, "Banana", m.Combobox().Text())
	start, end := m.Combobox().SelectionRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 6, end)

	m.Update(keyMsg(tea.KeyBackspace))
	assert.Equal(t, "B", m.Combobox().Text(), "backspace drops the completion first")

	m.Update(keyMsg(tea.KeyBackspace))
	assert.Empty(t, m.Combobox().Text())
}

func TestComboboxModel_EnterCommitsActiveOption(t *testing.T) {
	opts, _ := testOptions(t)
	m := NewComboboxModel(opts, ComboboxSource{Items: fruitItems()})
	m.Init()

	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyEnter))

	assert.Equal(t, []entity.ItemID{"banana"}, m.Combobox().Value())
	assert.False(t, m.Combobox().Open())
}

func TestTabsModel_ArrowSelectsNextTab(t *testing.T) {
	opts, _ := testOptions(t)
	pages := make([]TabPage, 0, 3)
	for _, it := range fruitItems()[:3] {
		pages = append(pages, TabPage{Item: it, Lines: []string{it.Label + " page"}})
	}
	m := NewTabsModel(opts, pages)
	m.Init()

	m.Update(keyMsg(tea.KeyRight))
	selected, ok := m.Tabs().Selected()
	require.True(t, ok)
	assert.Equal(t, entity.ItemID("banana"), selected)
	assert.Contains(t, m.View(), "Banana page")
}

func TestTreeModel_RightExpands(t *testing.T) {
	opts, _ := testOptions(t)
	roots := []*entity.TreeNode{
		{Item: entity.NewItem("src", "src"), Children: []*entity.TreeNode{
			{Item: entity.NewItem("src/main.go", "main.go")},
		}},
		{Item: entity.NewItem("go.mod", "go.mod")},
	}
	m := NewTreeModel(opts, roots)
	m.Init()

	m.Update(keyMsg(tea.KeyRight))
	assert.True(t, m.Tree().Expanded("src"))

	m.Update(keyMsg(tea.KeyDown))
	assert.Equal(t, entity.ItemID("src/main.go"), m.Tree().Snapshot().Items[1].ID)
	assert.Equal(t, 1, m.Tree().List().ActiveIndex())
}

func TestLoop_PostQueuesUntilAttached(t *testing.T) {
	l := NewLoop()
	l.Post(func() {})
	l.Post(func() {})

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.pending, 2)
	assert.Nil(t, l.prog)
}
