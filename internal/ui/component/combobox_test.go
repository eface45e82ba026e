package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/ui/component"
	"github.com/bnema/listnav/internal/ui/mainloop"
)

var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
	"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
	"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana", "Maine",
	"Maryland", "Massachusetts", "Michigan", "Minnesota", "Mississippi",
	"Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire", "New Jersey",
	"New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina",
	"South Dakota", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "West Virginia", "Wisconsin", "Wyoming",
}

func fruits() collection.Collection {
	return collection.NewView([]entity.Item{
		entity.NewItem("apple", "Apple"),
		entity.NewItem("apricot", "Apricot"),
		entity.NewItem("banana", "Banana"),
		entity.NewItem("blueberry", "Blueberry"),
		{ID: "durian", Label: "Durian", Disabled: true},
		entity.NewItem("orange", "Orange"),
	})
}

func newCombobox(t *testing.T, mode entity.FilterMode, source collection.Collection) (*component.ComboboxPattern, *mainloop.ManualScheduler) {
	t.Helper()
	cfg := component.DefaultComboboxConfig()
	cfg.FilterMode = mode
	sched := newScheduler()
	cb := component.NewComboboxPattern(context.Background(), component.ComboboxOptions{
		ID:        "cb",
		Config:    cfg,
		Source:    source,
		Scheduler: sched,
	})
	t.Cleanup(cb.Destroy)
	return cb, sched
}

// typeText feeds value one character at a time, the way an input reports it.
func typeText(cb *component.ComboboxPattern, value string) {
	runes := []rune(value)
	for i := range runes {
		cb.OnInput(string(runes[:i+1]), entity.InputInsert)
	}
}

func TestCombobox_HighlightCompletesWithSelectedTail(t *testing.T) {
	cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))

	cb.OnFocus()
	cb.OnInput("A", entity.InputInsert)

	assert.Equal(t, "Alabama", cb.Text())
	start, end := cb.SelectionRange()
	assert.Equal(t, start, end, "range lands one tick later")

	sched.Flush()
	start, end = cb.SelectionRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 7, end)
	assert.Equal(t, []entity.ItemID{"Alabama"}, cb.Value())

	snap := cb.Snapshot()
	assert.Equal(t, "labama", snap.CompletionSuffix)
	assert.Equal(t, entity.ItemID("Alabama"), snap.ActiveDescendant)
}

func TestCombobox_HighlightCompletionWritesItemLabel(t *testing.T) {
	tests := []struct {
		typed      string
		wantText   string
		wantSuffix string
		wantStart  int
		wantEnd    int
	}{
		{typed: "a", wantText: "Alabama", wantSuffix: "labama", wantStart: 1, wantEnd: 7},
		{typed: "ala", wantText: "Alabama", wantSuffix: "bama", wantStart: 3, wantEnd: 7},
		{typed: "NEW Y", wantText: "New York", wantSuffix: "ork", wantStart: 5, wantEnd: 8},
	}

	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))
			cb.OnFocus()
			cb.OnInput(tt.typed, entity.InputInsert)
			sched.Flush()

			assert.Equal(t, tt.wantText, cb.Text())
			suffix, ok := cb.CompletionSuffix()
			require.True(t, ok)
			assert.Equal(t, tt.wantSuffix, suffix)
			start, end := cb.SelectionRange()
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestCombobox_HighlightDeletionDoesNotComplete(t *testing.T) {
	cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))

	cb.OnInput("Ar", entity.InputInsert)
	require.Equal(t, "Arizona", cb.Text())

	cb.OnInput("A", entity.InputDelete)
	sched.Flush()

	assert.Equal(t, "A", cb.Text())
	_, ok := cb.CompletionSuffix()
	assert.False(t, ok)
	start, end := cb.SelectionRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 1, end)
}

func TestCombobox_EscapeRemovesSuffixThenCloses(t *testing.T) {
	cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))

	typeText(cb, "Ne")
	require.Equal(t, "Nebraska", cb.Text())

	assert.True(t, cb.OnKeydown(entity.Key(entity.KeyEscape)))
	assert.Equal(t, "Ne", cb.Text())
	assert.True(t, cb.Open())

	sched.Flush()
	start, end := cb.SelectionRange()
	assert.Equal(t, start, end, "canceled completion must not apply")

	assert.True(t, cb.OnKeydown(entity.Key(entity.KeyEscape)))
	assert.False(t, cb.Open())

	assert.True(t, cb.OnKeydown(entity.Key(entity.KeyEscape)))
	assert.Empty(t, cb.Text())
	assert.Empty(t, cb.Value())
	assert.False(t, cb.OnKeydown(entity.Key(entity.KeyEscape)))
}

func TestCombobox_CloseCancelsPendingCompletion(t *testing.T) {
	cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))

	cb.OnInput("Tex", entity.InputInsert)
	cb.OnBlur(false)
	require.False(t, cb.Open())
	assert.Equal(t, "Texas", cb.Text())

	sched.Flush()
	start, end := cb.SelectionRange()
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)
}

func TestCombobox_ManualBlurWithoutExactMatch(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	cb.OnFocus()
	typeText(cb, "Appl")
	cb.OnBlur(false)

	assert.Equal(t, "Appl", cb.Text())
	assert.Empty(t, cb.Value())
	assert.False(t, cb.Open())
}

func TestCombobox_ManualBlurWithExactMatch(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	typeText(cb, "Banana")
	cb.OnBlur(false)

	assert.Equal(t, []entity.ItemID{"banana"}, cb.Value())
	assert.Equal(t, "Banana", cb.Text())
}

func TestCombobox_ManualNavigationNeverCommits(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	cb.OnFocus()
	cb.OnKeydown(entity.Key(entity.KeyArrowDown))
	cb.OnKeydown(entity.Key(entity.KeyArrowDown))
	assert.Empty(t, cb.Value())
	assert.Empty(t, cb.Text())
	assert.Equal(t, entity.ItemID("apricot"), cb.Snapshot().ActiveDescendant)

	assert.True(t, cb.OnKeydown(entity.Key(entity.KeyEnter)))
	assert.Equal(t, []entity.ItemID{"apricot"}, cb.Value())
	assert.Equal(t, "Apricot", cb.Text())
	assert.False(t, cb.Open())
}

func TestCombobox_ManualFilterKeepsValueHidden(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	cb.OnFocus()
	cb.OnPointerdown(0)
	require.Equal(t, []entity.ItemID{"apple"}, cb.Value())

	typeText(cb, "ban")
	snap := cb.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, entity.ItemID("banana"), snap.Items[0].ID)
	assert.Equal(t, []entity.ItemID{"apple"}, cb.Value())
}

func TestCombobox_AutoSelectFollowsTypingAndNavigation(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterAutoSelect, fruits())

	cb.OnInput("b", entity.InputInsert)
	assert.Equal(t, []entity.ItemID{"banana"}, cb.Value())

	cb.OnKeydown(entity.Key(entity.KeyArrowDown))
	assert.Equal(t, []entity.ItemID{"blueberry"}, cb.Value())

	cb.OnBlur(false)
	assert.Equal(t, "Blueberry", cb.Text())
	assert.False(t, cb.Open())
}

func TestCombobox_BlurInsideKeepsOpen(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterAutoSelect, fruits())

	cb.OnFocus()
	cb.OnBlur(true)
	assert.True(t, cb.Open())
}

func TestCombobox_ItemsMaterializeOnFirstOpen(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	assert.Nil(t, cb.Snapshot().Items)
	assert.Nil(t, cb.Popup())
	assert.False(t, cb.OnKeydown(entity.Key(entity.KeyEnter)))

	cb.OnClick()
	assert.Len(t, cb.Snapshot().Items, 6)
	assert.True(t, cb.Open())
}

func TestCombobox_InitialValueResolvesBeforeOpen(t *testing.T) {
	sched := newScheduler()
	cb := component.NewComboboxPattern(context.Background(), component.ComboboxOptions{
		ID:        "cb",
		Config:    component.DefaultComboboxConfig(),
		Source:    fruits(),
		Value:     "orange",
		Scheduler: sched,
	})
	defer cb.Destroy()

	assert.Equal(t, "Orange", cb.Text())
	assert.Equal(t, []entity.ItemID{"orange"}, cb.Value())

	cb.OnKeydown(entity.Key(entity.KeyArrowDown))
	assert.True(t, cb.Open())
	assert.Equal(t, entity.ItemID("orange"), cb.Snapshot().ActiveDescendant)
}

func TestCombobox_DisabledItemIsNotCommitted(t *testing.T) {
	cb, _ := newCombobox(t, entity.FilterManual, fruits())

	cb.OnFocus()
	cb.OnPointerdown(4)
	assert.Empty(t, cb.Value())
	assert.True(t, cb.Open())
}

func TestCombobox_DestroySwallowsCompletion(t *testing.T) {
	cb, sched := newCombobox(t, entity.FilterHighlight, collection.NewView(entity.Items(usStates...)))

	cb.OnInput("Ok", entity.InputInsert)
	cb.Destroy()

	assert.NotPanics(t, sched.Flush)
	start, end := cb.SelectionRange()
	assert.Equal(t, start, end)
	assert.False(t, cb.OnKeydown(entity.Key(entity.KeyArrowDown)))
}

func TestCombobox_FuzzyMatchStrategy(t *testing.T) {
	cfg := component.DefaultComboboxConfig()
	cfg.Match = entity.MatchFuzzy
	cb := component.NewComboboxPattern(context.Background(), component.ComboboxOptions{
		ID:        "cb",
		Config:    cfg,
		Source:    collection.NewView(entity.Items(usStates...)),
		Scheduler: newScheduler(),
	})
	defer cb.Destroy()

	cb.OnInput("nwyk", entity.InputInsert)
	snap := cb.Snapshot()
	require.NotEmpty(t, snap.Items)
	assert.Equal(t, entity.ItemID("New York"), snap.Items[0].ID)
}
