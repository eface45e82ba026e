package styles

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/ui/component"
)

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		name                          string
		active, offset, height, total int
		want                          int
	}{
		{name: "fits", active: 4, offset: 0, height: 10, total: 8, want: 0},
		{name: "inside window", active: 5, offset: 3, height: 5, total: 20, want: 3},
		{name: "below window", active: 12, offset: 3, height: 5, total: 20, want: 8},
		{name: "above window", active: 1, offset: 3, height: 5, total: 20, want: 1},
		{name: "no active keeps offset", active: -1, offset: 4, height: 5, total: 20, want: 4},
		{name: "clamped to end", active: -1, offset: 18, height: 5, total: 20, want: 15},
		{name: "zero height", active: 9, offset: 2, height: 0, total: 20, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScrollOffset(tt.active, tt.offset, tt.height, tt.total))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Massachusetts", Truncate("Massachusetts", 20))
	assert.Equal(t, "Massa…", Truncate("Massachusetts", 6))
	assert.Equal(t, "", Truncate("Ohio", 0))
	assert.LessOrEqual(t, len([]rune(Truncate("日本語のラベル", 6))), 4, "wide runes count two cells")
}

func TestRenderOptions(t *testing.T) {
	theme := NewTheme()
	items := []component.ItemSnapshot{
		{Index: 0, ID: "apple", Label: "Apple", Active: true, Selected: true},
		{Index: 1, ID: "durian", Label: "Durian", Disabled: true},
		{Index: 2, ID: "fig", Label: "Fig"},
		{Index: 3, ID: "kiwi", Label: "Kiwi"},
	}

	out := theme.RenderOptions(items, 20, 2, 0)
	assert.Contains(t, out, markerActive)
	assert.Contains(t, out, markerSelected)
	assert.Contains(t, out, "Durian")
	assert.NotContains(t, out, "Fig")
	assert.Contains(t, out, "1-2 of 4")

	all := theme.RenderOptions(items, 20, 0, 0)
	assert.Equal(t, len(items), strings.Count(all, "\n")+1)
	assert.NotContains(t, all, " of ")

	assert.Contains(t, theme.RenderOptions(nil, 20, 5, 0), "no items")
}

func TestRenderOptions_TreeMarkers(t *testing.T) {
	theme := NewTheme()
	out := theme.RenderOptions([]component.ItemSnapshot{
		{Index: 0, ID: "cmd", Label: "cmd", Parent: true, Expanded: true},
		{Index: 1, ID: "cmd/listnav", Label: "listnav", Parent: true, Depth: 1},
	}, 30, 0, 0)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[0], markerExpanded)
	assert.Contains(t, lines[1], markerCollapse)
}

func TestRenderComboInput(t *testing.T) {
	theme := NewTheme()

	assert.Contains(t, theme.RenderComboInput("Alabama", 3, 7, true, 20), "bama")
	assert.Contains(t, theme.RenderComboInput("", 0, 0, true, 20), caret)
	assert.NotContains(t, theme.RenderComboInput("Ala", 3, 3, false, 20), caret)
}

func TestRenderTabBar_RTLMirrorsOrder(t *testing.T) {
	theme := NewTheme()
	snap := component.ListSnapshot{
		TextDirection: entity.DirectionRTL,
		Items: []component.ItemSnapshot{
			{Index: 0, ID: "one", Label: "One", Selected: true},
			{Index: 1, ID: "two", Label: "Two"},
		},
	}

	out := theme.RenderTabBar(snap, 40)
	assert.Less(t, strings.Index(out, "Two"), strings.Index(out, "One"))

	snap.TextDirection = entity.DirectionLTR
	out = theme.RenderTabBar(snap, 40)
	assert.Less(t, strings.Index(out, "One"), strings.Index(out, "Two"))
}
