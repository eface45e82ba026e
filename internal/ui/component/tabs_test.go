package component_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/ui/component"
)

func threeTabs() []component.Tab {
	return []component.Tab{
		{Item: entity.NewItem("tab1", "General"), Panel: "panel-general"},
		{Item: entity.Item{ID: "tab2", Label: "Network", Disabled: true}},
		{Item: entity.NewItem("tab3", "Advanced")},
	}
}

func newTabs(t *testing.T, cfg entity.ListConfig, value entity.ItemID) *component.TabsPattern {
	t.Helper()
	tabs := component.NewTabsPattern(context.Background(), component.TabsOptions{
		ID:        "tabs",
		Config:    cfg,
		Tabs:      threeTabs(),
		Value:     value,
		Scheduler: newScheduler(),
	})
	t.Cleanup(tabs.Destroy)
	return tabs
}

func TestTabsPattern_DisabledTabReachableButNotSelectable(t *testing.T) {
	cfg := entity.DefaultTabsConfig()
	cfg.SelectionMode = entity.SelectionExplicit
	cfg.SkipDisabled = false
	tabs := newTabs(t, cfg, "tab1")

	assert.True(t, tabs.OnKeydown(entity.Key(entity.KeyArrowRight)))
	assert.Equal(t, 1, tabs.List().ActiveIndex())

	assert.True(t, tabs.OnKeydown(entity.Key(entity.KeyEnter)))
	selected, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, entity.ItemID("tab1"), selected)
}

func TestTabsPattern_SelectsFirstEnabledTab(t *testing.T) {
	tabs := newTabs(t, entity.DefaultTabsConfig(), "")

	selected, ok := tabs.Selected()
	require.True(t, ok)
	assert.Equal(t, entity.ItemID("tab1"), selected)
	assert.Equal(t, 0, tabs.List().ActiveIndex())
}

func TestTabsPattern_FollowSkipsDisabled(t *testing.T) {
	tabs := newTabs(t, entity.DefaultTabsConfig(), "tab1")

	tabs.OnKeydown(entity.Key(entity.KeyArrowRight))
	selected, _ := tabs.Selected()
	assert.Equal(t, entity.ItemID("tab3"), selected)

	tabs.OnKeydown(entity.Key(entity.KeyArrowRight))
	selected, _ = tabs.Selected()
	assert.Equal(t, entity.ItemID("tab1"), selected, "wraps to the first tab")

	assert.False(t, tabs.OnKeydown(entity.Key(entity.KeyArrowDown)), "vertical arrows are not handled")
}

func TestTabsPattern_PanelsExposeOneVisible(t *testing.T) {
	tabs := newTabs(t, entity.DefaultTabsConfig(), "tab3")

	panels := tabs.Panels()
	require.Len(t, panels, 3)

	visible := 0
	for _, p := range panels {
		if p.Visible {
			visible++
			assert.Equal(t, entity.ItemID("tab3"), p.Tab)
			assert.Equal(t, "tab3-panel", p.ID)
			assert.False(t, p.Inert)
			continue
		}
		assert.True(t, p.Inert)
	}
	assert.Equal(t, 1, visible)

	snap := tabs.Snapshot()
	assert.Equal(t, "tablist", snap.List.Role)
	assert.Equal(t, entity.OrientationHorizontal, snap.List.Orientation)
	assert.Equal(t, "panel-general", snap.List.Items[0].Controls)
}

func TestTabsPattern_MultiIsForcedOff(t *testing.T) {
	cfg := entity.DefaultTabsConfig()
	cfg.Multi = true
	tabs := newTabs(t, cfg, "tab1")

	tabs.OnPointerdown(2)
	assert.Equal(t, []entity.ItemID{"tab3"}, tabs.List().Value())
	assert.False(t, tabs.List().Config().Multi)
}

func TestTabsPattern_ModeChangeKeepsSettledSelection(t *testing.T) {
	tabs := newTabs(t, entity.DefaultTabsConfig(), "tab3")

	cfg := entity.DefaultTabsConfig()
	cfg.SelectionMode = entity.SelectionExplicit
	tabs.SetConfig(cfg)

	selected, _ := tabs.Selected()
	assert.Equal(t, entity.ItemID("tab3"), selected)

	tabs.OnKeydown(entity.Key(entity.KeyHome))
	selected, _ = tabs.Selected()
	assert.Equal(t, entity.ItemID("tab3"), selected)
}

func TestTabsPattern_SetTabsKeepsSelectionByIdentity(t *testing.T) {
	tabs := newTabs(t, entity.DefaultTabsConfig(), "tab3")

	tabs.SetTabs([]component.Tab{
		{Item: entity.NewItem("tab0", "Intro")},
		{Item: entity.NewItem("tab3", "Advanced")},
	})
	selected, _ := tabs.Selected()
	assert.Equal(t, entity.ItemID("tab3"), selected)

	tabs.SetTabs([]component.Tab{{Item: entity.NewItem("tab9", "Other")}})
	selected, _ = tabs.Selected()
	assert.Equal(t, entity.ItemID("tab9"), selected)
}
