package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/listnav/internal/domain/collection"
	"github.com/bnema/listnav/internal/domain/entity"
)

func view(disabled ...int) *collection.View {
	items := entity.Items("a", "b", "c", "d")
	for _, i := range disabled {
		items[i].Disabled = true
	}
	return collection.NewView(items)
}

func selected(ids ...entity.ItemID) func(entity.ItemID) bool {
	return func(id entity.ItemID) bool {
		for _, s := range ids {
			if s == id {
				return true
			}
		}
		return false
	}
}

func TestResolveRoving(t *testing.T) {
	cfg := entity.DefaultListConfig()

	tests := []struct {
		name     string
		c        *collection.View
		active   int
		selected []entity.ItemID
		want     int
	}{
		{"active item", view(), 2, nil, 2},
		{"defaults to first enabled", view(0), -1, nil, 1},
		{"defaults to first selected enabled", view(), -1, []entity.ItemID{"c"}, 2},
		{"ignores disabled selected", view(2), -1, []entity.ItemID{"c"}, 0},
		{"disabled active falls back", view(2), 2, nil, 0},
		{"fully disabled has no item", view(0, 1, 2, 3), -1, nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := Resolve(tt.c, tt.active, selected(tt.selected...), cfg)
			assert.Equal(t, tt.want, exp.TabbableIndex)
			assert.Equal(t, tt.want < 0, exp.ContainerTabbable)
			assert.Empty(t, exp.ActiveDescendant)
		})
	}
}

func TestResolveRovingKeepsDisabledActiveWithoutSkip(t *testing.T) {
	cfg := entity.DefaultListConfig()
	cfg.SkipDisabled = false

	exp := Resolve(view(2), 2, nil, cfg)
	assert.Equal(t, 2, exp.TabbableIndex)
	assert.True(t, exp.Tabbable(2))
	assert.False(t, exp.Tabbable(0))
}

func TestResolveActiveDescendant(t *testing.T) {
	cfg := entity.DefaultListConfig()
	cfg.FocusMode = entity.FocusActiveDescendant

	exp := Resolve(view(), 1, nil, cfg)
	assert.True(t, exp.ContainerTabbable)
	assert.Equal(t, -1, exp.TabbableIndex)
	assert.Equal(t, entity.ItemID("b"), exp.ActiveDescendant)
	assert.False(t, exp.Tabbable(1))

	exp = Resolve(view(1), 1, nil, cfg)
	assert.Equal(t, entity.ItemID("a"), exp.ActiveDescendant)

	exp = Resolve(view(), -1, nil, cfg)
	assert.Empty(t, exp.ActiveDescendant)
	assert.Equal(t, 0, exp.Default)
}

func TestResolveDisabledWidget(t *testing.T) {
	cfg := entity.DefaultListConfig()
	cfg.Disabled = true

	exp := Resolve(view(), 1, nil, cfg)
	assert.Equal(t, -1, exp.TabbableIndex)
	assert.False(t, exp.ContainerTabbable)
	assert.Equal(t, 1, exp.EffectiveActive)
}

func TestResolveEmpty(t *testing.T) {
	exp := Resolve(collection.Empty, -1, nil, entity.DefaultListConfig())
	assert.Equal(t, -1, exp.TabbableIndex)
	assert.True(t, exp.ContainerTabbable)
	assert.Equal(t, -1, exp.EffectiveActive)
}
