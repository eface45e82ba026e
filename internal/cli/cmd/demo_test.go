package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/application/usecase"
	"github.com/bnema/listnav/internal/domain/entity"
	"github.com/bnema/listnav/internal/infrastructure/config"
)

func TestTabPages_OnePagePerSource(t *testing.T) {
	pages, err := tabPages(context.Background(), usecase.NewLoadItemsUseCase(nil))
	require.NoError(t, err)

	names := usecase.BuiltinSourceNames()
	require.Len(t, pages, len(names))
	for i, p := range pages {
		assert.Equal(t, entity.ItemID(names[i]), p.Item.ID)
		assert.NotEmpty(t, p.Lines)
	}
}

func TestDemoSourceName_FlagOverridesConfig(t *testing.T) {
	t.Cleanup(func() { demoSource = "" })

	assert.Equal(t, "fruits", demoSourceName("fruits"))
	demoSource = "countries"
	assert.Equal(t, "countries", demoSourceName("fruits"))
}

func TestConfigSections_CoverEveryTable(t *testing.T) {
	cfg := config.DefaultConfig()
	sections := configSections(cfg)

	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.title
	}
	assert.Equal(t, []string{"listbox", "tabs", "combobox", "combobox.list", "logging", "database", "demo"}, titles)

	listbox := map[string]string{}
	for _, kv := range sections[0].pairs {
		listbox[kv[0]] = kv[1]
	}
	assert.Equal(t, "vertical", listbox["orientation"])
	assert.Equal(t, "500ms", listbox["typeahead_delay"])
	assert.Equal(t, "true", listbox["wrap"])
}
