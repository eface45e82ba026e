package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/listnav/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "bad orientation",
			mutate:  func(c *Config) { c.Listbox.Orientation = "diagonal" },
			wantErr: "listbox.orientation",
		},
		{
			name:    "bad tabs direction",
			mutate:  func(c *Config) { c.Tabs.TextDirection = "ttb" },
			wantErr: "tabs.text_direction",
		},
		{
			name:    "zero typeahead delay",
			mutate:  func(c *Config) { c.Combobox.List.TypeaheadDelay = 0 },
			wantErr: "combobox.list.typeahead_delay",
		},
		{
			name:    "bad match strategy",
			mutate:  func(c *Config) { c.Combobox.Match = "regex" },
			wantErr: "combobox.match",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name: "file log without dir",
			mutate: func(c *Config) {
				c.Logging.EnableFileLog = true
				c.Logging.LogDir = ""
			},
			wantErr: "logging.log_dir",
		},
		{
			name:    "narrow demo",
			mutate:  func(c *Config) { c.Demo.Width = 2 },
			wantErr: "demo.width",
		},
		{
			name: "highlight fuzzy explicit",
			mutate: func(c *Config) {
				c.Combobox.FilterMode = entity.FilterHighlight
				c.Combobox.Match = entity.MatchFuzzy
				c.Listbox.SelectionMode = entity.SelectionExplicit
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Logging.LogDir = "/tmp/listnav-logs"
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
