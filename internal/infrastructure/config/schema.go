package config

import (
	"github.com/bnema/listnav/internal/domain/entity"
)

// Config represents the complete configuration for listnav.
type Config struct {
	// Listbox configures the listbox demo and the simulate command.
	Listbox entity.ListConfig `mapstructure:"listbox" yaml:"listbox" toml:"listbox" json:"listbox"`
	// Tabs configures tab lists. Multi is ignored.
	Tabs entity.ListConfig `mapstructure:"tabs" yaml:"tabs" toml:"tabs" json:"tabs"`
	// Combobox configures the combobox and its popup.
	Combobox ComboboxConfig `mapstructure:"combobox" yaml:"combobox" toml:"combobox" json:"combobox"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database" json:"database"`
	Demo     DemoConfig     `mapstructure:"demo" yaml:"demo" toml:"demo" json:"demo"`
}

// ComboboxConfig holds combobox options.
type ComboboxConfig struct {
	FilterMode entity.FilterMode    `mapstructure:"filter_mode" yaml:"filter_mode" toml:"filter_mode" json:"filter_mode"`
	Match      entity.MatchStrategy `mapstructure:"match" yaml:"match" toml:"match" json:"match"`
	// List configures the popup list. Focus mode is always activedescendant.
	List entity.ListConfig `mapstructure:"list" yaml:"list" toml:"list" json:"list"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format"`

	// File output configuration
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// DatabaseConfig holds the item-source store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path"`
}

// DemoConfig holds terminal demo settings.
type DemoConfig struct {
	// Source is the item source shown by listbox and combobox demos.
	Source string `mapstructure:"source" yaml:"source" toml:"source" json:"source"`
	// TreeSource is the item source shown by the tree demo.
	TreeSource string `mapstructure:"tree_source" yaml:"tree_source" toml:"tree_source" json:"tree_source"`
	// Mouse enables pointer input and hover focus.
	Mouse bool `mapstructure:"mouse" yaml:"mouse" toml:"mouse" json:"mouse"`
	// Width caps rendered label width in cells.
	Width int `mapstructure:"width" yaml:"width" toml:"width" json:"width"`
}
