package config

import (
	"github.com/bnema/listnav/internal/domain/entity"
)

// Default configuration constants
const (
	// Logging defaults
	defaultLogMaxSizeMB  = 10 // megabytes
	defaultLogMaxBackups = 3  // files
	defaultMaxLogAgeDays = 7  // days

	// Demo defaults
	defaultDemoSource     = "us-states"
	defaultDemoTreeSource = "filesystem-tree"
	defaultDemoWidth      = 40 // cells
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for listnav.
func DefaultConfig() *Config {
	popup := entity.DefaultListConfig()
	popup.FocusMode = entity.FocusActiveDescendant

	return &Config{
		Listbox: entity.DefaultListConfig(),
		Tabs:    entity.DefaultTabsConfig(),
		Combobox: ComboboxConfig{
			FilterMode: entity.FilterManual,
			Match:      entity.MatchSubstring,
			List:       popup,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "text", // text or json
			LogDir:        getDefaultLogDir(),
			EnableFileLog: false,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultMaxLogAgeDays,
			Compress:      true,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Demo: DemoConfig{
			Source:     defaultDemoSource,
			TreeSource: defaultDemoTreeSource,
			Mouse:      true,
			Width:      defaultDemoWidth,
		},
	}
}
