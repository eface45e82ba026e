package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/bnema/listnav/internal/domain/entity"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager that reads config.toml from configDir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// Set up environment variable support (LISTNAV_LISTBOX_WRAP, LISTNAV_COMBOBOX_FILTER_MODE, ...)
	v.SetEnvPrefix("LISTNAV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging keys share the names logging.NewFromEnv reads.
	if err := v.BindEnv("logging.level", "LISTNAV_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LISTNAV_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LISTNAV_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LISTNAV_LOG_FORMAT: %w", err)
	}
	if err := v.BindEnv("database.path", "LISTNAV_DB"); err != nil {
		return nil, fmt.Errorf("failed to bind LISTNAV_DB: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile = filepath.Join(m.configDir, configName)
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf(
				"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
				rereadErr,
			)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// normalizeConfig lowercases enum values; the engine maps anything still
// unsupported to its default, so validation only reports them.
func normalizeConfig(config *Config) {
	normalizeList(&config.Listbox)
	normalizeList(&config.Tabs)
	normalizeList(&config.Combobox.List)
	config.Combobox.FilterMode = entity.FilterMode(strings.ToLower(strings.TrimSpace(string(config.Combobox.FilterMode))))
	config.Combobox.Match = entity.MatchStrategy(strings.ToLower(strings.TrimSpace(string(config.Combobox.Match))))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Tabs.Multi = false
}

func normalizeList(cfg *entity.ListConfig) {
	cfg.Orientation = entity.Orientation(strings.ToLower(strings.TrimSpace(string(cfg.Orientation))))
	cfg.TextDirection = entity.TextDirection(strings.ToLower(strings.TrimSpace(string(cfg.TextDirection))))
	cfg.FocusMode = entity.FocusMode(strings.ToLower(strings.TrimSpace(string(cfg.FocusMode))))
	cfg.SelectionMode = entity.SelectionMode(strings.ToLower(strings.TrimSpace(string(cfg.SelectionMode))))
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// createDefaultConfig writes the defaults as config.toml next to its JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	configFile := filepath.Join(m.configDir, configName)
	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := WriteSchemaFile(m.configDir); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Note: Database.Path is set dynamically in Load(), no defaults needed

	m.setListDefaults("listbox", defaults.Listbox)
	m.setListDefaults("tabs", defaults.Tabs)
	m.setComboboxDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setDemoDefaults(defaults)
}

func (m *Manager) setListDefaults(section string, cfg entity.ListConfig) {
	m.viper.SetDefault(section+".orientation", string(cfg.Orientation))
	m.viper.SetDefault(section+".text_direction", string(cfg.TextDirection))
	m.viper.SetDefault(section+".wrap", cfg.Wrap)
	m.viper.SetDefault(section+".skip_disabled", cfg.SkipDisabled)
	m.viper.SetDefault(section+".focus_mode", string(cfg.FocusMode))
	m.viper.SetDefault(section+".selection_mode", string(cfg.SelectionMode))
	m.viper.SetDefault(section+".multi", cfg.Multi)
	m.viper.SetDefault(section+".disabled", cfg.Disabled)
	m.viper.SetDefault(section+".readonly", cfg.Readonly)
	m.viper.SetDefault(section+".typeahead_delay", cfg.TypeaheadDelay.String())
}

func (m *Manager) setComboboxDefaults(defaults *Config) {
	m.viper.SetDefault("combobox.filter_mode", string(defaults.Combobox.FilterMode))
	m.viper.SetDefault("combobox.match", string(defaults.Combobox.Match))
	m.setListDefaults("combobox.list", defaults.Combobox.List)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setDemoDefaults(defaults *Config) {
	m.viper.SetDefault("demo.source", defaults.Demo.Source)
	m.viper.SetDefault("demo.tree_source", defaults.Demo.TreeSource)
	m.viper.SetDefault("demo.mouse", defaults.Demo.Mouse)
	m.viper.SetDefault("demo.width", defaults.Demo.Width)
}
