package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/listnav/internal/domain/entity"
)

const maxTypeaheadDelay = 10 * time.Second

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateList("listbox", config.Listbox)...)
	validationErrors = append(validationErrors, validateList("tabs", config.Tabs)...)
	validationErrors = append(validationErrors, validateCombobox(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateDemo(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateList(section string, cfg entity.ListConfig) []string {
	var validationErrors []string

	switch cfg.Orientation {
	case entity.OrientationHorizontal, entity.OrientationVertical:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.orientation must be one of: horizontal, vertical (got: %s)", section, cfg.Orientation))
	}
	switch cfg.TextDirection {
	case entity.DirectionLTR, entity.DirectionRTL:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.text_direction must be one of: ltr, rtl (got: %s)", section, cfg.TextDirection))
	}
	switch cfg.FocusMode {
	case entity.FocusRoving, entity.FocusActiveDescendant:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.focus_mode must be one of: roving, activedescendant (got: %s)", section, cfg.FocusMode))
	}
	switch cfg.SelectionMode {
	case entity.SelectionFollow, entity.SelectionExplicit:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.selection_mode must be one of: follow, explicit (got: %s)", section, cfg.SelectionMode))
	}
	if cfg.TypeaheadDelay <= 0 || cfg.TypeaheadDelay > maxTypeaheadDelay {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"%s.typeahead_delay must be between 1ms and %s (got: %s)", section, maxTypeaheadDelay, cfg.TypeaheadDelay))
	}
	return validationErrors
}

func validateCombobox(config *Config) []string {
	validationErrors := validateList("combobox.list", config.Combobox.List)

	switch config.Combobox.FilterMode {
	case entity.FilterManual, entity.FilterAutoSelect, entity.FilterHighlight:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"combobox.filter_mode must be one of: manual, auto-select, highlight (got: %s)", config.Combobox.FilterMode))
	}
	switch config.Combobox.Match {
	case entity.MatchPrefix, entity.MatchSubstring, entity.MatchFuzzy:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"combobox.match must be one of: prefix, substring, fuzzy (got: %s)", config.Combobox.Match))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if !validLevels[config.Logging.Level] {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, fatal (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "text", "json", "console":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: text, json, console (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when enable_file_log is true")
	}
	return validationErrors
}

func validateDemo(config *Config) []string {
	var validationErrors []string
	if config.Demo.Source == "" {
		validationErrors = append(validationErrors, "demo.source cannot be empty")
	}
	if config.Demo.Width < 8 || config.Demo.Width > 200 {
		validationErrors = append(validationErrors, "demo.width must be between 8 and 200")
	}
	return validationErrors
}
