package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// Output overrides stderr, e.g. a rotating file while a TUI owns the terminal.
	Output io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var base io.Writer = os.Stderr
	if cfg.Output != nil {
		base = cfg.Output
	}

	output := base
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        base,
			TimeFormat: cfg.TimeFormat,
			NoColor:    base != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel maps a level name to a zerolog level, falling back to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// LISTNAV_LOG_LEVEL: trace, debug, info, warn, error, off (default: info)
// LISTNAV_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return New(ConfigFromEnv(DefaultConfig()))
}

// ConfigFromEnv overlays LISTNAV_LOG_* variables on cfg.
func ConfigFromEnv(cfg Config) Config {
	if level := os.Getenv("LISTNAV_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("LISTNAV_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return cfg
}
