package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithPattern creates a child logger tagged with the widget pattern and its instance id
func WithPattern(ctx context.Context, pattern, id string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("pattern", pattern).Str("widget_id", id).Logger()
	return WithContext(ctx, childLogger)
}

// WithSource creates a child logger with an item source field
func WithSource(ctx context.Context, source string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("source", source).Logger()
	return WithContext(ctx, childLogger)
}
