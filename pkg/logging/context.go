package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if logger, ok := Lookup(ctx); ok {
		return logger
	}
	return Default()
}

// Lookup returns the logger stored in the context, if any.
func Lookup(ctx context.Context) (*zerolog.Logger, bool) {
	if ctx == nil {
		return nil, false
	}
	logger, ok := ctx.Value(loggerKey).(*zerolog.Logger)
	return logger, ok && logger != nil
}

// WithField adds a single string field to the logger in the context.
func WithField(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithLocale adds locale context to the logger.
func WithLocale(ctx context.Context, locale string) context.Context {
	return WithField(ctx, "locale", locale)
}

// WithNamespace adds namespace context to the logger.
func WithNamespace(ctx context.Context, namespace string) context.Context {
	return WithField(ctx, "namespace", namespace)
}

// WithCommand adds command context to the logger.
func WithCommand(ctx context.Context, command string) context.Context {
	return WithField(ctx, "command", command)
}
