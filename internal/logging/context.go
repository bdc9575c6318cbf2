package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from ctx, or a disabled logger if none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags log lines with the subsystem writing them (cache, coingecko, scheduler).
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, "component", component)
}

// WithURL tags log lines with the request URL.
func WithURL(ctx context.Context, url string) context.Context {
	return withField(ctx, "url", url)
}

// WithResource tags log lines with the market resource being loaded.
func WithResource(ctx context.Context, resource string) context.Context {
	return withField(ctx, "resource", resource)
}

func withField(ctx context.Context, key, value string) context.Context {
	child := FromContext(ctx).With().Str(key, value).Logger()
	return WithContext(ctx, child)
}
