package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// With stores a child logger carrying fields.
func With(ctx context.Context, fields map[string]any) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Fields(fields)
	})
}

// WithComponent tags every event with the emitting component.
func WithComponent(ctx context.Context, component string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithWindowID tags every event with the window it concerns.
func WithWindowID(ctx context.Context, windowID string) context.Context {
	return derive(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("window_id", windowID)
	})
}

func derive(ctx context.Context, add func(zerolog.Context) zerolog.Context) context.Context {
	child := add(FromContext(ctx).With()).Logger()
	return WithContext(ctx, child)
}
