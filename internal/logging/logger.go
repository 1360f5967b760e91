// Package logging defines the minimal structured-logging interface used
// across the project. The default implementation wraps log/slog.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key-value pairs, e.g.:
//
//	log.Info(ctx, "batch loaded", "items", n)
type Logger interface {
	// Debug logs fine-grained progress messages.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Error logs a failure.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given
	// key-value pairs.
	With(args ...any) Logger
}
