package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger adapts a *slog.Logger to the Logger interface.
type SlogLogger struct {
	l *slog.Logger
}

func NewSlogLogger(l *slog.Logger) *SlogLogger {
	return &SlogLogger{l: l}
}

// NewText returns a Logger writing text-formatted records to w.
func NewText(w io.Writer, level slog.Level) *SlogLogger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return NewSlogLogger(slog.New(h))
}

// Discard returns a Logger that drops everything. Handy for the TUI,
// where stray writes would corrupt the frame.
func Discard() *SlogLogger {
	return NewSlogLogger(slog.New(slog.DiscardHandler))
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
