// Package log provides structured logging for the lantern backend.
//
// A small Logger interface backed by stdlib slog keeps subsystems
// testable: each subsystem accepts a Logger, and commands install a
// global default after parsing verbosity flags. Diagnostic output goes
// to stderr; command results go to stdout.
package log

import (
	"io"
	"log/slog"
	"sync"
)

// Logger is the interface for structured logging. Method signatures
// match slog for easy integration.
type Logger interface {
	// Debug logs internal state useful only for troubleshooting,
	// such as resolved paths and staging steps.
	Debug(msg string, args ...any)

	// Info logs operational context like "downloading version".
	Info(msg string, args ...any)

	// Warn logs recoverable issues, e.g. a stale active-version
	// pointer that was cleared.
	Warn(msg string, args ...any)

	// Error logs failures that abort the operation.
	Error(msg string, args ...any)

	// With returns a Logger that includes the given key-value pairs
	// in every subsequent entry.
	With(args ...any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

// New creates a Logger backed by slog with the given handler.
func New(h slog.Handler) Logger {
	return &slogLogger{l: slog.New(h)}
}

// NewText creates a text-format Logger writing to w at the given level.
func NewText(w io.Writer, level slog.Level) Logger {
	return New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s *slogLogger) With(args ...any) Logger {
	return &slogLogger{l: s.l.With(args...)}
}

type noopLogger struct{}

// NewNoop returns a logger that discards all output. Useful in tests
// and as the zero default.
func NewNoop() Logger {
	return noopLogger{}
}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) With(...any) Logger   { return noopLogger{} }

var (
	defaultLogger Logger = noopLogger{}
	defaultMu     sync.RWMutex
)

// Default returns the global logger configured at startup. Returns a
// noop logger if SetDefault has not been called.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the global logger. Called once in main() after
// parsing verbosity flags.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}
