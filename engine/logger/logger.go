// Package logger holds the structured logger shared by every engine package.
// By default the engine is silent; hosts opt in with SetLogger.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled reports false
// so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the engine and all of its sub-packages.
// Passing nil restores the silent default. Safe for concurrent use.
//
// Log levels used by the engine:
//   - slog.LevelDebug: automatic batch flushes, ignored primitives, GPU resource creation
//   - slog.LevelInfo: lifecycle events (adapter selected, window created, launch/close)
//   - slog.LevelWarn: non-fatal issues (oversized primitives, failed frame acquisition)
//
// Parameters:
//   - l: the logger to install, or nil to disable logging
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current engine logger. Safe for concurrent use.
//
// Returns:
//   - *slog.Logger: the active logger, never nil
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// ParseLevel maps a config level name ("debug", "info", "warn", "error") to a slog.Level.
// Unknown names map to slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}
