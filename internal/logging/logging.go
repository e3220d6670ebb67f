// Package logging holds the logger shared by every spincube package.
//
// By default nothing is logged. The CLI installs a real handler with
// [SetLogger]; library code calls [Logger] at the point of use so that a
// later SetLogger takes effect everywhere.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger installs l as the shared logger. Passing nil restores the
// silent default. Safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: frame scheduling details
//   - [slog.LevelInfo]: lifecycle (initialize, stop, window open/close)
//   - [slog.LevelWarn]: rejected resizes, suspicious color literals
//   - [slog.LevelError]: renderer failures
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current shared logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
