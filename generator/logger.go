// SPDX-License-Identifier: MIT

package generator

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package-wide logger. Accessed atomically so that
// SetLogger can be called concurrently with Bang from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by every Generator that was not
// given its own via WithLogger. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels used by generator:
//   - [slog.LevelDebug]: matrix reallocation, bypass output
//   - [slog.LevelInfo]: greeting on each triggered output
//   - [slog.LevelError]: exactly one record per failed trigger
//
// Example:
//
//	generator.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
