// Package obs provides the package-wide diagnostic logger. It is silent by
// default; embedding applications opt in with SetLogger.
package obs

import (
	"log/slog"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.DiscardHandler))
}

// Logger returns the current diagnostic logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Load()
}

// SetLogger replaces the diagnostic logger used for cache tracing.
// Passing nil restores the discarding default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	logger.Store(l)
}
