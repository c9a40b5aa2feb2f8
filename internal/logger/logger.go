// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"sync"
)

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup routes logs to w. Debug enables debug-level records with source
// locations; otherwise only warnings and errors are written.
// The returned function restores the discarding logger.
func Setup(w io.Writer, debug bool) func() {
	if w == nil {
		w = io.Discard
	}
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	return func() {
		mu.Lock()
		global = discard()
		mu.Unlock()
	}
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
