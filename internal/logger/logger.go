/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable logger that can be silenced for MCP integrations.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Terminal output; timestamps add noise.
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// SetVerbose enables debug messages.
func SetVerbose(verbose bool) {
	if verbose {
		level.Set(slog.LevelDebug)
		return
	}
	level.Set(slog.LevelInfo)
}

// Logger returns the current structured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func logf(l slog.Level, format string, args ...any) {
	lg := Logger()
	if !lg.Enabled(context.Background(), l) {
		return
	}
	lg.Log(context.Background(), l, fmt.Sprintf(format, args...))
}

// Error logs an error message.
func Error(format string, args ...any) {
	logf(slog.LevelError, format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logf(slog.LevelWarn, format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logf(slog.LevelInfo, format, args...)
}

// Debug logs a debug message, shown only in verbose mode.
func Debug(format string, args ...any) {
	logf(slog.LevelDebug, format, args...)
}
