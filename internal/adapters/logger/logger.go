// Package logger provides the log/slog-backed ports.Logger adapter and
// a colourised stdout progress writer for step lifecycle events.
package logger

import (
	"log/slog"
	"os"

	"github.com/foundryhq/cbe/internal/core/ports"
)

// Logger writes structured records to stderr via log/slog. It carries
// no mutable state past construction, so unlike the progress writer in
// this package it needs no lock of its own: slog's handlers are
// already safe for concurrent use.
type Logger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*Logger)(nil)

// New returns a Logger emitting text-formatted records to stderr at
// info level and above.
func New() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{logger: slog.New(handler)}
}

// Info records routine progress, such as a load or config decision.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn records a recoverable problem, such as a clean-phase artifact
// that could not be removed.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error records the failure that ended a build.
func (l *Logger) Error(err error) {
	l.logger.Error("operation failed", "error", err)
}
