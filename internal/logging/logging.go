// Package logging builds the process logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to w at level ("debug", "info", "warn" or
// "error"; unknown values mean info). Format "json" writes one JSON object per
// line via slog's JSON handler; any other format writes human-readable text via
// charmbracelet/log.
func New(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}
	return slog.New(log.NewWithOptions(w, log.Options{
		Prefix:          "matcher",
		Level:           log.Level(lvl),
		ReportTimestamp: false,
		ReportCaller:    false,
		Formatter:       log.TextFormatter,
	}))
}

// Command logs the outcome of one CLI command: its name, how long it ran and
// the error it returned, if any. Failures are logged at error level.
func Command(logger *slog.Logger, name string, start time.Time, err error) {
	attrs := []any{
		"command", name,
		"duration_ms", time.Since(start).Milliseconds(),
	}
	if err != nil {
		logger.Error("command failed", append(attrs, "error", err)...)
		return
	}
	logger.Debug("command", attrs...)
}
