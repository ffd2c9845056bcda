package app

import (
	"io"
	"log/slog"
)

// newLogger returns a logger writing to w at the given level, as JSON lines
// when format is "json" and as key=value text otherwise.
func newLogger(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
