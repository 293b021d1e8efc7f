package common

import (
	"io"
	"log/slog"
	"os"
)

// SetupLogger configures the process-wide slog logger. Format is either
// "json" or "console"; anything else falls back to console output.
func SetupLogger(level slog.Level, format string) {
	SetupLoggerWithWriter(os.Stderr, level, format)
}

// SetupLoggerWithWriter is SetupLogger with an explicit output writer,
// mostly for tests.
func SetupLoggerWithWriter(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}
