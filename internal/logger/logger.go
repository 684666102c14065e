package logger

import (
	"log/slog"
	"os"
)

// New builds the process logger: text at debug level for development, JSON at
// info otherwise. Command output for the user goes to stdout; the logger only
// carries diagnostics (offline fallbacks, degraded lookups) on stderr.
func New(isDev bool, level string) *slog.Logger {
	lvl := slog.LevelInfo
	if isDev {
		lvl = slog.LevelDebug
	}
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}

	var handler slog.Handler
	if isDev {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	}
	return slog.New(handler)
}
