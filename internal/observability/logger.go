package observability

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the process logger. Output goes to w, stderr in the CLI,
// so stdout stays free for command output.
func NewLogger(w io.Writer, level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithFields returns a logger with additional fields.
func WithFields(logger *slog.Logger, kv ...any) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With(kv...)
}
