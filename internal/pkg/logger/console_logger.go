package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
)

// NewConsoleLogger creates a logger writing text or JSON lines to stdout.
func NewConsoleLogger(level, format string) Logger {
	return newSlogLogger(newHandler(os.Stdout, level, format))
}

func newHandler(w io.Writer, level, format string) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == config.LogFormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
