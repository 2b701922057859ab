package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the process logger. Production emits JSON at info level
// for the log pipeline; everything else gets readable text with source
// locations at debug level.
func NewLogger(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
}
