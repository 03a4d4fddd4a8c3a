package app

import (
	"io"
	"log/slog"

	"torus-life/internal/config"
)

// NewLogger builds an isolated slog.Logger writing to outW. Level and format
// use the names accepted in settings; unknown levels log at info and unknown
// formats as text.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := config.ParseLogLevel(levelStr)
	if !ok {
		level = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if formatStr == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(outW, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(outW, handlerOpts))
}
