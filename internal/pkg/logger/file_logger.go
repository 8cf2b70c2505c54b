package logger

import (
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/natefinch/lumberjack"
)

// NewFileLogger writes to a file rotated by lumberjack. Files default to JSON lines
// unless settings ask for text.
func NewFileLogger(settings *config.LoggerSettings) Logger {
	writer := &lumberjack.Logger{
		Filename:   settings.FilePath,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   true,
	}

	format := settings.Format
	if format == "" {
		format = config.LogFormatJSON
	}
	return newSlogLogger(newHandler(writer, settings.LogLevel, format))
}
