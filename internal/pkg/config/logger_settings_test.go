//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validFileLoggerSettings() LoggerSettings {
	return LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/neic/portal.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*LoggerSettings)
		wantError string
	}{
		{"rotated file", func(*LoggerSettings) {}, ""},
		{"console ignores rotation", func(s *LoggerSettings) { s.LogType, s.MaxSize = LogTypeConsole, 0 }, ""},
		{"console json", func(s *LoggerSettings) { s.LogType, s.Format = LogTypeConsole, LogFormatJSON }, ""},
		{"missing level", func(s *LoggerSettings) { s.LogLevel = "" }, "LoggerSettings"},
		{"unknown level", func(s *LoggerSettings) { s.LogLevel = "trace" }, "LoggerSettings"},
		{"unknown sink", func(s *LoggerSettings) { s.LogType = "syslog" }, "LoggerSettings"},
		{"unknown format", func(s *LoggerSettings) { s.Format = "xml" }, "LoggerSettings"},
		{"file without path", func(s *LoggerSettings) { s.FilePath = "" }, "file path is required"},
		{"size below range", func(s *LoggerSettings) { s.MaxSize = 0 }, "max size must be between 1 and 100 MB"},
		{"size above range", func(s *LoggerSettings) { s.MaxSize = 101 }, "max size"},
		{"too many backups", func(s *LoggerSettings) { s.MaxBackups = 11 }, "max backups must be between 1 and 10"},
		{"age above a year", func(s *LoggerSettings) { s.MaxAge = 366 }, "max age must be between 1 and 365 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := validFileLoggerSettings()
			tt.mutate(&settings)

			err := settings.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantError)
		})
	}
}
