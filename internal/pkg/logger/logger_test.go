//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func bufferLogger(level, format string) (*slogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newSlogLogger(newHandler(&buf, level, format)), &buf
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level   string
		visible []string
		hidden  []string
	}{
		{config.LogLevelDebug, []string{"debug", "info", "warn", "error"}, nil},
		{config.LogLevelInfo, []string{"info", "warn", "error"}, []string{"debug"}},
		{config.LogLevelWarning, []string{"warn", "error"}, []string{"debug", "info"}},
		{config.LogLevelCritical, []string{"error"}, []string{"debug", "info", "warn"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			log, buf := bufferLogger(tt.level, config.LogFormatText)

			log.Debug("debug line")
			log.Info("info line")
			log.Warn("warn line")
			log.Error("error line")

			for _, name := range tt.visible {
				assert.Contains(t, buf.String(), name+" line")
			}
			for _, name := range tt.hidden {
				assert.NotContains(t, buf.String(), name+" line")
			}
		})
	}
}

func TestSlogLogger_JSONRecord(t *testing.T) {
	log, buf := bufferLogger(config.LogLevelInfo, config.LogFormatJSON)

	log.Info("exported ", 42, " submissions")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "exported 42 submissions", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, appName, record["app"])
}

func TestSlogLogger_Fatal(t *testing.T) {
	log, buf := bufferLogger(config.LogLevelInfo, config.LogFormatText)
	code := -1
	log.exit = func(c int) { code = c }

	log.Fatal("database unreachable")

	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "database unreachable")
}

func TestSlogLogger_Panic(t *testing.T) {
	log, buf := bufferLogger(config.LogLevelInfo, config.LogFormatText)

	assert.PanicsWithValue(t, "template set is empty", func() {
		log.Panic("template set ", "is empty")
	})
	assert.Contains(t, buf.String(), "template set is empty")
}

func TestNewFileLogger(t *testing.T) {
	t.Run("defaults to json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portal.log")
		log := NewFileLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			FilePath:   path,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})

		log.Debug("hidden")
		log.Warn("login limiter unavailable")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		require.Len(t, lines, 1)
		assert.Contains(t, lines[0], `"msg":"login limiter unavailable"`)
		assert.Contains(t, lines[0], `"level":"WARN"`)
	})

	t.Run("text format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "portal.log")
		log := NewFileLogger(&config.LoggerSettings{
			LogLevel: config.LogLevelInfo,
			Format:   config.LogFormatText,
			FilePath: path,
		})

		log.Info("server started")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `msg="server started"`)
	})
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{
			name: "console text",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
			},
		},
		{
			name: "console json",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole, Format: config.LogFormatJSON}
			},
		},
		{
			name: "rotating file",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelInfo,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "portal.log"),
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				}
			},
		},
		{
			name:     "nil settings",
			settings: func(*testing.T) *config.LoggerSettings { return nil },
			wantErr:  true,
		},
		{
			name: "unknown level",
			settings: func(*testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}
			},
			wantErr: true,
		},
		{
			name: "file without rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel: config.LogLevelInfo,
					LogType:  config.LogTypeFile,
					FilePath: filepath.Join(t.TempDir(), "portal.log"),
				}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(resetLoggerSingleton)

			err := InitLogger(tt.settings(t))
			log, getErr := GetLogger()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Error(t, getErr)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NoError(t, getErr)
			assert.NotNil(t, log)
		})
	}
}

func TestGetLogger_BeforeInit(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	_, err := GetLogger()
	assert.ErrorContains(t, err, "not initialized")
}

func TestInitLogger_FirstCallWins(t *testing.T) {
	t.Cleanup(resetLoggerSingleton)

	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}))
	first, err := GetLogger()
	require.NoError(t, err)

	assert.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelInfo, parseLevel(config.LogLevelInfo))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelError))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
