package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings selects the log level, the sink (console or rotated file) and the line format.
// The rotation fields only apply to the file sink.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	Format     string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// rotationBound is an inclusive range for one lumberjack setting.
type rotationBound struct {
	name     string
	unit     string
	min, max int
}

var (
	maxSizeBound    = rotationBound{"max size", "MB", 1, 100}
	maxBackupsBound = rotationBound{"max backups", "", 1, 10}
	maxAgeBound     = rotationBound{"max age", "days", 1, 365}
)

func (b rotationBound) check(v int) error {
	if v >= b.min && v <= b.max {
		return nil
	}
	if b.unit == "" {
		return fmt.Errorf("%s must be between %d and %d", b.name, b.min, b.max)
	}
	return fmt.Errorf("%s must be between %d and %d %s", b.name, b.min, b.max, b.unit)
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}
	if s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}
	if err := maxSizeBound.check(s.MaxSize); err != nil {
		return err
	}
	if err := maxBackupsBound.check(s.MaxBackups); err != nil {
		return err
	}
	return maxAgeBound.check(s.MaxAge)
}
