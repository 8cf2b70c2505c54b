package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RedisSettings points at the shared store used for login attempt counters.
// An empty Addr disables Redis and the process-local limiter is used instead.
type RedisSettings struct {
	Addr      string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db" validate:"gte=0,lte=15"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// Enabled reports whether a Redis address is configured.
func (s *RedisSettings) Enabled() bool {
	return s.Addr != ""
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}

	return nil
}
