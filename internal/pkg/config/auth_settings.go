package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures session tokens and the login lockout policy.
type AuthSettings struct {
	JWTSecret        string        `mapstructure:"jwt_secret" validate:"required,min=32"`
	Issuer           string        `mapstructure:"issuer" validate:"required"`
	TokenTTL         time.Duration `mapstructure:"token_ttl" validate:"required"`
	CookieName       string        `mapstructure:"cookie_name" validate:"required"`
	CookieSecure     bool          `mapstructure:"cookie_secure"`
	MaxLoginAttempts int           `mapstructure:"max_login_attempts" validate:"required,min=1"`
	LockoutWindow    time.Duration `mapstructure:"lockout_window" validate:"required"`
	BcryptCost       int           `mapstructure:"bcrypt_cost" validate:"omitempty,min=4,max=31"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.TokenTTL < time.Minute {
		return fmt.Errorf("token ttl must be at least one minute")
	}
	if s.LockoutWindow < time.Second {
		return fmt.Errorf("lockout window must be at least one second")
	}

	return nil
}
