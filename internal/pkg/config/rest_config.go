package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environments
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// EnvPrefix is prepended to every environment override, e.g. NEIC_AUTH_JWT_SECRET.
const EnvPrefix = "NEIC"

// RestConfig is the complete configuration of the REST API process.
type RestConfig struct {
	Port           string             `mapstructure:"port" validate:"required,numeric"`
	Environment    string             `mapstructure:"environment" validate:"required,oneof=development production test"`
	AllowedOrigins []string           `mapstructure:"allowed_origins"`
	Database       DatabaseSettings   `mapstructure:"database"`
	Logger         LoggerSettings     `mapstructure:"logger"`
	Auth           AuthSettings       `mapstructure:"auth"`
	Redis          RedisSettings      `mapstructure:"redis"`
	Attachments    AttachmentSettings `mapstructure:"attachments"`
}

// IsDevelopment reports whether the process runs in development mode.
// Login lockout is disabled in development.
func (c *RestConfig) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// Validate checks the top level fields and every nested settings block
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.StructPartial(c, "Port", "Environment"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	validators := []interface{ Validate() error }{
		&c.Database,
		&c.Logger,
		&c.Auth,
		&c.Redis,
		&c.Attachments,
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// InitializeRestConfig loads the YAML file at path, applies environment overrides and validates the result.
// A missing file is not an error; defaults plus environment variables may be enough.
func InitializeRestConfig(path string) (*RestConfig, error) {
	// .env is optional and only fills variables that are not already set
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", EnvProduction)
	v.SetDefault("allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "neic.db")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 0)

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.format", LogFormatText)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "neic-portal")
	v.SetDefault("auth.token_ttl", "8h")
	v.SetDefault("auth.cookie_name", "neic_session")
	v.SetDefault("auth.cookie_secure", true)
	v.SetDefault("auth.max_login_attempts", 5)
	v.SetDefault("auth.lockout_window", "15m")
	v.SetDefault("auth.bcrypt_cost", 12)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "neic:login:")

	v.SetDefault("attachments.provider", LocalStorageProvider)
	v.SetDefault("attachments.directory", "./uploads")
	v.SetDefault("attachments.connection_string", "")
	v.SetDefault("attachments.container_name", "")
	v.SetDefault("attachments.max_size_mb", 10)
}
