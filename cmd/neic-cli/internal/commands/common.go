package commands

import (
	"fmt"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/app"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/accounts"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/audit"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/submissions"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/persistence"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/infrastructure/security"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag is the persistent flag naming the configuration file.
const ConfigFlag = "config"

// systemActor is recorded as the actor of CLI changes; it stores as a NULL user in the audit log.
const systemActor = ""

// Environment is everything a command needs to work on the portal database.
type Environment struct {
	DB          *gorm.DB
	Users       accounts.UserRepository
	UserService accounts.UserService
	Submissions submissions.Service
	Audit       audit.Service
	Logger      logger.Logger

	closeFn func() error
}

// Opener connects a command invocation to the portal database.
type Opener func(cmd *cobra.Command) (*Environment, error)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// OpenFromConfig loads the file named by --config and connects to its database.
func OpenFromConfig(cmd *cobra.Command) (*Environment, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	env, err := NewEnvironment(db, cfg.Auth.BcryptCost, loggerInstance)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	env.closeFn = func() error { return persistence.CloseDB(db) }
	return env, nil
}

// NewEnvironment wires the repositories and services the commands use over db.
func NewEnvironment(db *gorm.DB, bcryptCost int, log logger.Logger) (*Environment, error) {
	userRepo, err := persistence.NewGormUserRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	auditRepo, err := persistence.NewGormAuditRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit repository: %w", err)
	}
	submissionRepo, err := persistence.NewGormSubmissionRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission repository: %w", err)
	}

	hasher, err := security.NewBcryptHasher(bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}

	recorder, err := app.NewAuditService(auditRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}
	userService, err := app.NewUserService(userRepo, hasher, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}
	submissionService, err := app.NewSubmissionService(submissionRepo, recorder, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create submission service: %w", err)
	}

	return &Environment{
		DB:          db,
		Users:       userRepo,
		UserService: userService,
		Submissions: submissionService,
		Audit:       recorder,
		Logger:      log,
	}, nil
}

// Close releases the database connection when the environment owns it.
func (e *Environment) Close() {
	if e.closeFn == nil {
		return
	}
	if err := e.closeFn(); err != nil {
		e.Logger.Warn("failed to close database: ", err)
	}
}
