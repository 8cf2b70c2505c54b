package persistence

import (
	"fmt"
	"strings"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// gormConfig turns driver errors into gorm.ErrDuplicatedKey and friends so repositories
// can map them onto coded errors.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	}
}

// NewDBConnection opens the configured database. For postgres a non-empty Name is
// created when missing and then selected.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var dialector gorm.Dialector
	maxOpen := settings.MaxOpenConns

	switch settings.Type {
	case config.PostgresDbType:
		dsn, err := preparePostgres(settings)
		if err != nil {
			return nil, err
		}
		dialector = postgres.Open(dsn)
	case config.SqliteDbType:
		dsn := settings.DSN
		if dsn == "" {
			dsn = ":memory:"
		}
		dialector = sqlite.Open(dsn)
		// one connection keeps shared-cache memory databases alive and serialises writers
		maxOpen = 1
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", settings.Type, err)
	}

	if maxOpen > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(maxOpen)
	}

	return db, nil
}

// preparePostgres creates settings.Name on the server when set and returns the DSN that selects it.
func preparePostgres(settings config.DatabaseSettings) (string, error) {
	if settings.Name == "" {
		return settings.DSN, nil
	}

	admin, err := gorm.Open(postgres.Open(settings.DSN), gormConfig())
	if err != nil {
		return "", fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer func() { _ = CloseDB(admin) }()

	var exists bool
	if err := admin.Raw("SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = ?)", settings.Name).Scan(&exists).Error; err != nil {
		return "", fmt.Errorf("failed to look up database %s: %w", settings.Name, err)
	}
	if !exists {
		if err := admin.Exec("CREATE DATABASE " + quoteIdent(settings.Name)).Error; err != nil {
			return "", fmt.Errorf("failed to create database %s: %w", settings.Name, err)
		}
	}

	return fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name), nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database; integration tests use it for cleanup.
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), gormConfig())
	if err != nil {
		return fmt.Errorf("failed to connect to postgres: %w", err)
	}
	defer func() { _ = CloseDB(db) }()

	if err := db.Exec("DROP DATABASE IF EXISTS " + quoteIdent(dbName)).Error; err != nil {
		return fmt.Errorf("failed to drop database %s: %w", dbName, err)
	}
	return nil
}
