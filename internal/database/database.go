package database

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendtrack/internal/logger"
	"spendtrack/internal/models"
)

// Manager handles database operations
type Manager struct {
	db *gorm.DB
}

// NewManager creates a new database manager for the configured driver.
// The default is an in-memory SQLite database that is recreated empty at
// every process start.
func NewManager(config *Config) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch config.Driver {
	case DriverSQLite:
		db, err = gorm.Open(sqlite.Open(config.DSN), &gorm.Config{})
	case DriverPostgres:
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  config.PostgresDSN(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db}, nil
}

// Migrate creates the schema at boot. The default store is volatile, so
// there is no migration history to version; AutoMigrate covers both drivers.
func (m *Manager) Migrate() error {
	logger.Get().Info("Creating database schema...")

	if err := m.db.AutoMigrate(&models.Expense{}, &models.AuditLog{}); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	logger.Get().Info("Database schema ready")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
