package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// MemoryDSN is the default SQLite DSN: a shared in-memory database that
// lives for the process lifetime. The ledger makes no durability promises
// across restarts, so volatile storage is the default.
const MemoryDSN = "file::memory:?cache=shared"

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	DSN string

	// Postgres (opt-in, for durable deployments)
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Driver:   getEnv("DB_DRIVER", DriverSQLite),
		DSN:      getEnv("DB_DSN", MemoryDSN),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "spendtrack"),
		Password: getEnv("DB_PASSWORD", "spendtrack"),
		DBName:   getEnv("DB_NAME", "spendtrack"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}, nil
}

// PostgresDSN returns the PostgreSQL connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
