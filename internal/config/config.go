package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Ledger
	DedupWindow time.Duration
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),
	}

	// Parse the duplicate-submission window. The window guards against
	// network retries and double-clicks, not legitimate repeat purchases,
	// so it stays short.
	windowStr := getEnv("DEDUP_WINDOW", "10s")
	window, err := time.ParseDuration(windowStr)
	if err != nil || window <= 0 {
		log.Printf("Warning: invalid DEDUP_WINDOW value '%s', falling back to 10s\n", windowStr)
		window = 10 * time.Second
	}
	config.DedupWindow = window

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
