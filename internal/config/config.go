package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Env selects the logger encoder ("development" or "production").
	Env string

	// DBPath is the path of the SQLite database file.
	DBPath string
}

var appConfig *Config

// Load loads configuration from a .env file (if present) and environment
// variables, falling back to defaults suitable for a local session.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:    getEnv("ENV", "development"),
		DBPath: getEnv("DB_PATH", "budget_data.db"),
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
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

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
