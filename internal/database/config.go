package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds store configuration.
type Config struct {
	// Path is the SQLite database file. The file is created on first open.
	Path string
}

// NewConfig creates a new store configuration from the environment.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	return &Config{
		Path: getEnv("DB_PATH", "budget_data.db"),
	}, nil
}

// DSN returns the SQLite connection string. Foreign keys are switched on so
// that user deletion cascades through budget periods to expenses.
func (c *Config) DSN() string {
	return fmt.Sprintf("file:%s?_foreign_keys=on", c.Path)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
