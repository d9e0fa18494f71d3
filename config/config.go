// Package config loads the pms configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDBDriver     = "REALTY_DB_DRIVER"
	EnvDBDSN        = "REALTY_DB_DSN"
	EnvDBLogLevel   = "REALTY_DB_LOG_LEVEL"
	EnvCurrency     = "REALTY_CURRENCY"
	EnvIncomeSource = "REALTY_INCOME_SOURCE"
	EnvLogLevel     = "REALTY_LOG_LEVEL"
	EnvEnvironment  = "REALTY_ENV"
	EnvActor        = "REALTY_ACTOR"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Database drivers.
const (
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Config represents the application configuration
type Config struct {
	Env          string
	Database     DatabaseConfig
	Log          LogConfig
	Currency     string
	IncomeSource string // "embedded" or "standalone"
	Actor        string // recorded on audit entries
	GeminiAPIKey string
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Driver   string
	DSN      string
	LogLevel string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// Load loads the configuration from environment variables. Variables set in
// the environment take precedence over the ones in files. With no file, Load
// reads .env in the current directory.
//
// Missing files are skipped, a file that cannot be parsed is an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot load %s: %w", file, err)
		}
	}

	cfg := &Config{
		Env: getEnv(EnvEnvironment, "development"),
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv(EnvDBDriver, SQLite)),
			DSN:      getEnv(EnvDBDSN, "realty.db"),
			LogLevel: getEnv(EnvDBLogLevel, "silent"),
		},
		Log: LogConfig{
			Level: getEnv(EnvLogLevel, "warn"),
		},
		Currency:     strings.ToUpper(getEnv(EnvCurrency, "PHP")),
		IncomeSource: getEnv(EnvIncomeSource, "embedded"),
		Actor:        getEnv(EnvActor, currentUser()),
		GeminiAPIKey: getEnv(EnvGeminiAPIKey, ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case SQLite, Postgres:
	default:
		return fmt.Errorf("invalid %s %q, want %q or %q", EnvDBDriver, c.Database.Driver, SQLite, Postgres)
	}
	if c.Database.DSN == "" {
		return fmt.Errorf("%s is empty", EnvDBDSN)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("invalid %s %q, want an ISO 4217 code", EnvCurrency, c.Currency)
	}
	return nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "pms"
}
