package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends for finished game results
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config holds all configuration for the redorblack CLI
type Config struct {
	// Result storage
	StorageType string // "memory" or "sqlite"
	DataDir     string

	// Display
	ThemePath string // optional TOML theme file

	// Shuffling; HasSeed marks an explicit seed for deterministic demos
	ShuffleSeed int64
	HasSeed     bool

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for the default data path
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg := &Config{
		StorageType: getEnvWithDefault("STORAGE_TYPE", StorageMemory),
		DataDir:     getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		ThemePath:   os.Getenv("THEME_PATH"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),
	}

	if seed := os.Getenv("SHUFFLE_SEED"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SHUFFLE_SEED must be an integer: %w", err)
		}
		cfg.ShuffleSeed = parsed
		cfg.HasSeed = true
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory only when something will be written there
	if cfg.StorageType == StorageSQLite {
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.StorageType != StorageMemory && c.StorageType != StorageSQLite {
		return fmt.Errorf("STORAGE_TYPE must be %q or %q, got %q", StorageMemory, StorageSQLite, c.StorageType)
	}
	return nil
}

// DatabasePath returns the SQLite database location under DataDir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "redorblack.db")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
