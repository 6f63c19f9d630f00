package config

import (
	"os"
	"time"

	"socratic/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	AI     AIConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// StoreConfig selects the persistence backend. A Postgres DSN takes
// precedence; otherwise records live in DataDir on local disk.
type StoreConfig struct {
	Driver      string
	DataDir     string
	PostgresDSN string
}

// AIConfig holds AI/LLM related settings. The key is optional: without it
// the journal works fully, with insight generation disabled.
type AIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

const (
	DriverMemory   = "memory"
	DriverDisk     = "disk"
	DriverPostgres = "postgres"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Store: loadStoreConfig(),
		AI: AIConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   getEnvOrDefault("LLM_MODEL", "gemini-2.5-flash-lite"),
			BaseURL: getEnvOrDefault("LLM_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
			Timeout: getEnvDurationOrDefault("LLM_TIMEOUT", 45*time.Second),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadStoreConfig() StoreConfig {
	cfg := StoreConfig{
		DataDir:     getEnvOrDefault("DATA_DIR", "./data"),
		PostgresDSN: os.Getenv("DATABASE_URL"),
	}
	switch {
	case cfg.PostgresDSN != "":
		cfg.Driver = DriverPostgres
	case getEnvOrDefault("STORE_DRIVER", DriverDisk) == DriverMemory:
		cfg.Driver = DriverMemory
	default:
		cfg.Driver = DriverDisk
	}
	return cfg
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Store.Driver == DriverDisk && config.Store.DataDir == "" {
		return errors.ConfigInvalid("data directory is required for the disk store")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
