package config

import (
	"os"
	"strconv"

	"medirisk/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Models   ModelConfig
	Database DatabaseConfig
	History  HistoryConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// ModelConfig holds model artifact settings
type ModelConfig struct {
	Dir string
}

// DatabaseConfig holds the optional assessment-history database settings.
// An empty URL means the in-memory history store is used.
type DatabaseConfig struct {
	URL string
}

// HistoryConfig holds assessment-history settings
type HistoryConfig struct {
	Enabled bool
	Limit   int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", ""),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Models: ModelConfig{
			Dir: getEnvOrDefault("MODEL_DIR", "./artifacts"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		History: HistoryConfig{
			Enabled: getEnvBoolOrDefault("HISTORY_ENABLED", true),
			Limit:   getEnvIntOrDefault("HISTORY_LIMIT", 50),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Models.Dir == "" {
		return errors.ConfigInvalid("model artifact directory is required")
	}
	if config.History.Limit <= 0 {
		return errors.ConfigInvalid("history limit must be positive")
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

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
