package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	APIOrigin       string
	AdminToken      string
	CredentialsFile string
	PollInterval    string
	LogLevel        string
	LogFormat       string
}

func Load() (*Config, error) {
	cfg := &Config{
		APIOrigin:       getEnv("FIXIT_API_ORIGIN", ""),
		AdminToken:      getEnv("FIXIT_ADMIN_TOKEN", ""),
		CredentialsFile: getEnv("FIXIT_CREDENTIALS_FILE", ""),
		PollInterval:    getEnv("FIXIT_POLL_INTERVAL", "30s"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
	}

	if cfg.APIOrigin == "" {
		return nil, fmt.Errorf("FIXIT_API_ORIGIN is required")
	}

	if cfg.CredentialsFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("FIXIT_CREDENTIALS_FILE is required when home directory cannot be resolved: %w", err)
		}
		cfg.CredentialsFile = filepath.Join(home, ".fixit", "credentials.json")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
