// Package config loads process configuration from the environment once at
// startup. The resulting Config is a plain immutable value; nothing in the
// service reads environment variables after Load returns.
package config

import (
	"os"
	"strconv"
)

// Config is the root configuration for the Akira Kitchen API.
type Config struct {
	Server ServerConfig
	Mail   MailConfig
}

// Load builds the full configuration from environment variables,
// falling back to documented defaults.
func Load() *Config {
	return &Config{
		Server: loadServerConfig(),
		Mail:   loadMailConfig(),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}
