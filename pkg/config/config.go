// Package config loads tool configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// API client
	APIKey   string
	TestMode bool
	BaseURL  string
	Timeout  time.Duration

	// Sandbox server
	SandboxAddr string
	SandboxDSN  string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("BAGELPAY_ENV", "development"),
		LogLevel: getEnv("BAGELPAY_LOG_LEVEL", "info"),

		APIKey:   getEnv("BAGELPAY_API_KEY", ""),
		TestMode: getBoolEnv("BAGELPAY_TEST_MODE", true),
		BaseURL:  getEnv("BAGELPAY_BASE_URL", ""),
		Timeout:  getDurationEnv("BAGELPAY_TIMEOUT", 30*time.Second),

		SandboxAddr: getEnv("BAGELPAY_SANDBOX_ADDR", "127.0.0.1:8088"),
		SandboxDSN:  getEnv("BAGELPAY_SANDBOX_DSN", ""),
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
