// Package config holds application configuration sourced from
// environment variables, with an optional .env file.
//
// Environment Variables:
//   - LLSUB_ENDPOINT: translation backend endpoint (default: Google Translate)
//   - LLSUB_MAX_BLOCK_CHARS: maximum characters per translation request (default: 5000)
//   - LLSUB_TIMEOUT: backend request timeout in seconds (default: 30)
//   - LLSUB_TARGET_LANGUAGE: default target language code (default: en)
//   - LLSUB_WATCH_CRON: cron expression for watch mode scans (default: "0 * * * *")
//   - LLSUB_LOG_LEVEL: debug, info, warn, error or fatal (default: info)
//   - LLSUB_LOG_FILE: when set, watch mode logs to this file
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Translation backend configuration
	Endpoint       string `json:"endpoint"`
	MaxBlockChars  int    `json:"max_block_chars"`
	TimeoutSeconds int    `json:"timeout_seconds"`

	// Defaults for the CLI surface
	TargetLanguage string `json:"target_language"`

	// Watch mode configuration
	WatchCron string `json:"watch_cron"`

	// Logging configuration
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a Config from environment variables and options.
// A .env file in the working directory is loaded first when present.
func NewFromEnv(opts ...Option) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Endpoint:       getEnvString("LLSUB_ENDPOINT", ""),
		MaxBlockChars:  getEnvInt("LLSUB_MAX_BLOCK_CHARS", 5000),
		TimeoutSeconds: getEnvInt("LLSUB_TIMEOUT", 30),
		TargetLanguage: getEnvString("LLSUB_TARGET_LANGUAGE", "en"),
		WatchCron:      getEnvString("LLSUB_WATCH_CRON", "0 * * * *"),
		LogLevel:       getEnvString("LLSUB_LOG_LEVEL", "info"),
		LogFile:        getEnvString("LLSUB_LOG_FILE", ""),
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Timeout returns the backend request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.MaxBlockChars <= 0 {
		return fmt.Errorf("LLSUB_MAX_BLOCK_CHARS must be greater than 0")
	}
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("LLSUB_TIMEOUT must be greater than 0")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
