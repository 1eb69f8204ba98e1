package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds the application configuration, populated from environment variables.
// Database settings are loaded separately by LoadDatabaseConfig.
type Config struct {
	App        AppConfig
	Log        LogConfig
	Pagination PaginationConfig
}

type AppConfig struct {
	Name        string `validate:"required"`
	Environment string `validate:"oneof=development staging production test"` // development, staging, production, test
	Port        string `validate:"required,numeric"`
	Version     string
}

type LogConfig struct {
	Level string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// PaginationConfig bounds list endpoints. Requests above MaxLimit are clamped.
type PaginationConfig struct {
	DefaultLimit int `validate:"min=1,ltefield=MaxLimit"`
	MaxLimit     int `validate:"min=1"`
}

var validate = validator.New()

// Load reads the application config from the environment and validates it.
func Load() (*Config, error) {
	defaultLimit, err := getEnvInt("PAGINATION_DEFAULT_LIMIT", 10)
	if err != nil {
		return nil, err
	}
	maxLimit, err := getEnvInt("PAGINATION_MAX_LIMIT", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", getEnv("PORT", "3000")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Pagination: PaginationConfig{
			DefaultLimit: defaultLimit,
			MaxLimit:     maxLimit,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}
