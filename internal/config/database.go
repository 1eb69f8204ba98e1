package config

import (
	"fmt"
	"strconv"
	"time"

	"library-api/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the PostgreSQL settings.
// DATABASE_URL, when set, takes precedence over the DB_* connection fields.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNECTIONS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNECTIONS: %w", err)
	}

	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNECTIONS", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNECTIONS: %w", err)
	}

	maxRetries, err := strconv.Atoi(getEnv("DB_MAX_RETRIES", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_RETRIES: %w", err)
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"DB_MAX_CONN_LIFETIME", 5 * time.Minute, new(time.Duration)},
		{"DB_MAX_CONN_IDLE_TIME", time.Minute, new(time.Duration)},
		{"DB_HEALTH_CHECK_PERIOD", time.Minute, new(time.Duration)},
		{"DB_RETRY_DELAY", time.Second, new(time.Duration)},
		{"DB_CONNECT_TIMEOUT", 10 * time.Second, new(time.Duration)},
	}
	for _, d := range durations {
		v, err := getEnvDuration(d.key, d.def)
		if err != nil {
			return nil, err
		}
		*d.dst = v
	}

	cfg := &database.DBConfig{
		URL:               getEnv("DATABASE_URL", ""),
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              port,
		Username:          getEnv("DB_USER", "postgres"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "library"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(maxConns),
		MinConns:          int32(minConns),
		MaxConnLifetime:   *durations[0].dst,
		MaxConnIdleTime:   *durations[1].dst,
		HealthCheckPeriod: *durations[2].dst,
		MaxRetries:        maxRetries,
		RetryDelay:        *durations[3].dst,
		ConnectTimeout:    *durations[4].dst,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("database config validation failed: %w", err)
	}

	return cfg, nil
}

// MonitorInterval is how often the pool monitor logs; zero disables it.
func MonitorInterval() (time.Duration, error) {
	return getEnvDuration("DB_MONITOR_INTERVAL", 0)
}
