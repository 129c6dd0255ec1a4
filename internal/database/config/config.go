// Package config provides database configuration management.
package config

import (
	"fmt"
	"strings"
	"time"

	appConfig "github.com/ashevelyov/matchboard/internal/config"
	"github.com/ashevelyov/matchboard/pkg/retry"
)

// Config holds database connection configuration.
type Config struct {
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
}

// BuildDSN constructs PostgreSQL DSN string from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// LoadConfigFromEnv loads database configuration from environment variables.
func LoadConfigFromEnv() Config {
	return Config{
		Host:     appConfig.GetEnv("DB_HOST", "localhost"),
		User:     appConfig.GetEnv("DB_USER", "postgres"),
		Password: appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:   appConfig.GetEnv("DB_NAME", "matchboard"),
		Port:     appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:  appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone: appConfig.GetEnv("DB_TIMEZONE", "UTC"),
	}
}

// LoadRetryConfigFromEnv loads the startup dial retry configuration.
func LoadRetryConfigFromEnv() retry.Config {
	return retry.Config{
		MaxAttempts:  appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", 5),
		InitialDelay: appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", 1*time.Second),
		MaxDelay:     appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", 30*time.Second),
		Multiplier:   2.0,
	}
}

// SanitizeError removes the password from connection error messages.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	errMsg := err.Error()
	if cfg.Password != "" {
		errMsg = strings.ReplaceAll(errMsg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", errMsg)
}
