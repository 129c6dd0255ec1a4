package config

import (
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// Auth holds token issuance configuration.
	Auth AuthConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// CORSOrigins is the comma-separated list of allowed origins.
	CORSOrigins string
}

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	// Secret signs bearer tokens.
	Secret string
	// TokenTTL is how long issued tokens stay valid.
	TokenTTL time.Duration
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server: LoadServerConfigFromEnv(),
		Logger: LoadLoggerConfigFromEnv(),
		Auth: AuthConfig{
			Secret:   GetEnv("AUTH_SECRET", "dev-secret-change-me"),
			TokenTTL: GetEnvDuration("AUTH_TOKEN_TTL", 24*time.Hour),
		},
		GinMode:     GetEnv("GIN_MODE", "release"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	if c.Auth.Secret == "" {
		return fmt.Errorf("AUTH_SECRET must not be empty")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("AUTH_TOKEN_TTL must be greater than 0")
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
