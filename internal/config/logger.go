package config

import (
	"fmt"
	"strings"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is the minimum logging level (debug, info, warn, error).
	Level string
	// Format is the encoder (json, console).
	Format string
	// Output is the destination (stdout or stderr).
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment
// variables. Levels and formats are matched case-insensitively.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		Output: strings.ToLower(GetEnv("LOG_OUTPUT", "stdout")),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if err := oneOf("LOG_LEVEL", c.Level, "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("LOG_FORMAT", c.Format, "json", "console"); err != nil {
		return err
	}
	return oneOf("LOG_OUTPUT", c.Output, "stdout", "stderr")
}

// IsProduction reports whether the logger is configured for production.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}

func oneOf(name, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s: %s (must be: %s)", name, value, strings.Join(allowed, ", "))
}
