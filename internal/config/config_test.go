package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadFromEnv()

		assert.Equal(t, ":8080", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Logger.Level)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		require.NoError(t, cfg.Validate())
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("SERVER_PORT", ":9090")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("AUTH_TOKEN_TTL", "1h")

		cfg := LoadFromEnv()
		assert.Equal(t, ":9090", cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("invalid gin mode", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.GinMode = "festive"
		assert.Error(t, cfg.Validate())
	})

	t.Run("empty auth secret", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Auth.Secret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Logger.Level = "loud"
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero server timeout", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Server.ReadTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero shutdown timeout", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Server.ShutdownTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("invalid log output", func(t *testing.T) {
		cfg := LoadFromEnv()
		cfg.Logger.Output = "/var/log/app.log"
		assert.Error(t, cfg.Validate())
	})

	t.Run("log level is lowercased on load", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "WARN")
		cfg := LoadFromEnv()
		assert.Equal(t, "warn", cfg.Logger.Level)
		require.NoError(t, cfg.Validate())
	})
}

func TestGetEnvHelpers(t *testing.T) {
	t.Run("GetEnv fallback", func(t *testing.T) {
		assert.Equal(t, "default", GetEnv("MATCHBOARD_TEST_MISSING", "default"))
	})

	t.Run("GetEnvInt invalid value falls back", func(t *testing.T) {
		t.Setenv("MATCHBOARD_TEST_INT", "abc")
		assert.Equal(t, 5, GetEnvInt("MATCHBOARD_TEST_INT", 5))
	})

	t.Run("GetEnvDuration parses", func(t *testing.T) {
		t.Setenv("MATCHBOARD_TEST_DUR", "90s")
		assert.Equal(t, 90*time.Second, GetEnvDuration("MATCHBOARD_TEST_DUR", time.Minute))
	})
}

func TestServerConfig_GetAddress(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: ":8080"}.GetAddress())
	assert.Equal(t, ":8080", ServerConfig{Port: "8080"}.GetAddress())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: ":8080"}.GetAddress())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: "8080"}.GetAddress())
}
