package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Subtests run in order because viper.Set calls made by the env override pass
// persist on the package-level viper instance; the missing-secret case has to
// run before any test injects JWT_SECRET.
func TestLoadConfig(t *testing.T) {
	missingPath := filepath.Join(t.TempDir(), "no-such-config.yaml")

	t.Run("missing secret fails validation", func(t *testing.T) {
		_, err := LoadConfig(missingPath)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret")
	})

	t.Run("defaults with secret from env", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")

		cfg, err := LoadConfig(missingPath)
		require.NoError(t, err)

		assert.Equal(t, "env-secret", cfg.Security.JWTSecret)
		assert.Equal(t, 24*time.Hour, cfg.Security.TokenTTL)
		assert.Equal(t, "sqlite", cfg.Database.Type)
		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "admin", cfg.Admin.Username)
		assert.Equal(t, "123456", cfg.Admin.Password)
		assert.Equal(t, 100, cfg.API.RateLimit)
	})

	t.Run("env overrides admin credentials", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "env-secret")
		t.Setenv("ADMIN_USERNAME", "operator")
		t.Setenv("ADMIN_PASSWORD", "s3cret")
		t.Setenv("DB_PATH", "/tmp/test-inventory.db")

		cfg, err := LoadConfig(missingPath)
		require.NoError(t, err)

		assert.Equal(t, "operator", cfg.Admin.Username)
		assert.Equal(t, "s3cret", cfg.Admin.Password)
		assert.Equal(t, "/tmp/test-inventory.db", cfg.Database.Path)
		assert.Equal(t, "/tmp/test-inventory.db", cfg.GetDatabaseDSN())
	})
}

func TestGetDatabaseDSNPostgres(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Type = "postgres"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = 5432
	cfg.Database.User = "inventory"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "inventory"

	dsn := cfg.GetDatabaseDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=inventory")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestSanitizeForLogging(t *testing.T) {
	cfg := &Config{}
	cfg.Security.JWTSecret = "super-secret"
	cfg.Database.Password = "db-password"
	cfg.Admin.Password = "admin-password"
	cfg.Server.Port = "8080"

	sanitized := cfg.SanitizeForLogging()

	assert.Equal(t, "[REDACTED]", sanitized.Security.JWTSecret)
	assert.Equal(t, "[REDACTED]", sanitized.Database.Password)
	assert.Equal(t, "[REDACTED]", sanitized.Admin.Password)
	assert.Equal(t, "8080", sanitized.Server.Port)

	// The original config is untouched.
	assert.Equal(t, "super-secret", cfg.Security.JWTSecret)
}

func TestModeHelpers(t *testing.T) {
	cfg := &Config{}

	cfg.Server.Mode = "debug"
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Mode = "release"
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
}
