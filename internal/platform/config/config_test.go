package config_test

import (
	"testing"

	"github.com/SscSPs/dre_backoffice/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Empty variables count as unset.
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("RATE_LIMIT", "")
	t.Setenv("MIGRATIONS_PATH", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.IsProduction)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "300-M", cfg.RateLimit)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATE_LIMIT", "10-S")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "10-S", cfg.RateLimit)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("IS_PRODUCTION", "true")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mysql")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
