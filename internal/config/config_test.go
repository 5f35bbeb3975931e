package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.HTTPPort)
	assert.Equal(t, 10, cfg.App.ShutdownTimeoutSeconds)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "http://api.weatherstack.com", cfg.Weather.BaseURL)
	assert.Empty(t, cfg.Weather.AccessKey)
	assert.False(t, cfg.Redis.CacheEnabled)
	assert.Equal(t, 300, cfg.Redis.CacheTTL)
}

func TestLoadConfig_FromFile(t *testing.T) {
	resetViper(t)

	dir := t.TempDir()
	content := "HTTP_PORT=8080\nDB_NAME=users_test\nWEATHER_API_KEY=abc123\nREDIS_CACHE_ENABLED=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.Equal(t, "users_test", cfg.DB.Name)
	assert.Equal(t, "abc123", cfg.Weather.AccessKey)
	assert.True(t, cfg.Redis.CacheEnabled)
	// Unset keys keep their defaults
	assert.Equal(t, "localhost", cfg.DB.Host)
}

func TestConfig_Validate(t *testing.T) {
	resetViper(t)

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	t.Run("missing http port", func(t *testing.T) {
		c := *cfg
		c.App.HTTPPort = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing database name", func(t *testing.T) {
		c := *cfg
		c.DB.Name = ""
		assert.Error(t, c.Validate())
	})

	t.Run("missing weather base URL", func(t *testing.T) {
		c := *cfg
		c.Weather.BaseURL = ""
		assert.Error(t, c.Validate())
	})

	t.Run("cache enabled requires redis host", func(t *testing.T) {
		c := *cfg
		c.Redis.CacheEnabled = true
		c.Redis.Host = ""
		assert.Error(t, c.Validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	c := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "svc",
		Password: "secret",
		Name:     "users",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal user=svc password=secret dbname=users port=5433 sslmode=require",
		c.DSN(),
	)
}
