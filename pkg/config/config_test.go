package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

// clearEnv unsets the keys for the duration of the test
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if value, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { os.Setenv(key, value) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "APP_ENV", "SERVER_SHUTDOWN_TIMEOUT", "DB_NAME",
		"DB_LOG_LEVEL", "DB_AUTO_MIGRATE", "METRICS_PREFIX")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ServiceName, cfg.ServiceName)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "sales", cfg.DB.DBName)
	assert.Equal(t, logger.Error, cfg.DB.LogLevel)
	assert.True(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "sales", cfg.Metrics.Prefix)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_MAX_IDLE_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "15m")
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 5, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5, cfg.DB.MaxIdleConns, "idle connections are capped by open connections")
	assert.Equal(t, 15*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, logger.Silent, cfg.DB.LogLevel)
	assert.False(t, cfg.DB.AutoMigrate)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	clearEnv(t, "DB_MAX_OPEN_CONNS")
	t.Setenv("DB_MAX_IDLE_CONNS", "lots")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.DB.MaxIdleConns)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadRejectsEmptyPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetDSNAndLogFields(t *testing.T) {
	cfg := &Config{
		ServiceName: ServiceName,
		DB: DBConfig{
			Host: "localhost", Port: "5432", User: "sales", Password: "secret",
			DBName: "sales", SSLMode: "disable",
		},
	}

	assert.Equal(t,
		"host=localhost port=5432 user=sales password=secret dbname=sales sslmode=disable",
		cfg.DB.GetDSN())

	for _, field := range cfg.LogFields() {
		assert.NotEqual(t, "secret", field.String, "password must never be logged")
	}
}
