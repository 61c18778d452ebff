package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// blank out anything the host environment may carry
	for _, k := range []string{"PORT", "APP_NAME", "APP_ENV", "MIGRATIONS_DIR", "DB_MAX_CONNS", "DB_MAX_CONN_LIFETIME", "DEBUG_METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "moodquotes-backend", cfg.AppName)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "db/migrations", cfg.MigrationsDir)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLife)
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MAX_CONN_LIFETIME", "30m")
	t.Setenv("DEBUG_METRICS_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, int32(25), cfg.DBMaxConns)
	assert.Equal(t, 30*time.Minute, cfg.DBMaxConnLife)
	assert.True(t, cfg.DebugMetricsEnabled)
}

func TestLoadIgnoresBadValues(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "lots")
	t.Setenv("DEBUG_METRICS_ENABLED", "yep")

	cfg := Load()

	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.False(t, cfg.DebugMetricsEnabled)
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "quotes")

	cfg := Load()

	assert.Equal(t, "postgres://app:secret@db:5433/quotes?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	assert.Empty(t, Load().CORSOrigins())

	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, Load().CORSOrigins())
}
