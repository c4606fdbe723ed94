package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cadastro/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(newViper())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Empty(t, cfg.RabbitMQ.URL)
	assert.Equal(t, "cadastro.events", cfg.RabbitMQ.Exchange)
	assert.Equal(t, "cadastro_events", cfg.RabbitMQ.Queue)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestFromViper_RejectsUnknownDrivers(t *testing.T) {
	v := newViper()
	v.Set("DB_DRIVER", "mysql")
	_, err := config.FromViper(v)
	assert.ErrorContains(t, err, "DB_DRIVER")

	v = newViper()
	v.Set("CACHE_DRIVER", "memcached")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "CACHE_DRIVER")

	v = newViper()
	v.Set("CACHE_DRIVER", "memory")
	v.Set("CACHE_TTL", "0s")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "CACHE_TTL")
}

func TestPostgresDSN(t *testing.T) {
	d := config.DatabaseConfig{
		Host: "db", Port: 5433, Username: "app", Password: "secret", Name: "cadastro", SSLMode: "disable",
	}
	assert.Equal(t, "host=db user=app password=secret dbname=cadastro port=5433 sslmode=disable", d.PostgresDSN())

	d.DSN = "postgres://app@db/cadastro"
	assert.Equal(t, "postgres://app@db/cadastro", d.PostgresDSN())
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DB_DRIVER=sqlite\nDB_DATABASE_NAME=test.db\n"), 0o600))
	t.Setenv("CACHE_DRIVER", "memory")
	// godotenv never overrides variables that are already set, even when empty.
	for _, key := range []string{"DB_DRIVER", "DB_DATABASE_NAME"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.Name)
	assert.Equal(t, "memory", cfg.Cache.Driver)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
}
