// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	AppPort         string
	ShutdownTimeout time.Duration
	Database        DatabaseConfig
	RabbitMQ        RabbitMQConfig
	Cache           CacheConfig
}

// DatabaseConfig holds the store connection settings.
type DatabaseConfig struct {
	Driver      string // "postgres" | "sqlite"
	DSN         string
	Host        string
	Port        int
	Username    string
	Password    string
	Name        string
	SSLMode     string
	AutoMigrate bool
}

// RabbitMQConfig holds the event broker settings. An empty URL disables events.
type RabbitMQConfig struct {
	URL      string
	Exchange string
	Queue    string
}

// CacheConfig holds the read cache settings.
type CacheConfig struct {
	Driver        string // "none" | "memory" | "redis"
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "30s")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USERNAME", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_DATABASE_NAME", "cadastro")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "cadastro.events")
	v.SetDefault("RABBITMQ_QUEUE", "cadastro_events")

	v.SetDefault("CACHE_DRIVER", "none")
	v.SetDefault("CACHE_TTL", "5m")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

// Load reads envFile (if it exists) into the process environment and builds
// the configuration from environment variables and defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// A missing file is not an error: the environment alone is enough.
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()

	return FromViper(v)
}

// FromViper builds a validated Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:         v.GetString("APP_PORT"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
		Database: DatabaseConfig{
			Driver:      v.GetString("DB_DRIVER"),
			DSN:         v.GetString("DATABASE_DSN"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			Username:    v.GetString("DB_USERNAME"),
			Password:    v.GetString("DB_PASSWORD"),
			Name:        v.GetString("DB_DATABASE_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
			Queue:    v.GetString("RABBITMQ_QUEUE"),
		},
		Cache: CacheConfig{
			Driver:        v.GetString("CACHE_DRIVER"),
			TTL:           v.GetDuration("CACHE_TTL"),
			RedisAddr:     v.GetString("REDIS_ADDR"),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	switch c.Cache.Driver {
	case "none", "memory", "redis":
	default:
		return fmt.Errorf("unsupported CACHE_DRIVER %q", c.Cache.Driver)
	}
	if c.Cache.Driver != "none" && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}
	if c.AppPort == "" {
		return fmt.Errorf("APP_PORT is required")
	}
	return nil
}

// PostgresDSN returns DSN when set, or a key/value DSN built from the parts.
func (d DatabaseConfig) PostgresDSN() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		d.Host, d.Username, d.Password, d.Name, d.Port, d.SSLMode)
}
