// Package cache provides the byte-slice key/value caches used for read-through
// lookups. Backends: in-process (go-cache) and Redis.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is a best-effort key/value store. Failures are reported as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	Delete(ctx context.Context, key string)
	Close() error
}

// Config selects and configures a backend.
type Config struct {
	Driver        string // "none" | "memory" | "redis"
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// New builds the cache for cfg. It returns nil, nil when caching is disabled.
func New(cfg Config) (Cache, error) {
	switch cfg.Driver {
	case "", "none":
		return nil, nil
	case "memory":
		return NewMemory(cfg.TTL), nil
	case "redis":
		return NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
