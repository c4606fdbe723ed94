package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory is an in-process cache. Entries are private to one instance.
type Memory struct{ c *gocache.Cache }

// NewMemory creates a Memory cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{c: gocache.New(ttl, time.Minute)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return nil, false
	}
	b, ok := v.([]byte)
	return b, ok
}

func (m *Memory) Set(_ context.Context, key string, value []byte) {
	m.c.SetDefault(key, value)
}

func (m *Memory) Delete(_ context.Context, key string) { m.c.Delete(key) }

func (m *Memory) Close() error {
	m.c.Flush()
	return nil
}
