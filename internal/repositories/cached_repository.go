package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"cadastro/internal/models"
	"cadastro/pkg/cache"
)

// readThrough returns the cached value for key, or loads and caches it.
// Undecodable cache entries are treated as misses.
func readThrough[T any](ctx context.Context, c cache.Cache, key string, load func() (*T, error)) (*T, error) {
	if b, ok := c.Get(ctx, key); ok {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return &v, nil
		}
		log.Printf("cache: dropping undecodable entry %s", key)
		c.Delete(ctx, key)
	}

	v, err := load()
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(v); err == nil {
		c.Set(ctx, key, b)
	}
	return v, nil
}

func clientKey(id uint) string  { return fmt.Sprintf("client:%d", id) }
func productKey(id uint) string { return fmt.Sprintf("product:%d", id) }

type cachedClientRepository struct {
	ClientRepository
	cache cache.Cache
}

// NewCachedClientRepository serves FindOne from c. Writes drop the cached row
// before and after the store call. A read that loads the old row before the
// write and stores it after the second drop is served until the TTL expires.
// A nil cache returns repo unchanged.
func NewCachedClientRepository(repo ClientRepository, c cache.Cache) ClientRepository {
	if c == nil {
		return repo
	}
	return &cachedClientRepository{ClientRepository: repo, cache: c}
}

func (r *cachedClientRepository) FindOne(ctx context.Context, id uint) (*models.Client, error) {
	return readThrough(ctx, r.cache, clientKey(id), func() (*models.Client, error) {
		return r.ClientRepository.FindOne(ctx, id)
	})
}

func (r *cachedClientRepository) Update(ctx context.Context, id uint, input models.UpdateClientInput) (int64, error) {
	r.cache.Delete(ctx, clientKey(id))
	defer r.cache.Delete(ctx, clientKey(id))
	return r.ClientRepository.Update(ctx, id, input)
}

func (r *cachedClientRepository) Delete(ctx context.Context, id uint) (int64, error) {
	r.cache.Delete(ctx, clientKey(id))
	defer r.cache.Delete(ctx, clientKey(id))
	return r.ClientRepository.Delete(ctx, id)
}

type cachedProductRepository struct {
	ProductRepository
	cache cache.Cache
}

// NewCachedProductRepository serves FindOne from c. Writes drop the cached row
// before and after the store call.
// A nil cache returns repo unchanged.
func NewCachedProductRepository(repo ProductRepository, c cache.Cache) ProductRepository {
	if c == nil {
		return repo
	}
	return &cachedProductRepository{ProductRepository: repo, cache: c}
}

func (r *cachedProductRepository) FindOne(ctx context.Context, id uint) (*models.Product, error) {
	return readThrough(ctx, r.cache, productKey(id), func() (*models.Product, error) {
		return r.ProductRepository.FindOne(ctx, id)
	})
}

func (r *cachedProductRepository) Update(ctx context.Context, id uint, input models.UpdateProductInput) (int64, error) {
	r.cache.Delete(ctx, productKey(id))
	defer r.cache.Delete(ctx, productKey(id))
	return r.ProductRepository.Update(ctx, id, input)
}

func (r *cachedProductRepository) Delete(ctx context.Context, id uint) (int64, error) {
	r.cache.Delete(ctx, productKey(id))
	defer r.cache.Delete(ctx, productKey(id))
	return r.ProductRepository.Delete(ctx, id)
}
