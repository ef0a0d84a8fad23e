package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const (
	catalogCacheKey = "catalog:products"
	catalogCacheTTL = 5 * time.Minute
)

// CachedProductRepository is a read-through Redis decorator over a product
// repository. The bot lists the full catalog on every inbound message, so the
// whole list is cached as one JSON blob; every write invalidates it. Cache
// failures degrade to the inner repository, never to an error.
type CachedProductRepository struct {
	inner interfaces.IProductRepository
	rdb   *redis.Client
}

var _ interfaces.IProductRepository = (*CachedProductRepository)(nil)

func NewCachedProductRepository(inner interfaces.IProductRepository, rdb *redis.Client) *CachedProductRepository {
	return &CachedProductRepository{inner: inner, rdb: rdb}
}

func (r *CachedProductRepository) List(ctx context.Context) ([]entities.Product, error) {
	if raw, err := r.rdb.Get(ctx, catalogCacheKey).Result(); err == nil {
		var products []entities.Product
		if err := json.Unmarshal([]byte(raw), &products); err == nil {
			return products, nil
		}
		// Corrupt entry: drop it and fall through.
		r.rdb.Del(ctx, catalogCacheKey)
	}

	products, err := r.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(products); err == nil {
		if err := r.rdb.Set(ctx, catalogCacheKey, raw, catalogCacheTTL).Err(); err != nil {
			log.Printf("[cache] failed caching catalog err=%v", err)
		}
	}
	return products, nil
}

func (r *CachedProductRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	created, err := r.inner.Create(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	r.invalidate(ctx)
	return created, nil
}

func (r *CachedProductRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	updated, err := r.inner.Update(ctx, p)
	if err != nil {
		return entities.Product{}, err
	}
	r.invalidate(ctx)
	return updated, nil
}

func (r *CachedProductRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedProductRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *CachedProductRepository) invalidate(ctx context.Context) {
	if err := r.rdb.Del(ctx, catalogCacheKey).Err(); err != nil {
		log.Printf("[cache] failed invalidating catalog err=%v", err)
	}
}
