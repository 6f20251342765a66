package implementation

import (
	"context"
	"time"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/repository/contract"
	"oda-chatbot-be/internal/repository/specification"

	gocache "github.com/patrickmn/go-cache"
)

// CachedCatalogRepository decorates a CatalogRepository with an in-process
// TTL cache on the exact-name lookup. Detail and utilization turns hit the
// same record repeatedly within a conversation, and the catalog is read-only
// between seeder runs, so a short TTL is safe.
type CachedCatalogRepository struct {
	inner contract.CatalogRepository
	cache *gocache.Cache
}

func NewCachedCatalogRepository(inner contract.CatalogRepository) contract.CatalogRepository {
	return &CachedCatalogRepository{
		inner: inner,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (r *CachedCatalogRepository) FindByName(ctx context.Context, name string) (*entity.PublicData, error) {
	if hit, ok := r.cache.Get(name); ok {
		if record, ok := hit.(*entity.PublicData); ok {
			return record, nil
		}
	}
	record, err := r.inner.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if record != nil {
		r.cache.Set(name, record, gocache.DefaultExpiration)
	}
	return record, nil
}

func (r *CachedCatalogRepository) FindByNameContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByNameContains(ctx, term)
}

func (r *CachedCatalogRepository) FindByTitleContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByTitleContains(ctx, term)
}

func (r *CachedCatalogRepository) FindByKeywordsContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByKeywordsContains(ctx, term)
}

func (r *CachedCatalogRepository) FindByProviderContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByProviderContains(ctx, term)
}

func (r *CachedCatalogRepository) FindByDescriptionContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByDescriptionContains(ctx, term)
}

func (r *CachedCatalogRepository) FindByClassificationContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.inner.FindByClassificationContains(ctx, term)
}

func (r *CachedCatalogRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PublicData, error) {
	return r.inner.FindAll(ctx, specs...)
}
