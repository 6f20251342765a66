package catalog

import (
	"context"

	"oda-chatbot-be/internal/entity"
)

// Store is the read surface the search engine needs from the catalog.
// Satisfied by the repository contract.
type Store interface {
	FindByName(ctx context.Context, name string) (*entity.PublicData, error)
	FindByNameContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByTitleContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByKeywordsContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByProviderContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByDescriptionContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByClassificationContains(ctx context.Context, term string) ([]*entity.PublicData, error)
}
