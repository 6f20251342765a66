package contract

import (
	"context"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/repository/specification"
)

// CatalogRepository is the narrow read interface over the public-data
// catalog. The search engine and the prompt handlers only ever read.
type CatalogRepository interface {
	FindByName(ctx context.Context, name string) (*entity.PublicData, error)
	FindByNameContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByTitleContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByKeywordsContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByProviderContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByDescriptionContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindByClassificationContains(ctx context.Context, term string) ([]*entity.PublicData, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PublicData, error)
}
