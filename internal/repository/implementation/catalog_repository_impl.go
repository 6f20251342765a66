package implementation

import (
	"context"
	"errors"

	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/mapper"
	"oda-chatbot-be/internal/model"
	"oda-chatbot-be/internal/repository/contract"
	"oda-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CatalogRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.PublicData, error) {
	var m model.PublicData
	err := r.db.WithContext(ctx).
		Where("파일데이터명 = ?", name).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CatalogRepositoryImpl) FindByNameContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.FileDataNameContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindByTitleContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.TitleContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindByKeywordsContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.KeywordsContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindByProviderContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.ProviderAgencyContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindByDescriptionContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.DescriptionContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindByClassificationContains(ctx context.Context, term string) ([]*entity.PublicData, error) {
	return r.FindAll(ctx, specification.ClassificationContains{Term: term})
}

func (r *CatalogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PublicData, error) {
	var models []*model.PublicData
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
