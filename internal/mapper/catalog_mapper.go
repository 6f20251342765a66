package mapper

import (
	"oda-chatbot-be/internal/entity"
	"oda-chatbot-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) ToEntity(d *model.PublicData) *entity.PublicData {
	if d == nil {
		return nil
	}
	return &entity.PublicData{
		FileDataName:         d.FileDataName,
		Title:                d.Title,
		ClassificationSystem: d.ClassificationSystem,
		ProviderAgency:       d.ProviderAgency,
		FileExtension:        d.FileExtension,
		Keywords:             d.Keywords,
		ModifiedDate:         d.ModifiedDate,
		Description:          d.Description,
		PublicDataPk:         d.PublicDataPk,
	}
}

func (m *CatalogMapper) ToModel(d *entity.PublicData) *model.PublicData {
	if d == nil {
		return nil
	}
	return &model.PublicData{
		FileDataName:         d.FileDataName,
		Title:                d.Title,
		ClassificationSystem: d.ClassificationSystem,
		ProviderAgency:       d.ProviderAgency,
		FileExtension:        d.FileExtension,
		Keywords:             d.Keywords,
		ModifiedDate:         d.ModifiedDate,
		Description:          d.Description,
		PublicDataPk:         d.PublicDataPk,
	}
}

func (m *CatalogMapper) ToEntities(models []*model.PublicData) []*entity.PublicData {
	entities := make([]*entity.PublicData, len(models))
	for i, d := range models {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
