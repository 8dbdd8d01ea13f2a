package mappers

import (
	"time"

	"deskline/internal/domain/catalog"
	"deskline/internal/infrastructure/persistence/models"
)

type ItemMapper interface {
	ToModel(i *catalog.Item) *models.ItemModel
	ToDomain(model *models.ItemModel) (*catalog.Item, error)
}

type ItemMapperImpl struct{}

func NewItemMapper() ItemMapper {
	return &ItemMapperImpl{}
}

func (m *ItemMapperImpl) ToModel(i *catalog.Item) *models.ItemModel {
	return &models.ItemModel{
		ID:          i.ID(),
		Title:       i.Title(),
		Description: i.Description(),
		Category:    i.Category(),
		Brand:       i.Brand(),
		Price:       i.Price(),
		ImageURL:    i.ImageURL(),
		RatingRate:  i.Rating().Rate,
		RatingCount: i.Rating().Count,
		CreatedAt:   i.CreatedAt().UnixMilli(),
	}
}

func (m *ItemMapperImpl) ToDomain(model *models.ItemModel) (*catalog.Item, error) {
	return catalog.ReconstructItem(
		model.ID,
		model.Title,
		model.Description,
		model.Category,
		model.Brand,
		model.Price,
		model.ImageURL,
		catalog.Rating{Rate: model.RatingRate, Count: model.RatingCount},
		time.UnixMilli(model.CreatedAt).UTC(),
	)
}
