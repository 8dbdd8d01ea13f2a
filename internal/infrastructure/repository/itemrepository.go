package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskline/internal/domain/catalog"
	"deskline/internal/infrastructure/persistence/mappers"
	"deskline/internal/infrastructure/persistence/models"
	apperrors "deskline/internal/shared/errors"
)

type ItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ItemMapper
}

func NewItemRepository(db *gorm.DB) catalog.Repository {
	return &ItemRepositoryImpl{
		db:     db,
		mapper: mappers.NewItemMapper(),
	}
}

func (r *ItemRepositoryImpl) ListAll(ctx context.Context) ([]*catalog.Item, error) {
	var modelList []*models.ItemModel

	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]*catalog.Item, 0, len(modelList))
	for _, model := range modelList {
		item, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map item model to entity: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *ItemRepositoryImpl) FindByID(ctx context.Context, id string) (*catalog.Item, error) {
	var model models.ItemModel

	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("item not found")
		}
		return nil, fmt.Errorf("failed to get item by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ItemRepositoryImpl) Save(ctx context.Context, item *catalog.Item) error {
	model := r.mapper.ToModel(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create item: %w", err)
	}

	return nil
}
