package usecases

import (
	"context"

	"deskline/internal/application/catalog/dto"
	"deskline/internal/domain/catalog"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type ListItemsResult struct {
	Items []dto.ItemDTO
}

type ListItemsExecutor interface {
	Execute(ctx context.Context) (*ListItemsResult, error)
}

// ListItemsUseCase returns the whole catalog. Filtering and pagination for
// the catalog happen client-side, so the endpoint serves the full collection.
type ListItemsUseCase struct {
	itemRepo catalog.Repository
	logger   logger.Interface
}

func NewListItemsUseCase(
	itemRepo catalog.Repository,
	logger logger.Interface,
) *ListItemsUseCase {
	return &ListItemsUseCase{
		itemRepo: itemRepo,
		logger:   logger,
	}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context) (*ListItemsResult, error) {
	items, err := uc.itemRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list items", "error", err)
		return nil, errors.NewInternalError("failed to list items")
	}

	return &ListItemsResult{Items: dto.ToItemDTOs(items)}, nil
}
