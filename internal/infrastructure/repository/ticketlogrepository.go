package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"deskline/internal/domain/ticket"
	"deskline/internal/infrastructure/persistence/mappers"
	"deskline/internal/infrastructure/persistence/models"
)

type TicketLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketLogRepository(db *gorm.DB) ticket.LogRepository {
	return &TicketLogRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketLogRepositoryImpl) Append(ctx context.Context, entry *ticket.LogEntry) error {
	model := r.mapper.LogToModel(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append ticket log: %w", err)
	}

	return nil
}

func (r *TicketLogRepositoryImpl) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.LogEntry, error) {
	var modelList []*models.TicketLogModel

	err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket log: %w", err)
	}

	entries := make([]*ticket.LogEntry, 0, len(modelList))
	for _, model := range modelList {
		entry, err := r.mapper.LogToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map log model to entity: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
