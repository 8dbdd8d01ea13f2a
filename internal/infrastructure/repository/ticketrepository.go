package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskline/internal/domain/ticket"
	"deskline/internal/infrastructure/persistence/mappers"
	"deskline/internal/infrastructure/persistence/models"
	"deskline/internal/shared/constants"
	apperrors "deskline/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.Repository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TicketModel{})

	if filter.Status != "" && filter.Status != constants.FilterAll {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.AgentID != "" && filter.AgentID != constants.FilterAll {
		query = query.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Priority != "" && filter.Priority != constants.FilterAll {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Q != "" {
		like := "%" + filter.Q + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var modelList []*models.TicketModel
	query = query.Order("created_at DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Page > 1 {
			query = query.Offset((filter.Page - 1) * filter.Limit)
		}
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map ticket model to entity: %w", err)
		}
		tickets = append(tickets, entity)
	}

	return tickets, total, nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket model to entity: %w", err)
	}

	return entity, nil
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	return nil
}
