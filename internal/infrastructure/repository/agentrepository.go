package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"deskline/internal/domain/ticket"
	"deskline/internal/infrastructure/persistence/mappers"
	"deskline/internal/infrastructure/persistence/models"
	apperrors "deskline/internal/shared/errors"
)

type AgentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AgentMapper
}

func NewAgentRepository(db *gorm.DB) ticket.AgentRepository {
	return &AgentRepositoryImpl{
		db:     db,
		mapper: mappers.NewAgentMapper(),
	}
}

func (r *AgentRepositoryImpl) List(ctx context.Context) ([]*ticket.Agent, error) {
	var modelList []*models.AgentModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	agents := make([]*ticket.Agent, 0, len(modelList))
	for _, model := range modelList {
		agent, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map agent model to entity: %w", err)
		}
		agents = append(agents, agent)
	}

	return agents, nil
}

func (r *AgentRepositoryImpl) FindByID(ctx context.Context, id string) (*ticket.Agent, error) {
	var model models.AgentModel

	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("agent not found")
		}
		return nil, fmt.Errorf("failed to get agent by ID: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *AgentRepositoryImpl) Save(ctx context.Context, a *ticket.Agent) error {
	model := r.mapper.ToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}

	return nil
}
