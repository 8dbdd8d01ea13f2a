package mappers

import (
	"deskline/internal/domain/ticket"
	"deskline/internal/infrastructure/persistence/models"
)

type AgentMapper interface {
	ToModel(a *ticket.Agent) *models.AgentModel
	ToDomain(model *models.AgentModel) (*ticket.Agent, error)
}

type AgentMapperImpl struct{}

func NewAgentMapper() AgentMapper {
	return &AgentMapperImpl{}
}

func (m *AgentMapperImpl) ToModel(a *ticket.Agent) *models.AgentModel {
	return &models.AgentModel{
		ID:    a.ID(),
		Name:  a.Name(),
		Email: a.Email(),
	}
}

func (m *AgentMapperImpl) ToDomain(model *models.AgentModel) (*ticket.Agent, error) {
	return ticket.NewAgent(model.ID, model.Name, model.Email)
}
