package usecases

import (
	"context"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/domain/ticket"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type ListAgentsResult struct {
	Agents []dto.AgentDTO
}

type ListAgentsUseCase struct {
	agentRepo ticket.AgentRepository
	logger    logger.Interface
}

func NewListAgentsUseCase(
	agentRepo ticket.AgentRepository,
	logger logger.Interface,
) *ListAgentsUseCase {
	return &ListAgentsUseCase{
		agentRepo: agentRepo,
		logger:    logger,
	}
}

func (uc *ListAgentsUseCase) Execute(ctx context.Context) (*ListAgentsResult, error) {
	agents, err := uc.agentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list agents", "error", err)
		return nil, errors.NewInternalError("failed to list agents")
	}

	return &ListAgentsResult{Agents: dto.ToAgentDTOs(agents)}, nil
}
