package usecases

import (
	"context"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/domain/ticket"
	"deskline/internal/shared/constants"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils"
)

type ListTicketsQuery struct {
	Status   string
	AgentID  string
	Priority string
	Q        string
	Page     int
	Limit    int
}

type ListTicketsResult struct {
	Tickets    []dto.TicketDTO
	Page       int
	TotalPages int
	TotalItems int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case",
		"status", query.Status,
		"agent_id", query.AgentID,
		"page", query.Page,
		"limit", query.Limit)

	if query.Limit <= 0 {
		query.Limit = constants.DefaultLimit
	}
	if query.Limit > constants.MaxLimit {
		query.Limit = constants.MaxLimit
	}
	if query.Page < 1 {
		query.Page = constants.DefaultPage
	}

	filter := ticket.Filter{
		Status:   query.Status,
		AgentID:  query.AgentID,
		Priority: query.Priority,
		Q:        query.Q,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	tickets, totalItems, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTicketsResult{
		Tickets:    dto.ToTicketDTOs(tickets),
		Page:       query.Page,
		TotalPages: utils.TotalPages(totalItems, query.Limit),
		TotalItems: totalItems,
	}, nil
}
