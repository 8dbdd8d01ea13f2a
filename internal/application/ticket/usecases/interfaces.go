package usecases

import (
	"context"

	"deskline/internal/application/ticket/dto"
)

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error)
}

type GetTicketLogExecutor interface {
	Execute(ctx context.Context, query GetTicketLogQuery) (*GetTicketLogResult, error)
}

type ChangeStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error)
}

type ListAgentsExecutor interface {
	Execute(ctx context.Context) (*ListAgentsResult, error)
}
