package usecases

import (
	"context"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/domain/ticket"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type GetTicketLogQuery struct {
	TicketID string
}

type GetTicketLogResult struct {
	Entries []dto.LogEntryDTO
}

type GetTicketLogUseCase struct {
	logRepo ticket.LogRepository
	logger  logger.Interface
}

func NewGetTicketLogUseCase(
	logRepo ticket.LogRepository,
	logger logger.Interface,
) *GetTicketLogUseCase {
	return &GetTicketLogUseCase{
		logRepo: logRepo,
		logger:  logger,
	}
}

func (uc *GetTicketLogUseCase) Execute(ctx context.Context, query GetTicketLogQuery) (*GetTicketLogResult, error) {
	if query.TicketID == "" {
		return nil, errors.NewValidationError("ticketId is required")
	}

	entries, err := uc.logRepo.ListByTicketID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to list ticket log", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to list ticket log")
	}

	return &GetTicketLogResult{Entries: dto.ToLogEntryDTOs(entries)}, nil
}
