package usecases

import (
	"context"
	"strings"

	"deskline/internal/application/ticket/dto"
	"deskline/internal/domain/ticket"
	vo "deskline/internal/domain/ticket/valueobjects"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID string
	Status   string
	Comment  string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	logRepo    ticket.LogRepository
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.Repository,
	logRepo ticket.LogRepository,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		logRepo:    logRepo,
		logger:     logger,
	}
}

// Execute changes a ticket's status and appends exactly one log entry
// recording the transition. The returned DTO is the full updated ticket.
func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "status", cmd.Status)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid change status command", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	newStatus, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError("Invalid status")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	from, err := t.ChangeStatus(newStatus)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	entry, err := ticket.NewStatusChangeLog(t.ID(), from, newStatus, strings.TrimSpace(cmd.Comment))
	if err != nil {
		return nil, errors.NewInternalError("failed to create log entry")
	}

	if err := uc.logRepo.Append(ctx, entry); err != nil {
		uc.logger.Errorw("failed to append ticket log", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to append ticket log")
	}

	uc.logger.Infow("ticket status changed",
		"ticket_id", t.ID(),
		"from", from.String(),
		"to", newStatus.String())

	result := dto.ToTicketDTO(t)
	return &result, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == "" {
		return errors.NewValidationError("ticket ID is required")
	}

	if cmd.Status == "" {
		return errors.NewValidationError("status is required")
	}

	if strings.TrimSpace(cmd.Comment) == "" {
		return errors.NewValidationError("comment is required")
	}

	return nil
}
