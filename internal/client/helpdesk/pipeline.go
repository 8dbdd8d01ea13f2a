package helpdesk

import (
	"context"
	"strings"
	"sync"

	"deskline/internal/client/api"
	"deskline/internal/shared/errors"
	"deskline/internal/shared/logger"
)

// TicketMutator is the slice of the API client the pipeline needs.
type TicketMutator interface {
	ChangeTicketStatus(ctx context.Context, id, status, comment string) (*api.TicketPatch, error)
	ListTicketLog(ctx context.Context, ticketID string) ([]api.LogEntry, error)
}

// TicketView is what the detail screen renders: the ticket, its change
// log newest first, the draft comment, and the submission state.
type TicketView struct {
	Ticket  api.Ticket
	Log     []api.LogEntry
	Comment string
	Saving  bool
	Error   string
}

// StatusChangePipeline runs status mutations for one ticket with an
// exhaust discipline: while a submission is in flight, further submits
// are dropped rather than queued. Validation failures never reach the
// network, and the draft comment survives everything except a successful
// submission.
type StatusChangePipeline struct {
	ticketID string
	mutator  TicketMutator
	logger   logger.Interface

	mu   sync.Mutex
	view TicketView
}

func NewStatusChangePipeline(
	ticket api.Ticket,
	log []api.LogEntry,
	mutator TicketMutator,
	logger logger.Interface,
) *StatusChangePipeline {
	return &StatusChangePipeline{
		ticketID: ticket.ID,
		mutator:  mutator,
		logger:   logger,
		view: TicketView{
			Ticket: ticket,
			Log:    log,
		},
	}
}

// View returns a copy of the current view state.
func (p *StatusChangePipeline) View() TicketView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// SetComment updates the draft comment.
func (p *StatusChangePipeline) SetComment(comment string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.view.Comment = comment
}

// Submit tries to change the ticket's status. It reports false when the
// submission was not accepted: either a prior one is still in flight, or
// validation failed locally. An accepted submission that the server
// rejects still returns true; the failure lands in the view's Error.
func (p *StatusChangePipeline) Submit(ctx context.Context, status, comment string) bool {
	p.mu.Lock()

	if p.view.Saving {
		p.mu.Unlock()
		return false
	}

	if status == "" {
		p.view.Error = "status is required"
		p.mu.Unlock()
		return false
	}
	trimmed := strings.TrimSpace(comment)
	if trimmed == "" {
		p.view.Error = "comment is required"
		p.mu.Unlock()
		return false
	}

	p.view.Saving = true
	p.view.Error = ""
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.view.Saving = false
		p.mu.Unlock()
	}()

	patch, err := p.mutator.ChangeTicketStatus(ctx, p.ticketID, status, trimmed)
	if err != nil {
		p.logger.Warnw("status change rejected",
			"ticket_id", p.ticketID,
			"status", status,
			"error", err)

		p.mu.Lock()
		p.view.Error = errors.UserMessage(err)
		p.mu.Unlock()
		return true
	}

	entries, logErr := p.mutator.ListTicketLog(ctx, p.ticketID)
	if logErr != nil {
		// The mutation itself succeeded; a failed log refresh keeps the
		// previous entries on screen.
		p.logger.Warnw("failed to refresh ticket log", "ticket_id", p.ticketID, "error", logErr)
	}

	p.mu.Lock()
	p.view.Ticket = patch.Apply(p.view.Ticket)
	if logErr == nil {
		p.view.Log = entries
	}
	p.view.Comment = ""
	p.mu.Unlock()

	return true
}
