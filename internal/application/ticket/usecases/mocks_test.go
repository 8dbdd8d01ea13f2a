package usecases

import (
	"context"

	"deskline/internal/domain/ticket"
	"deskline/internal/shared/logger"
)

type mockTicketRepository struct {
	ListFunc     func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	FindByIDFunc func(ctx context.Context, id string) (*ticket.Ticket, error)
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc   func(ctx context.Context, t *ticket.Ticket) error
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id string) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

type mockLogRepository struct {
	AppendFunc         func(ctx context.Context, entry *ticket.LogEntry) error
	ListByTicketIDFunc func(ctx context.Context, ticketID string) ([]*ticket.LogEntry, error)
}

func (m *mockLogRepository) Append(ctx context.Context, entry *ticket.LogEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockLogRepository) ListByTicketID(ctx context.Context, ticketID string) ([]*ticket.LogEntry, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAgentRepository struct {
	ListFunc     func(ctx context.Context) ([]*ticket.Agent, error)
	FindByIDFunc func(ctx context.Context, id string) (*ticket.Agent, error)
	SaveFunc     func(ctx context.Context, a *ticket.Agent) error
}

func (m *mockAgentRepository) List(ctx context.Context) ([]*ticket.Agent, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockAgentRepository) FindByID(ctx context.Context, id string) (*ticket.Agent, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockAgentRepository) Save(ctx context.Context, a *ticket.Agent) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)            {}
func (m *mockLogger) Info(msg string, args ...any)             {}
func (m *mockLogger) Warn(msg string, args ...any)             {}
func (m *mockLogger) Error(msg string, args ...any)            {}
func (m *mockLogger) Debugw(msg string, kv ...interface{})     {}
func (m *mockLogger) Infow(msg string, kv ...interface{})      {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})      {}
func (m *mockLogger) Errorw(msg string, kv ...interface{})     {}
func (m *mockLogger) With(args ...any) logger.Interface        { return m }
func (m *mockLogger) Named(name string) logger.Interface       { return m }
