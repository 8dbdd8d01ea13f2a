package helpdesk

import (
	"context"

	"deskline/internal/client/api"
	"deskline/internal/querysync"
	"deskline/internal/shared/logger"
)

type mockAPI struct {
	ListTicketsFunc        func(ctx context.Context, query querysync.TicketQuery) (*api.TicketPage, error)
	ChangeTicketStatusFunc func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error)
	ListTicketLogFunc      func(ctx context.Context, ticketID string) ([]api.LogEntry, error)
}

func (m *mockAPI) ListTickets(ctx context.Context, query querysync.TicketQuery) (*api.TicketPage, error) {
	if m.ListTicketsFunc != nil {
		return m.ListTicketsFunc(ctx, query)
	}
	return &api.TicketPage{Page: query.Page, TotalPages: 1}, nil
}

func (m *mockAPI) ChangeTicketStatus(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
	if m.ChangeTicketStatusFunc != nil {
		return m.ChangeTicketStatusFunc(ctx, id, status, comment)
	}
	return &api.TicketPatch{}, nil
}

func (m *mockAPI) ListTicketLog(ctx context.Context, ticketID string) ([]api.LogEntry, error) {
	if m.ListTicketLogFunc != nil {
		return m.ListTicketLogFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)        {}
func (m *mockLogger) Info(msg string, args ...any)         {}
func (m *mockLogger) Warn(msg string, args ...any)         {}
func (m *mockLogger) Error(msg string, args ...any)        {}
func (m *mockLogger) Debugw(msg string, kv ...interface{}) {}
func (m *mockLogger) Infow(msg string, kv ...interface{})  {}
func (m *mockLogger) Warnw(msg string, kv ...interface{})  {}
func (m *mockLogger) Errorw(msg string, kv ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface    { return m }
func (m *mockLogger) Named(name string) logger.Interface   { return m }
