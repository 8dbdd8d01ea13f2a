package helpdesk

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskline/internal/client/api"
	"deskline/internal/shared/errors"
)

func strPtr(s string) *string { return &s }

func newTestTicket() api.Ticket {
	return api.Ticket{
		ID:          "t-1",
		Title:       "Printer on fire",
		Description: "It started smoking",
		Status:      "open",
		Priority:    "critical",
		AgentID:     "agent-1",
	}
}

func TestPipeline_Submit_Success(t *testing.T) {
	now := time.Now().UTC()
	mock := &mockAPI{
		ChangeTicketStatusFunc: func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
			return &api.TicketPatch{
				ID:        strPtr(id),
				Status:    strPtr(status),
				UpdatedAt: &now,
			}, nil
		},
		ListTicketLogFunc: func(ctx context.Context, ticketID string) ([]api.LogEntry, error) {
			return []api.LogEntry{
				{ID: "l-2", TicketID: ticketID, Action: "status_changed", From: "open", To: "in_progress", Comment: "on it"},
				{ID: "l-1", TicketID: ticketID, Action: "status_changed", From: "new", To: "open", Comment: "triaged"},
			}, nil
		},
	}

	p := NewStatusChangePipeline(newTestTicket(), nil, mock, &mockLogger{})
	p.SetComment("on it")

	accepted := p.Submit(context.Background(), "in_progress", "on it")
	require.True(t, accepted)

	view := p.View()
	assert.Equal(t, "in_progress", view.Ticket.Status)
	assert.Equal(t, "Printer on fire", view.Ticket.Title, "fields absent from the patch keep their values")
	assert.Equal(t, now, view.Ticket.UpdatedAt)
	require.Len(t, view.Log, 2)
	assert.Equal(t, "l-2", view.Log[0].ID, "newest entry first")
	assert.Empty(t, view.Comment, "comment clears only after success")
	assert.Empty(t, view.Error)
	assert.False(t, view.Saving)
}

func TestPipeline_Submit_FailFastValidation(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		comment string
		wantErr string
	}{
		{name: "empty status", status: "", comment: "hello", wantErr: "status is required"},
		{name: "empty comment", status: "closed", comment: "", wantErr: "comment is required"},
		{name: "whitespace comment", status: "closed", comment: "  \t ", wantErr: "comment is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			networkCalled := false
			mock := &mockAPI{
				ChangeTicketStatusFunc: func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
					networkCalled = true
					return &api.TicketPatch{}, nil
				},
			}

			p := NewStatusChangePipeline(newTestTicket(), nil, mock, &mockLogger{})
			p.SetComment(tt.comment)

			accepted := p.Submit(context.Background(), tt.status, tt.comment)

			assert.False(t, accepted)
			assert.False(t, networkCalled, "validation failures must not reach the network")

			view := p.View()
			assert.Equal(t, tt.wantErr, view.Error)
			assert.Equal(t, tt.comment, view.Comment, "draft comment survives a validation failure")
			assert.Equal(t, "open", view.Ticket.Status)
		})
	}
}

func TestPipeline_Submit_ServerRejection(t *testing.T) {
	mock := &mockAPI{
		ChangeTicketStatusFunc: func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
			return nil, errors.NewValidationError("Invalid status")
		},
	}

	p := NewStatusChangePipeline(newTestTicket(), []api.LogEntry{{ID: "l-1"}}, mock, &mockLogger{})
	p.SetComment("try this")

	accepted := p.Submit(context.Background(), "escalated", "try this")
	require.True(t, accepted)

	view := p.View()
	assert.Equal(t, "Invalid status", view.Error)
	assert.Equal(t, "open", view.Ticket.Status, "view untouched on failure")
	assert.Equal(t, "try this", view.Comment, "comment survives a failed submission")
	require.Len(t, view.Log, 1)
	assert.False(t, view.Saving, "loading flag resets on failure")
}

func TestPipeline_Submit_ExhaustsWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	var calls int
	var mu sync.Mutex

	mock := &mockAPI{
		ChangeTicketStatusFunc: func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
			mu.Lock()
			calls++
			mu.Unlock()
			<-release
			return &api.TicketPatch{Status: strPtr(status)}, nil
		},
	}

	p := NewStatusChangePipeline(newTestTicket(), nil, mock, &mockLogger{})

	var wg sync.WaitGroup
	wg.Add(1)
	firstAccepted := false
	go func() {
		defer wg.Done()
		firstAccepted = p.Submit(context.Background(), "in_progress", "first")
	}()

	// Wait until the first submission is holding the in-flight flag.
	require.Eventually(t, func() bool {
		return p.View().Saving
	}, time.Second, time.Millisecond)

	secondAccepted := p.Submit(context.Background(), "resolved", "second")
	assert.False(t, secondAccepted, "submits during flight are dropped")

	close(release)
	wg.Wait()

	assert.True(t, firstAccepted)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, calls, "exactly one network call")
	assert.Equal(t, "in_progress", p.View().Ticket.Status)
}

func TestPipeline_Submit_LogRefreshFailureKeepsOldLog(t *testing.T) {
	mock := &mockAPI{
		ChangeTicketStatusFunc: func(ctx context.Context, id, status, comment string) (*api.TicketPatch, error) {
			return &api.TicketPatch{Status: strPtr(status)}, nil
		},
		ListTicketLogFunc: func(ctx context.Context, ticketID string) ([]api.LogEntry, error) {
			return nil, errors.NewNetworkError("log fetch failed")
		},
	}

	existing := []api.LogEntry{{ID: "l-1", Comment: "old"}}
	p := NewStatusChangePipeline(newTestTicket(), existing, mock, &mockLogger{})

	accepted := p.Submit(context.Background(), "resolved", "done")
	require.True(t, accepted)

	view := p.View()
	assert.Equal(t, "resolved", view.Ticket.Status)
	require.Len(t, view.Log, 1)
	assert.Equal(t, "l-1", view.Log[0].ID)
	assert.Empty(t, view.Comment)
}
