// Package helpdesk holds the view-model services behind the ticket board:
// the board listing with its query state, and the status change pipeline
// for a single ticket.
package helpdesk

import (
	"context"

	"deskline/internal/client/api"
	"deskline/internal/querysync"
	"deskline/internal/shared/logger"
)

// TicketLister is the slice of the API client the board needs.
type TicketLister interface {
	ListTickets(ctx context.Context, query querysync.TicketQuery) (*api.TicketPage, error)
}

// BoardService drives the ticket board: it owns the query state, runs
// fetches through the reconciler so the newest state always wins, and
// exposes the resulting snapshots.
type BoardService struct {
	reconciler *querysync.Reconciler[querysync.TicketQuery, *api.TicketPage]
}

func NewBoardService(lister TicketLister, log logger.Interface) *BoardService {
	provider := func(ctx context.Context, q querysync.TicketQuery) (*api.TicketPage, error) {
		return lister.ListTickets(ctx, q)
	}

	return &BoardService{
		reconciler: querysync.NewReconciler(provider, log),
	}
}

// Updates streams board snapshots: loading, loaded, or failed.
func (s *BoardService) Updates() <-chan querysync.Snapshot[querysync.TicketQuery, *api.TicketPage] {
	return s.reconciler.Updates()
}

// SetQuery requests a full query state, deduplicating repeats.
func (s *BoardService) SetQuery(q querysync.TicketQuery) {
	s.reconciler.Set(q)
}

// SetFromParams restores the board from flat string parameters, e.g. a
// bookmarked URL. Decoding never fails.
func (s *BoardService) SetFromParams(params map[string]string) {
	s.reconciler.Set(querysync.DecodeTicketQuery(params))
}

// ApplyFilter changes the filter fields and resets to the first page, as
// a filter change invalidates the current page position.
func (s *BoardService) ApplyFilter(status, agentID, priority, q string) {
	query := s.currentOrDefault()
	query.Status = status
	query.AgentID = agentID
	query.Priority = priority
	query.Q = q
	query.Page = 1
	s.reconciler.Set(query)
}

// SetPage navigates to a page keeping the filters.
func (s *BoardService) SetPage(page int) {
	query := s.currentOrDefault()
	query.Page = page
	s.reconciler.Set(query)
}

// Query returns the current query state for URL synchronization.
func (s *BoardService) Query() querysync.TicketQuery {
	return s.currentOrDefault()
}

// Params returns the current state encoded as flat parameters with
// defaults omitted.
func (s *BoardService) Params() map[string]string {
	return s.currentOrDefault().Encode()
}

func (s *BoardService) currentOrDefault() querysync.TicketQuery {
	if q, ok := s.reconciler.Current(); ok {
		return q
	}
	return querysync.DefaultTicketQuery()
}

// Close cancels any in-flight fetch and ends the updates stream.
func (s *BoardService) Close() {
	s.reconciler.Close()
}
