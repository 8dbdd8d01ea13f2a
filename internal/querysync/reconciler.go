package querysync

import (
	"context"
	"sync"

	"deskline/internal/shared/goroutine"
	"deskline/internal/shared/logger"
)

type FetchState int

const (
	StateLoading FetchState = iota
	StateLoaded
	StateFailed
)

// Snapshot is one observable point in a list view's lifecycle.
type Snapshot[Q, T any] struct {
	State FetchState
	Query Q
	Page  T
	Err   error
}

// Provider fetches the page of results for a query state. It must honor
// context cancellation.
type Provider[Q, T any] func(ctx context.Context, query Q) (T, error)

// Reconciler serializes query state changes against their fetches so the
// most recently requested state always wins. Every distinct state runs
// exactly one fetch; a fetch superseded by a newer Set is cancelled, and
// if it resolves anyway its result is discarded by generation comparison.
// There is no automatic retry: a failed fetch stays failed until the next
// state change.
type Reconciler[Q interface{ Equal(Q) bool }, T any] struct {
	provider Provider[Q, T]
	logger   logger.Interface

	mu         sync.Mutex
	generation uint64
	hasCurrent bool
	current    Q
	cancel     context.CancelFunc
	updates    chan Snapshot[Q, T]
	closed     bool
}

func NewReconciler[Q interface{ Equal(Q) bool }, T any](
	provider Provider[Q, T],
	log logger.Interface,
) *Reconciler[Q, T] {
	return &Reconciler[Q, T]{
		provider: provider,
		logger:   log,
		updates:  make(chan Snapshot[Q, T], 64),
	}
}

// Updates is the stream of snapshots. A slow consumer loses the oldest
// snapshots first; the latest one is always retained.
func (r *Reconciler[Q, T]) Updates() <-chan Snapshot[Q, T] {
	return r.updates
}

// Set requests a new query state. A state structurally equal to the
// current one is ignored; anything else cancels the outstanding fetch
// and starts exactly one new fetch.
func (r *Reconciler[Q, T]) Set(query Q) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	if r.hasCurrent && r.current.Equal(query) {
		return
	}

	r.generation++
	gen := r.generation
	r.hasCurrent = true
	r.current = query

	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.publishLocked(Snapshot[Q, T]{State: StateLoading, Query: query})

	goroutine.SafeGo(r.logger, "querysync.fetch", func() {
		page, err := r.provider(ctx, query)

		r.mu.Lock()
		defer r.mu.Unlock()

		// A newer Set has superseded this fetch; its result is stale
		// regardless of when it arrived.
		if r.closed || gen != r.generation {
			return
		}

		if err != nil {
			r.publishLocked(Snapshot[Q, T]{State: StateFailed, Query: query, Err: err})
			return
		}
		r.publishLocked(Snapshot[Q, T]{State: StateLoaded, Query: query, Page: page})
	})
}

// Current returns the active query state, if any.
func (r *Reconciler[Q, T]) Current() (Q, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.hasCurrent
}

// Close cancels any in-flight fetch and closes the updates channel.
func (r *Reconciler[Q, T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true

	if r.cancel != nil {
		r.cancel()
	}
	close(r.updates)
}

func (r *Reconciler[Q, T]) publishLocked(s Snapshot[Q, T]) {
	for {
		select {
		case r.updates <- s:
			return
		default:
		}
		// Buffer full: shed the oldest snapshot.
		select {
		case <-r.updates:
		default:
		}
	}
}
