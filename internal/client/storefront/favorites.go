// Package storefront holds the client services behind the shop front end:
// favorites with local/remote merging, the client-side item list, and the
// profile service with avatar uploads.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"deskline/internal/domain/shopper"
	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils/setutil"
)

const localFavoritesKey = "favorites"

// defaultNoticeTTL is how long the merge notice stays up before clearing
// itself.
const defaultNoticeTTL = 5 * time.Second

// LocalStore is the synchronous key-value store favorites live in while
// signed out.
type LocalStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// FavoritesEngine keeps the working favorites set consistent across
// sign-in boundaries. Signed out, toggles go to the local store; signing
// in merges local favorites into the remote set exactly once, after
// which the remote document is authoritative. A sign-in or sign-out that
// arrives while a previous merge is still running supersedes it: the
// older merge's write-backs are discarded by generation comparison.
type FavoritesEngine struct {
	local  LocalStore
	remote shopper.FavoriteStore
	logger logger.Interface

	noticeTTL time.Duration

	mu         sync.Mutex
	generation uint64
	signedIn   bool
	userID     string
	favorites  []string
	notice     string
	noticeSeq  uint64
	timer      *time.Timer
}

// EngineOption configures a FavoritesEngine.
type EngineOption func(*FavoritesEngine)

// WithNoticeTTL overrides how long the merge notice lingers.
func WithNoticeTTL(d time.Duration) EngineOption {
	return func(e *FavoritesEngine) {
		e.noticeTTL = d
	}
}

func NewFavoritesEngine(local LocalStore, remote shopper.FavoriteStore, log logger.Interface, opts ...EngineOption) *FavoritesEngine {
	e := &FavoritesEngine{
		local:     local,
		remote:    remote,
		logger:    log,
		noticeTTL: defaultNoticeTTL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load initializes the working set from the local store (the signed-out
// starting state).
func (e *FavoritesEngine) Load(ctx context.Context) error {
	local, err := e.loadLocal(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.favorites = local
	e.mu.Unlock()
	return nil
}

// SignIn merges the local favorites into the user's remote set.
//
// Empty local set: the remote set is simply adopted. Otherwise the union
// is persisted remotely, the local store is cleared, and a notice reports
// how many local favorites were new to the account. If persisting fails
// the engine silently falls back to the remote set and keeps the local
// favorites for a later attempt. SignIn never fails the sign-in itself.
func (e *FavoritesEngine) SignIn(ctx context.Context, userID string) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.signedIn = true
	e.userID = userID
	e.mu.Unlock()

	remote, err := e.remote.List(ctx, userID)
	if err != nil {
		e.logger.Warnw("failed to load remote favorites", "user_id", userID, "error", err)
		e.apply(gen, nil)
		return
	}

	local, err := e.loadLocal(ctx)
	if err != nil {
		e.logger.Warnw("failed to load local favorites", "error", err)
		local = nil
	}

	if len(local) == 0 {
		e.apply(gen, remote)
		return
	}

	merged := union(remote, local)
	mergedCount := len(merged) - len(remote)

	if err := e.remote.Replace(ctx, userID, merged); err != nil {
		// Fall back to the remote set; the local favorites stay put so
		// nothing is lost.
		e.logger.Warnw("failed to persist merged favorites", "user_id", userID, "error", err)
		e.apply(gen, remote)
		return
	}

	if !e.apply(gen, merged) {
		return
	}

	if err := e.local.Delete(ctx, localFavoritesKey); err != nil {
		e.logger.Warnw("failed to clear local favorites", "error", err)
	}

	if mergedCount > 0 {
		e.showNotice(mergeNotice(mergedCount))
	}
}

// SignOut reverts the working set to whatever is in the local store.
func (e *FavoritesEngine) SignOut(ctx context.Context) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.signedIn = false
	e.userID = ""
	e.mu.Unlock()

	local, err := e.loadLocal(ctx)
	if err != nil {
		e.logger.Warnw("failed to load local favorites", "error", err)
		local = nil
	}

	e.apply(gen, local)
}

// Toggle adds or removes a favorite, routing the write to the remote set
// when signed in and to the local store otherwise.
func (e *FavoritesEngine) Toggle(ctx context.Context, itemID string) error {
	e.mu.Lock()
	signedIn := e.signedIn
	userID := e.userID
	adding := !contains(e.favorites, itemID)
	if adding {
		e.favorites = append(e.favorites, itemID)
	} else {
		e.favorites = remove(e.favorites, itemID)
	}
	updated := append([]string(nil), e.favorites...)
	e.mu.Unlock()

	var err error
	if signedIn {
		if adding {
			err = e.remote.Add(ctx, userID, itemID)
		} else {
			err = e.remote.Remove(ctx, userID, itemID)
		}
	} else {
		err = e.saveLocal(ctx, updated)
	}

	if err != nil {
		// Roll the optimistic update back.
		e.mu.Lock()
		if adding {
			e.favorites = remove(e.favorites, itemID)
		} else if !contains(e.favorites, itemID) {
			e.favorites = append(e.favorites, itemID)
		}
		e.mu.Unlock()
		return err
	}

	return nil
}

// Favorites returns a copy of the working set.
func (e *FavoritesEngine) Favorites() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.favorites...)
}

// IsFavorite reports whether the item is in the working set.
func (e *FavoritesEngine) IsFavorite(itemID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return contains(e.favorites, itemID)
}

// Notice returns the current merge notice, if one is showing.
func (e *FavoritesEngine) Notice() (string, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.notice, e.notice != ""
}

// DismissNotice clears the notice immediately.
func (e *FavoritesEngine) DismissNotice() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clearNoticeLocked()
}

// apply installs a working set if this generation is still current. It
// reports whether the write-back was applied.
func (e *FavoritesEngine) apply(gen uint64, favorites []string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		return false
	}
	if favorites == nil {
		favorites = []string{}
	}
	e.favorites = favorites
	return true
}

func (e *FavoritesEngine) showNotice(message string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.noticeSeq++
	seq := e.noticeSeq
	e.notice = message

	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.noticeTTL, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.noticeSeq == seq {
			e.clearNoticeLocked()
		}
	})
}

func (e *FavoritesEngine) clearNoticeLocked() {
	e.notice = ""
	e.noticeSeq++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *FavoritesEngine) loadLocal(ctx context.Context) ([]string, error) {
	raw, err := e.local.Get(ctx, localFavoritesKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		// A corrupt entry behaves like an empty one.
		e.logger.Warnw("discarding corrupt local favorites", "error", err)
		return nil, nil
	}
	return ids, nil
}

func (e *FavoritesEngine) saveLocal(ctx context.Context, ids []string) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return e.local.Set(ctx, localFavoritesKey, string(data))
}

func mergeNotice(count int) string {
	if count == 1 {
		return "Your 1 local favorite has been merged with your account favorites!"
	}
	return fmt.Sprintf("Your %d local favorites have been merged with your account favorites!", count)
}

// union keeps the remote order and appends local additions in their own
// order, deduplicated.
func union(remote, local []string) []string {
	set := setutil.NewStringSetWithCap(len(remote) + len(local))
	set.AddAll(remote)
	set.AddAll(local)
	return set.ToSlice()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
