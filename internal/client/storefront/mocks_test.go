package storefront

import (
	"context"
	"sync"

	"deskline/internal/client/api"
	"deskline/internal/compress"
	"deskline/internal/domain/shopper"
	"deskline/internal/shared/logger"
)

// mockLocalStore is an in-memory LocalStore.
type mockLocalStore struct {
	mu   sync.Mutex
	data map[string]string

	GetFunc    func(ctx context.Context, key string) (string, error)
	SetFunc    func(ctx context.Context, key, value string) error
	DeleteFunc func(ctx context.Context, key string) error
}

func newMockLocalStore() *mockLocalStore {
	return &mockLocalStore{data: make(map[string]string)}
}

func (m *mockLocalStore) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *mockLocalStore) Set(ctx context.Context, key, value string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *mockLocalStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// mockFavoriteStore is an in-memory shopper.FavoriteStore.
type mockFavoriteStore struct {
	mu   sync.Mutex
	sets map[string][]string

	ListFunc    func(ctx context.Context, userID string) ([]string, error)
	ReplaceFunc func(ctx context.Context, userID string, itemIDs []string) error
	AddFunc     func(ctx context.Context, userID, itemID string) error
	RemoveFunc  func(ctx context.Context, userID, itemID string) error
}

func newMockFavoriteStore() *mockFavoriteStore {
	return &mockFavoriteStore{sets: make(map[string][]string)}
}

func (m *mockFavoriteStore) List(ctx context.Context, userID string) ([]string, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sets[userID]...), nil
}

func (m *mockFavoriteStore) Replace(ctx context.Context, userID string, itemIDs []string) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, userID, itemIDs)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[userID] = append([]string(nil), itemIDs...)
	return nil
}

func (m *mockFavoriteStore) Add(ctx context.Context, userID, itemID string) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, userID, itemID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets[userID] = append(m.sets[userID], itemID)
	return nil
}

func (m *mockFavoriteStore) Remove(ctx context.Context, userID, itemID string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, userID, itemID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.sets[userID][:0]
	for _, id := range m.sets[userID] {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	m.sets[userID] = kept
	return nil
}

func (m *mockFavoriteStore) stored(userID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sets[userID]...)
}

// mockProfileStore is an in-memory shopper.ProfileStore.
type mockProfileStore struct {
	mu       sync.Mutex
	profiles map[string]*shopper.Profile

	GetFunc func(ctx context.Context, userID string) (*shopper.Profile, error)
	PutFunc func(ctx context.Context, profile *shopper.Profile) error
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[string]*shopper.Profile)}
}

func (m *mockProfileStore) Get(ctx context.Context, userID string) (*shopper.Profile, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, userID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (m *mockProfileStore) Put(ctx context.Context, profile *shopper.Profile) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, profile)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *profile
	m.profiles[profile.UserID] = &copied
	return nil
}

type mockItemLister struct {
	ListItemsFunc func(ctx context.Context) ([]api.Item, error)
}

func (m *mockItemLister) ListItems(ctx context.Context) ([]api.Item, error) {
	return m.ListItemsFunc(ctx)
}

type mockCompressor struct {
	CompressFunc func(ctx context.Context, req compress.Request) (*compress.Result, error)
}

func (m *mockCompressor) Compress(ctx context.Context, req compress.Request) (*compress.Result, error) {
	return m.CompressFunc(ctx, req)
}

type mockObjectStorage struct {
	StoreFunc func(ctx context.Context, name string, data []byte) (string, error)
}

func (m *mockObjectStorage) Store(ctx context.Context, name string, data []byte) (string, error) {
	return m.StoreFunc(ctx, name, data)
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
