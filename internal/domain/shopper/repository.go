package shopper

import "context"

// FavoriteStore is the remote per-user favorites document.
type FavoriteStore interface {
	// List returns the stored item IDs; an unknown user yields an empty set.
	List(ctx context.Context, userID string) ([]string, error)
	// Replace overwrites the whole favorites set.
	Replace(ctx context.Context, userID string, itemIDs []string) error
	Add(ctx context.Context, userID, itemID string) error
	Remove(ctx context.Context, userID, itemID string) error
}

// ProfileStore is the remote per-user profile document.
type ProfileStore interface {
	// Get returns nil without error when no profile exists yet.
	Get(ctx context.Context, userID string) (*Profile, error)
	Put(ctx context.Context, profile *Profile) error
}
