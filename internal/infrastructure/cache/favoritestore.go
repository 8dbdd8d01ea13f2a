package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"deskline/internal/domain/shopper"
)

// RedisFavoriteStore keeps each user's favorites in a redis set.
type RedisFavoriteStore struct {
	client *redis.Client
	prefix string
}

func NewRedisFavoriteStore(client *redis.Client) shopper.FavoriteStore {
	return &RedisFavoriteStore{
		client: client,
		prefix: "favorites:",
	}
}

func (s *RedisFavoriteStore) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := s.client.SMembers(ctx, s.buildKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites from redis: %w", err)
	}
	return ids, nil
}

func (s *RedisFavoriteStore) Replace(ctx context.Context, userID string, itemIDs []string) error {
	key := s.buildKey(userID)

	// Del plus SAdd in one transaction so readers never observe a
	// half-written set.
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(itemIDs) > 0 {
		members := make([]interface{}, len(itemIDs))
		for i, id := range itemIDs {
			members[i] = id
		}
		pipe.SAdd(ctx, key, members...)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace favorites in redis: %w", err)
	}

	return nil
}

func (s *RedisFavoriteStore) Add(ctx context.Context, userID, itemID string) error {
	if err := s.client.SAdd(ctx, s.buildKey(userID), itemID).Err(); err != nil {
		return fmt.Errorf("failed to add favorite in redis: %w", err)
	}
	return nil
}

func (s *RedisFavoriteStore) Remove(ctx context.Context, userID, itemID string) error {
	if err := s.client.SRem(ctx, s.buildKey(userID), itemID).Err(); err != nil {
		return fmt.Errorf("failed to remove favorite in redis: %w", err)
	}
	return nil
}

func (s *RedisFavoriteStore) buildKey(userID string) string {
	return s.prefix + userID
}
