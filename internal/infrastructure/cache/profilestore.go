package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"deskline/internal/domain/shopper"
)

// RedisProfileStore keeps each user's profile document as a JSON string.
type RedisProfileStore struct {
	client *redis.Client
	prefix string
}

func NewRedisProfileStore(client *redis.Client) shopper.ProfileStore {
	return &RedisProfileStore{
		client: client,
		prefix: "profile:",
	}
}

func (s *RedisProfileStore) Get(ctx context.Context, userID string) (*shopper.Profile, error) {
	data, err := s.client.Get(ctx, s.prefix+userID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile from redis: %w", err)
	}

	var profile shopper.Profile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &profile, nil
}

func (s *RedisProfileStore) Put(ctx context.Context, profile *shopper.Profile) error {
	if profile == nil || profile.UserID == "" {
		return errors.New("profile user ID is required")
	}

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+profile.UserID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store profile in redis: %w", err)
	}

	return nil
}
