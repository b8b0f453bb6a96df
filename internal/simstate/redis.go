package simstate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Simulated positions are disposable; let stale entries expire.
const positionTTL = 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Store backed by redis, for deployments where
// multiple instances should share the simulated positions.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) key(userID string) string {
	return fmt.Sprintf("simstate:position:%s", userID)
}

func (s *redisStore) Get(ctx context.Context, userID string) (Position, bool, error) {
	data, err := s.client.Get(ctx, s.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Position{}, false, nil
		}
		return Position{}, false, fmt.Errorf("failed to read position for %s: %w", userID, err)
	}

	var pos Position
	if err := json.Unmarshal(data, &pos); err != nil {
		return Position{}, false, fmt.Errorf("failed to decode position for %s: %w", userID, err)
	}
	return pos, true, nil
}

func (s *redisStore) Put(ctx context.Context, userID string, pos Position) error {
	data, err := json.Marshal(pos)
	if err != nil {
		return fmt.Errorf("failed to encode position for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, s.key(userID), data, positionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store position for %s: %w", userID, err)
	}
	return nil
}
