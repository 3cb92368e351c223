package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/goals/internal/application/adapter"
)

// redisStore implements the adapter.KeyValueStore interface on Redis strings.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a new Redis-backed key-value store.
func NewRedisStore(client *redis.Client) adapter.KeyValueStore {
	return &redisStore{
		client: client,
	}
}

// Get retrieves the value stored under key.
func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set stores value under key without expiration.
func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// HealthCheck pings the Redis server.
func (s *redisStore) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		slog.Error("Redis health check failed", "error", err)
		return false
	}
	return true
}
