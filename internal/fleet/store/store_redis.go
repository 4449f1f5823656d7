package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"chipscope/internal/fleet"
	"chipscope/internal/platform/redis"
	"chipscope/pkg/platform/sentinel"
)

const (
	latestKey = "chipscope:snapshot:latest"
	// Snapshots go stale quickly; anything older than a few poll cycles is
	// worthless, so let Redis expire it rather than serve dead data.
	defaultTTL = 10 * time.Minute
)

// RedisStore shares the latest snapshot across replicas through a single
// JSON-encoded key with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps a connected platform redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, ttl: defaultTTL}
}

// Put replaces the latest snapshot.
func (s *RedisStore) Put(ctx context.Context, snap *fleet.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, latestKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recent snapshot.
func (s *RedisStore) Latest(ctx context.Context) (*fleet.Snapshot, error) {
	raw, err := s.client.Get(ctx, latestKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var snap fleet.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snap, nil
}

// Health checks the Redis connection.
func (s *RedisStore) Health(ctx context.Context) error {
	return s.client.Health(ctx)
}
