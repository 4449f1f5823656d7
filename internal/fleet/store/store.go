// Package store holds the latest fleet snapshot. Only the most recent
// snapshot is retained: durable history is out of scope, so the Redis
// implementation is a TTL cache for sharing the current state across
// replicas, not a database.
package store

import (
	"context"

	"chipscope/internal/fleet"
)

// SnapshotStore publishes and retrieves the latest fleet snapshot.
type SnapshotStore interface {
	// Put replaces the latest snapshot.
	Put(ctx context.Context, snap *fleet.Snapshot) error
	// Latest returns the most recent snapshot, or sentinel.ErrNotFound when
	// no poll has completed yet.
	Latest(ctx context.Context) (*fleet.Snapshot, error)
	// Health reports whether the backing store is reachable.
	Health(ctx context.Context) error
}
