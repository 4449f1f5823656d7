package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chipscope/internal/fleet"
	"chipscope/pkg/platform/sentinel"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()

	snap, err := s.Latest(context.Background())
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.NoError(t, s.Health(context.Background()))
}

func TestMemoryStorePutReplaces(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	first := &fleet.Snapshot{ID: "first"}
	require.NoError(t, s.Put(ctx, first))

	got, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first", got.ID)

	second := &fleet.Snapshot{ID: "second"}
	require.NoError(t, s.Put(ctx, second))

	got, err = s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Put(ctx, &fleet.Snapshot{ID: "x"})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Latest(ctx)
		}()
	}
	wg.Wait()

	got, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", got.ID)
}
