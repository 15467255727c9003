package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newClockedStore(t *testing.T) (*MemoryStore, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	store := NewMemoryStore(WithClock(clock.Now), WithSweepInterval(time.Hour))
	t.Cleanup(func() { _ = store.Close() })
	return store, clock
}

func TestMemoryStore_MarkProcessed(t *testing.T) {
	ctx := context.Background()

	t.Run("first delivery is new", func(t *testing.T) {
		store, _ := newClockedStore(t)
		isNew, err := store.MarkProcessed(ctx, "attendance-1", time.Hour)
		require.NoError(t, err)
		assert.True(t, isNew)
	})

	t.Run("redelivery inside ttl is a duplicate", func(t *testing.T) {
		store, clock := newClockedStore(t)
		_, err := store.MarkProcessed(ctx, "payment-1", time.Hour)
		require.NoError(t, err)

		clock.Advance(59 * time.Minute)
		isNew, err := store.MarkProcessed(ctx, "payment-1", time.Hour)
		require.NoError(t, err)
		assert.False(t, isNew)
	})

	t.Run("redelivery after ttl is new again", func(t *testing.T) {
		store, clock := newClockedStore(t)
		_, err := store.MarkProcessed(ctx, "payment-2", time.Hour)
		require.NoError(t, err)

		clock.Advance(time.Hour)
		isNew, err := store.MarkProcessed(ctx, "payment-2", time.Hour)
		require.NoError(t, err)
		assert.True(t, isNew)
	})
}

func TestMemoryStore_IsProcessed(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(t)

	processed, err := store.IsProcessed(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, processed)

	_, err = store.MarkProcessed(ctx, "known", 10*time.Minute)
	require.NoError(t, err)
	processed, err = store.IsProcessed(ctx, "known")
	require.NoError(t, err)
	assert.True(t, processed)

	clock.Advance(11 * time.Minute)
	processed, err = store.IsProcessed(ctx, "known")
	require.NoError(t, err)
	assert.False(t, processed)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	store, clock := newClockedStore(t)

	_, _ = store.MarkProcessed(ctx, "short-1", time.Minute)
	_, _ = store.MarkProcessed(ctx, "short-2", time.Minute)
	_, _ = store.MarkProcessed(ctx, "long", 24*time.Hour)
	require.Equal(t, 3, store.Len())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 2, store.sweep())
	assert.Equal(t, 1, store.Len())

	processed, err := store.IsProcessed(ctx, "long")
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestMemoryStore_ConcurrentMark(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	const workers = 64
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		fresh int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			isNew, err := store.MarkProcessed(context.Background(), "same-event", time.Hour)
			if err == nil && isNew {
				mu.Lock()
				fresh++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, fresh)
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
