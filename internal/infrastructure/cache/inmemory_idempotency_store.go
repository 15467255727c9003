package cache

import (
	"context"
	"sync"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
)

const defaultSweepInterval = 5 * time.Minute

// MemoryStore keeps processed event IDs in process memory. Single instance only:
// two API replicas each keep their own set.
type MemoryStore struct {
	mu       sync.Mutex
	expiry   map[string]time.Time
	now      func() time.Time
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// MemoryStoreOption configures a MemoryStore
type MemoryStoreOption func(*memoryStoreOptions)

type memoryStoreOptions struct {
	sweepInterval time.Duration
	now           func() time.Time
}

// WithSweepInterval sets how often expired IDs are purged
func WithSweepInterval(d time.Duration) MemoryStoreOption {
	return func(o *memoryStoreOptions) { o.sweepInterval = d }
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(o *memoryStoreOptions) { o.now = now }
}

// NewMemoryStore starts a store and its background sweeper
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	o := memoryStoreOptions{sweepInterval: defaultSweepInterval, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	s := &MemoryStore{
		expiry: make(map[string]time.Time),
		now:    o.now,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go s.sweepLoop(o.sweepInterval)
	return s
}

// MarkProcessed records eventID until ttl elapses. It reports false when the
// ID is already recorded and not yet expired.
func (s *MemoryStore) MarkProcessed(_ context.Context, eventID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.expiry[eventID]; ok && now.Before(exp) {
		return false, nil
	}
	s.expiry[eventID] = now.Add(ttl)
	return true, nil
}

// IsProcessed reports whether eventID is recorded and unexpired
func (s *MemoryStore) IsProcessed(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expiry[eventID]
	return ok && s.now().Before(exp), nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
	return nil
}

// Len returns the number of recorded IDs, expired ones included until swept
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.expiry)
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, exp := range s.expiry {
		if !now.Before(exp) {
			delete(s.expiry, id)
			removed++
		}
	}
	return removed
}

var _ shared.IdempotencyStore = (*MemoryStore)(nil)
