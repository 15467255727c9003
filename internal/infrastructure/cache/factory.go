// Package cache holds the idempotency stores that deduplicate redelivered
// domain events before they reach client activity tracking.
package cache

import (
	"context"
	"fmt"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// StoreFactory builds the idempotency store selected by event.idempotency_backend
type StoreFactory struct {
	backend       string
	redis         config.RedisConfig
	logger        *zap.Logger
	allowFallback bool
}

// StoreFactoryOption configures a StoreFactory
type StoreFactoryOption func(*StoreFactory)

// WithLogger sets the factory logger
func WithLogger(logger *zap.Logger) StoreFactoryOption {
	return func(f *StoreFactory) { f.logger = logger }
}

// WithMemoryFallback controls whether an unreachable Redis degrades to the
// in-memory store instead of failing startup. Enabled by default.
func WithMemoryFallback(allow bool) StoreFactoryOption {
	return func(f *StoreFactory) { f.allowFallback = allow }
}

func NewStoreFactory(eventCfg config.EventConfig, redisCfg config.RedisConfig, opts ...StoreFactoryOption) *StoreFactory {
	f := &StoreFactory{
		backend:       eventCfg.IdempotencyBackend,
		redis:         redisCfg,
		logger:        zap.NewNop(),
		allowFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create returns the configured store
func (f *StoreFactory) Create(ctx context.Context) (shared.IdempotencyStore, error) {
	switch f.backend {
	case "", BackendMemory:
		f.logger.Info("Using in-memory idempotency store")
		return NewMemoryStore(), nil
	case BackendRedis:
		store, err := NewRedisStore(ctx, f.redis)
		if err == nil {
			f.logger.Info("Using redis idempotency store", zap.String("addr", f.redis.Addr()))
			return store, nil
		}
		if !f.allowFallback {
			return nil, fmt.Errorf("redis idempotency store unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
			zap.String("addr", f.redis.Addr()),
			zap.Error(err),
		)
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", f.backend)
	}
}
