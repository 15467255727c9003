package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EligibilityFilter selects ACTIVE subscriptions of a group that cover Date and
// still have visits left. ClientID narrows the search to one client.
type EligibilityFilter struct {
	GroupID  uuid.UUID
	Date     time.Time
	ClientID *uuid.UUID
}

// Repository defines persistence for subscriptions and their visit ledger
type Repository interface {
	// FindByID returns ErrNotFound when missing
	FindByID(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// FindByIDForUpdate locks the subscription row until the transaction ends.
	// Ledger and write-off changes of one subscription serialise on it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// FindEligible returns matching subscriptions, newest first
	FindEligible(ctx context.Context, filter EligibilityFilter) ([]Subscription, error)

	// DecrementVisits atomically takes one visit from a counted subscription.
	// It returns false without changing anything when no visits are left.
	DecrementVisits(ctx context.Context, id uuid.UUID) (bool, error)

	// IncrementVisits gives one visit back to a counted subscription
	IncrementVisits(ctx context.Context, id uuid.UUID) error
}
