package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/google/uuid"
)

// ledger resolves the subscription that covers a presence and moves its
// visit counter. It only ever works on transaction-scoped repositories.
type ledger struct {
	subscriptions subscription.Repository
}

func newLedger(repos TransactionalRepositories) *ledger {
	return &ledger{subscriptions: repos.SubscriptionRepo()}
}

// findValidSubscription returns the subscription to charge for clientID
// attending groupID on date, with its row locked for the rest of the
// transaction. With a preferred id the subscription must exist and pass every
// basis check. Without one the newest eligible subscription is picked; nil
// means the visit goes unbilled.
func (l *ledger) findValidSubscription(
	ctx context.Context,
	clientID, groupID uuid.UUID,
	date time.Time,
	preferred *uuid.UUID,
) (*subscription.Subscription, error) {
	if preferred != nil {
		return l.lockValid(ctx, *preferred, clientID, groupID, date)
	}

	candidates, err := l.subscriptions.FindEligible(ctx, subscription.EligibilityFilter{
		GroupID:  groupID,
		Date:     date,
		ClientID: &clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find eligible subscriptions: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return l.lockValid(ctx, candidates[0].ID, clientID, groupID, date)
}

// lockValid locks the subscription row and checks the basis against the
// locked state, which may have moved while waiting for the lock.
func (l *ledger) lockValid(ctx context.Context, id, clientID, groupID uuid.UUID, date time.Time) (*subscription.Subscription, error) {
	sub, err := l.subscriptions.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, subscription.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load subscription: %w", err)
	}
	if err := sub.ValidateBasis(clientID, groupID, date); err != nil {
		return nil, err
	}
	return sub, nil
}

// deduct takes one visit from a counted subscription
func (l *ledger) deduct(ctx context.Context, sub *subscription.Subscription) error {
	if !sub.CountsVisits() {
		return nil
	}
	ok, err := l.subscriptions.DecrementVisits(ctx, sub.ID)
	if err != nil {
		return fmt.Errorf("failed to deduct visit: %w", err)
	}
	if !ok {
		return subscription.ErrNoVisitsLeft
	}
	if sub.RemainingVisits != nil {
		left := *sub.RemainingVisits - 1
		sub.RemainingVisits = &left
	}
	return nil
}

// restore locks the subscription with id and gives one visit back. A
// subscription that no longer exists has nothing to restore.
func (l *ledger) restore(ctx context.Context, id uuid.UUID) error {
	sub, err := l.subscriptions.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load subscription: %w", err)
	}
	if !sub.CountsVisits() {
		return nil
	}
	if err := l.subscriptions.IncrementVisits(ctx, id); err != nil {
		return fmt.Errorf("failed to restore visit: %w", err)
	}
	return nil
}
