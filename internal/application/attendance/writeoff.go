package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/subscription"
	"github.com/google/uuid"
)

// writeOff keeps ON_USE invoice items in step with subscription consumption.
// Both directions recompute from the current counter, so repeating them is harmless.
type writeOff struct {
	invoices      finance.InvoiceRepository
	subscriptions subscription.Repository
	attendances   attendance.Repository
}

func newWriteOff(repos TransactionalRepositories) *writeOff {
	return &writeOff{
		invoices:      repos.InvoiceRepo(),
		subscriptions: repos.SubscriptionRepo(),
		attendances:   repos.AttendanceRepo(),
	}
}

// advance starts usage of pending items and completes them once the
// subscription has no visits left. Call after the visit is deducted.
func (w *writeOff) advance(ctx context.Context, subscriptionID uuid.UUID, usageDate time.Time) error {
	items, err := w.invoices.FindUsageItemsBySubscription(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to load usage items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	sub, err := w.current(ctx, subscriptionID)
	if err != nil || sub == nil {
		return err
	}

	for i := range items {
		item := &items[i]
		changed := item.StartUsage(usageDate)
		if sub.IsFullyConsumed() && item.CompleteUsage() {
			changed = true
		}
		if !changed {
			continue
		}
		if err := w.invoices.SaveItemWriteOff(ctx, item); err != nil {
			return fmt.Errorf("failed to save item write-off: %w", err)
		}
	}
	return nil
}

// revert reopens completed items when visits came back and resets usage when
// no deducted presence references the subscription anymore. Call after the
// attendance change is persisted and the visit restored.
func (w *writeOff) revert(ctx context.Context, subscriptionID uuid.UUID) error {
	items, err := w.invoices.FindUsageItemsBySubscription(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to load usage items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}
	sub, err := w.current(ctx, subscriptionID)
	if err != nil || sub == nil {
		return err
	}
	deducted, err := w.attendances.CountDeductedPresent(ctx, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to count deducted attendances: %w", err)
	}

	for i := range items {
		item := &items[i]
		changed := false
		if sub.HasUnconsumedVisits() && item.ReopenUsage() {
			changed = true
		}
		if deducted == 0 && item.ResetUsage() {
			changed = true
		}
		if !changed {
			continue
		}
		if err := w.invoices.SaveItemWriteOff(ctx, item); err != nil {
			return fmt.Errorf("failed to save item write-off: %w", err)
		}
	}
	return nil
}

func (w *writeOff) current(ctx context.Context, id uuid.UUID) (*subscription.Subscription, error) {
	sub, err := w.subscriptions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to reload subscription: %w", err)
	}
	return sub, nil
}
