package finance

import (
	"context"
	"fmt"

	"github.com/culturehub/backend/internal/domain/finance"
)

// settle derives the invoice status from the sum of its COMPLETED payments
// and writes the invoice only when the status moved. The invoice must have
// been read under lock in the same transaction.
func settle(ctx context.Context, repos TransactionalRepositories, inv *finance.Invoice) error {
	paid, err := repos.PaymentRepo().SumCompletedByInvoice(ctx, inv.ID)
	if err != nil {
		return fmt.Errorf("failed to sum completed payments: %w", err)
	}
	if !inv.ApplyPaidTotal(paid) {
		return nil
	}
	return repos.InvoiceRepo().SaveWithLock(ctx, inv)
}
