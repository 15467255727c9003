package finance

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceRepository defines persistence for invoices and their items
type InvoiceRepository interface {
	// FindByID loads the invoice with its items
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByIDForUpdate loads the invoice row under a row lock, without items.
	// Only meaningful inside a transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// SaveWithLock writes status fields if the stored version is one behind
	// the aggregate's; otherwise it returns shared.ErrConcurrencyConflict.
	SaveWithLock(ctx context.Context, invoice *Invoice) error

	// FindUsageItemsBySubscription returns ON_USE items of invoices issued for the subscription
	FindUsageItemsBySubscription(ctx context.Context, subscriptionID uuid.UUID) ([]InvoiceItem, error)

	// SaveItemWriteOff persists the write-off fields of an item
	SaveItemWriteOff(ctx context.Context, item *InvoiceItem) error
}

// PaymentRepository defines persistence for payments
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	Create(ctx context.Context, payment *Payment) error
	Save(ctx context.Context, payment *Payment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// SumCompletedByInvoice totals COMPLETED payment amounts of an invoice
	SumCompletedByInvoice(ctx context.Context, invoiceID uuid.UUID) (decimal.Decimal, error)

	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]Payment, error)
}
