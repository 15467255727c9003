package finance

import (
	"context"

	"github.com/culturehub/backend/internal/domain/finance"
)

// TransactionScope runs payment work in one database transaction.
// If fn returns an error the transaction is rolled back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories gives access to invoice and payment repositories
// sharing the surrounding transaction.
type TransactionalRepositories interface {
	InvoiceRepo() finance.InvoiceRepository
	PaymentRepo() finance.PaymentRepository
}

// NoOpTransactionScope hands out plain repositories without a transaction
type NoOpTransactionScope struct {
	invoices finance.InvoiceRepository
	payments finance.PaymentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope
func NewNoOpTransactionScope(invoices finance.InvoiceRepository, payments finance.PaymentRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{invoices: invoices, payments: payments}
}

// Execute runs fn directly
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() finance.InvoiceRepository {
	return s.invoices
}

// PaymentRepo returns the payment repository
func (s *NoOpTransactionScope) PaymentRepo() finance.PaymentRepository {
	return s.payments
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
