package finance

import (
	"context"
	"fmt"

	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceService serves invoice reads and operator status edits
type InvoiceService struct {
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(txScope TransactionScope, logger *zap.Logger) *InvoiceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceService{txScope: txScope, logger: logger}
}

// SetEventPublisher sets the publisher used for post-commit events
func (s *InvoiceService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Get returns an invoice with its items, payments and paid/unpaid totals
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	var resp InvoiceResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InvoiceRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		paid, err := repos.PaymentRepo().SumCompletedByInvoice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to sum completed payments: %w", err)
		}
		payments, err := repos.PaymentRepo().ListByInvoice(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to list payments: %w", err)
		}
		resp = ToInvoiceResponse(inv, paid, payments)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateStatus applies an operator's status edit. The request must carry the
// current invoice version; a stale one fails with a concurrency conflict.
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdateInvoiceStatusRequest) (*InvoiceResponse, error) {
	var invoice *finance.Invoice
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		previousVersion := inv.Version
		if err := inv.ChangeStatusManually(req.Status, req.Version); err != nil {
			return err
		}
		invoice = inv
		if inv.Version == previousVersion {
			return nil
		}
		return repos.InvoiceRepo().SaveWithLock(ctx, inv)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Invoice status changed manually",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("status", invoice.Status.String()),
		zap.Int("version", invoice.Version),
	)
	publishDomainEvents(ctx, s.eventPublisher, s.logger, invoice)

	return s.Get(ctx, id)
}
