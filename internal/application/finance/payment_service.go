package finance

import (
	"context"
	"errors"
	"fmt"

	"github.com/culturehub/backend/internal/domain/client"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService records payments and keeps invoice status in line with them
type PaymentService struct {
	txScope        TransactionScope
	clients        client.Repository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txScope TransactionScope, clients client.Repository, logger *zap.Logger) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		txScope: txScope,
		clients: clients,
		logger:  logger,
	}
}

// SetEventPublisher sets the publisher used for post-commit events
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records a payment. A payment against an invoice may not exceed the
// unpaid balance and is refused for cancelled invoices. Cash settles at once
// and moves the invoice status in the same transaction.
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "create",
		telemetry.SpanAttrClientID, req.ClientID,
		"method", string(req.Method),
	)
	defer span.End()

	exists, err := s.clients.ExistsByID(ctx, req.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check client: %w", err)
	}
	if !exists {
		return nil, shared.NotFound("Client")
	}

	payment, err := finance.NewPayment(finance.NewPaymentParams{
		ClientID:       req.ClientID,
		Amount:         req.Amount,
		Method:         req.Method,
		Type:           req.Type,
		InvoiceID:      req.InvoiceID,
		SubscriptionID: req.SubscriptionID,
		RentalID:       req.RentalID,
		Notes:          req.Notes,
		TransactionID:  req.TransactionID,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	var invoice *finance.Invoice
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if payment.InvoiceID != nil {
			invoice, err = repos.InvoiceRepo().FindByIDForUpdate(ctx, *payment.InvoiceID)
			if err != nil {
				return err
			}
			paid, err := repos.PaymentRepo().SumCompletedByInvoice(ctx, invoice.ID)
			if err != nil {
				return fmt.Errorf("failed to sum completed payments: %w", err)
			}
			if err := invoice.EnsureAcceptsPayment(payment.Amount, paid); err != nil {
				return err
			}
		}

		if err := repos.PaymentRepo().Create(ctx, payment); err != nil {
			return err
		}

		if invoice != nil && payment.IsCompleted() {
			return settle(ctx, repos, invoice)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("client_id", payment.ClientID.String()),
		zap.String("amount", payment.Amount.String()),
		zap.String("method", string(payment.Method)),
		zap.String("status", string(payment.Status)),
	)

	payment.RecordReceived()
	s.publishDomainEvents(ctx, payment)
	if invoice != nil {
		s.publishDomainEvents(ctx, invoice)
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// Update changes status and details of a payment. Any status move into or out
// of COMPLETED recomputes the parent invoice in the same transaction.
func (s *PaymentService) Update(ctx context.Context, id uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "update", telemetry.SpanAttrPaymentID, id)
	defer span.End()

	var payment *finance.Payment
	var invoice *finance.Invoice

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		previous := p.Status
		if req.Status != nil {
			if previous, err = p.ChangeStatus(*req.Status); err != nil {
				return err
			}
		}
		p.UpdateDetails(req.Notes, req.TransactionID)

		if err := repos.PaymentRepo().Save(ctx, p); err != nil {
			return err
		}
		payment = p

		if p.InvoiceID == nil || !finance.MovesInvoiceTotal(previous, p.Status) {
			return nil
		}
		invoice, err = lockInvoice(ctx, repos, *p.InvoiceID)
		if err != nil || invoice == nil {
			return err
		}
		return settle(ctx, repos, invoice)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	if invoice != nil {
		s.publishDomainEvents(ctx, invoice)
	}

	resp := ToPaymentResponse(payment)
	return &resp, nil
}

// Remove deletes a payment and recomputes its invoice
func (s *PaymentService) Remove(ctx context.Context, id uuid.UUID) error {
	ctx, span := telemetry.StartServiceSpan(ctx, "payment", "remove", telemetry.SpanAttrPaymentID, id)
	defer span.End()

	var invoice *finance.Invoice

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := repos.PaymentRepo().Delete(ctx, id); err != nil {
			return err
		}
		if p.InvoiceID == nil {
			return nil
		}
		invoice, err = lockInvoice(ctx, repos, *p.InvoiceID)
		if err != nil || invoice == nil {
			return err
		}
		return settle(ctx, repos, invoice)
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}

	if invoice != nil {
		s.publishDomainEvents(ctx, invoice)
	}
	return nil
}

// Get returns a payment by ID
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	var resp PaymentResponse
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		p, err := repos.PaymentRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		resp = ToPaymentResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// lockInvoice reads the invoice under lock. A missing invoice yields nil.
func lockInvoice(ctx context.Context, repos TransactionalRepositories, id uuid.UUID) (*finance.Invoice, error) {
	inv, err := repos.InvoiceRepo().FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return inv, nil
}

func (s *PaymentService) publishDomainEvents(ctx context.Context, agg shared.AggregateRoot) {
	publishDomainEvents(ctx, s.eventPublisher, s.logger, agg)
}

func publishDomainEvents(ctx context.Context, publisher shared.EventPublisher, logger *zap.Logger, agg shared.AggregateRoot) {
	if publisher == nil {
		return
	}
	events := agg.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := publisher.Publish(ctx, events...); err != nil {
		logger.Warn("Failed to publish domain events",
			zap.String("aggregate_id", agg.GetID().String()),
			zap.Error(err),
		)
	}
	agg.ClearDomainEvents()
}
