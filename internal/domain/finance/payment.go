package finance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the state of a payment attempt
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusRefunded, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentMethod is how the client paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
)

// IsValid checks if the method is a valid PaymentMethod
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodOnline:
		return true
	}
	return false
}

// InitialStatus returns the status a new payment starts in. Cash is settled
// at the desk; every other method waits for external confirmation.
func (m PaymentMethod) InitialStatus() PaymentStatus {
	if m == PaymentMethodCash {
		return PaymentStatusCompleted
	}
	return PaymentStatusPending
}

// PaymentType is what the payment is for
type PaymentType string

const (
	PaymentTypeSubscription PaymentType = "SUBSCRIPTION"
	PaymentTypeRental       PaymentType = "RENTAL"
	PaymentTypeSingleVisit  PaymentType = "SINGLE_VISIT"
	PaymentTypeOther        PaymentType = "OTHER"
)

// IsValid checks if the type is a valid PaymentType
func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeSubscription, PaymentTypeRental, PaymentTypeSingleVisit, PaymentTypeOther:
		return true
	}
	return false
}

var ErrPaymentNotFound = shared.NotFound("Payment")

// Payment is one payment attempt by a client
type Payment struct {
	shared.BaseAggregateRoot
	ClientID       uuid.UUID
	InvoiceID      *uuid.UUID
	SubscriptionID *uuid.UUID
	RentalID       *uuid.UUID
	Amount         decimal.Decimal
	Method         PaymentMethod
	Type           PaymentType
	Status         PaymentStatus
	Notes          *string
	TransactionID  *string
}

// NewPaymentParams groups the inputs of NewPayment
type NewPaymentParams struct {
	ClientID       uuid.UUID
	Amount         decimal.Decimal
	Method         PaymentMethod
	Type           PaymentType
	InvoiceID      *uuid.UUID
	SubscriptionID *uuid.UUID
	RentalID       *uuid.UUID
	Notes          *string
	TransactionID  *string
}

// NewPayment validates params and creates a payment in its initial status
func NewPayment(p NewPaymentParams) (*Payment, error) {
	if p.ClientID == uuid.Nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Client is required")
	}
	if !p.Amount.IsPositive() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Payment amount must be positive")
	}
	if !p.Method.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown payment method "+string(p.Method))
	}
	if !p.Type.IsValid() {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Unknown payment type "+string(p.Type))
	}
	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ClientID:          p.ClientID,
		InvoiceID:         p.InvoiceID,
		SubscriptionID:    p.SubscriptionID,
		RentalID:          p.RentalID,
		Amount:            p.Amount,
		Method:            p.Method,
		Type:              p.Type,
		Status:            p.Method.InitialStatus(),
		Notes:             p.Notes,
		TransactionID:     p.TransactionID,
	}, nil
}

// IsCompleted reports whether the payment counts toward its invoice
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStatusCompleted
}

// ChangeStatus moves the payment to status and returns the previous one
func (p *Payment) ChangeStatus(status PaymentStatus) (PaymentStatus, error) {
	if !status.IsValid() {
		return p.Status, shared.NewDomainError(shared.CodeInvalidInput, "Unknown payment status "+string(status))
	}
	previous := p.Status
	if previous == status {
		return previous, nil
	}
	p.Status = status
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return previous, nil
}

// UpdateDetails replaces notes and external transaction reference when given
func (p *Payment) UpdateDetails(notes, transactionID *string) {
	if notes != nil {
		p.Notes = notes
	}
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	p.UpdatedAt = time.Now()
}

// MovesInvoiceTotal reports whether a status change alters the completed
// total of the parent invoice, which happens whenever either side is COMPLETED.
func MovesInvoiceTotal(from, to PaymentStatus) bool {
	if from == to {
		return false
	}
	return from == PaymentStatusCompleted || to == PaymentStatusCompleted
}

// RecordReceived queues a PaymentReceived event
func (p *Payment) RecordReceived() {
	p.AddDomainEvent(NewPaymentReceivedEvent(p))
}
