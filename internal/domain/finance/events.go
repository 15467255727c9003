package finance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	AggregateTypeInvoice = "Invoice"
	AggregateTypePayment = "Payment"

	EventTypePaymentReceived      = "PaymentReceived"
	EventTypeInvoiceStatusChanged = "InvoiceStatusChanged"
)

// PaymentReceivedEvent is raised after a payment is recorded
type PaymentReceivedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	ClientID  uuid.UUID       `json:"client_id"`
	InvoiceID *uuid.UUID      `json:"invoice_id,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Status    PaymentStatus   `json:"status"`
}

// EventType returns the event type name
func (e *PaymentReceivedEvent) EventType() string {
	return EventTypePaymentReceived
}

// NewPaymentReceivedEvent creates a new PaymentReceivedEvent
func NewPaymentReceivedEvent(p *Payment) *PaymentReceivedEvent {
	return &PaymentReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentReceived, AggregateTypePayment, p.ID),
		PaymentID:       p.ID,
		ClientID:        p.ClientID,
		InvoiceID:       p.InvoiceID,
		Amount:          p.Amount,
		Method:          p.Method,
		Status:          p.Status,
	}
}

// InvoiceStatusChangedEvent is raised when an invoice's status moves
type InvoiceStatusChangedEvent struct {
	shared.BaseDomainEvent
	InvoiceID   uuid.UUID       `json:"invoice_id"`
	ClientID    uuid.UUID       `json:"client_id"`
	OldStatus   InvoiceStatus   `json:"old_status"`
	NewStatus   InvoiceStatus   `json:"new_status"`
	PaidTotal   decimal.Decimal `json:"paid_total"`
	Version     int             `json:"version"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// EventType returns the event type name
func (e *InvoiceStatusChangedEvent) EventType() string {
	return EventTypeInvoiceStatusChanged
}

// NewInvoiceStatusChangedEvent creates a new InvoiceStatusChangedEvent
func NewInvoiceStatusChangedEvent(i *Invoice, previous InvoiceStatus, paid decimal.Decimal) *InvoiceStatusChangedEvent {
	return &InvoiceStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeInvoiceStatusChanged, AggregateTypeInvoice, i.ID),
		InvoiceID:       i.ID,
		ClientID:        i.ClientID,
		OldStatus:       previous,
		NewStatus:       i.Status,
		PaidTotal:       paid,
		Version:         i.Version,
		PaidAt:          i.PaidAt,
		TotalAmount:     i.TotalAmount,
	}
}
