package finance

import (
	"fmt"
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusPending       InvoiceStatus = "PENDING"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PARTIALLY_PAID"
	InvoiceStatusPaid          InvoiceStatus = "PAID"
	InvoiceStatusCancelled     InvoiceStatus = "CANCELLED"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPartiallyPaid, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// IsCancelled reports whether the invoice is out of the payment flow
func (s InvoiceStatus) IsCancelled() bool {
	return s == InvoiceStatusCancelled
}

// DeriveInvoiceStatus maps the completed-payment total onto a status:
// paid >= total is PAID, any positive amount is PARTIALLY_PAID, otherwise PENDING.
func DeriveInvoiceStatus(total, paid decimal.Decimal) InvoiceStatus {
	switch {
	case paid.GreaterThanOrEqual(total):
		return InvoiceStatusPaid
	case paid.IsPositive():
		return InvoiceStatusPartiallyPaid
	default:
		return InvoiceStatusPending
	}
}

// Invoice error codes
const (
	CodeInvoiceCancelled     = "INVOICE_CANCELLED"
	CodePaymentExceedsUnpaid = "PAYMENT_EXCEEDS_UNPAID"
)

var (
	ErrInvoiceNotFound  = shared.NotFound("Invoice")
	ErrInvoiceCancelled = shared.NewDomainError(CodeInvoiceCancelled, "Invoice is cancelled and does not accept payments")
)

// Invoice is a bill issued to a client. Its status is always derived from the
// sum of COMPLETED payments, never adjusted incrementally.
type Invoice struct {
	shared.BaseAggregateRoot
	Number         string
	ClientID       uuid.UUID
	SubscriptionID *uuid.UUID
	TotalAmount    decimal.Decimal
	Status         InvoiceStatus
	DueDate        *time.Time
	PaidAt         *time.Time
	Notes          *string
	Items          []InvoiceItem
}

// Unpaid returns the outstanding balance given the completed-payment total
func (i *Invoice) Unpaid(paid decimal.Decimal) decimal.Decimal {
	return i.TotalAmount.Sub(paid)
}

// EnsureAcceptsPayment checks that a new payment of amount fits the balance.
// The comparison is exact; only the message is rounded.
func (i *Invoice) EnsureAcceptsPayment(amount, paid decimal.Decimal) error {
	if i.Status.IsCancelled() {
		return ErrInvoiceCancelled
	}
	unpaid := i.Unpaid(paid)
	if amount.GreaterThan(unpaid) {
		return shared.NewDomainError(CodePaymentExceedsUnpaid, fmt.Sprintf(
			"Payment amount %s exceeds unpaid invoice balance %s",
			amount.String(), valueobject.RUBs(unpaid).Display()))
	}
	return nil
}

// ApplyPaidTotal recomputes the status from the completed-payment total.
// It reports whether anything changed; a cancelled invoice never changes.
// PaidAt is set on the move to PAID and cleared on any other status.
func (i *Invoice) ApplyPaidTotal(paid decimal.Decimal) bool {
	if i.Status.IsCancelled() {
		return false
	}
	next := DeriveInvoiceStatus(i.TotalAmount, paid)
	if next == i.Status {
		return false
	}
	previous := i.Status
	i.setStatus(next)
	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, previous, paid))
	return true
}

// ChangeStatusManually is the entry point for operator edits. The caller must
// present the version it read; a stale version is rejected. Operators can only
// cancel: PENDING, PARTIALLY_PAID and PAID always follow completed payments.
func (i *Invoice) ChangeStatusManually(status InvoiceStatus, expectedVersion int) error {
	if expectedVersion != i.Version {
		return shared.ErrConcurrencyConflict
	}
	if !status.IsValid() {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unknown invoice status "+string(status))
	}
	if i.Status.IsCancelled() {
		return shared.NewDomainError(shared.CodeInvalidState, "Cancelled invoice cannot change status")
	}
	if !status.IsCancelled() {
		return shared.NewDomainError(shared.CodeInvalidState,
			"Invoice status "+string(status)+" is derived from completed payments and cannot be set manually")
	}
	previous := i.Status
	i.setStatus(status)
	i.AddDomainEvent(NewInvoiceStatusChangedEvent(i, previous, decimal.Zero))
	return nil
}

func (i *Invoice) setStatus(status InvoiceStatus) {
	now := time.Now()
	i.Status = status
	if status == InvoiceStatusPaid {
		i.PaidAt = &now
	} else {
		i.PaidAt = nil
	}
	i.UpdatedAt = now
	i.IncrementVersion()
}

// Balance is a read model pairing an invoice with its payment totals
type Balance struct {
	Total  valueobject.Money
	Paid   valueobject.Money
	Unpaid valueobject.Money
}

// BalanceFor builds a Balance for display
func (i *Invoice) BalanceFor(paid decimal.Decimal) Balance {
	return Balance{
		Total:  valueobject.RUBs(i.TotalAmount),
		Paid:   valueobject.RUBs(paid),
		Unpaid: valueobject.RUBs(i.Unpaid(paid)),
	}
}
