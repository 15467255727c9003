package finance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WriteOffTiming says when revenue of an invoice line is recognised
type WriteOffTiming string

const (
	// WriteOffOnSale lines are written off when sold
	WriteOffOnSale WriteOffTiming = "ON_SALE"
	// WriteOffOnUse lines are written off as the subscription is used
	WriteOffOnUse WriteOffTiming = "ON_USE"
)

// WriteOffStatus tracks consumption of an invoice line
type WriteOffStatus string

const (
	WriteOffPending    WriteOffStatus = "PENDING"
	WriteOffInProgress WriteOffStatus = "IN_PROGRESS"
	WriteOffCompleted  WriteOffStatus = "COMPLETED"
)

// IsValid checks if the status is a valid WriteOffStatus
func (s WriteOffStatus) IsValid() bool {
	switch s {
	case WriteOffPending, WriteOffInProgress, WriteOffCompleted:
		return true
	}
	return false
}

// InvoiceItem is one purchased line of an invoice
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID      uuid.UUID
	Description    string
	Quantity       int
	UnitPrice      decimal.Decimal
	TotalPrice     decimal.Decimal
	WriteOffTiming WriteOffTiming
	WriteOffStatus WriteOffStatus
	UsageStartedAt *time.Time
	WrittenOffAt   *time.Time
}

// IsWrittenOffOnUse reports whether attendance drives this line's write-off
func (it *InvoiceItem) IsWrittenOffOnUse() bool {
	return it.WriteOffTiming == WriteOffOnUse
}

// StartUsage moves PENDING to IN_PROGRESS, remembering the first usage date
func (it *InvoiceItem) StartUsage(usageDate time.Time) bool {
	if it.WriteOffStatus != WriteOffPending {
		return false
	}
	it.WriteOffStatus = WriteOffInProgress
	it.UsageStartedAt = &usageDate
	it.Touch()
	return true
}

// CompleteUsage marks the line fully written off
func (it *InvoiceItem) CompleteUsage() bool {
	if it.WriteOffStatus == WriteOffCompleted {
		return false
	}
	now := time.Now()
	it.WriteOffStatus = WriteOffCompleted
	it.WrittenOffAt = &now
	it.UpdatedAt = now
	return true
}

// ReopenUsage steps COMPLETED back to IN_PROGRESS
func (it *InvoiceItem) ReopenUsage() bool {
	if it.WriteOffStatus != WriteOffCompleted {
		return false
	}
	it.WriteOffStatus = WriteOffInProgress
	it.WrittenOffAt = nil
	it.Touch()
	return true
}

// ResetUsage steps IN_PROGRESS back to PENDING
func (it *InvoiceItem) ResetUsage() bool {
	if it.WriteOffStatus != WriteOffInProgress {
		return false
	}
	it.WriteOffStatus = WriteOffPending
	it.UsageStartedAt = nil
	it.Touch()
	return true
}
