package finance

import (
	"time"

	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the input of PaymentService.Create
type CreatePaymentRequest struct {
	ClientID       uuid.UUID
	Amount         decimal.Decimal
	Method         finance.PaymentMethod
	Type           finance.PaymentType
	InvoiceID      *uuid.UUID
	SubscriptionID *uuid.UUID
	RentalID       *uuid.UUID
	Notes          *string
	TransactionID  *string
}

// UpdatePaymentRequest is the input of PaymentService.Update. Nil fields keep their values.
type UpdatePaymentRequest struct {
	Status        *finance.PaymentStatus
	Notes         *string
	TransactionID *string
}

// UpdateInvoiceStatusRequest is a manual invoice status edit. Version is the
// invoice version the caller last read.
type UpdateInvoiceStatusRequest struct {
	Status  finance.InvoiceStatus
	Version int
}

// PaymentResponse represents a payment in API responses
type PaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	ClientID       uuid.UUID       `json:"client_id"`
	InvoiceID      *uuid.UUID      `json:"invoice_id,omitempty"`
	SubscriptionID *uuid.UUID      `json:"subscription_id,omitempty"`
	RentalID       *uuid.UUID      `json:"rental_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Method         string          `json:"method"`
	Type           string          `json:"type"`
	Status         string          `json:"status"`
	Notes          *string         `json:"notes,omitempty"`
	TransactionID  *string         `json:"transaction_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToPaymentResponse converts a domain Payment to a response
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		ClientID:       p.ClientID,
		InvoiceID:      p.InvoiceID,
		SubscriptionID: p.SubscriptionID,
		RentalID:       p.RentalID,
		Amount:         p.Amount,
		Method:         string(p.Method),
		Type:           string(p.Type),
		Status:         string(p.Status),
		Notes:          p.Notes,
		TransactionID:  p.TransactionID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// InvoiceItemResponse represents an invoice line
type InvoiceItemResponse struct {
	ID             uuid.UUID       `json:"id"`
	Description    string          `json:"description"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	WriteOffTiming string          `json:"write_off_timing"`
	WriteOffStatus string          `json:"write_off_status"`
	UsageStartedAt *time.Time      `json:"usage_started_at,omitempty"`
	WrittenOffAt   *time.Time      `json:"written_off_at,omitempty"`
}

// BalanceResponse pairs the invoice total with its payment sums, rounded for display
type BalanceResponse struct {
	Total  string `json:"total"`
	Paid   string `json:"paid"`
	Unpaid string `json:"unpaid"`
}

// InvoiceResponse represents an invoice with items and payment summary
type InvoiceResponse struct {
	ID             uuid.UUID             `json:"id"`
	Number         string                `json:"number"`
	ClientID       uuid.UUID             `json:"client_id"`
	SubscriptionID *uuid.UUID            `json:"subscription_id,omitempty"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	Status         string                `json:"status"`
	DueDate        *time.Time            `json:"due_date,omitempty"`
	PaidAt         *time.Time            `json:"paid_at,omitempty"`
	Notes          *string               `json:"notes,omitempty"`
	Version        int                   `json:"version"`
	Items          []InvoiceItemResponse `json:"items"`
	Balance        BalanceResponse       `json:"balance"`
	Payments       []PaymentResponse     `json:"payments"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ToInvoiceResponse converts an invoice, its completed total and its payments to a response
func ToInvoiceResponse(inv *finance.Invoice, paid decimal.Decimal, payments []finance.Payment) InvoiceResponse {
	balance := inv.BalanceFor(paid)
	resp := InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		ClientID:       inv.ClientID,
		SubscriptionID: inv.SubscriptionID,
		TotalAmount:    inv.TotalAmount,
		Status:         inv.Status.String(),
		DueDate:        inv.DueDate,
		PaidAt:         inv.PaidAt,
		Notes:          inv.Notes,
		Version:        inv.Version,
		Items:          make([]InvoiceItemResponse, 0, len(inv.Items)),
		Balance: BalanceResponse{
			Total:  balance.Total.Display(),
			Paid:   balance.Paid.Display(),
			Unpaid: balance.Unpaid.Display(),
		},
		Payments:  make([]PaymentResponse, 0, len(payments)),
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			ID:             it.ID,
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			TotalPrice:     it.TotalPrice,
			WriteOffTiming: string(it.WriteOffTiming),
			WriteOffStatus: string(it.WriteOffStatus),
			UsageStartedAt: it.UsageStartedAt,
			WrittenOffAt:   it.WrittenOffAt,
		})
	}
	for i := range payments {
		resp.Payments = append(resp.Payments, ToPaymentResponse(&payments[i]))
	}
	return resp
}
