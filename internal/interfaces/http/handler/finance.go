package handler

import (
	"context"

	financeapp "github.com/culturehub/backend/internal/application/finance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentService is the part of the payment application service the API uses
type PaymentService interface {
	Create(ctx context.Context, req financeapp.CreatePaymentRequest) (*financeapp.PaymentResponse, error)
	Update(ctx context.Context, id uuid.UUID, req financeapp.UpdatePaymentRequest) (*financeapp.PaymentResponse, error)
	Remove(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*financeapp.PaymentResponse, error)
}

// InvoiceService is the part of the invoice application service the API uses
type InvoiceService interface {
	Get(ctx context.Context, id uuid.UUID) (*financeapp.InvoiceResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req financeapp.UpdateInvoiceStatusRequest) (*financeapp.InvoiceResponse, error)
}

// FinanceHandler handles payment and invoice endpoints
type FinanceHandler struct {
	BaseHandler
	payments PaymentService
	invoices InvoiceService
}

func NewFinanceHandler(payments PaymentService, invoices InvoiceService) *FinanceHandler {
	return &FinanceHandler{payments: payments, invoices: invoices}
}

// CreatePaymentRequest is the body of POST /payments. Amounts are decimal
// strings or numbers; at most one of invoice, subscription or rental is set.
type CreatePaymentRequest struct {
	ClientID       uuid.UUID       `json:"client_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"gt=0"`
	Method         string          `json:"method" binding:"required,oneof=CASH CARD BANK_TRANSFER ONLINE"`
	Type           string          `json:"type" binding:"required,oneof=SUBSCRIPTION RENTAL SINGLE_VISIT OTHER"`
	InvoiceID      *uuid.UUID      `json:"invoice_id"`
	SubscriptionID *uuid.UUID      `json:"subscription_id"`
	RentalID       *uuid.UUID      `json:"rental_id"`
	Notes          *string         `json:"notes" binding:"omitempty,max=2000"`
	TransactionID  *string         `json:"transaction_id" binding:"omitempty,max=255"`
}

// UpdatePaymentRequest is the body of PATCH /payments/:id
type UpdatePaymentRequest struct {
	Status        *string `json:"status" binding:"omitempty,oneof=PENDING COMPLETED REFUNDED FAILED"`
	Notes         *string `json:"notes" binding:"omitempty,max=2000"`
	TransactionID *string `json:"transaction_id" binding:"omitempty,max=255"`
}

// UpdateInvoiceStatusRequest is the body of PATCH /invoices/:id/status
type UpdateInvoiceStatusRequest struct {
	Status  string `json:"status" binding:"required,oneof=PENDING PARTIALLY_PAID PAID CANCELLED"`
	Version int    `json:"version" binding:"gte=0"`
}

// CreatePayment godoc
// @ID           createPayment
// @Summary      Record a payment
// @Description  CASH payments complete immediately. A payment on an invoice may not exceed its unpaid balance.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body CreatePaymentRequest true "Payment"
// @Success      201 {object} dto.Response{data=financeapp.PaymentResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments [post]
func (h *FinanceHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.payments.Create(c.Request.Context(), financeapp.CreatePaymentRequest{
		ClientID:       req.ClientID,
		Amount:         req.Amount,
		Method:         finance.PaymentMethod(req.Method),
		Type:           finance.PaymentType(req.Type),
		InvoiceID:      req.InvoiceID,
		SubscriptionID: req.SubscriptionID,
		RentalID:       req.RentalID,
		Notes:          req.Notes,
		TransactionID:  req.TransactionID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePayment godoc
// @ID           updatePayment
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id      path string               true "Payment ID" format(uuid)
// @Param        request body UpdatePaymentRequest true "Payment change"
// @Success      200 {object} dto.Response{data=financeapp.PaymentResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments/{id} [patch]
func (h *FinanceHandler) UpdatePayment(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	appReq := financeapp.UpdatePaymentRequest{Notes: req.Notes, TransactionID: req.TransactionID}
	if req.Status != nil {
		status := finance.PaymentStatus(*req.Status)
		appReq.Status = &status
	}

	resp, err := h.payments.Update(c.Request.Context(), id, appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RemovePayment godoc
// @ID           removePayment
// @Summary      Remove a payment
// @Tags         payments
// @Param        id path string true "Payment ID" format(uuid)
// @Success      204
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments/{id} [delete]
func (h *FinanceHandler) RemovePayment(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.payments.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// GetPayment godoc
// @ID           getPayment
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id path string true "Payment ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.PaymentResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /payments/{id} [get]
func (h *FinanceHandler) GetPayment(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.payments.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetInvoice godoc
// @ID           getInvoice
// @Summary      Get an invoice with items, payments and balance
// @Tags         invoices
// @Produce      json
// @Param        id path string true "Invoice ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.InvoiceResponse}
// @Failure      404 {object} dto.Response
// @Security     BearerAuth
// @Router       /invoices/{id} [get]
func (h *FinanceHandler) GetInvoice(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	resp, err := h.invoices.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateInvoiceStatus godoc
// @ID           updateInvoiceStatus
// @Summary      Cancel an invoice
// @Description  Only CANCELLED can be set; other statuses follow completed payments. The current version is required.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id      path string                     true "Invoice ID" format(uuid)
// @Param        request body UpdateInvoiceStatusRequest true "Status change"
// @Success      200 {object} dto.Response{data=financeapp.InvoiceResponse}
// @Failure      400 {object} dto.Response
// @Failure      404 {object} dto.Response
// @Failure      409 {object} dto.Response
// @Failure      422 {object} dto.Response
// @Security     BearerAuth
// @Router       /invoices/{id}/status [patch]
func (h *FinanceHandler) UpdateInvoiceStatus(c *gin.Context) {
	id, ok := h.uuidParam(c, "id")
	if !ok {
		return
	}
	var req UpdateInvoiceStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.invoices.UpdateStatus(c.Request.Context(), id, financeapp.UpdateInvoiceStatusRequest{
		Status:  finance.InvoiceStatus(req.Status),
		Version: req.Version,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
