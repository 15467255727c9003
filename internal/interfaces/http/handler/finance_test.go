package handler

import (
	"errors"
	"net/http"
	"testing"

	financeapp "github.com/culturehub/backend/internal/application/finance"
	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func financeRouter(payments PaymentService, invoices InvoiceService) *gin.Engine {
	h := NewFinanceHandler(payments, invoices)
	router := gin.New()
	router.POST("/payments", h.CreatePayment)
	router.PATCH("/payments/:id", h.UpdatePayment)
	router.DELETE("/payments/:id", h.RemovePayment)
	router.GET("/payments/:id", h.GetPayment)
	router.GET("/invoices/:id", h.GetInvoice)
	router.PATCH("/invoices/:id/status", h.UpdateInvoiceStatus)
	return router
}

func TestFinanceHandler_CreatePayment(t *testing.T) {
	clientID, invoiceID := uuid.New(), uuid.New()

	t.Run("decimal amount is passed through exactly", func(t *testing.T) {
		payments := new(mockPaymentService)
		payments.On("Create", mock.Anything, mock.MatchedBy(func(r financeapp.CreatePaymentRequest) bool {
			return r.ClientID == clientID &&
				r.Amount.Equal(decimal.RequireFromString("1234.56")) &&
				r.Method == finance.PaymentMethodCard &&
				r.Type == finance.PaymentTypeSubscription &&
				r.InvoiceID != nil && *r.InvoiceID == invoiceID
		})).Return(&financeapp.PaymentResponse{ID: uuid.New(), Status: "PENDING"}, nil)

		w := serve(financeRouter(payments, nil), http.MethodPost, "/payments",
			`{"client_id":"`+clientID.String()+`","amount":"1234.56","method":"CARD","type":"SUBSCRIPTION","invoice_id":"`+invoiceID.String()+`"}`)

		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		payments.AssertExpectations(t)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		payments := new(mockPaymentService)
		w := serve(financeRouter(payments, nil), http.MethodPost, "/payments",
			`{"client_id":"`+clientID.String()+`","amount":"0","method":"CASH","type":"OTHER"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, errorCode(t, w))
		payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		w := serve(financeRouter(new(mockPaymentService), nil), http.MethodPost, "/payments",
			`{"client_id":"`+clientID.String()+`","amount":"10","method":"CHEQUE","type":"OTHER"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("overpayment", func(t *testing.T) {
		payments := new(mockPaymentService)
		payments.On("Create", mock.Anything, mock.Anything).
			Return(nil, shared.NewDomainError(finance.CodePaymentExceedsUnpaid, "Payment exceeds unpaid amount"))

		w := serve(financeRouter(payments, nil), http.MethodPost, "/payments",
			`{"client_id":"`+clientID.String()+`","amount":"999","method":"CASH","type":"SUBSCRIPTION","invoice_id":"`+invoiceID.String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, finance.CodePaymentExceedsUnpaid, errorCode(t, w))
	})

	t.Run("cancelled invoice", func(t *testing.T) {
		payments := new(mockPaymentService)
		payments.On("Create", mock.Anything, mock.Anything).Return(nil, finance.ErrInvoiceCancelled)

		w := serve(financeRouter(payments, nil), http.MethodPost, "/payments",
			`{"client_id":"`+clientID.String()+`","amount":"5","method":"CASH","type":"SUBSCRIPTION","invoice_id":"`+invoiceID.String()+`"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, finance.CodeInvoiceCancelled, errorCode(t, w))
	})
}

func TestFinanceHandler_UpdatePayment(t *testing.T) {
	id := uuid.New()
	payments := new(mockPaymentService)
	payments.On("Update", mock.Anything, id, mock.MatchedBy(func(r financeapp.UpdatePaymentRequest) bool {
		return r.Status != nil && *r.Status == finance.PaymentStatusCompleted && r.Notes == nil
	})).Return(&financeapp.PaymentResponse{ID: id, Status: "COMPLETED"}, nil)

	w := serve(financeRouter(payments, nil), http.MethodPatch, "/payments/"+id.String(), `{"status":"COMPLETED"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	payments.AssertExpectations(t)
}

func TestFinanceHandler_RemoveAndGetPayment(t *testing.T) {
	id := uuid.New()
	payments := new(mockPaymentService)
	payments.On("Remove", mock.Anything, id).Return(nil)
	payments.On("Get", mock.Anything, id).Return(nil, finance.ErrPaymentNotFound)

	router := financeRouter(payments, nil)

	w := serve(router, http.MethodDelete, "/payments/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = serve(router, http.MethodGet, "/payments/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, shared.CodeNotFound, errorCode(t, w))
}

func TestFinanceHandler_Invoices(t *testing.T) {
	id := uuid.New()

	t.Run("get", func(t *testing.T) {
		invoices := new(mockInvoiceService)
		invoices.On("Get", mock.Anything, id).Return(&financeapp.InvoiceResponse{
			ID:      id,
			Status:  "PARTIALLY_PAID",
			Balance: financeapp.BalanceResponse{Total: "100.00", Paid: "40.00", Unpaid: "60.00"},
		}, nil)

		w := serve(financeRouter(nil, invoices), http.MethodGet, "/invoices/"+id.String(), "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"unpaid":"60.00"`)
	})

	t.Run("status change carries version", func(t *testing.T) {
		invoices := new(mockInvoiceService)
		invoices.On("UpdateStatus", mock.Anything, id, financeapp.UpdateInvoiceStatusRequest{
			Status:  finance.InvoiceStatusCancelled,
			Version: 3,
		}).Return(&financeapp.InvoiceResponse{ID: id, Status: "CANCELLED", Version: 4}, nil)

		w := serve(financeRouter(nil, invoices), http.MethodPatch, "/invoices/"+id.String()+"/status",
			`{"status":"CANCELLED","version":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		invoices.AssertExpectations(t)
	})

	t.Run("stale version is a conflict", func(t *testing.T) {
		invoices := new(mockInvoiceService)
		invoices.On("UpdateStatus", mock.Anything, id, mock.Anything).Return(nil, shared.ErrConcurrencyConflict)

		w := serve(financeRouter(nil, invoices), http.MethodPatch, "/invoices/"+id.String()+"/status",
			`{"status":"PAID","version":1}`)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, shared.CodeConcurrencyConflict, errorCode(t, w))
	})

	t.Run("infrastructure failure is a 500", func(t *testing.T) {
		invoices := new(mockInvoiceService)
		invoices.On("Get", mock.Anything, id).Return(nil, errors.New("driver: bad connection"))

		w := serve(financeRouter(nil, invoices), http.MethodGet, "/invoices/"+id.String(), "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, dto.ErrCodeInternal, errorCode(t, w))
	})
}

func TestSystemHandler_Health(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewSystemHandler(stubPinger{}, "culturehub").Health)

		w := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
	})

	t.Run("database down", func(t *testing.T) {
		router := gin.New()
		router.GET("/health", NewSystemHandler(stubPinger{err: errors.New("refused")}, "culturehub").Health)

		w := serve(router, http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"unreachable"`)
	})
}
