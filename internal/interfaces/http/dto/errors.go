package dto

import (
	"net/http"

	"github.com/culturehub/backend/internal/domain/finance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/domain/subscription"
)

// Transport-level error codes. Domain errors keep their own codes.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeInvalidID       = "INVALID_ID"
	ErrCodeRequestTooLarge = "REQUEST_TOO_LARGE"
	ErrCodeTokenExpired    = "TOKEN_EXPIRED"
	ErrCodeRouteNotFound   = "ROUTE_NOT_FOUND"
	ErrCodeForbidden       = "FORBIDDEN"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeInvalidID:       http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
	ErrCodeTokenExpired:    http.StatusUnauthorized,
	ErrCodeRouteNotFound:   http.StatusNotFound,
	ErrCodeForbidden:       http.StatusForbidden,

	shared.CodeNotFound:            http.StatusNotFound,
	shared.CodeAlreadyExists:       http.StatusConflict,
	shared.CodeConcurrencyConflict: http.StatusConflict,
	shared.CodeInvalidInput:        http.StatusBadRequest,
	shared.CodeUnauthorized:        http.StatusUnauthorized,
	shared.CodeInvalidState:        http.StatusUnprocessableEntity,

	// Reconciliation rule violations are all bad requests
	subscription.CodeWithoutGroup:    http.StatusBadRequest,
	subscription.CodeWrongClient:     http.StatusBadRequest,
	subscription.CodeWrongGroup:      http.StatusBadRequest,
	subscription.CodeNotActive:       http.StatusBadRequest,
	subscription.CodeOutOfRange:      http.StatusBadRequest,
	subscription.CodeNoVisitsLeft:    http.StatusBadRequest,
	finance.CodePaymentExceedsUnpaid: http.StatusBadRequest,
	finance.CodeInvoiceCancelled:     http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status for code, or 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
