package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"ALREADY_EXISTS", http.StatusConflict},
		{"CONCURRENCY_CONFLICT", http.StatusConflict},
		{"INVALID_INPUT", http.StatusBadRequest},
		{"SUBSCRIPTION_WITHOUT_GROUP", http.StatusBadRequest},
		{"SUBSCRIPTION_WRONG_CLIENT", http.StatusBadRequest},
		{"SUBSCRIPTION_WRONG_GROUP", http.StatusBadRequest},
		{"SUBSCRIPTION_NOT_ACTIVE", http.StatusBadRequest},
		{"SUBSCRIPTION_OUT_OF_RANGE", http.StatusBadRequest},
		{"NO_VISITS_LEFT", http.StatusBadRequest},
		{"PAYMENT_EXCEEDS_UNPAID", http.StatusBadRequest},
		{"INVOICE_CANCELLED", http.StatusBadRequest},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{ErrCodeRequestTooLarge, http.StatusRequestEntityTooLarge},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponseJSON(t *testing.T) {
	resp := NewValidationErrorResponse("Request validation failed", "req-1", []ValidationDetail{
		{Field: "client_id", Message: "This field is required"},
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"error": {
			"code": "VALIDATION_ERROR",
			"message": "Request validation failed",
			"request_id": "req-1",
			"details": [{"field": "client_id", "message": "This field is required"}]
		}
	}`, string(raw))
}

func TestSuccessResponseOmitsError(t *testing.T) {
	raw, err := json.Marshal(NewSuccessResponse(map[string]int{"count": 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true, "data": {"count": 2}}`, string(raw))
}
