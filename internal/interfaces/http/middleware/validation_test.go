package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/culturehub/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentBody struct {
	ClientID string          `json:"client_id" binding:"required,uuid"`
	Amount   decimal.Decimal `json:"amount" binding:"gt=0"`
	Method   string          `json:"method" binding:"required,oneof=CASH CARD"`
}

func TestValidation(t *testing.T) {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/payments", func(c *gin.Context) {
		var body paymentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(RequestIDHeader, "req-val")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid body", func(t *testing.T) {
		w := post(`{"client_id":"0b0d3c9e-6f0a-4c6e-9d43-2f5a8f1c2b11","amount":"150.00","method":"CASH"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("fields reported by json name", func(t *testing.T) {
		w := post(`{"client_id":"nope","amount":"0","method":"CHEQUE"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)

		info := decodeError(t, w)
		assert.Equal(t, dto.ErrCodeValidation, info.Code)
		assert.Equal(t, "req-val", info.RequestID)

		byField := map[string]string{}
		for _, d := range info.Details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "Invalid UUID format", byField["client_id"])
		assert.Equal(t, "Must be greater than 0", byField["amount"])
		assert.Equal(t, "Must be one of: CASH CARD", byField["method"])
	})

	t.Run("negative decimal rejected", func(t *testing.T) {
		w := post(`{"client_id":"0b0d3c9e-6f0a-4c6e-9d43-2f5a8f1c2b11","amount":"-5","method":"CARD"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
