package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/salestrack/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	SetupValidator()
}

type paymentRequest struct {
	PaymentType string `json:"payment_type" binding:"required,paymenttype"`
}

func TestPaymentTypeValidator(t *testing.T) {
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name         string
		paymentType  string
		expectedCode int
	}{
		{"cash accepted", "CASH", http.StatusOK},
		{"card accepted", "CARD", http.StatusOK},
		{"transfer accepted", "TRANSFER", http.StatusOK},
		{"unknown rejected", "BITCOIN", http.StatusBadRequest},
		{"lowercase rejected", "cash", http.StatusBadRequest},
		{"empty rejected", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(map[string]string{"payment_type": tt.paymentType})
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/test", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestHandleValidationError(t *testing.T) {
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		c.Set(RequestIDKey, "req-789")
		var req paymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	body, _ := json.Marshal(map[string]string{"payment_type": "GOLD"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/test", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-789", resp.Error.RequestID)
	require.Len(t, resp.Error.Details, 1)

	// Field names come from JSON tags, not struct field names
	assert.Equal(t, "payment_type", resp.Error.Details[0].Field)
	assert.Contains(t, resp.Error.Details[0].Message, "CASH")
}

func TestFormatValidationErrorsWithNonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "req-1")
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Empty(t, resp.Error.Details)
}
