package handlers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testPaystackSecret = "sk_test_webhooks"

func signPaystack(body string) string {
	mac := hmac.New(sha512.New, []byte(testPaystackSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

func serveWebhook(wh *WebhooksHandler, gateway, body, signature string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Post("/api/webhooks/{gateway}", wh.HandleWebhook)

	req := httptest.NewRequest("POST", "/api/webhooks/"+gateway, strings.NewReader(body))
	if signature != "" {
		req.Header.Set("x-paystack-signature", signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhooksHandler_HandleWebhook(t *testing.T) {
	reference := goluhn.Generate(16)
	body := `{"event":"charge.success","data":{"reference":"` + reference + `","status":"success","amount":5000}}`
	approved := &models.Transaction{
		UUID:   uuid.New(),
		Type:   models.TxDeposit,
		Amount: 50.0,
		Status: models.TxApproved,
	}

	t.Run("Valid Signature Confirms Without a Caller", func(t *testing.T) {
		depositService := &MockDepositService{}
		depositService.On("ConfirmDeposit", mock.Anything, (*uuid.UUID)(nil), "paystack", reference).
			Return(approved, nil)
		wh := NewWebhooksHandler(5, depositService, testPaystackSecret, "korapay-secret")

		w := serveWebhook(wh, "paystack", body, signPaystack(body))

		assert.Equal(t, http.StatusOK, w.Code)
		depositService.AssertExpectations(t)
	})

	t.Run("Signature Mismatch Is Unauthorized", func(t *testing.T) {
		depositService := &MockDepositService{}
		wh := NewWebhooksHandler(5, depositService, testPaystackSecret, "korapay-secret")

		w := serveWebhook(wh, "paystack", body, signPaystack("tampered body"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		depositService.AssertNotCalled(t, "ConfirmDeposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Unknown Gateway", func(t *testing.T) {
		wh := NewWebhooksHandler(5, &MockDepositService{}, testPaystackSecret, "korapay-secret")

		w := serveWebhook(wh, "stripe", body, "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unknown gateway")
	})

	t.Run("Client Error Is Not Retried By the Vendor", func(t *testing.T) {
		depositService := &MockDepositService{}
		err := appErrors.NewWithCode(assert.AnError, "transaction not found", http.StatusNotFound)
		depositService.On("ConfirmDeposit", mock.Anything, (*uuid.UUID)(nil), "paystack", reference).
			Return((*models.Transaction)(nil), err)
		wh := NewWebhooksHandler(5, depositService, testPaystackSecret, "korapay-secret")

		w := serveWebhook(wh, "paystack", body, signPaystack(body))

		// 200 keeps the gateway from redelivering a webhook we can never use.
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Moolre Flat Payload Needs No Signature", func(t *testing.T) {
		flatBody := `{"reference":"` + reference + `","status":"success"}`
		depositService := &MockDepositService{}
		depositService.On("ConfirmDeposit", mock.Anything, (*uuid.UUID)(nil), "moolre", reference).
			Return(approved, nil)
		wh := NewWebhooksHandler(5, depositService, testPaystackSecret, "korapay-secret")

		w := serveWebhook(wh, "moolre", flatBody, "")

		assert.Equal(t, http.StatusOK, w.Code)
		depositService.AssertExpectations(t)
	})
}
