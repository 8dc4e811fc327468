package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/profutur/profutur-api/internal/api/handler/v1/mocks"
	"github.com/profutur/profutur-api/internal/api/handler/v1/response"
	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/service"
)

func newWebhookRouter(t *testing.T) (*mocks.WebhookService, *WebhookHandler, http.Handler) {
	svc := mocks.NewWebhookService(t)
	h := NewWebhookHandler(svc)

	r := newRouter(0)
	r.POST("/webhooks.confirmMobileMoneyPayment", h.HandleConfirmPayment)
	r.POST("/webhooks.confirmFormationEnrollment", h.HandleConfirmEnrollment)
	r.POST("/webhooks.confirmDonation", h.HandleConfirmDonation)
	r.GET("/webhooks.health", h.HandleHealth)

	return svc, h, r
}

func TestWebhookHandler_HandleConfirmPayment(t *testing.T) {
	t.Run("First confirmation", func(t *testing.T) {
		svc, _, r := newWebhookRouter(t)
		svc.On("ConfirmPayment", mock.Anything, mock.MatchedBy(func(c service.Confirmation) bool {
			return c.TransactionID == "TXN-1-3" && c.Status == domain.PaymentCompleted &&
				c.Amount != nil && c.Amount.Equal(decimal.NewFromInt(50))
		})).Return(service.ConfirmationResult{
			Success:       true,
			TransactionID: "TXN-1-3",
			Status:        domain.PaymentCompleted,
			Changed:       true,
		}, nil)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", map[string]any{
			"transaction_id": "TXN-1-3",
			"provider":       "orange",
			"status":         "completed",
			"amount":         50,
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var body response.WebhookResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.True(t, body.Changed)
		assert.Equal(t, "Payment completed successfully", body.Message)
	})

	t.Run("Replay", func(t *testing.T) {
		svc, _, r := newWebhookRouter(t)
		svc.On("ConfirmPayment", mock.Anything, mock.Anything).Return(service.ConfirmationResult{
			Success:       true,
			TransactionID: "TXN-1-3",
			Status:        domain.PaymentCompleted,
		}, nil)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", map[string]any{
			"transaction_id": "TXN-1-3", "provider": "orange", "status": "completed",
		})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"changed":false`)
	})

	t.Run("Contradicting status", func(t *testing.T) {
		svc, _, r := newWebhookRouter(t)
		svc.On("ConfirmPayment", mock.Anything, mock.Anything).
			Return(service.ConfirmationResult{}, fmt.Errorf("transaction TXN-1-3 is completed: %w", service.ErrConflict))

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", map[string]any{
			"transaction_id": "TXN-1-3", "provider": "orange", "status": "failed",
		})

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, response.KindConflict, decodeErr(t, rr).Kind)
	})

	t.Run("Pending is not a final status", func(t *testing.T) {
		_, _, r := newWebhookRouter(t)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", map[string]any{
			"transaction_id": "TXN-1-3", "provider": "orange", "status": "pending",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, response.KindValidation, decodeErr(t, rr).Kind)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		_, _, r := newWebhookRouter(t)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", map[string]any{
			"transaction_id": "TXN-1-3", "provider": "mpesa", "status": "completed",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, response.KindInvalidProvider, decodeErr(t, rr).Kind)
	})

	t.Run("Malformed body", func(t *testing.T) {
		_, _, r := newWebhookRouter(t)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmMobileMoneyPayment", "{")

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWebhookHandler_HandleConfirmEnrollment(t *testing.T) {
	t.Run("Activated", func(t *testing.T) {
		svc, _, r := newWebhookRouter(t)
		svc.On("ConfirmFormationEnrollment", mock.Anything, service.EnrollmentConfirmation{
			TransactionID: "TXN-1-3",
			FormationID:   9,
			StudentID:     3,
			Status:        domain.EnrollmentActive,
		}).Return(domain.Enrollment{ID: 1, StudentID: 3, FormationID: 9, Status: domain.EnrollmentActive}, nil)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmFormationEnrollment", map[string]any{
			"transaction_id": "TXN-1-3", "formation_id": 9, "student_id": 3, "status": "active",
		})

		require.Equal(t, http.StatusOK, rr.Code)
		var body response.EnrollmentConfirmedResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "Enrollment confirmed", body.Message)
		assert.Equal(t, "active", body.Status)
	})

	t.Run("Formation full", func(t *testing.T) {
		svc, _, r := newWebhookRouter(t)
		svc.On("ConfirmFormationEnrollment", mock.Anything, mock.Anything).
			Return(domain.Enrollment{}, service.ErrFormationFull)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmFormationEnrollment", map[string]any{
			"transaction_id": "TXN-1-3", "formation_id": 9, "student_id": 3, "status": "active",
		})

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, response.KindFormationFull, decodeErr(t, rr).Kind)
	})

	t.Run("Dropped is not accepted", func(t *testing.T) {
		_, _, r := newWebhookRouter(t)

		rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmFormationEnrollment", map[string]any{
			"transaction_id": "TXN-1-3", "formation_id": 9, "student_id": 3, "status": "dropped",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestWebhookHandler_HandleConfirmDonation(t *testing.T) {
	svc, _, r := newWebhookRouter(t)
	svc.On("ConfirmDonation", mock.Anything, mock.MatchedBy(func(c service.Confirmation) bool {
		return c.BlockchainHash == "0xabc" && c.Amount == nil
	})).Return(service.ConfirmationResult{
		Success:       true,
		TransactionID: "TXN-2-DONATION",
		Status:        domain.PaymentFailed,
		Changed:       true,
	}, nil)

	rr := doJSON(t, r, http.MethodPost, "/webhooks.confirmDonation", map[string]any{
		"transaction_id": "TXN-2-DONATION", "status": "failed", "blockchain_hash": "0xabc",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Donation failed successfully")
}

func TestWebhookHandler_HandleHealth(t *testing.T) {
	_, h, r := newWebhookRouter(t)
	h.now = func() time.Time { return time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC) }

	rr := doJSON(t, r, http.MethodGet, "/webhooks.health", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2026-05-01T00:00:00Z"}`, rr.Body.String())
}
