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
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/service"
)

func newPaymentRouter(t *testing.T, userID uint) (*mocks.PaymentService, http.Handler) {
	svc := mocks.NewPaymentService(t)
	h := NewPaymentHandler(svc)

	r := newRouter(userID)
	r.POST("/payments.initiateMobileMoneyPayment", h.HandleInitiatePayment)
	r.GET("/payments.checkPaymentStatus", h.HandleCheckPaymentStatus)
	r.POST("/payments.createCertificateNFT", h.HandleCreateCertificateNFT)
	r.GET("/payments.verifyCertificate", h.HandleVerifyCertificate)
	r.POST("/payments.recordDonation", h.HandleRecordDonation)
	r.GET("/payments.getDonationHistory", h.HandleGetDonationHistory)
	r.GET("/payments.getPaymentStats", h.HandleGetPaymentStats)

	return svc, r
}

func TestPaymentHandler_HandleInitiatePayment(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 3)
		created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		svc.On("InitiatePayment", mock.Anything, uint(3), mock.MatchedBy(func(req service.PaymentRequest) bool {
			return req.Amount.Equal(decimal.NewFromInt(50)) && req.Provider == "orange" && req.FormationID == 9
		})).Return(domain.MobileMoneyTransaction{
			TransactionID: "TXN-1-3",
			Status:        domain.PaymentPending,
			Amount:        decimal.NewFromInt(50),
			Currency:      "USD",
			Provider:      domain.ProviderOrange,
			CreatedAt:     created,
		}, nil)

		rr := doJSON(t, r, http.MethodPost, "/payments.initiateMobileMoneyPayment", map[string]any{
			"amount":       50,
			"phone_number": "+243810000000",
			"provider":     "orange",
			"formation_id": 9,
		})

		require.Equal(t, http.StatusCreated, rr.Code)
		var body response.PaymentResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "TXN-1-3", body.TransactionID)
		assert.Equal(t, domain.PaymentPending, body.Status)
		assert.True(t, body.Amount.Equal(decimal.NewFromInt(50)))
	})

	t.Run("Rejected before the service", func(t *testing.T) {
		tests := []struct {
			name string
			body map[string]any
			kind response.Kind
		}{
			{"zero amount", map[string]any{"amount": 0, "phone_number": "1", "provider": "orange", "formation_id": 1}, response.KindValidation},
			{"negative amount", map[string]any{"amount": -5, "phone_number": "1", "provider": "orange", "formation_id": 1}, response.KindValidation},
			{"unknown provider", map[string]any{"amount": 5, "phone_number": "1", "provider": "mpesa", "formation_id": 1}, response.KindInvalidProvider},
			{"no provider", map[string]any{"amount": 5, "phone_number": "1", "formation_id": 1}, response.KindValidation},
			{"no phone", map[string]any{"amount": 5, "provider": "orange", "formation_id": 1}, response.KindValidation},
			{"no formation", map[string]any{"amount": 5, "phone_number": "1", "provider": "orange"}, response.KindValidation},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, r := newPaymentRouter(t, 3)

				rr := doJSON(t, r, http.MethodPost, "/payments.initiateMobileMoneyPayment", tt.body)

				assert.Equal(t, http.StatusBadRequest, rr.Code)
				assert.Equal(t, tt.kind, decodeErr(t, rr).Kind)
			})
		}
	})

	t.Run("Provider in any case", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 3)
		svc.On("InitiatePayment", mock.Anything, uint(3), mock.MatchedBy(func(req service.PaymentRequest) bool {
			return req.Provider == "Orange"
		})).Return(domain.MobileMoneyTransaction{TransactionID: "TXN-1-3", Status: domain.PaymentPending, Provider: domain.ProviderOrange}, nil)

		rr := doJSON(t, r, http.MethodPost, "/payments.initiateMobileMoneyPayment", map[string]any{
			"amount": 5, "phone_number": "1", "provider": "Orange", "formation_id": 1,
		})

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Unknown formation", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 3)
		svc.On("InitiatePayment", mock.Anything, uint(3), mock.Anything).
			Return(domain.MobileMoneyTransaction{}, fmt.Errorf("s.formations.FindByID -> %w", service.ErrFormationNotFound))

		rr := doJSON(t, r, http.MethodPost, "/payments.initiateMobileMoneyPayment", map[string]any{
			"amount": 5, "phone_number": "1", "provider": "airtel", "formation_id": 404,
		})

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, response.KindNotFound, decodeErr(t, rr).Kind)
	})

	t.Run("Anonymous", func(t *testing.T) {
		_, r := newPaymentRouter(t, 0)

		rr := doJSON(t, r, http.MethodPost, "/payments.initiateMobileMoneyPayment", map[string]any{
			"amount": 5, "phone_number": "1", "provider": "airtel", "formation_id": 1,
		})

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestPaymentHandler_HandleCheckPaymentStatus(t *testing.T) {
	svc, r := newPaymentRouter(t, 0)
	svc.On("CheckPaymentStatus", mock.Anything, "TXN-9", "vodacom").Return(service.PaymentStatusView{
		TransactionID: "TXN-9",
		Status:        domain.PaymentNotFound,
		Provider:      domain.ProviderVodacom,
	}, nil)

	rr := doJSON(t, r, http.MethodGet, "/payments.checkPaymentStatus?transaction_id=TXN-9&provider=vodacom", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"not_found"`)

	rr = doJSON(t, r, http.MethodGet, "/payments.checkPaymentStatus?transaction_id=TXN-9", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPaymentHandler_HandleCreateCertificateNFT(t *testing.T) {
	body := map[string]any{
		"enrollment_id":   4,
		"formation_title": "Go",
		"completion_date": "2026-03-01T00:00:00Z",
	}

	tests := []struct {
		name      string
		svcErr    error
		code      int
		kind      response.Kind
		retryable bool
	}{
		{"ledger unavailable", fmt.Errorf("s.ledger.MintCertificate -> %w", ledger.ErrLedgerUnavailable), http.StatusServiceUnavailable, response.KindLedgerUnavailable, true},
		{"ledger rejected", &ledger.PartialMintError{TokenID: "0.0.5", Err: ledger.ErrLedgerTransaction}, http.StatusBadGateway, response.KindLedgerTransaction, false},
		{"not completed", service.ErrNotCompleted, http.StatusUnprocessableEntity, response.KindNotCompleted, false},
		{"not owner", service.ErrUnauthorized, http.StatusForbidden, response.KindUnauthorized, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, r := newPaymentRouter(t, 3)
			svc.On("CreateCertificateNFT", mock.Anything, uint(3), mock.Anything).Return(service.MintedCertificate{}, tt.svcErr)

			rr := doJSON(t, r, http.MethodPost, "/payments.createCertificateNFT", body)

			assert.Equal(t, tt.code, rr.Code)
			e := decodeErr(t, rr)
			assert.Equal(t, tt.kind, e.Kind)
			assert.Equal(t, tt.retryable, e.Retryable)
		})
	}

	t.Run("Minted", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 3)
		svc.On("CreateCertificateNFT", mock.Anything, uint(3), mock.MatchedBy(func(req service.MintRequest) bool {
			return req.EnrollmentID == 4 && req.FormationTitle == "Go" && req.CompletionDate.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		})).Return(service.MintedCertificate{TokenID: "0.0.5", Network: "local"}, nil)

		rr := doJSON(t, r, http.MethodPost, "/payments.createCertificateNFT", body)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"token_id":"0.0.5"`)
	})
}

func TestPaymentHandler_HandleVerifyCertificate(t *testing.T) {
	svc, r := newPaymentRouter(t, 0)
	svc.On("VerifyCertificate", mock.Anything, "0.0.5", "CERT-1-3").Return(service.CertificateVerification{
		IsValid: true,
		Details: map[string]any{"verified": true},
	}, nil)

	rr := doJSON(t, r, http.MethodGet, "/payments.verifyCertificate?token_id=0.0.5&certificate_number=CERT-1-3", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"is_valid":true`)
}

func TestPaymentHandler_HandleRecordDonation(t *testing.T) {
	body := map[string]any{"amount": "12.50", "phone_number": "1", "provider": "airtel", "message": "merci"}

	t.Run("Anonymous donor", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 0)
		svc.On("RecordDonation", mock.Anything, (*uint)(nil), mock.MatchedBy(func(req service.DonationRequest) bool {
			return req.Amount.Equal(decimal.RequireFromString("12.5")) && req.Message == "merci"
		})).Return(service.DonationResult{Verified: true}, nil)

		rr := doJSON(t, r, http.MethodPost, "/payments.recordDonation", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Signed in donor", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 3)
		svc.On("RecordDonation", mock.Anything, mock.MatchedBy(func(id *uint) bool {
			return id != nil && *id == 3
		}), mock.Anything).Return(service.DonationResult{Verified: true}, nil)

		rr := doJSON(t, r, http.MethodPost, "/payments.recordDonation", body)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Unknown provider", func(t *testing.T) {
		_, r := newPaymentRouter(t, 0)

		rr := doJSON(t, r, http.MethodPost, "/payments.recordDonation", map[string]any{
			"amount": "12.50", "phone_number": "1", "provider": "mpesa",
		})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		got := decodeErr(t, rr)
		assert.Equal(t, response.KindInvalidProvider, got.Kind)
		assert.False(t, got.Retryable)
	})

	t.Run("Ledger down", func(t *testing.T) {
		svc, r := newPaymentRouter(t, 0)
		svc.On("RecordDonation", mock.Anything, mock.Anything, mock.Anything).
			Return(service.DonationResult{}, fmt.Errorf("s.ledger.RecordDonation -> %w", service.ErrLedgerUnavailable))

		rr := doJSON(t, r, http.MethodPost, "/payments.recordDonation", body)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.True(t, decodeErr(t, rr).Retryable)
	})
}

func TestPaymentHandler_Reads(t *testing.T) {
	svc, r := newPaymentRouter(t, 0)
	svc.On("GetDonationHistory", mock.Anything, 25).Return([]domain.Donation{{Reference: "TXN-1-DONATION"}})
	svc.On("GetDonationHistory", mock.Anything, 0).Return([]domain.Donation{})
	svc.On("GetPaymentStats", mock.Anything).Return(domain.PaymentStats{
		TotalDonations:    decimal.NewFromInt(10),
		TotalPayments:     decimal.NewFromInt(5),
		TotalTransactions: decimal.NewFromInt(15),
		Currency:          "USD",
	})

	rr := doJSON(t, r, http.MethodGet, "/payments.getDonationHistory?limit=25", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "TXN-1-DONATION")

	rr = doJSON(t, r, http.MethodGet, "/payments.getDonationHistory", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = doJSON(t, r, http.MethodGet, "/payments.getDonationHistory?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = doJSON(t, r, http.MethodGet, "/payments.getPaymentStats", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	var stats domain.PaymentStats
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.True(t, stats.TotalTransactions.Equal(decimal.NewFromInt(15)))
}
