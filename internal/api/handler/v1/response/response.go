package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/profutur/profutur-api/internal/domain"
)

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type ProfileResponse struct {
	User    domain.User    `json:"user"`
	Profile domain.Profile `json:"profile"`
}

type EnrollmentResponse struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message,omitempty"`
	Enrollment domain.Enrollment `json:"enrollment"`
}

type CertificateResponse struct {
	Success           bool               `json:"success"`
	CertificateNumber string             `json:"certificate_number"`
	Certificate       domain.Certificate `json:"certificate"`
}

type PaymentResponse struct {
	TransactionID string               `json:"transaction_id"`
	Status        domain.PaymentStatus `json:"status"`
	Amount        decimal.Decimal      `json:"amount"`
	Currency      string               `json:"currency"`
	Timestamp     time.Time            `json:"timestamp"`
	Provider      domain.Provider      `json:"provider"`
}

func NewPaymentResponse(tx domain.MobileMoneyTransaction) PaymentResponse {
	return PaymentResponse{
		TransactionID: tx.TransactionID,
		Status:        tx.Status,
		Amount:        tx.Amount,
		Currency:      tx.Currency,
		Timestamp:     tx.CreatedAt,
		Provider:      tx.Provider,
	}
}

type WebhookResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	Changed       bool   `json:"changed"`
	Message       string `json:"message"`
}

type EnrollmentConfirmedResponse struct {
	Success     bool              `json:"success"`
	FormationID uint              `json:"formation_id"`
	StudentID   uint              `json:"student_id"`
	Status      string            `json:"status"`
	Message     string            `json:"message"`
	Enrollment  domain.Enrollment `json:"enrollment"`
}

type WebhookHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
