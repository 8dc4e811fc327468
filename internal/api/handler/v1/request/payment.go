package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/profutur/profutur-api/internal/domain"
)

var errAmountNotPositive = errors.New("must be greater than zero")

// knownProvider accepts the mobile money providers in any case. Its error
// wraps domain.ErrUnknownProvider so it renders with its own kind.
var knownProvider = validation.By(func(value any) error {
	s, _ := value.(string)
	_, err := domain.ParseProvider(s)
	return err
})

// positiveAmount rejects zero and negative amounts.
var positiveAmount = validation.By(func(value any) error {
	amount, _ := value.(decimal.Decimal)
	if !amount.IsPositive() {
		return errAmountNotPositive
	}
	return nil
})

type InitiatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PhoneNumber string          `json:"phone_number"`
	Provider    string          `json:"provider"`
	FormationID uint            `json:"formation_id"`
}

func (req *InitiatePaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, positiveAmount),
		validation.Field(&req.PhoneNumber, validation.Required),
		validation.Field(&req.Provider, validation.Required, knownProvider),
		validation.Field(&req.FormationID, validation.Required),
	)
}

type CheckPaymentStatusRequest struct {
	TransactionID string `form:"transaction_id"`
	Provider      string `form:"provider"`
}

func (req *CheckPaymentStatusRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TransactionID, validation.Required),
		validation.Field(&req.Provider, validation.Required, knownProvider),
	)
}

type CreateCertificateRequest struct {
	EnrollmentID   uint      `json:"enrollment_id"`
	FormationTitle string    `json:"formation_title"`
	CompletionDate time.Time `json:"completion_date"`
	Grade          string    `json:"grade,omitempty"`
}

func (req *CreateCertificateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.EnrollmentID, validation.Required),
		validation.Field(&req.FormationTitle, validation.Required),
		validation.Field(&req.CompletionDate, validation.Required),
		validation.Field(&req.Grade, validation.Length(0, 10)),
	)
}

type VerifyCertificateRequest struct {
	TokenID           string `form:"token_id"`
	CertificateNumber string `form:"certificate_number"`
}

func (req *VerifyCertificateRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TokenID, validation.Required),
		validation.Field(&req.CertificateNumber, validation.Required),
	)
}

type RecordDonationRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	PhoneNumber string          `json:"phone_number"`
	Provider    string          `json:"provider"`
	Message     string          `json:"message,omitempty"`
}

func (req *RecordDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, positiveAmount),
		validation.Field(&req.PhoneNumber, validation.Required),
		validation.Field(&req.Provider, validation.Required, knownProvider),
		validation.Field(&req.Message, validation.Length(0, 1000)),
	)
}

type DonationHistoryRequest struct {
	Limit int `form:"limit"`
}

func (req *DonationHistoryRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Limit, validation.Min(0)),
	)
}
