package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"
)

type ConfirmPaymentRequest struct {
	TransactionID string           `json:"transaction_id"`
	Provider      string           `json:"provider"`
	Status        string           `json:"status"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Timestamp     *time.Time       `json:"timestamp,omitempty"`
}

func (req *ConfirmPaymentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TransactionID, validation.Required),
		validation.Field(&req.Provider, validation.Required, knownProvider),
		validation.Field(&req.Status, validation.Required, validation.In("completed", "failed")),
	)
}

type ConfirmEnrollmentRequest struct {
	TransactionID string `json:"transaction_id"`
	FormationID   uint   `json:"formation_id"`
	StudentID     uint   `json:"student_id"`
	Status        string `json:"status"`
}

func (req *ConfirmEnrollmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TransactionID, validation.Required),
		validation.Field(&req.FormationID, validation.Required),
		validation.Field(&req.StudentID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In("active", "completed")),
	)
}

type ConfirmDonationRequest struct {
	TransactionID  string           `json:"transaction_id"`
	Status         string           `json:"status"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	BlockchainHash string           `json:"blockchain_hash,omitempty"`
}

func (req *ConfirmDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.TransactionID, validation.Required),
		validation.Field(&req.Status, validation.Required, validation.In("completed", "failed")),
	)
}
