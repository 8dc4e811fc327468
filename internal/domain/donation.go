package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Donation struct {
	ID              uint            `json:"id"`
	DonorID         *uint           `json:"donor_id,omitempty"` // nil for anonymous donors
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     string          `json:"description,omitempty"`
	Status          PaymentStatus   `json:"status"`
	TransactionHash string          `json:"transaction_hash"`
	Reference       string          `json:"reference"`
	DonatedAt       time.Time       `json:"donated_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
