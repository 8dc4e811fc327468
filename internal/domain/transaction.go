package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionDonation   TransactionType = "donation"
	TransactionPayment    TransactionType = "payment"
	TransactionCommission TransactionType = "commission"
	TransactionRefund     TransactionType = "refund"
)

// Transaction is the append-only ledger-of-record entry. Reference carries the
// mobile money transaction id it belongs to.
type Transaction struct {
	ID             uint            `json:"id"`
	FromUserID     *uint           `json:"from_user_id,omitempty"`
	ToUserID       *uint           `json:"to_user_id,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	Type           TransactionType `json:"type"`
	Status         PaymentStatus   `json:"status"`
	Description    string          `json:"description,omitempty"`
	BlockchainHash string          `json:"blockchain_hash,omitempty"`
	Reference      string          `json:"reference,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (t *Transaction) IsValid() bool {
	if !t.Amount.IsPositive() {
		return false
	}
	switch t.Type {
	case TransactionDonation, TransactionPayment, TransactionCommission, TransactionRefund:
	default:
		return false
	}
	switch t.Status {
	case PaymentPending, PaymentCompleted, PaymentFailed:
	default:
		return false
	}
	if t.FromUserID != nil && t.ToUserID != nil && *t.FromUserID == *t.ToUserID {
		return false
	}
	return true
}
