package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Provider string

const (
	ProviderOrange  Provider = "orange"
	ProviderVodacom Provider = "vodacom"
	ProviderAirtel  Provider = "airtel"
)

func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProviderOrange, ProviderVodacom, ProviderAirtel:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, s)
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	// PaymentNotFound is only reported by status lookups, never stored.
	PaymentNotFound PaymentStatus = "not_found"
)

func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

func ParseTerminalStatus(s string) (PaymentStatus, error) {
	st := PaymentStatus(s)
	if !st.IsTerminal() {
		return "", fmt.Errorf("%w: status must be completed or failed, got %q", ErrInvalidInput, s)
	}
	return st, nil
}

type PaymentPurpose string

const (
	PurposeFormation PaymentPurpose = "formation"
	PurposeDonation  PaymentPurpose = "donation"
)

type MobileMoneyTransaction struct {
	ID            uint            `json:"id"`
	TransactionID string          `json:"transaction_id"`
	UserID        *uint           `json:"user_id,omitempty"`
	Provider      Provider        `json:"provider"`
	PhoneNumber   string          `json:"phone_number"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Status        PaymentStatus   `json:"status"`
	Purpose       PaymentPurpose  `json:"purpose"`
	FormationID   *uint           `json:"formation_id,omitempty"`
	Description   string          `json:"description,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Resolve applies a terminal status. It reports false when the transaction is
// already at that status; moving between terminal states is rejected.
func (t *MobileMoneyTransaction) Resolve(status PaymentStatus) (bool, error) {
	if !status.IsTerminal() {
		return false, fmt.Errorf("%w: %q is not a terminal status", ErrInvalidInput, status)
	}
	if t.Status == status {
		return false, nil
	}
	if t.Status.IsTerminal() {
		return false, fmt.Errorf("%w: transaction %s is already %s", ErrInvalidTransition, t.TransactionID, t.Status)
	}
	t.Status = status
	return true, nil
}

func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", ErrInvalidInput)
	}
	return nil
}

type PaymentStats struct {
	TotalDonations        decimal.Decimal `json:"total_donations"`
	TotalPayments         decimal.Decimal `json:"total_payments"`
	TotalTransactions     decimal.Decimal `json:"total_transactions"`
	CertificateCount      int64           `json:"certificate_count"`
	BlockchainRecordCount int64           `json:"blockchain_record_count"`
	Currency              string          `json:"currency"`
}
