// Package ledger anchors certificates and donations on a distributed ledger.
//
// Callers depend on Gateway. HederaGateway talks to a Hedera network,
// MemoryGateway keeps everything in process for local runs and tests, and
// Unavailable stands in when no ledger could be configured so the rest of the
// platform keeps working without one.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/config"
)

const (
	NetworkTestnet    = "testnet"
	NetworkMainnet    = "mainnet"
	NetworkPreviewnet = "previewnet"
	NetworkLocal      = "local"

	defaultTimeout = 30 * time.Second
)

var (
	// ErrLedgerUnavailable means the ledger could not be reached or the call
	// timed out. The outcome of a timed out call is unknown.
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	// ErrLedgerTransaction means the ledger executed the call and rejected it.
	ErrLedgerTransaction = errors.New("ledger transaction failed")
)

type CertificateMetadata struct {
	CertificateNumber string
	StudentName       string
	FormationTitle    string
	CompletionDate    time.Time
	Grade             string
}

type MintResult struct {
	TokenID         string
	TransactionHash string
	Network         string
}

type DonationReceipt struct {
	TransactionHash string
	Memo            string
	Network         string
	Verified        bool
}

type Status struct {
	Network   string `json:"network"`
	Connected bool   `json:"connected"`
	Operator  string `json:"operator,omitempty"`
}

type Gateway interface {
	MintCertificate(ctx context.Context, meta CertificateMetadata) (MintResult, error)
	RecordDonation(ctx context.Context, donorID uint, amount decimal.Decimal, message string) (DonationReceipt, error)
	// Verify reports whether a token id or transaction hash still resolves on
	// the ledger.
	Verify(ctx context.Context, tokenIDOrHash string) (bool, error)
	Status() Status
	Close() error
}

// PartialMintError reports a token that was created but never minted.
type PartialMintError struct {
	TokenID string
	Err     error
}

func (e *PartialMintError) Error() string {
	return fmt.Sprintf("token %s created but not minted: %v", e.TokenID, e.Err)
}

func (e *PartialMintError) Unwrap() []error {
	return []error{ErrLedgerTransaction, e.Err}
}

// New builds the gateway for conf.Network. When the Hedera credentials are
// missing or invalid it returns an Unavailable gateway together with the
// error, so callers can log it and keep serving.
func New(conf *config.LedgerConfig) (Gateway, error) {
	if conf.Network == NetworkLocal {
		zap.L().Info("using the in-process ledger")
		return NewMemoryGateway(), nil
	}

	g, err := NewHederaGateway(conf)
	if err != nil {
		return NewUnavailable(conf.Network, err), err
	}

	return g, nil
}

func memo(donorID uint, at time.Time) string {
	return fmt.Sprintf("PROFUTUR-DONATION-%d-%d", at.UnixMilli(), donorID)
}
