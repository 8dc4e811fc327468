package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Unavailable fails every call with ErrLedgerUnavailable.
type Unavailable struct {
	network string
	reason  error
}

func NewUnavailable(network string, reason error) *Unavailable {
	return &Unavailable{
		network: network,
		reason:  reason,
	}
}

func (u *Unavailable) MintCertificate(context.Context, CertificateMetadata) (MintResult, error) {
	return MintResult{}, u.err()
}

func (u *Unavailable) RecordDonation(context.Context, uint, decimal.Decimal, string) (DonationReceipt, error) {
	return DonationReceipt{}, u.err()
}

func (u *Unavailable) Verify(context.Context, string) (bool, error) {
	return false, u.err()
}

func (u *Unavailable) Status() Status {
	return Status{Network: u.network}
}

func (u *Unavailable) Close() error {
	return nil
}

func (u *Unavailable) err() error {
	if u.reason == nil {
		return ErrLedgerUnavailable
	}
	return fmt.Errorf("%w: %v", ErrLedgerUnavailable, u.reason)
}
