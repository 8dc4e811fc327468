package ledger

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// MemoryGateway is an in-process ledger. Token ids follow the Hedera
// shard.realm.num shape and hashes are SHA-384 like Hedera transaction hashes.
type MemoryGateway struct {
	mu       sync.Mutex
	seq      uint64
	tokens   map[string]CertificateMetadata
	txs      map[string]bool
	offline  bool
	failMint bool
	closed   bool
	now      func() time.Time
}

func NewMemoryGateway() *MemoryGateway {
	return &MemoryGateway{
		seq:    1000,
		tokens: make(map[string]CertificateMetadata),
		txs:    make(map[string]bool),
		now:    time.Now,
	}
}

// SetOffline makes every call fail with ErrLedgerUnavailable.
func (m *MemoryGateway) SetOffline(offline bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offline = offline
}

// SetFailMint makes MintCertificate create the token and then fail the mint.
func (m *MemoryGateway) SetFailMint(fail bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failMint = fail
}

func (m *MemoryGateway) MintCertificate(ctx context.Context, meta CertificateMetadata) (MintResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(ctx); err != nil {
		return MintResult{}, err
	}

	m.seq++
	tokenID := fmt.Sprintf("0.0.%d", m.seq)
	if m.failMint {
		return MintResult{}, &PartialMintError{TokenID: tokenID, Err: fmt.Errorf("mint of %s rejected", tokenID)}
	}

	hash := m.hash("mint", tokenID, meta.CertificateNumber)
	m.tokens[tokenID] = meta
	m.txs[hash] = true

	return MintResult{
		TokenID:         tokenID,
		TransactionHash: hash,
		Network:         NetworkLocal,
	}, nil
}

func (m *MemoryGateway) RecordDonation(ctx context.Context, donorID uint, amount decimal.Decimal, message string) (DonationReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(ctx); err != nil {
		return DonationReceipt{}, err
	}

	m.seq++
	now := m.now()
	hash := m.hash("donation", fmt.Sprint(m.seq), fmt.Sprint(donorID), amount.String(), message)
	m.txs[hash] = true

	return DonationReceipt{
		TransactionHash: hash,
		Memo:            memo(donorID, now),
		Network:         NetworkLocal,
		Verified:        true,
	}, nil
}

func (m *MemoryGateway) Verify(ctx context.Context, tokenIDOrHash string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.check(ctx); err != nil {
		return false, err
	}

	if _, ok := m.tokens[tokenIDOrHash]; ok {
		return true, nil
	}

	return m.txs[tokenIDOrHash], nil
}

func (m *MemoryGateway) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Status{
		Network:   NetworkLocal,
		Connected: !m.offline && !m.closed,
	}
}

func (m *MemoryGateway) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

func (m *MemoryGateway) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLedgerUnavailable, err)
	}
	if m.closed {
		return fmt.Errorf("%w: gateway closed", ErrLedgerUnavailable)
	}
	if m.offline {
		return fmt.Errorf("%w: local ledger offline", ErrLedgerUnavailable)
	}
	return nil
}

func (m *MemoryGateway) hash(parts ...string) string {
	h := sha512.New384()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	fmt.Fprint(h, m.now().UnixNano())

	return hex.EncodeToString(h.Sum(nil))
}
