package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGateway_MintAndVerify(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()

	res, err := g.MintCertificate(ctx, CertificateMetadata{CertificateNumber: "CERT-1-1"})
	require.NoError(t, err)
	assert.Equal(t, "0.0.1001", res.TokenID)
	assert.Len(t, res.TransactionHash, 96)

	ok, err := g.Verify(ctx, res.TokenID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Verify(ctx, res.TransactionHash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.Verify(ctx, "0.0.42")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryGateway_RecordDonation(t *testing.T) {
	g := NewMemoryGateway()

	receipt, err := g.RecordDonation(context.Background(), 7, decimal.NewFromInt(100), "merci")
	require.NoError(t, err)
	assert.True(t, receipt.Verified)
	assert.NotEmpty(t, receipt.TransactionHash)
	assert.Contains(t, receipt.Memo, "PROFUTUR-DONATION-")
	assert.Contains(t, receipt.Memo, "-7")
}

func TestMemoryGateway_Offline(t *testing.T) {
	ctx := context.Background()
	g := NewMemoryGateway()
	g.SetOffline(true)

	_, err := g.MintCertificate(ctx, CertificateMetadata{CertificateNumber: "CERT-1-1"})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)

	_, err = g.RecordDonation(ctx, 0, decimal.NewFromInt(1), "")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.False(t, g.Status().Connected)
}

func TestMemoryGateway_PartialMint(t *testing.T) {
	g := NewMemoryGateway()
	g.SetFailMint(true)

	_, err := g.MintCertificate(context.Background(), CertificateMetadata{CertificateNumber: "CERT-1-1"})
	assert.ErrorIs(t, err, ErrLedgerTransaction)

	var partial *PartialMintError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, "0.0.1001", partial.TokenID)
}

func TestMemoryGateway_Close(t *testing.T) {
	g := NewMemoryGateway()
	require.NoError(t, g.Close())

	_, err := g.Verify(context.Background(), "0.0.1")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
}

func TestUnavailable(t *testing.T) {
	u := NewUnavailable(NetworkTestnet, nil)

	_, err := u.MintCertificate(context.Background(), CertificateMetadata{})
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
	_, err = u.Verify(context.Background(), "0.0.1")
	assert.ErrorIs(t, err, ErrLedgerUnavailable)
	assert.Equal(t, NetworkTestnet, u.Status().Network)
}
