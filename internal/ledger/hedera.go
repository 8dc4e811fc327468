package ledger

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/config"
)

const (
	certificateTokenName   = "PROFUTUR Certificate"
	certificateTokenSymbol = "PFCERT"
	// Hedera rejects NFT metadata longer than this.
	maxNFTMetadata = 100
)

var clientFactories = map[string]func() *hedera.Client{
	NetworkTestnet:    hedera.ClientForTestnet,
	NetworkMainnet:    hedera.ClientForMainnet,
	NetworkPreviewnet: hedera.ClientForPreviewnet,
}

// HederaGateway mints certificate NFTs and anchors donations on Hedera. The
// SDK client is created on first use and shared by all callers.
type HederaGateway struct {
	network     string
	operatorID  hedera.AccountID
	operatorKey hedera.PrivateKey
	treasuryID  hedera.AccountID
	treasuryKey hedera.PrivateKey
	timeout     time.Duration
	mirror      *mirrorClient
	newClient   func() *hedera.Client

	mu     sync.Mutex
	client *hedera.Client
	closed bool
}

// NewHederaGateway validates the network and every credential up front.
// Anything missing or malformed fails with ErrLedgerUnavailable.
func NewHederaGateway(conf *config.LedgerConfig) (*HederaGateway, error) {
	newClient, ok := clientFactories[conf.Network]
	if !ok {
		return nil, fmt.Errorf("%w: unknown network %q", ErrLedgerUnavailable, conf.Network)
	}

	required := []struct {
		name  string
		value string
	}{
		{"operator account id", conf.OperatorAccountID},
		{"operator private key", conf.OperatorPrivateKey},
		{"treasury account id", conf.TreasuryAccountID},
		{"treasury private key", conf.TreasuryPrivateKey},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrLedgerUnavailable, strings.Join(missing, ", "))
	}

	operatorID, err := hedera.AccountIDFromString(conf.OperatorAccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: operator account id: %w", ErrLedgerUnavailable, err)
	}
	operatorKey, err := hedera.PrivateKeyFromString(conf.OperatorPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: operator private key: %w", ErrLedgerUnavailable, err)
	}
	treasuryID, err := hedera.AccountIDFromString(conf.TreasuryAccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: treasury account id: %w", ErrLedgerUnavailable, err)
	}
	treasuryKey, err := hedera.PrivateKeyFromString(conf.TreasuryPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: treasury private key: %w", ErrLedgerUnavailable, err)
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	mirrorURL := conf.MirrorNodeURL
	if mirrorURL == "" {
		mirrorURL = mirrorURLs[conf.Network]
	}

	return &HederaGateway{
		network:     conf.Network,
		operatorID:  operatorID,
		operatorKey: operatorKey,
		treasuryID:  treasuryID,
		treasuryKey: treasuryKey,
		timeout:     timeout,
		mirror:      newMirrorClient(mirrorURL, timeout),
		newClient:   newClient,
	}, nil
}

func (g *HederaGateway) MintCertificate(ctx context.Context, meta CertificateMetadata) (MintResult, error) {
	client, err := g.getClient()
	if err != nil {
		return MintResult{}, err
	}

	return await(ctx, g.timeout, func() (MintResult, error) {
		return g.mint(client, meta)
	})
}

func (g *HederaGateway) RecordDonation(ctx context.Context, donorID uint, amount decimal.Decimal, message string) (DonationReceipt, error) {
	client, err := g.getClient()
	if err != nil {
		return DonationReceipt{}, err
	}

	return await(ctx, g.timeout, func() (DonationReceipt, error) {
		return g.transferDonation(client, donorID, amount, message)
	})
}

func (g *HederaGateway) Verify(ctx context.Context, tokenIDOrHash string) (bool, error) {
	tokenID, err := hedera.TokenIDFromString(tokenIDOrHash)
	if err != nil {
		return g.mirror.TransactionSucceeded(ctx, tokenIDOrHash)
	}

	client, err := g.getClient()
	if err != nil {
		return false, err
	}

	return await(ctx, g.timeout, func() (bool, error) {
		info, err := hedera.NewTokenInfoQuery().SetTokenID(tokenID).Execute(client)
		if err != nil {
			var precheck hedera.ErrHederaPreCheckStatus
			if errors.As(err, &precheck) {
				// INVALID_TOKEN_ID and friends: the token does not resolve.
				return false, nil
			}
			return false, fmt.Errorf("%w: token info: %w", ErrLedgerUnavailable, err)
		}

		return info.TotalSupply >= 1, nil
	})
}

func (g *HederaGateway) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Status{
		Network:   g.network,
		Connected: g.client != nil && !g.closed,
		Operator:  g.operatorID.String(),
	}
}

func (g *HederaGateway) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
	if g.client == nil {
		return nil
	}

	err := g.client.Close()
	g.client = nil

	return err
}

func (g *HederaGateway) getClient() (*hedera.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil, fmt.Errorf("%w: gateway closed", ErrLedgerUnavailable)
	}

	if g.client == nil {
		client := g.newClient()
		client.SetOperator(g.operatorID, g.operatorKey)
		g.client = client

		zap.L().Info("hedera client created",
			zap.String("network", g.network),
			zap.String("operator", g.operatorID.String()),
		)
	}

	return g.client, nil
}

func (g *HederaGateway) mint(client *hedera.Client, meta CertificateMetadata) (MintResult, error) {
	supplyKey := g.treasuryKey.PublicKey()

	createTx, err := hedera.NewTokenCreateTransaction().
		SetTokenName(certificateTokenName).
		SetTokenSymbol(certificateTokenSymbol).
		SetTokenMemo(truncate(meta.CertificateNumber, maxNFTMetadata)).
		SetTokenType(hedera.TokenTypeNonFungibleUnique).
		SetDecimals(0).
		SetInitialSupply(0).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(1).
		SetTreasuryAccountID(g.treasuryID).
		SetAdminKey(supplyKey).
		SetSupplyKey(supplyKey).
		FreezeWith(client)
	if err != nil {
		return MintResult{}, fmt.Errorf("%w: freeze token create: %w", ErrLedgerTransaction, err)
	}

	createResp, err := createTx.Sign(g.treasuryKey).Execute(client)
	if err != nil {
		return MintResult{}, classify("token create", err)
	}
	createReceipt, err := createResp.GetReceipt(client)
	if err != nil {
		return MintResult{}, classify("token create receipt", err)
	}
	if createReceipt.TokenID == nil {
		return MintResult{}, fmt.Errorf("%w: token create receipt carries no token id", ErrLedgerTransaction)
	}
	tokenID := *createReceipt.TokenID

	mintTx, err := hedera.NewTokenMintTransaction().
		SetTokenID(tokenID).
		SetMetadata(nftMetadata(meta)).
		FreezeWith(client)
	if err != nil {
		return MintResult{}, &PartialMintError{TokenID: tokenID.String(), Err: err}
	}

	mintResp, err := mintTx.Sign(g.treasuryKey).Execute(client)
	if err != nil {
		return MintResult{}, &PartialMintError{TokenID: tokenID.String(), Err: classify("token mint", err)}
	}
	if _, err = mintResp.GetReceipt(client); err != nil {
		return MintResult{}, &PartialMintError{TokenID: tokenID.String(), Err: classify("token mint receipt", err)}
	}

	return mintResult(tokenID.String(), mintResp, g.network), nil
}

func mintResult(tokenID string, resp hedera.TransactionResponse, network string) MintResult {
	return MintResult{
		TokenID:         tokenID,
		TransactionHash: hex.EncodeToString(resp.Hash),
		Network:         network,
	}
}

func (g *HederaGateway) transferDonation(client *hedera.Client, donorID uint, amount decimal.Decimal, message string) (DonationReceipt, error) {
	m := memo(donorID, time.Now())

	tx, err := hedera.NewTransferTransaction().
		AddHbarTransfer(g.operatorID, hedera.HbarFromTinybar(-1)).
		AddHbarTransfer(g.treasuryID, hedera.HbarFromTinybar(1)).
		SetTransactionMemo(m).
		FreezeWith(client)
	if err != nil {
		return DonationReceipt{}, fmt.Errorf("%w: freeze transfer: %w", ErrLedgerTransaction, err)
	}

	resp, err := tx.Execute(client)
	if err != nil {
		return DonationReceipt{}, classify("donation transfer", err)
	}

	receipt, err := resp.GetReceipt(client)
	if err != nil {
		return DonationReceipt{}, classify("donation transfer receipt", err)
	}

	zap.L().Info("donation anchored",
		zap.String("memo", m),
		zap.String("amount", amount.String()),
		zap.Int("message_len", len(message)),
	)

	return donationReceipt(resp, receipt, m, g.network), nil
}

func donationReceipt(resp hedera.TransactionResponse, receipt hedera.TransactionReceipt, memo, network string) DonationReceipt {
	return DonationReceipt{
		TransactionHash: hex.EncodeToString(resp.Hash),
		Memo:            memo,
		Network:         network,
		Verified:        receipt.Status == hedera.StatusSuccess,
	}
}

// classify splits SDK errors into rejected calls and calls whose outcome is
// unknown.
func classify(step string, err error) error {
	var precheck hedera.ErrHederaPreCheckStatus
	var receipt hedera.ErrHederaReceiptStatus
	if errors.As(err, &precheck) || errors.As(err, &receipt) {
		return fmt.Errorf("%w: %s: %w", ErrLedgerTransaction, step, err)
	}

	return fmt.Errorf("%w: %s: %w", ErrLedgerUnavailable, step, err)
}

// nftMetadata encodes the certificate reference stored on the token itself.
// The full certificate metadata lives in the blockchain record.
func nftMetadata(meta CertificateMetadata) []byte {
	b, err := json.Marshal(map[string]string{
		"cert": meta.CertificateNumber,
		"type": "certificate",
	})
	if err != nil || len(b) > maxNFTMetadata {
		return []byte(truncate(meta.CertificateNumber, maxNFTMetadata))
	}

	return b
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
