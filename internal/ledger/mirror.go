package ledger

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

var mirrorURLs = map[string]string{
	NetworkTestnet:    "https://testnet.mirrornode.hedera.com",
	NetworkMainnet:    "https://mainnet-public.mirrornode.hedera.com",
	NetworkPreviewnet: "https://previewnet.mirrornode.hedera.com",
}

type mirrorTransaction struct {
	TransactionID string `json:"transaction_id"`
	Result        string `json:"result"`
	Memo          string `json:"memo_base64"`
}

type mirrorTransactions struct {
	Transactions []mirrorTransaction `json:"transactions"`
}

// mirrorClient queries the Hedera mirror node REST API.
type mirrorClient struct {
	http *resty.Client
}

func newMirrorClient(baseURL string, timeout time.Duration) *mirrorClient {
	return &mirrorClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond),
	}
}

// TransactionSucceeded reports whether the mirror node knows the transaction
// by hash and recorded it as SUCCESS. An unknown hash is not an error.
func (m *mirrorClient) TransactionSucceeded(ctx context.Context, hash string) (bool, error) {
	var out mirrorTransactions

	resp, err := m.http.R().
		SetContext(ctx).
		SetPathParam("id", hash).
		SetResult(&out).
		Get("/api/v1/transactions/{id}")
	if err != nil {
		return false, fmt.Errorf("%w: mirror node: %w", ErrLedgerUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return false, nil
	case resp.StatusCode() >= http.StatusInternalServerError:
		return false, fmt.Errorf("%w: mirror node answered %d", ErrLedgerUnavailable, resp.StatusCode())
	case resp.IsError():
		return false, fmt.Errorf("%w: mirror node answered %d", ErrLedgerTransaction, resp.StatusCode())
	}

	for _, tx := range out.Transactions {
		if tx.Result == "SUCCESS" {
			return true, nil
		}
	}

	return false, nil
}
