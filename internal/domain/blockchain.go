package domain

import "time"

type RecordType string

const (
	RecordCertificate RecordType = "certificate"
	RecordDonation    RecordType = "donation"
	RecordBadge       RecordType = "badge"
)

type BlockchainRecord struct {
	ID              uint           `json:"id"`
	TransactionHash string         `json:"transaction_hash"`
	RecordType      RecordType     `json:"record_type"`
	RelatedID       uint           `json:"related_id"`
	TokenID         string         `json:"token_id,omitempty"`
	Network         string         `json:"network"`
	Metadata        map[string]any `json:"metadata,omitempty"`
	Verified        bool           `json:"verified"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
