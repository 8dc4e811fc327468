package domain

import (
	"strings"
	"time"
)

type Certificate struct {
	ID                uint      `json:"id"`
	EnrollmentID      uint      `json:"enrollment_id"`
	CertificateNumber string    `json:"certificate_number"`
	IssueDate         time.Time `json:"issue_date"`
	ExpiryDate        time.Time `json:"expiry_date"`
	VerificationURL   string    `json:"verification_url"`
	TokenID           string    `json:"token_id,omitempty"`
	BlockchainHash    string    `json:"blockchain_hash,omitempty"`
}

// NewCertificate builds a certificate valid for one year from issuedAt.
func NewCertificate(enrollmentID uint, number string, issuedAt time.Time, publicBaseURL string) Certificate {
	return Certificate{
		EnrollmentID:      enrollmentID,
		CertificateNumber: number,
		IssueDate:         issuedAt,
		ExpiryDate:        issuedAt.AddDate(1, 0, 0),
		VerificationURL:   strings.TrimRight(publicBaseURL, "/") + "/verify/" + number,
	}
}

func (c Certificate) IsMinted() bool {
	return c.TokenID != ""
}
