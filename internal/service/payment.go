package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/ledger"
	"github.com/profutur/profutur-api/internal/notify"
	"github.com/profutur/profutur-api/internal/repository"
)

const (
	defaultDonationHistory = 10
	maxDonationHistory     = 100
)

type PaymentRepository interface {
	CreateMobileMoney(ctx context.Context, tx domain.MobileMoneyTransaction) (domain.MobileMoneyTransaction, error)
	FindMobileMoney(ctx context.Context, transactionID string) (domain.MobileMoneyTransaction, error)
	CompareAndSetStatus(ctx context.Context, transactionID string, from, to domain.PaymentStatus) (bool, error)
	ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]domain.MobileMoneyTransaction, error)
	SumPayments(ctx context.Context) (decimal.Decimal, error)
	AppendTransaction(ctx context.Context, tx domain.Transaction) (domain.Transaction, error)
	ListTransactions(ctx context.Context, reference string) ([]domain.Transaction, error)
	CreateDonation(ctx context.Context, d domain.Donation) (domain.Donation, error)
	UpdateDonationStatus(ctx context.Context, reference string, status domain.PaymentStatus, hash string) error
	ListRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error)
	SumDonations(ctx context.Context) (decimal.Decimal, error)
}

type CertificateRepository interface {
	Create(ctx context.Context, cert domain.Certificate) (domain.Certificate, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (domain.Certificate, error)
	FindByNumber(ctx context.Context, number string) (domain.Certificate, error)
	SetToken(ctx context.Context, id uint, tokenID, hash string) error
	Count(ctx context.Context) (int64, error)
	CreateRecord(ctx context.Context, record domain.BlockchainRecord) (domain.BlockchainRecord, error)
	FindRecordByTokenID(ctx context.Context, tokenID string) (domain.BlockchainRecord, error)
	MarkRecordVerified(ctx context.Context, id uint) error
	ListUnverifiedRecords(ctx context.Context, limit int) ([]domain.BlockchainRecord, error)
	CountRecords(ctx context.Context) (int64, error)
}

// EnrollmentActivator is the enrollment side of a completed formation payment.
type EnrollmentActivator interface {
	ActivateFromPayment(ctx context.Context, studentID, formationID uint, reference string) (domain.Enrollment, error)
	ConfirmFromPayment(ctx context.Context, studentID, formationID uint, reference string, status domain.EnrollmentStatus) (domain.Enrollment, error)
	IssueCertificate(ctx context.Context, callerID, enrollmentID uint) (domain.Certificate, error)
}

type PaymentService struct {
	repo        PaymentRepository
	certs       CertificateRepository
	formations  FormationRepository
	users       UserRepository
	enrollments EnrollmentActivator
	tx          Transactor
	ledger      ledger.Gateway
	mailer      notify.Mailer
	currency    string
	now         func() time.Time
}

func NewPaymentService(
	repo PaymentRepository,
	certs CertificateRepository,
	formations FormationRepository,
	users UserRepository,
	enrollments EnrollmentActivator,
	tx Transactor,
	gateway ledger.Gateway,
	mailer notify.Mailer,
	currency string,
) *PaymentService {
	if currency == "" {
		currency = "USD"
	}

	return &PaymentService{
		repo:        repo,
		certs:       certs,
		formations:  formations,
		users:       users,
		enrollments: enrollments,
		tx:          tx,
		ledger:      gateway,
		mailer:      mailer,
		currency:    currency,
		now:         time.Now,
	}
}

type PaymentRequest struct {
	Amount      decimal.Decimal
	PhoneNumber string
	Provider    string
	FormationID uint
}

// InitiatePayment records a pending mobile money payment for a formation. The
// provider confirms it later through ConfirmPayment.
func (s *PaymentService) InitiatePayment(ctx context.Context, userID uint, req PaymentRequest) (domain.MobileMoneyTransaction, error) {
	provider, err := validatePayment(req.Amount, req.PhoneNumber, req.Provider)
	if err != nil {
		return domain.MobileMoneyTransaction{}, err
	}
	if req.FormationID == 0 {
		return domain.MobileMoneyTransaction{}, fmt.Errorf("%w: formation id is required", ErrValidation)
	}
	if _, err = s.formations.FindByID(ctx, req.FormationID); err != nil {
		return domain.MobileMoneyTransaction{}, fmt.Errorf("s.formations.FindByID -> %w", err)
	}

	formationID := req.FormationID
	var created domain.MobileMoneyTransaction

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now()
		created, err = insertWithUniqueID(func(attempt int) string {
			return referenceID(transactionPrefix, now, ownerKey(userID), attempt)
		}, repository.ErrTransactionIDExists, func(id string) (domain.MobileMoneyTransaction, error) {
			return s.repo.CreateMobileMoney(ctx, domain.MobileMoneyTransaction{
				TransactionID: id,
				UserID:        &userID,
				Provider:      provider,
				PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
				Amount:        req.Amount,
				Currency:      s.currency,
				Status:        domain.PaymentPending,
				Purpose:       domain.PurposeFormation,
				FormationID:   &formationID,
				Description:   fmt.Sprintf("Payment for formation %d", formationID),
				Metadata: map[string]any{
					"formationId": formationID,
					"userId":      userID,
				},
			})
		})
		if err != nil {
			return fmt.Errorf("s.repo.CreateMobileMoney -> %w", err)
		}

		_, err = s.repo.AppendTransaction(ctx, domain.Transaction{
			FromUserID:  &userID,
			Amount:      req.Amount,
			Type:        domain.TransactionPayment,
			Status:      domain.PaymentPending,
			Description: "Mobile Money payment via " + string(provider),
			Reference:   created.TransactionID,
		})
		if err != nil {
			return fmt.Errorf("s.repo.AppendTransaction -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.MobileMoneyTransaction{}, err
	}

	return created, nil
}

type Confirmation struct {
	TransactionID string
	Status        domain.PaymentStatus
	Amount        *decimal.Decimal // as reported by the provider, optional
	// BlockchainHash is only meaningful for donations.
	BlockchainHash string
}

type ConfirmationResult struct {
	Success       bool                 `json:"success"`
	TransactionID string               `json:"transaction_id"`
	Status        domain.PaymentStatus `json:"status"`
	// Changed is false when the transaction already had this status.
	Changed bool `json:"changed"`
}

// ConfirmPayment applies the provider's final status to a pending transaction.
// Repeating a confirmation is harmless; contradicting one is ErrConflict.
func (s *PaymentService) ConfirmPayment(ctx context.Context, c Confirmation) (ConfirmationResult, error) {
	return s.confirm(ctx, c, "")
}

// ConfirmDonation is ConfirmPayment for donation transactions.
func (s *PaymentService) ConfirmDonation(ctx context.Context, c Confirmation) (ConfirmationResult, error) {
	return s.confirm(ctx, c, domain.PurposeDonation)
}

var errStatusRaced = errors.New("transaction status changed during confirmation")

func (s *PaymentService) confirm(ctx context.Context, c Confirmation, purpose domain.PaymentPurpose) (ConfirmationResult, error) {
	if !c.Status.IsTerminal() {
		return ConfirmationResult{}, fmt.Errorf("%w: status must be completed or failed, got %q", ErrValidation, c.Status)
	}

	for attempt := 0; attempt < maxStateAttempts; attempt++ {
		var (
			result ConfirmationResult
			stored domain.MobileMoneyTransaction
		)

		err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			stored, err = s.repo.FindMobileMoney(ctx, c.TransactionID)
			if err != nil {
				return fmt.Errorf("s.repo.FindMobileMoney -> %w", err)
			}
			if purpose != "" && stored.Purpose != purpose {
				return fmt.Errorf("%w: transaction %s is a %s", ErrValidation, stored.TransactionID, stored.Purpose)
			}
			if c.Amount != nil && !c.Amount.Equal(stored.Amount) {
				return fmt.Errorf("%w: amount %s does not match %s", ErrValidation, c.Amount, stored.Amount)
			}

			changed, err := stored.Resolve(c.Status)
			if err != nil {
				return err
			}
			result = ConfirmationResult{Success: true, TransactionID: stored.TransactionID, Status: stored.Status, Changed: changed}
			if !changed {
				return nil
			}

			ok, err := s.repo.CompareAndSetStatus(ctx, stored.TransactionID, domain.PaymentPending, c.Status)
			if err != nil {
				return fmt.Errorf("s.repo.CompareAndSetStatus -> %w", err)
			}
			if !ok {
				return errStatusRaced
			}

			return s.afterResolve(ctx, stored, c.BlockchainHash)
		})
		if errors.Is(err, errStatusRaced) {
			continue
		}
		if err != nil {
			return ConfirmationResult{}, err
		}

		if result.Changed {
			s.notifyPayment(ctx, stored)
		}

		return result, nil
	}

	return ConfirmationResult{}, errContention
}

// afterResolve writes the consequences of a status change inside the
// confirmation transaction.
func (s *PaymentService) afterResolve(ctx context.Context, stored domain.MobileMoneyTransaction, hash string) error {
	entry := domain.Transaction{
		FromUserID:     stored.UserID,
		Amount:         stored.Amount,
		Type:           domain.TransactionPayment,
		Status:         stored.Status,
		Description:    fmt.Sprintf("Mobile Money payment %s via %s", stored.Status, stored.Provider),
		BlockchainHash: hash,
		Reference:      stored.TransactionID,
	}

	if stored.Purpose == domain.PurposeDonation {
		entry.Type = domain.TransactionDonation
		entry.Description = fmt.Sprintf("Donation %s via %s", stored.Status, stored.Provider)

		err := s.repo.UpdateDonationStatus(ctx, stored.TransactionID, stored.Status, hash)
		if err != nil && !errors.Is(err, repository.ErrDonationNotFound) {
			return fmt.Errorf("s.repo.UpdateDonationStatus -> %w", err)
		}
	}

	if _, err := s.repo.AppendTransaction(ctx, entry); err != nil {
		return fmt.Errorf("s.repo.AppendTransaction -> %w", err)
	}

	if stored.Status != domain.PaymentCompleted || stored.Purpose != domain.PurposeFormation ||
		stored.UserID == nil || stored.FormationID == nil {
		return nil
	}

	_, err := s.enrollments.ActivateFromPayment(ctx, *stored.UserID, *stored.FormationID, stored.TransactionID)
	if !errors.Is(err, ErrFormationFull) {
		if err != nil {
			return fmt.Errorf("s.enrollments.ActivateFromPayment -> %w", err)
		}
		return nil
	}

	zap.L().Warn("payment completed for a full formation, refund queued",
		zap.String("transaction_id", stored.TransactionID),
		zap.Uint("formation_id", *stored.FormationID),
	)
	_, err = s.repo.AppendTransaction(ctx, domain.Transaction{
		ToUserID:    stored.UserID,
		Amount:      stored.Amount,
		Type:        domain.TransactionRefund,
		Status:      domain.PaymentPending,
		Description: fmt.Sprintf("Refund: formation %d is full", *stored.FormationID),
		Reference:   stored.TransactionID,
	})
	if err != nil {
		return fmt.Errorf("s.repo.AppendTransaction -> %w", err)
	}

	return nil
}

type DonationRequest struct {
	Amount      decimal.Decimal
	PhoneNumber string
	Provider    string
	Message     string
}

type DonationResult struct {
	Payment  domain.MobileMoneyTransaction `json:"payment"`
	Donation domain.Donation               `json:"donation"`
	Verified bool                          `json:"verified"`
}

// RecordDonation anchors the donation on the ledger first and persists it only
// once the ledger accepted it. donorID is nil for anonymous donors.
func (s *PaymentService) RecordDonation(ctx context.Context, donorID *uint, req DonationRequest) (DonationResult, error) {
	provider, err := validatePayment(req.Amount, req.PhoneNumber, req.Provider)
	if err != nil {
		return DonationResult{}, err
	}

	var donor uint
	if donorID != nil {
		donor = *donorID
	}
	message := strings.TrimSpace(req.Message)

	receipt, err := s.ledger.RecordDonation(ctx, donor, req.Amount, message)
	if err != nil {
		return DonationResult{}, fmt.Errorf("s.ledger.RecordDonation -> %w", err)
	}

	description := message
	if description == "" {
		description = "Support PROFUTUR"
	}

	var result DonationResult
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now()
		owner := "DONATION"
		if donorID != nil {
			owner = ownerKey(donor)
		}

		payment, err := insertWithUniqueID(func(attempt int) string {
			return referenceID(transactionPrefix, now, owner, attempt)
		}, repository.ErrTransactionIDExists, func(id string) (domain.MobileMoneyTransaction, error) {
			return s.repo.CreateMobileMoney(ctx, domain.MobileMoneyTransaction{
				TransactionID: id,
				UserID:        donorID,
				Provider:      provider,
				PhoneNumber:   strings.TrimSpace(req.PhoneNumber),
				Amount:        req.Amount,
				Currency:      s.currency,
				Status:        domain.PaymentPending,
				Purpose:       domain.PurposeDonation,
				Description:   "Donation: " + description,
				Metadata: map[string]any{
					"donationType":   "general",
					"message":        message,
					"blockchainHash": receipt.TransactionHash,
				},
			})
		})
		if err != nil {
			return fmt.Errorf("s.repo.CreateMobileMoney -> %w", err)
		}

		donation, err := s.repo.CreateDonation(ctx, domain.Donation{
			DonorID:         donorID,
			Amount:          req.Amount,
			Currency:        s.currency,
			Description:     description,
			Status:          domain.PaymentPending,
			TransactionHash: receipt.TransactionHash,
			Reference:       payment.TransactionID,
			DonatedAt:       now,
		})
		if err != nil {
			return fmt.Errorf("s.repo.CreateDonation -> %w", err)
		}

		_, err = s.certs.CreateRecord(ctx, domain.BlockchainRecord{
			TransactionHash: receipt.TransactionHash,
			RecordType:      domain.RecordDonation,
			RelatedID:       donation.ID,
			Network:         receipt.Network,
			Metadata: map[string]any{
				"amount":    req.Amount.String(),
				"currency":  s.currency,
				"donorId":   donor,
				"memo":      receipt.Memo,
				"message":   message,
				"reference": payment.TransactionID,
			},
			Verified: receipt.Verified,
		})
		if err != nil {
			return fmt.Errorf("s.certs.CreateRecord -> %w", err)
		}

		_, err = s.repo.AppendTransaction(ctx, domain.Transaction{
			FromUserID:     donorID,
			Amount:         req.Amount,
			Type:           domain.TransactionDonation,
			Status:         domain.PaymentPending,
			Description:    description,
			BlockchainHash: receipt.TransactionHash,
			Reference:      payment.TransactionID,
		})
		if err != nil {
			return fmt.Errorf("s.repo.AppendTransaction -> %w", err)
		}

		result = DonationResult{Payment: payment, Donation: donation, Verified: receipt.Verified}
		return nil
	})
	if err != nil {
		zap.L().Error("donation recorded on the ledger but not persisted",
			zap.String("transaction_hash", receipt.TransactionHash),
			zap.String("network", receipt.Network),
			zap.Error(err),
		)
		return DonationResult{}, err
	}

	return result, nil
}

type EnrollmentConfirmation struct {
	TransactionID string
	FormationID   uint
	StudentID     uint
	Status        domain.EnrollmentStatus
}

// ConfirmFormationEnrollment activates or completes the enrollment paid by a
// completed transaction.
func (s *PaymentService) ConfirmFormationEnrollment(ctx context.Context, c EnrollmentConfirmation) (domain.Enrollment, error) {
	var enrollment domain.Enrollment

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payment, err := s.repo.FindMobileMoney(ctx, c.TransactionID)
		if err != nil {
			return fmt.Errorf("s.repo.FindMobileMoney -> %w", err)
		}
		if payment.Status != domain.PaymentCompleted {
			return fmt.Errorf("%w: transaction %s is %s", ErrConflict, payment.TransactionID, payment.Status)
		}
		if payment.FormationID != nil && *payment.FormationID != c.FormationID {
			return fmt.Errorf("%w: transaction %s paid for formation %d", ErrValidation, payment.TransactionID, *payment.FormationID)
		}
		if payment.UserID != nil && *payment.UserID != c.StudentID {
			return fmt.Errorf("%w: transaction %s belongs to another user", ErrValidation, payment.TransactionID)
		}

		enrollment, err = s.enrollments.ConfirmFromPayment(ctx, c.StudentID, c.FormationID, payment.TransactionID, c.Status)
		if err != nil {
			return fmt.Errorf("s.enrollments.ConfirmFromPayment -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Enrollment{}, err
	}

	return enrollment, nil
}

type PaymentStatusView struct {
	TransactionID string               `json:"transaction_id"`
	Status        domain.PaymentStatus `json:"status"`
	Provider      domain.Provider      `json:"provider"`
	Amount        *decimal.Decimal     `json:"amount,omitempty"`
	Currency      string               `json:"currency,omitempty"`
	Timestamp     *time.Time           `json:"timestamp,omitempty"`
}

// CheckPaymentStatus reports not_found for unknown transactions and for
// transactions made through another provider.
func (s *PaymentService) CheckPaymentStatus(ctx context.Context, transactionID, provider string) (PaymentStatusView, error) {
	p, err := domain.ParseProvider(provider)
	if err != nil {
		return PaymentStatusView{}, err
	}

	view := PaymentStatusView{TransactionID: transactionID, Status: domain.PaymentNotFound, Provider: p}

	stored, err := s.repo.FindMobileMoney(ctx, transactionID)
	if errors.Is(err, ErrTransactionNotFound) {
		return view, nil
	}
	if err != nil {
		return PaymentStatusView{}, fmt.Errorf("s.repo.FindMobileMoney -> %w", err)
	}
	if stored.Provider != p {
		return view, nil
	}

	view.Status = stored.Status
	view.Amount = &stored.Amount
	view.Currency = stored.Currency
	view.Timestamp = &stored.CreatedAt

	return view, nil
}

type MintRequest struct {
	EnrollmentID   uint
	FormationTitle string
	CompletionDate time.Time
	Grade          string
}

type MintedCertificate struct {
	Certificate     domain.Certificate `json:"certificate"`
	TokenID         string             `json:"token_id"`
	TransactionHash string             `json:"transaction_hash"`
	Network         string             `json:"network"`
	StudentName     string             `json:"student_name"`
	AlreadyMinted   bool               `json:"already_minted"`
}

// CreateCertificateNFT issues the certificate if needed and mints it on the
// ledger. A certificate already minted is returned as is.
func (s *PaymentService) CreateCertificateNFT(ctx context.Context, callerID uint, req MintRequest) (MintedCertificate, error) {
	cert, err := s.enrollments.IssueCertificate(ctx, callerID, req.EnrollmentID)
	if err != nil {
		return MintedCertificate{}, fmt.Errorf("s.enrollments.IssueCertificate -> %w", err)
	}

	student, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return MintedCertificate{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	name := student.Name
	if name == "" {
		name = "Student"
	}

	if cert.IsMinted() {
		return s.existingMint(ctx, cert, name)
	}

	completion := req.CompletionDate
	if completion.IsZero() {
		completion = cert.IssueDate
	}

	minted, err := s.ledger.MintCertificate(ctx, ledger.CertificateMetadata{
		CertificateNumber: cert.CertificateNumber,
		StudentName:       name,
		FormationTitle:    req.FormationTitle,
		CompletionDate:    completion,
		Grade:             req.Grade,
	})
	if err != nil {
		var partial *ledger.PartialMintError
		if errors.As(err, &partial) {
			zap.L().Error("certificate token created but not minted",
				zap.String("certificate_number", cert.CertificateNumber),
				zap.String("token_id", partial.TokenID),
			)
		}
		return MintedCertificate{}, fmt.Errorf("s.ledger.MintCertificate -> %w", err)
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.certs.SetToken(ctx, cert.ID, minted.TokenID, minted.TransactionHash); err != nil {
			return fmt.Errorf("s.certs.SetToken -> %w", err)
		}

		_, err := s.certs.CreateRecord(ctx, domain.BlockchainRecord{
			TransactionHash: minted.TransactionHash,
			RecordType:      domain.RecordCertificate,
			RelatedID:       cert.ID,
			TokenID:         minted.TokenID,
			Network:         minted.Network,
			Metadata: map[string]any{
				"certificateNumber": cert.CertificateNumber,
				"studentName":       name,
				"formationTitle":    req.FormationTitle,
				"completionDate":    completion.UTC().Format(time.RFC3339),
				"grade":             req.Grade,
				"enrollmentId":      cert.EnrollmentID,
				"issuedAt":          cert.IssueDate.UTC().Format(time.RFC3339),
			},
			Verified: true,
		})
		if err != nil {
			return fmt.Errorf("s.certs.CreateRecord -> %w", err)
		}

		return nil
	})
	if errors.Is(err, repository.ErrCertificateMinted) {
		zap.L().Warn("certificate minted concurrently, token left unused",
			zap.String("certificate_number", cert.CertificateNumber),
			zap.String("token_id", minted.TokenID),
		)
		current, ferr := s.certs.FindByNumber(ctx, cert.CertificateNumber)
		if ferr != nil {
			return MintedCertificate{}, fmt.Errorf("s.certs.FindByNumber -> %w", ferr)
		}
		return s.existingMint(ctx, current, name)
	}
	if err != nil {
		zap.L().Error("certificate minted on the ledger but not persisted",
			zap.String("certificate_number", cert.CertificateNumber),
			zap.String("token_id", minted.TokenID),
			zap.String("transaction_hash", minted.TransactionHash),
			zap.Error(err),
		)
		return MintedCertificate{}, err
	}

	cert.TokenID = minted.TokenID
	cert.BlockchainHash = minted.TransactionHash

	return MintedCertificate{
		Certificate:     cert,
		TokenID:         minted.TokenID,
		TransactionHash: minted.TransactionHash,
		Network:         minted.Network,
		StudentName:     name,
	}, nil
}

func (s *PaymentService) existingMint(ctx context.Context, cert domain.Certificate, name string) (MintedCertificate, error) {
	out := MintedCertificate{
		Certificate:     cert,
		TokenID:         cert.TokenID,
		TransactionHash: cert.BlockchainHash,
		StudentName:     name,
		AlreadyMinted:   true,
	}

	record, err := s.certs.FindRecordByTokenID(ctx, cert.TokenID)
	if err == nil {
		out.Network = record.Network
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return MintedCertificate{}, fmt.Errorf("s.certs.FindRecordByTokenID -> %w", err)
	}

	return out, nil
}

type CertificateVerification struct {
	IsValid bool           `json:"is_valid"`
	Details map[string]any `json:"details"`
}

// VerifyCertificate checks that the certificate carries tokenID and that the
// token is anchored. A record not yet verified is checked against the ledger;
// when the ledger cannot be reached the stored flag stands.
func (s *PaymentService) VerifyCertificate(ctx context.Context, tokenID, certificateNumber string) (CertificateVerification, error) {
	invalid := func(message string) CertificateVerification {
		return CertificateVerification{
			Details: map[string]any{
				"tokenId":  tokenID,
				"verified": false,
				"message":  message,
			},
		}
	}

	cert, err := s.certs.FindByNumber(ctx, certificateNumber)
	if errors.Is(err, ErrCertificateNotFound) {
		return invalid("Certificate not found"), nil
	}
	if err != nil {
		return CertificateVerification{}, fmt.Errorf("s.certs.FindByNumber -> %w", err)
	}
	if cert.TokenID != tokenID {
		return invalid("Token does not belong to this certificate"), nil
	}

	record, err := s.certs.FindRecordByTokenID(ctx, tokenID)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return invalid("Certificate not found"), nil
	}
	if err != nil {
		return CertificateVerification{}, fmt.Errorf("s.certs.FindRecordByTokenID -> %w", err)
	}

	if !record.Verified {
		record.Verified = s.recheck(ctx, record.ID, tokenID)
	}

	return CertificateVerification{
		IsValid: record.Verified,
		Details: map[string]any{
			"tokenId":           tokenID,
			"verified":          record.Verified,
			"certificateNumber": cert.CertificateNumber,
			"issueDate":         cert.IssueDate,
			"expiryDate":        cert.ExpiryDate,
			"transactionHash":   record.TransactionHash,
			"network":           record.Network,
			"createdAt":         record.CreatedAt,
			"metadata":          record.Metadata,
		},
	}, nil
}

// recheck asks the ledger about an unverified record and stores a positive
// answer. Ledger errors leave the record unverified.
func (s *PaymentService) recheck(ctx context.Context, recordID uint, tokenIDOrHash string) bool {
	ok, err := s.ledger.Verify(ctx, tokenIDOrHash)
	if err != nil {
		zap.L().Warn("ledger verification failed", zap.String("ref", tokenIDOrHash), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	if err = s.certs.MarkRecordVerified(ctx, recordID); err != nil {
		zap.L().Warn("storing ledger verification", zap.Uint("record_id", recordID), zap.Error(err))
	}

	return true
}

// GetDonationHistory returns the newest donations. limit defaults to 10 and
// is capped at 100. Failures yield an empty list.
func (s *PaymentService) GetDonationHistory(ctx context.Context, limit int) []domain.Donation {
	switch {
	case limit <= 0:
		limit = defaultDonationHistory
	case limit > maxDonationHistory:
		limit = maxDonationHistory
	}

	donations, err := s.repo.ListRecentDonations(ctx, limit)
	if err != nil {
		zap.L().Warn("listing donations", zap.Error(err))
		return []domain.Donation{}
	}
	if len(donations) > limit {
		donations = donations[:limit]
	}

	return donations
}

// GetPaymentStats aggregates totals. Each figure that cannot be computed is
// reported as zero.
func (s *PaymentService) GetPaymentStats(ctx context.Context) domain.PaymentStats {
	stats := domain.PaymentStats{
		TotalDonations:    decimal.Zero,
		TotalPayments:     decimal.Zero,
		TotalTransactions: decimal.Zero,
		Currency:          s.currency,
	}

	var err error
	if stats.TotalDonations, err = s.repo.SumDonations(ctx); err != nil {
		zap.L().Warn("summing donations", zap.Error(err))
		stats.TotalDonations = decimal.Zero
	}
	if stats.TotalPayments, err = s.repo.SumPayments(ctx); err != nil {
		zap.L().Warn("summing payments", zap.Error(err))
		stats.TotalPayments = decimal.Zero
	}
	stats.TotalTransactions = stats.TotalDonations.Add(stats.TotalPayments)

	if stats.CertificateCount, err = s.certs.Count(ctx); err != nil {
		zap.L().Warn("counting certificates", zap.Error(err))
		stats.CertificateCount = 0
	}
	if stats.BlockchainRecordCount, err = s.certs.CountRecords(ctx); err != nil {
		zap.L().Warn("counting blockchain records", zap.Error(err))
		stats.BlockchainRecordCount = 0
	}

	return stats
}

func (s *PaymentService) notifyPayment(ctx context.Context, tx domain.MobileMoneyTransaction) {
	if tx.UserID == nil {
		return
	}

	user, err := s.users.FindByID(ctx, *tx.UserID)
	if err != nil {
		zap.L().Warn("payment notification skipped", zap.String("transaction_id", tx.TransactionID), zap.Error(err))
		return
	}

	s.mailer.Send(notify.PaymentConfirmed(user, tx))
}

func validatePayment(amount decimal.Decimal, phone, provider string) (domain.Provider, error) {
	if err := domain.ValidateAmount(amount); err != nil {
		return "", err
	}
	if strings.TrimSpace(phone) == "" {
		return "", fmt.Errorf("%w: phone number is required", ErrValidation)
	}

	return domain.ParseProvider(provider)
}
