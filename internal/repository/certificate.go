package repository

import (
	"context"
	"fmt"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

type CertificateDAO interface {
	Insert(ctx context.Context, cert dao.Certificate) (dao.Certificate, error)
	FindByEnrollmentID(ctx context.Context, enrollmentID uint) (dao.Certificate, error)
	FindByNumber(ctx context.Context, number string) (dao.Certificate, error)
	SetToken(ctx context.Context, id uint, tokenID, hash string) error
	Count(ctx context.Context) (int64, error)
}

type BlockchainRecordDAO interface {
	Insert(ctx context.Context, record dao.BlockchainRecord) (dao.BlockchainRecord, error)
	FindByTokenID(ctx context.Context, tokenID string) (dao.BlockchainRecord, error)
	FindByHash(ctx context.Context, hash string) (dao.BlockchainRecord, error)
	MarkVerified(ctx context.Context, id uint) error
	ListUnverified(ctx context.Context, limit int) ([]dao.BlockchainRecord, error)
	Count(ctx context.Context) (int64, error)
}

// CertificateRepository stores certificates and the ledger records that
// anchor certificates and donations.
type CertificateRepository struct {
	dao       CertificateDAO
	recordDAO BlockchainRecordDAO
}

func NewCertificateRepository(dao CertificateDAO, recordDAO BlockchainRecordDAO) *CertificateRepository {
	return &CertificateRepository{
		dao:       dao,
		recordDAO: recordDAO,
	}
}

func (r *CertificateRepository) Create(ctx context.Context, cert domain.Certificate) (domain.Certificate, error) {
	created, err := r.dao.Insert(ctx, dao.Certificate{
		EnrollmentID:      cert.EnrollmentID,
		CertificateNumber: cert.CertificateNumber,
		IssueDate:         cert.IssueDate,
		ExpiryDate:        cert.ExpiryDate,
		VerificationURL:   cert.VerificationURL,
		TokenID:           cert.TokenID,
		BlockchainHash:    cert.BlockchainHash,
	})
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return certificateDaoToDomain(created), nil
}

func (r *CertificateRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (domain.Certificate, error) {
	found, err := r.dao.FindByEnrollmentID(ctx, enrollmentID)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("r.dao.FindByEnrollmentID -> %w", err)
	}

	return certificateDaoToDomain(found), nil
}

func (r *CertificateRepository) FindByNumber(ctx context.Context, number string) (domain.Certificate, error) {
	found, err := r.dao.FindByNumber(ctx, number)
	if err != nil {
		return domain.Certificate{}, fmt.Errorf("r.dao.FindByNumber -> %w", err)
	}

	return certificateDaoToDomain(found), nil
}

func (r *CertificateRepository) SetToken(ctx context.Context, id uint, tokenID, hash string) error {
	if err := r.dao.SetToken(ctx, id, tokenID, hash); err != nil {
		return fmt.Errorf("r.dao.SetToken -> %w", err)
	}

	return nil
}

func (r *CertificateRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *CertificateRepository) CreateRecord(ctx context.Context, record domain.BlockchainRecord) (domain.BlockchainRecord, error) {
	created, err := r.recordDAO.Insert(ctx, dao.BlockchainRecord{
		TransactionHash: record.TransactionHash,
		RecordType:      string(record.RecordType),
		RelatedID:       record.RelatedID,
		TokenID:         record.TokenID,
		Network:         record.Network,
		Metadata:        toJSON(record.Metadata),
		Verified:        record.Verified,
	})
	if err != nil {
		return domain.BlockchainRecord{}, fmt.Errorf("r.recordDAO.Insert -> %w", err)
	}

	return recordDaoToDomain(created), nil
}

func (r *CertificateRepository) FindRecordByTokenID(ctx context.Context, tokenID string) (domain.BlockchainRecord, error) {
	found, err := r.recordDAO.FindByTokenID(ctx, tokenID)
	if err != nil {
		return domain.BlockchainRecord{}, fmt.Errorf("r.recordDAO.FindByTokenID -> %w", err)
	}

	return recordDaoToDomain(found), nil
}

func (r *CertificateRepository) FindRecordByHash(ctx context.Context, hash string) (domain.BlockchainRecord, error) {
	found, err := r.recordDAO.FindByHash(ctx, hash)
	if err != nil {
		return domain.BlockchainRecord{}, fmt.Errorf("r.recordDAO.FindByHash -> %w", err)
	}

	return recordDaoToDomain(found), nil
}

func (r *CertificateRepository) MarkRecordVerified(ctx context.Context, id uint) error {
	if err := r.recordDAO.MarkVerified(ctx, id); err != nil {
		return fmt.Errorf("r.recordDAO.MarkVerified -> %w", err)
	}

	return nil
}

func (r *CertificateRepository) ListUnverifiedRecords(ctx context.Context, limit int) ([]domain.BlockchainRecord, error) {
	found, err := r.recordDAO.ListUnverified(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.recordDAO.ListUnverified -> %w", err)
	}

	records := make([]domain.BlockchainRecord, 0, len(found))
	for _, rec := range found {
		records = append(records, recordDaoToDomain(rec))
	}

	return records, nil
}

func (r *CertificateRepository) CountRecords(ctx context.Context) (int64, error) {
	count, err := r.recordDAO.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.recordDAO.Count -> %w", err)
	}

	return count, nil
}

func certificateDaoToDomain(c dao.Certificate) domain.Certificate {
	return domain.Certificate{
		ID:                c.ID,
		EnrollmentID:      c.EnrollmentID,
		CertificateNumber: c.CertificateNumber,
		IssueDate:         c.IssueDate,
		ExpiryDate:        c.ExpiryDate,
		VerificationURL:   c.VerificationURL,
		TokenID:           c.TokenID,
		BlockchainHash:    c.BlockchainHash,
	}
}

func recordDaoToDomain(r dao.BlockchainRecord) domain.BlockchainRecord {
	return domain.BlockchainRecord{
		ID:              r.ID,
		TransactionHash: r.TransactionHash,
		RecordType:      domain.RecordType(r.RecordType),
		RelatedID:       r.RelatedID,
		TokenID:         r.TokenID,
		Network:         r.Network,
		Metadata:        fromJSON(r.Metadata),
		Verified:        r.Verified,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
