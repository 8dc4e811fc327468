package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCertificateExists   = errors.New("certificate already exists")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrCertificateMinted   = errors.New("certificate already minted")
)

type Certificate struct {
	ID                uint      `gorm:"primaryKey"`
	EnrollmentID      uint      `gorm:"uniqueIndex;not null"`
	CertificateNumber string    `gorm:"size:255;uniqueIndex;not null"`
	IssueDate         time.Time `gorm:"not null"`
	ExpiryDate        time.Time
	VerificationURL   string `gorm:"type:text"`
	TokenID           string `gorm:"size:255;index"`
	BlockchainHash    string `gorm:"size:255"`
}

type CertificateDAO struct {
	db *gorm.DB
}

func NewCertificateDAO(db *gorm.DB) *CertificateDAO {
	return &CertificateDAO{
		db: db,
	}
}

// Insert fails with ErrCertificateExists on either unique index. Callers tell
// a number collision from a second certificate for the same enrollment by
// looking the enrollment up.
func (d *CertificateDAO) Insert(ctx context.Context, cert Certificate) (Certificate, error) {
	if err := insertIsolated(ctx, d.db, &cert); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return Certificate{}, ErrCertificateExists
		}

		return Certificate{}, err
	}

	return cert, nil
}

func (d *CertificateDAO) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (Certificate, error) {
	return d.findOne(ctx, "enrollment_id = ?", enrollmentID)
}

func (d *CertificateDAO) FindByNumber(ctx context.Context, number string) (Certificate, error) {
	return d.findOne(ctx, "certificate_number = ?", number)
}

// SetToken stores the minted token on a certificate that has none yet.
func (d *CertificateDAO) SetToken(ctx context.Context, id uint, tokenID, hash string) error {
	result := conn(ctx, d.db).Model(&Certificate{}).
		Where("id = ? AND (token_id = '' OR token_id IS NULL)", id).
		Updates(map[string]any{
			"token_id":        tokenID,
			"blockchain_hash": hash,
		})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCertificateMinted
	}

	return nil
}

func (d *CertificateDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := conn(ctx, d.db).Model(&Certificate{}).Count(&count).Error; err != nil {
		return 0, translateErr(err)
	}

	return count, nil
}

func (d *CertificateDAO) findOne(ctx context.Context, query string, arg any) (Certificate, error) {
	var cert Certificate

	result := conn(ctx, d.db).Where(query, arg).First(&cert)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Certificate{}, ErrCertificateNotFound
		}

		return Certificate{}, translateErr(result.Error)
	}

	return cert, nil
}
