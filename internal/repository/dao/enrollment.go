package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrEnrollmentExists   = errors.New("enrollment already exists")
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrEnrollmentChanged  = errors.New("enrollment changed concurrently")
)

type Enrollment struct {
	ID                uint      `gorm:"primaryKey"`
	StudentID         uint      `gorm:"not null;uniqueIndex:idx_enrollments_student_formation"`
	FormationID       uint      `gorm:"not null;uniqueIndex:idx_enrollments_student_formation;index"`
	Status            string    `gorm:"size:16;not null;default:pending"`
	Progress          int       `gorm:"not null;default:0"`
	EnrolledAt        time.Time `gorm:"not null"`
	CompletedAt       *time.Time
	CertificateIssued bool   `gorm:"not null;default:false"`
	PaymentReference  string `gorm:"size:64"`

	Formation *Formation `gorm:"foreignKey:FormationID"`
}

type EnrollmentDAO struct {
	db *gorm.DB
}

func NewEnrollmentDAO(db *gorm.DB) *EnrollmentDAO {
	return &EnrollmentDAO{
		db: db,
	}
}

// Insert relies on the (student_id, formation_id) unique index, so two
// concurrent enrollments for the same pair cannot both succeed.
func (d *EnrollmentDAO) Insert(ctx context.Context, e Enrollment) (Enrollment, error) {
	e.Formation = nil
	if err := insertIsolated(ctx, d.db, &e); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return Enrollment{}, ErrEnrollmentExists
		}

		return Enrollment{}, err
	}

	return e, nil
}

func (d *EnrollmentDAO) FindByID(ctx context.Context, id uint) (Enrollment, error) {
	var e Enrollment

	result := conn(ctx, d.db).Preload("Formation").First(&e, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Enrollment{}, ErrEnrollmentNotFound
		}

		return Enrollment{}, translateErr(result.Error)
	}

	return e, nil
}

func (d *EnrollmentDAO) FindByStudentAndFormation(ctx context.Context, studentID, formationID uint) (Enrollment, error) {
	var e Enrollment

	result := conn(ctx, d.db).
		Where("student_id = ? AND formation_id = ?", studentID, formationID).
		First(&e)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Enrollment{}, ErrEnrollmentNotFound
		}

		return Enrollment{}, translateErr(result.Error)
	}

	return e, nil
}

func (d *EnrollmentDAO) ListByStudent(ctx context.Context, studentID uint) ([]Enrollment, error) {
	var enrollments []Enrollment

	err := conn(ctx, d.db).Preload("Formation").
		Where("student_id = ?", studentID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return enrollments, nil
}

func (d *EnrollmentDAO) ListByFormation(ctx context.Context, formationID uint) ([]Enrollment, error) {
	var enrollments []Enrollment

	err := conn(ctx, d.db).
		Where("formation_id = ?", formationID).
		Order("enrolled_at DESC").
		Find(&enrollments).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return enrollments, nil
}

// UpdateState writes the mutable columns of e only if the stored status is
// still fromStatus. ErrEnrollmentChanged means another writer got there first.
func (d *EnrollmentDAO) UpdateState(ctx context.Context, e Enrollment, fromStatus string) error {
	result := conn(ctx, d.db).Model(&Enrollment{}).
		Where("id = ? AND status = ?", e.ID, fromStatus).
		Updates(map[string]any{
			"status":            e.Status,
			"progress":          e.Progress,
			"completed_at":      e.CompletedAt,
			"payment_reference": e.PaymentReference,
		})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrEnrollmentChanged
	}

	return nil
}

func (d *EnrollmentDAO) MarkCertificateIssued(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Model(&Enrollment{}).
		Where("id = ?", id).
		Update("certificate_issued", true)

	return translateErr(result.Error)
}
