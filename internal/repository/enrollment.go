package repository

import (
	"context"
	"fmt"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

type EnrollmentDAO interface {
	Insert(ctx context.Context, e dao.Enrollment) (dao.Enrollment, error)
	FindByID(ctx context.Context, id uint) (dao.Enrollment, error)
	FindByStudentAndFormation(ctx context.Context, studentID, formationID uint) (dao.Enrollment, error)
	ListByStudent(ctx context.Context, studentID uint) ([]dao.Enrollment, error)
	ListByFormation(ctx context.Context, formationID uint) ([]dao.Enrollment, error)
	UpdateState(ctx context.Context, e dao.Enrollment, fromStatus string) error
	MarkCertificateIssued(ctx context.Context, id uint) error
}

type EnrollmentRepository struct {
	dao EnrollmentDAO
}

func NewEnrollmentRepository(dao EnrollmentDAO) *EnrollmentRepository {
	return &EnrollmentRepository{
		dao: dao,
	}
}

func (r *EnrollmentRepository) Create(ctx context.Context, e domain.Enrollment) (domain.Enrollment, error) {
	created, err := r.dao.Insert(ctx, enrollmentDomainToDao(e))
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return enrollmentDaoToDomain(created), nil
}

func (r *EnrollmentRepository) FindByID(ctx context.Context, id uint) (domain.Enrollment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return enrollmentDaoToDomain(found), nil
}

func (r *EnrollmentRepository) FindByStudentAndFormation(ctx context.Context, studentID, formationID uint) (domain.Enrollment, error) {
	found, err := r.dao.FindByStudentAndFormation(ctx, studentID, formationID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("r.dao.FindByStudentAndFormation -> %w", err)
	}

	return enrollmentDaoToDomain(found), nil
}

func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uint) ([]domain.Enrollment, error) {
	found, err := r.dao.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByStudent -> %w", err)
	}

	return enrollmentsDaoToDomain(found), nil
}

func (r *EnrollmentRepository) ListByFormation(ctx context.Context, formationID uint) ([]domain.Enrollment, error) {
	found, err := r.dao.ListByFormation(ctx, formationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListByFormation -> %w", err)
	}

	return enrollmentsDaoToDomain(found), nil
}

func (r *EnrollmentRepository) UpdateState(ctx context.Context, e domain.Enrollment, from domain.EnrollmentStatus) error {
	if err := r.dao.UpdateState(ctx, enrollmentDomainToDao(e), string(from)); err != nil {
		return fmt.Errorf("r.dao.UpdateState -> %w", err)
	}

	return nil
}

func (r *EnrollmentRepository) MarkCertificateIssued(ctx context.Context, id uint) error {
	if err := r.dao.MarkCertificateIssued(ctx, id); err != nil {
		return fmt.Errorf("r.dao.MarkCertificateIssued -> %w", err)
	}

	return nil
}

func enrollmentDomainToDao(e domain.Enrollment) dao.Enrollment {
	return dao.Enrollment{
		ID:                e.ID,
		StudentID:         e.StudentID,
		FormationID:       e.FormationID,
		Status:            string(e.Status),
		Progress:          e.Progress,
		EnrolledAt:        e.EnrolledAt,
		CompletedAt:       e.CompletedAt,
		CertificateIssued: e.CertificateIssued,
		PaymentReference:  e.PaymentReference,
	}
}

func enrollmentDaoToDomain(e dao.Enrollment) domain.Enrollment {
	enrollment := domain.Enrollment{
		ID:                e.ID,
		StudentID:         e.StudentID,
		FormationID:       e.FormationID,
		Status:            domain.EnrollmentStatus(e.Status),
		Progress:          e.Progress,
		EnrolledAt:        e.EnrolledAt,
		CompletedAt:       e.CompletedAt,
		CertificateIssued: e.CertificateIssued,
		PaymentReference:  e.PaymentReference,
	}
	if e.Formation != nil {
		f := formationDaoToDomain(*e.Formation)
		enrollment.Formation = &f
	}

	return enrollment
}

func enrollmentsDaoToDomain(found []dao.Enrollment) []domain.Enrollment {
	enrollments := make([]domain.Enrollment, 0, len(found))
	for _, e := range found {
		enrollments = append(enrollments, enrollmentDaoToDomain(e))
	}

	return enrollments
}
