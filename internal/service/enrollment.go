package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/notify"
	"github.com/profutur/profutur-api/internal/repository"
)

type EnrollmentRepository interface {
	Create(ctx context.Context, e domain.Enrollment) (domain.Enrollment, error)
	FindByID(ctx context.Context, id uint) (domain.Enrollment, error)
	FindByStudentAndFormation(ctx context.Context, studentID, formationID uint) (domain.Enrollment, error)
	ListByStudent(ctx context.Context, studentID uint) ([]domain.Enrollment, error)
	ListByFormation(ctx context.Context, formationID uint) ([]domain.Enrollment, error)
	UpdateState(ctx context.Context, e domain.Enrollment, from domain.EnrollmentStatus) error
	MarkCertificateIssued(ctx context.Context, id uint) error
}

type EnrollmentService struct {
	repo          EnrollmentRepository
	formations    FormationRepository
	certs         CertificateRepository
	users         UserRepository
	tx            Transactor
	mailer        notify.Mailer
	publicBaseURL string
	capacity      atomic.Bool
	now           func() time.Time
}

func NewEnrollmentService(
	repo EnrollmentRepository,
	formations FormationRepository,
	certs CertificateRepository,
	users UserRepository,
	tx Transactor,
	mailer notify.Mailer,
	publicBaseURL string,
) *EnrollmentService {
	return &EnrollmentService{
		repo:          repo,
		formations:    formations,
		certs:         certs,
		users:         users,
		tx:            tx,
		mailer:        mailer,
		publicBaseURL: publicBaseURL,
		now:           time.Now,
	}
}

// SetEnforceCapacity switches the capacity policy. It is safe to call while
// requests are being served.
func (s *EnrollmentService) SetEnforceCapacity(enforce bool) {
	if s.capacity.Swap(enforce) != enforce {
		zap.L().Info("enrollment capacity policy changed", zap.Bool("enforce_capacity", enforce))
	}
}

func (s *EnrollmentService) EnforcesCapacity() bool {
	return s.capacity.Load()
}

// Enroll creates an active enrollment. The (student, formation) unique index
// rejects a second enrollment whatever the status of the first.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, formationID uint) (domain.Enrollment, error) {
	formation, err := s.formations.FindByID(ctx, formationID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.formations.FindByID -> %w", err)
	}
	if !formation.IsActive {
		return domain.Enrollment{}, fmt.Errorf("%w: formation %d is closed", ErrConflict, formationID)
	}

	var created domain.Enrollment
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.repo.Create(ctx, domain.NewEnrollment(studentID, formationID, s.now()))
		if err != nil {
			return fmt.Errorf("s.repo.Create -> %w", err)
		}

		if err = s.formations.IncrementStudents(ctx, formationID, s.capacity.Load()); err != nil {
			return fmt.Errorf("s.formations.IncrementStudents -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Enrollment{}, err
	}

	formation.CurrentStudents++
	created.Formation = &formation

	return created, nil
}

func (s *EnrollmentService) UpdateProgress(ctx context.Context, callerID, enrollmentID uint, progress int) (domain.Enrollment, error) {
	if err := domain.ValidateProgress(progress); err != nil {
		return domain.Enrollment{}, err
	}

	for attempt := 0; attempt < maxStateAttempts; attempt++ {
		e, err := s.findOwned(ctx, callerID, enrollmentID)
		if err != nil {
			return domain.Enrollment{}, err
		}

		from := e.Status
		if err = e.SetProgress(progress, s.now()); err != nil {
			return domain.Enrollment{}, err
		}
		if from == domain.EnrollmentCompleted {
			return e, nil
		}

		err = s.repo.UpdateState(ctx, e, from)
		if errors.Is(err, repository.ErrEnrollmentChanged) {
			continue
		}
		if err != nil {
			return domain.Enrollment{}, fmt.Errorf("s.repo.UpdateState -> %w", err)
		}

		return e, nil
	}

	return domain.Enrollment{}, errContention
}

// IssueCertificate creates the certificate of a finished enrollment. Calling
// it again returns the certificate already issued.
func (s *EnrollmentService) IssueCertificate(ctx context.Context, callerID, enrollmentID uint) (domain.Certificate, error) {
	e, err := s.findOwned(ctx, callerID, enrollmentID)
	if err != nil {
		return domain.Certificate{}, err
	}

	existing, err := s.certs.FindByEnrollmentID(ctx, e.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrCertificateNotFound) {
		return domain.Certificate{}, fmt.Errorf("s.certs.FindByEnrollmentID -> %w", err)
	}

	if !e.IsFinished() {
		return domain.Certificate{}, fmt.Errorf("%w: enrollment %d is at %d%%", ErrNotCompleted, e.ID, e.Progress)
	}

	var (
		cert   domain.Certificate
		issued bool
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		now := s.now()
		concurrent := false

		cert, err = insertWithUniqueID(func(attempt int) string {
			return referenceID(certificatePrefix, now, ownerKey(callerID), attempt)
		}, repository.ErrCertificateExists, func(number string) (domain.Certificate, error) {
			created, err := s.certs.Create(ctx, domain.NewCertificate(e.ID, number, now, s.publicBaseURL))
			if errors.Is(err, repository.ErrCertificateExists) {
				if other, ferr := s.certs.FindByEnrollmentID(ctx, e.ID); ferr == nil {
					concurrent = true
					return other, nil
				}
			}
			return created, err
		})
		if err != nil {
			return fmt.Errorf("s.certs.Create -> %w", err)
		}
		if concurrent {
			return nil
		}

		if err = s.repo.MarkCertificateIssued(ctx, e.ID); err != nil {
			return fmt.Errorf("s.repo.MarkCertificateIssued -> %w", err)
		}

		hours := 0
		if e.Formation != nil {
			hours = e.Formation.Duration
		}
		if err = s.users.AddCompletedFormation(ctx, e.StudentID, hours); err != nil {
			return fmt.Errorf("s.users.AddCompletedFormation -> %w", err)
		}

		issued = true
		return nil
	})
	if err != nil {
		return domain.Certificate{}, err
	}

	if issued {
		s.notifyCertificate(ctx, e, cert)
	}

	return cert, nil
}

// GetMyEnrollments lists the student's enrollments with their formation. An
// unreachable database yields an empty list.
func (s *EnrollmentService) GetMyEnrollments(ctx context.Context, studentID uint) ([]domain.Enrollment, error) {
	enrollments, err := s.repo.ListByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			zap.L().Warn("listing enrollments", zap.Uint("student_id", studentID), zap.Error(err))
			return []domain.Enrollment{}, nil
		}
		return nil, fmt.Errorf("s.repo.ListByStudent -> %w", err)
	}

	return enrollments, nil
}

// ActivateFromPayment gives the student access after a completed payment. A
// missing enrollment is created active, a pending or dropped one is activated
// and an active or completed one is left alone.
func (s *EnrollmentService) ActivateFromPayment(ctx context.Context, studentID, formationID uint, reference string) (domain.Enrollment, error) {
	var out domain.Enrollment

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		for attempt := 0; attempt < maxStateAttempts; attempt++ {
			e, err := s.repo.FindByStudentAndFormation(ctx, studentID, formationID)
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				out, err = s.admit(ctx, studentID, formationID, reference)
				if errors.Is(err, ErrAlreadyEnrolled) {
					continue
				}
				return err
			}
			if err != nil {
				return fmt.Errorf("s.repo.FindByStudentAndFormation -> %w", err)
			}

			from := e.Status
			changed, err := e.Activate()
			if err != nil {
				return err
			}
			if !changed {
				out = e
				return nil
			}

			if err = s.formations.IncrementStudents(ctx, formationID, s.capacity.Load()); err != nil {
				return fmt.Errorf("s.formations.IncrementStudents -> %w", err)
			}

			e.PaymentReference = reference
			err = s.repo.UpdateState(ctx, e, from)
			if errors.Is(err, repository.ErrEnrollmentChanged) {
				if err = s.formations.DecrementStudents(ctx, formationID); err != nil {
					return fmt.Errorf("s.formations.DecrementStudents -> %w", err)
				}
				continue
			}
			if err != nil {
				return fmt.Errorf("s.repo.UpdateState -> %w", err)
			}

			out = e
			return nil
		}

		return errContention
	})
	if err != nil {
		return domain.Enrollment{}, err
	}

	return out, nil
}

// ConfirmFromPayment activates the enrollment and, when status is completed,
// completes it. A completed enrollment is never moved back to active.
func (s *EnrollmentService) ConfirmFromPayment(
	ctx context.Context,
	studentID, formationID uint,
	reference string,
	status domain.EnrollmentStatus,
) (domain.Enrollment, error) {
	if status != domain.EnrollmentActive && status != domain.EnrollmentCompleted {
		return domain.Enrollment{}, fmt.Errorf("%w: status must be active or completed, got %q", ErrValidation, status)
	}

	var out domain.Enrollment
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		e, err := s.ActivateFromPayment(ctx, studentID, formationID, reference)
		if err != nil {
			return err
		}
		if status == domain.EnrollmentActive {
			out = e
			return nil
		}

		for attempt := 0; attempt < maxStateAttempts; attempt++ {
			from := e.Status
			changed, err := e.Complete(s.now())
			if err != nil {
				return err
			}
			if !changed {
				out = e
				return nil
			}

			err = s.repo.UpdateState(ctx, e, from)
			if errors.Is(err, repository.ErrEnrollmentChanged) {
				if e, err = s.repo.FindByID(ctx, e.ID); err != nil {
					return fmt.Errorf("s.repo.FindByID -> %w", err)
				}
				continue
			}
			if err != nil {
				return fmt.Errorf("s.repo.UpdateState -> %w", err)
			}

			out = e
			return nil
		}

		return errContention
	})
	if err != nil {
		return domain.Enrollment{}, err
	}

	return out, nil
}

func (s *EnrollmentService) DropEnrollment(ctx context.Context, callerID, enrollmentID uint) (domain.Enrollment, error) {
	e, err := s.findOwned(ctx, callerID, enrollmentID)
	if err != nil {
		return domain.Enrollment{}, err
	}

	if err = e.Drop(); err != nil {
		return domain.Enrollment{}, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.UpdateState(ctx, e, domain.EnrollmentActive); err != nil {
			if errors.Is(err, repository.ErrEnrollmentChanged) {
				return fmt.Errorf("%w: enrollment %d changed concurrently", ErrConflict, e.ID)
			}
			return fmt.Errorf("s.repo.UpdateState -> %w", err)
		}

		if err := s.formations.DecrementStudents(ctx, e.FormationID); err != nil {
			return fmt.Errorf("s.formations.DecrementStudents -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Enrollment{}, err
	}

	return e, nil
}

// admit counts the student in before creating the enrollment so a full
// formation leaves nothing behind in the caller's transaction.
func (s *EnrollmentService) admit(ctx context.Context, studentID, formationID uint, reference string) (domain.Enrollment, error) {
	if err := s.formations.IncrementStudents(ctx, formationID, s.capacity.Load()); err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.formations.IncrementStudents -> %w", err)
	}

	e := domain.NewEnrollment(studentID, formationID, s.now())
	e.PaymentReference = reference

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		if errors.Is(err, ErrAlreadyEnrolled) {
			if derr := s.formations.DecrementStudents(ctx, formationID); derr != nil {
				return domain.Enrollment{}, fmt.Errorf("s.formations.DecrementStudents -> %w", derr)
			}
		}
		return domain.Enrollment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EnrollmentService) findOwned(ctx context.Context, callerID, enrollmentID uint) (domain.Enrollment, error) {
	e, err := s.repo.FindByID(ctx, enrollmentID)
	if err != nil {
		return domain.Enrollment{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if e.StudentID != callerID {
		return domain.Enrollment{}, ErrUnauthorized
	}

	return e, nil
}

func (s *EnrollmentService) notifyCertificate(ctx context.Context, e domain.Enrollment, cert domain.Certificate) {
	user, err := s.users.FindByID(ctx, e.StudentID)
	if err != nil {
		zap.L().Warn("certificate notification skipped", zap.Uint("enrollment_id", e.ID), zap.Error(err))
		return
	}

	var formation domain.Formation
	if e.Formation != nil {
		formation = *e.Formation
	}

	s.mailer.Send(notify.CertificateIssued(user, formation, cert))
}
