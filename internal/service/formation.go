package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/profutur/profutur-api/internal/domain"
)

type FormationRepository interface {
	Create(ctx context.Context, f domain.Formation) (domain.Formation, error)
	FindByID(ctx context.Context, id uint) (domain.Formation, error)
	List(ctx context.Context, centerID *uint) ([]domain.Formation, error)
	IncrementStudents(ctx context.Context, id uint, enforceCapacity bool) error
	DecrementStudents(ctx context.Context, id uint) error
}

type FormationEnrollmentLister interface {
	ListByFormation(ctx context.Context, formationID uint) ([]domain.Enrollment, error)
}

type FormationService struct {
	repo        FormationRepository
	enrollments FormationEnrollmentLister
	users       UserRepository
	tx          Transactor
}

func NewFormationService(repo FormationRepository, enrollments FormationEnrollmentLister, users UserRepository, tx Transactor) *FormationService {
	return &FormationService{
		repo:        repo,
		enrollments: enrollments,
		users:       users,
		tx:          tx,
	}
}

// List returns the active formations, optionally for one center only.
func (s *FormationService) List(ctx context.Context, centerID *uint) ([]domain.Formation, error) {
	formations, err := s.repo.List(ctx, centerID)
	if err != nil {
		if errors.Is(err, ErrPersistenceUnavailable) {
			zap.L().Warn("listing formations", zap.Error(err))
			return []domain.Formation{}, nil
		}
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return formations, nil
}

func (s *FormationService) GetByID(ctx context.Context, id uint) (domain.Formation, error) {
	formation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Formation{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return formation, nil
}

func (s *FormationService) GetEnrollments(ctx context.Context, formationID uint) ([]domain.Enrollment, error) {
	if _, err := s.repo.FindByID(ctx, formationID); err != nil {
		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	enrollments, err := s.enrollments.ListByFormation(ctx, formationID)
	if err != nil {
		return nil, fmt.Errorf("s.enrollments.ListByFormation -> %w", err)
	}

	return enrollments, nil
}

// Create publishes a formation for the calling center.
func (s *FormationService) Create(ctx context.Context, callerID uint, f domain.Formation) (domain.Formation, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return domain.Formation{}, fmt.Errorf("s.users.FindByID -> %w", err)
	}
	if caller.Role != domain.RoleCenter {
		return domain.Formation{}, fmt.Errorf("%w: only centers publish formations", ErrUnauthorized)
	}

	f.Title = strings.TrimSpace(f.Title)
	switch {
	case f.Title == "":
		return domain.Formation{}, fmt.Errorf("%w: title is required", ErrValidation)
	case f.Price.IsNegative():
		return domain.Formation{}, fmt.Errorf("%w: price cannot be negative", ErrValidation)
	case f.MaxStudents < 0 || f.Duration < 0:
		return domain.Formation{}, fmt.Errorf("%w: duration and max students cannot be negative", ErrValidation)
	}
	if f.Level == "" {
		f.Level = domain.LevelBeginner
	}

	f.CenterID = callerID
	f.CurrentStudents = 0
	f.IsActive = true

	var created domain.Formation
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.repo.Create(ctx, f)
		if err != nil {
			return fmt.Errorf("s.repo.Create -> %w", err)
		}

		if err = s.users.AddCenterFormation(ctx, callerID); err != nil {
			return fmt.Errorf("s.users.AddCenterFormation -> %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.Formation{}, err
	}

	return created, nil
}
