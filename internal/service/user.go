package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/profutur/profutur-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindStudentProfile(ctx context.Context, userID uint) (domain.Profile, error)
	FindCenterProfile(ctx context.Context, userID uint) (domain.Profile, error)
	FindAmbassadorProfile(ctx context.Context, userID uint) (domain.Profile, error)
	AddCompletedFormation(ctx context.Context, userID uint, hours int) error
	AddCenterFormation(ctx context.Context, userID uint) error
}

type profileLoader func(ctx context.Context, userID uint) (domain.Profile, error)

type UserService struct {
	repo    UserRepository
	loaders map[domain.Role]profileLoader
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
		loaders: map[domain.Role]profileLoader{
			domain.RoleStudent:    repo.FindStudentProfile,
			domain.RoleCenter:     repo.FindCenterProfile,
			domain.RoleAmbassador: repo.FindAmbassadorProfile,
		},
	}
}

type CurrentProfile struct {
	User    domain.User
	Profile domain.Profile // nil for roles without a profile
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) GetCurrentProfile(ctx context.Context, userID uint) (CurrentProfile, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return CurrentProfile{}, err
	}

	load, ok := s.loaders[user.Role]
	if !ok {
		return CurrentProfile{User: user}, nil
	}

	profile, err := load(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return CurrentProfile{User: user}, nil
		}
		return CurrentProfile{}, fmt.Errorf("load %s profile -> %w", user.Role, err)
	}

	return CurrentProfile{User: user, Profile: profile}, nil
}

func (s *UserService) GetStudentProfile(ctx context.Context, userID uint) (domain.StudentProfile, error) {
	return profileAs[domain.StudentProfile](ctx, s.loaders[domain.RoleStudent], userID)
}

func (s *UserService) GetCenterProfile(ctx context.Context, userID uint) (domain.CenterProfile, error) {
	return profileAs[domain.CenterProfile](ctx, s.loaders[domain.RoleCenter], userID)
}

func (s *UserService) GetAmbassadorProfile(ctx context.Context, userID uint) (domain.AmbassadorProfile, error) {
	return profileAs[domain.AmbassadorProfile](ctx, s.loaders[domain.RoleAmbassador], userID)
}

func profileAs[T domain.Profile](ctx context.Context, load profileLoader, userID uint) (T, error) {
	var zero T

	profile, err := load(ctx, userID)
	if err != nil {
		return zero, fmt.Errorf("load profile -> %w", err)
	}

	typed, ok := profile.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected profile %T", ErrProfileNotFound, profile)
	}

	return typed, nil
}
