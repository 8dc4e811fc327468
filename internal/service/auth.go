package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository"
)

var (
	ErrUserEmailExists = repository.ErrUserEmailExists
	ErrWrongPassword   = errors.New("wrong password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error
	CreateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error)
}

type AuthService struct {
	repo AuthUserRepository
	tx   Transactor
	now  func() time.Time
}

func NewAuthService(repo AuthUserRepository, tx Transactor) *AuthService {
	return &AuthService{
		repo: repo,
		tx:   tx,
		now:  time.Now,
	}
}

// Signup creates the user together with the profile of its role.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Role == "" {
		user.Role = domain.RoleUser
	}
	if !user.Role.SelfAssignable() {
		return domain.User{}, fmt.Errorf("%w: role %q cannot be chosen at signup", ErrValidation, user.Role)
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	hash, err := hashPassword(user.Password)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = hash

	var created domain.User
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		created, err = s.repo.Create(ctx, user)
		if err != nil {
			return fmt.Errorf("s.repo.Create -> %w", err)
		}

		if profile := domain.NewProfile(created.Role, created.ID); profile != nil {
			if _, err = s.repo.CreateProfile(ctx, profile); err != nil {
				return fmt.Errorf("s.repo.CreateProfile -> %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrUserNotFound
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	now := s.now()
	if err = s.repo.TouchLastSignedIn(ctx, user.ID, now); err != nil {
		zap.L().Warn("recording sign in", zap.Uint("user_id", user.ID), zap.Error(err))
	} else {
		user.LastSignedIn = &now
	}

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}
	return string(hash), nil
}
