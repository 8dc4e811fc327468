package repository

import (
	"context"
	"fmt"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

type FormationDAO interface {
	Insert(ctx context.Context, f dao.Formation) (dao.Formation, error)
	FindByID(ctx context.Context, id uint) (dao.Formation, error)
	List(ctx context.Context, centerID *uint) ([]dao.Formation, error)
	IncrementStudents(ctx context.Context, id uint, enforceCapacity bool) error
	DecrementStudents(ctx context.Context, id uint) error
}

type FormationRepository struct {
	dao FormationDAO
}

func NewFormationRepository(dao FormationDAO) *FormationRepository {
	return &FormationRepository{
		dao: dao,
	}
}

func (r *FormationRepository) Create(ctx context.Context, f domain.Formation) (domain.Formation, error) {
	created, err := r.dao.Insert(ctx, dao.Formation{
		CenterID:    f.CenterID,
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Level:       string(f.Level),
		Duration:    f.Duration,
		Price:       f.Price,
		MaxStudents: f.MaxStudents,
		Image:       f.Image,
		IsActive:    f.IsActive,
	})
	if err != nil {
		return domain.Formation{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return formationDaoToDomain(created), nil
}

func (r *FormationRepository) FindByID(ctx context.Context, id uint) (domain.Formation, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Formation{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return formationDaoToDomain(found), nil
}

func (r *FormationRepository) List(ctx context.Context, centerID *uint) ([]domain.Formation, error) {
	found, err := r.dao.List(ctx, centerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	formations := make([]domain.Formation, 0, len(found))
	for _, f := range found {
		formations = append(formations, formationDaoToDomain(f))
	}

	return formations, nil
}

func (r *FormationRepository) IncrementStudents(ctx context.Context, id uint, enforceCapacity bool) error {
	if err := r.dao.IncrementStudents(ctx, id, enforceCapacity); err != nil {
		return fmt.Errorf("r.dao.IncrementStudents -> %w", err)
	}

	return nil
}

func (r *FormationRepository) DecrementStudents(ctx context.Context, id uint) error {
	if err := r.dao.DecrementStudents(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DecrementStudents -> %w", err)
	}

	return nil
}

func formationDaoToDomain(f dao.Formation) domain.Formation {
	return domain.Formation{
		ID:              f.ID,
		CenterID:        f.CenterID,
		Title:           f.Title,
		Description:     f.Description,
		Category:        f.Category,
		Level:           domain.Level(f.Level),
		Duration:        f.Duration,
		Price:           f.Price,
		MaxStudents:     f.MaxStudents,
		CurrentStudents: f.CurrentStudents,
		Image:           f.Image,
		IsActive:        f.IsActive,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}
