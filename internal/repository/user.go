package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/profutur/profutur-api/internal/domain"
	"github.com/profutur/profutur-api/internal/repository/dao"
)

type UserDAO interface {
	Insert(ctx context.Context, user dao.User) (dao.User, error)
	FindByID(ctx context.Context, id uint) (dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error
}

type ProfileDAO interface {
	InsertStudent(ctx context.Context, p dao.StudentProfile) (dao.StudentProfile, error)
	InsertCenter(ctx context.Context, p dao.CenterProfile) (dao.CenterProfile, error)
	InsertAmbassador(ctx context.Context, p dao.AmbassadorProfile) (dao.AmbassadorProfile, error)
	FindStudentByUserID(ctx context.Context, userID uint) (dao.StudentProfile, error)
	FindCenterByUserID(ctx context.Context, userID uint) (dao.CenterProfile, error)
	FindAmbassadorByUserID(ctx context.Context, userID uint) (dao.AmbassadorProfile, error)
	AddCompletedFormation(ctx context.Context, userID uint, hours int) error
	AddCenterFormation(ctx context.Context, userID uint) error
}

type UserRepository struct {
	dao        UserDAO
	profileDAO ProfileDAO
}

func NewUserRepository(dao UserDAO, profileDAO ProfileDAO) *UserRepository {
	return &UserRepository{
		dao:        dao,
		profileDAO: profileDAO,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.dao.Insert(ctx, dao.User{
		Email:    user.Email,
		Password: user.Password,
		Name:     user.Name,
		Role:     string(user.Role),
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error {
	if err := r.dao.TouchLastSignedIn(ctx, id, at); err != nil {
		return fmt.Errorf("r.dao.TouchLastSignedIn -> %w", err)
	}

	return nil
}

// CreateProfile stores the profile variant. The variant decides the table.
func (r *UserRepository) CreateProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	switch p := profile.(type) {
	case domain.StudentProfile:
		created, err := r.profileDAO.InsertStudent(ctx, dao.StudentProfile{
			UserID:         p.UserID,
			Specialization: p.Specialization,
			Bio:            p.Bio,
			Skills:         p.Skills,
		})
		if err != nil {
			return nil, fmt.Errorf("r.profileDAO.InsertStudent -> %w", err)
		}
		return studentDaoToDomain(created), nil

	case domain.CenterProfile:
		created, err := r.profileDAO.InsertCenter(ctx, dao.CenterProfile{
			UserID:      p.UserID,
			CenterName:  p.CenterName,
			Description: p.Description,
			Location:    p.Location,
			Phone:       p.Phone,
			Website:     p.Website,
			Logo:        p.Logo,
			Rating:      p.Rating,
		})
		if err != nil {
			return nil, fmt.Errorf("r.profileDAO.InsertCenter -> %w", err)
		}
		return centerDaoToDomain(created), nil

	case domain.AmbassadorProfile:
		created, err := r.profileDAO.InsertAmbassador(ctx, dao.AmbassadorProfile{
			UserID:           p.UserID,
			TotalCommissions: p.TotalCommissions,
			Status:           string(p.Status),
		})
		if err != nil {
			return nil, fmt.Errorf("r.profileDAO.InsertAmbassador -> %w", err)
		}
		return ambassadorDaoToDomain(created), nil
	}

	return nil, fmt.Errorf("unsupported profile %T", profile)
}

func (r *UserRepository) FindStudentProfile(ctx context.Context, userID uint) (domain.Profile, error) {
	found, err := r.profileDAO.FindStudentByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.profileDAO.FindStudentByUserID -> %w", err)
	}

	return studentDaoToDomain(found), nil
}

func (r *UserRepository) FindCenterProfile(ctx context.Context, userID uint) (domain.Profile, error) {
	found, err := r.profileDAO.FindCenterByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.profileDAO.FindCenterByUserID -> %w", err)
	}

	return centerDaoToDomain(found), nil
}

func (r *UserRepository) FindAmbassadorProfile(ctx context.Context, userID uint) (domain.Profile, error) {
	found, err := r.profileDAO.FindAmbassadorByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.profileDAO.FindAmbassadorByUserID -> %w", err)
	}

	return ambassadorDaoToDomain(found), nil
}

func (r *UserRepository) AddCompletedFormation(ctx context.Context, userID uint, hours int) error {
	if err := r.profileDAO.AddCompletedFormation(ctx, userID, hours); err != nil {
		return fmt.Errorf("r.profileDAO.AddCompletedFormation -> %w", err)
	}

	return nil
}

func (r *UserRepository) AddCenterFormation(ctx context.Context, userID uint) error {
	if err := r.profileDAO.AddCenterFormation(ctx, userID); err != nil {
		return fmt.Errorf("r.profileDAO.AddCenterFormation -> %w", err)
	}

	return nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:           u.ID,
		Email:        u.Email,
		Password:     u.Password,
		Name:         u.Name,
		Role:         domain.Role(u.Role),
		LastSignedIn: u.LastSignedIn,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func studentDaoToDomain(p dao.StudentProfile) domain.StudentProfile {
	return domain.StudentProfile{
		ID:                  p.ID,
		UserID:              p.UserID,
		Specialization:      p.Specialization,
		Bio:                 p.Bio,
		Skills:              p.Skills,
		CompletedFormations: p.CompletedFormations,
		TotalHoursLearned:   p.TotalHoursLearned,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func centerDaoToDomain(p dao.CenterProfile) domain.CenterProfile {
	return domain.CenterProfile{
		ID:              p.ID,
		UserID:          p.UserID,
		CenterName:      p.CenterName,
		Description:     p.Description,
		Location:        p.Location,
		Phone:           p.Phone,
		Website:         p.Website,
		Logo:            p.Logo,
		TotalStudents:   p.TotalStudents,
		TotalFormations: p.TotalFormations,
		Rating:          p.Rating,
		IsVerified:      p.IsVerified,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func ambassadorDaoToDomain(p dao.AmbassadorProfile) domain.AmbassadorProfile {
	return domain.AmbassadorProfile{
		ID:               p.ID,
		UserID:           p.UserID,
		NetworkSize:      p.NetworkSize,
		TotalCommissions: p.TotalCommissions,
		Referrals:        p.Referrals,
		Status:           domain.AmbassadorStatus(p.Status),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
