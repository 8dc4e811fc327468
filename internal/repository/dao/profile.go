package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type StudentProfile struct {
	ID                  uint   `gorm:"primaryKey"`
	UserID              uint   `gorm:"uniqueIndex;not null"`
	Specialization      string `gorm:"size:255"`
	Bio                 string
	Skills              string
	CompletedFormations int `gorm:"not null;default:0"`
	TotalHoursLearned   int `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type CenterProfile struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"uniqueIndex;not null"`
	CenterName      string `gorm:"size:255;not null"`
	Description     string
	Location        string          `gorm:"size:255"`
	Phone           string          `gorm:"size:20"`
	Website         string          `gorm:"size:255"`
	Logo            string          `gorm:"type:text"`
	TotalStudents   int             `gorm:"not null;default:0"`
	TotalFormations int             `gorm:"not null;default:0"`
	Rating          decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	IsVerified      bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AmbassadorProfile struct {
	ID               uint            `gorm:"primaryKey"`
	UserID           uint            `gorm:"uniqueIndex;not null"`
	NetworkSize      int             `gorm:"not null;default:0"`
	TotalCommissions decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Referrals        int             `gorm:"not null;default:0"`
	Status           string          `gorm:"size:16;not null;default:active"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type ProfileDAO struct {
	db *gorm.DB
}

func NewProfileDAO(db *gorm.DB) *ProfileDAO {
	return &ProfileDAO{
		db: db,
	}
}

func (d *ProfileDAO) InsertStudent(ctx context.Context, p StudentProfile) (StudentProfile, error) {
	if err := translateErr(conn(ctx, d.db).Create(&p).Error); err != nil {
		return StudentProfile{}, err
	}
	return p, nil
}

func (d *ProfileDAO) InsertCenter(ctx context.Context, p CenterProfile) (CenterProfile, error) {
	if err := translateErr(conn(ctx, d.db).Create(&p).Error); err != nil {
		return CenterProfile{}, err
	}
	return p, nil
}

func (d *ProfileDAO) InsertAmbassador(ctx context.Context, p AmbassadorProfile) (AmbassadorProfile, error) {
	if err := translateErr(conn(ctx, d.db).Create(&p).Error); err != nil {
		return AmbassadorProfile{}, err
	}
	return p, nil
}

func (d *ProfileDAO) FindStudentByUserID(ctx context.Context, userID uint) (StudentProfile, error) {
	var p StudentProfile
	if err := d.findByUserID(ctx, userID, &p); err != nil {
		return StudentProfile{}, err
	}
	return p, nil
}

func (d *ProfileDAO) FindCenterByUserID(ctx context.Context, userID uint) (CenterProfile, error) {
	var p CenterProfile
	if err := d.findByUserID(ctx, userID, &p); err != nil {
		return CenterProfile{}, err
	}
	return p, nil
}

func (d *ProfileDAO) FindAmbassadorByUserID(ctx context.Context, userID uint) (AmbassadorProfile, error) {
	var p AmbassadorProfile
	if err := d.findByUserID(ctx, userID, &p); err != nil {
		return AmbassadorProfile{}, err
	}
	return p, nil
}

// AddCompletedFormation bumps the student's counters, creating the profile
// when the student never had one.
func (d *ProfileDAO) AddCompletedFormation(ctx context.Context, userID uint, hours int) error {
	result := conn(ctx, d.db).Model(&StudentProfile{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"completed_formations": gorm.Expr("completed_formations + 1"),
			"total_hours_learned":  gorm.Expr("total_hours_learned + ?", hours),
		})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	_, err := d.InsertStudent(ctx, StudentProfile{
		UserID:              userID,
		CompletedFormations: 1,
		TotalHoursLearned:   hours,
	})

	return err
}

func (d *ProfileDAO) AddCenterFormation(ctx context.Context, userID uint) error {
	result := conn(ctx, d.db).Model(&CenterProfile{}).
		Where("user_id = ?", userID).
		Update("total_formations", gorm.Expr("total_formations + 1"))

	return translateErr(result.Error)
}

func (d *ProfileDAO) findByUserID(ctx context.Context, userID uint, dest any) error {
	result := conn(ctx, d.db).Where("user_id = ?", userID).First(dest)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}

		return translateErr(result.Error)
	}

	return nil
}
