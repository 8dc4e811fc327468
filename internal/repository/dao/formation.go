package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrFormationNotFound = errors.New("formation not found")
	ErrFormationFull     = errors.New("formation is full")
)

type Formation struct {
	ID              uint   `gorm:"primaryKey"`
	CenterID        uint   `gorm:"index;not null"`
	Title           string `gorm:"size:255;not null"`
	Description     string
	Category        string          `gorm:"size:100"`
	Level           string          `gorm:"size:16;not null;default:beginner"`
	Duration        int             `gorm:"not null;default:0"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	MaxStudents     int             `gorm:"not null;default:0"`
	CurrentStudents int             `gorm:"not null;default:0"`
	Image           string          `gorm:"type:text"`
	IsActive        bool            `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type FormationDAO struct {
	db *gorm.DB
}

func NewFormationDAO(db *gorm.DB) *FormationDAO {
	return &FormationDAO{
		db: db,
	}
}

func (d *FormationDAO) Insert(ctx context.Context, f Formation) (Formation, error) {
	if err := translateErr(conn(ctx, d.db).Create(&f).Error); err != nil {
		return Formation{}, err
	}

	return f, nil
}

func (d *FormationDAO) FindByID(ctx context.Context, id uint) (Formation, error) {
	var f Formation

	result := conn(ctx, d.db).First(&f, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Formation{}, ErrFormationNotFound
		}

		return Formation{}, translateErr(result.Error)
	}

	return f, nil
}

// List returns active formations, optionally restricted to one center.
func (d *FormationDAO) List(ctx context.Context, centerID *uint) ([]Formation, error) {
	var formations []Formation

	query := conn(ctx, d.db).Where("is_active = ?", true)
	if centerID != nil {
		query = query.Where("center_id = ?", *centerID)
	}

	if err := query.Order("id DESC").Find(&formations).Error; err != nil {
		return nil, translateErr(err)
	}

	return formations, nil
}

// IncrementStudents adds one student. With enforceCapacity the increment only
// happens while the formation has room, and ErrFormationFull is returned
// otherwise.
func (d *FormationDAO) IncrementStudents(ctx context.Context, id uint, enforceCapacity bool) error {
	query := conn(ctx, d.db).Model(&Formation{}).Where("id = ?", id)
	if enforceCapacity {
		query = query.Where("max_students = 0 OR current_students < max_students")
	}

	result := query.Update("current_students", gorm.Expr("current_students + 1"))
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := d.FindByID(ctx, id); err != nil {
			return err
		}
		return ErrFormationFull
	}

	return nil
}

func (d *FormationDAO) DecrementStudents(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Model(&Formation{}).
		Where("id = ? AND current_students > 0", id).
		Update("current_students", gorm.Expr("current_students - 1"))

	return translateErr(result.Error)
}
