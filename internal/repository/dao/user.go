package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrUserEmailExists = errors.New("user already exists")
	ErrUserNotFound    = errors.New("user not found")
)

type User struct {
	ID uint `gorm:"primaryKey"`

	Email    string `gorm:"size:320;uniqueIndex;not null"`
	Password string `gorm:"not null"`

	Name string `gorm:"not null"`
	Role string `gorm:"size:16;not null;default:user"` // user, admin, student, center or ambassador

	LastSignedIn *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	if err := insertIsolated(ctx, d.db, &user); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return User{}, ErrUserEmailExists
		}

		return User{}, err
	}

	return user, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uint) (User, error) {
	var user User

	result := conn(ctx, d.db).First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, translateErr(result.Error)
	}

	return user, nil
}

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := conn(ctx, d.db).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, translateErr(result.Error)
	}

	return user, nil
}

func (d *UserDAO) TouchLastSignedIn(ctx context.Context, id uint, at time.Time) error {
	result := conn(ctx, d.db).Model(&User{}).Where("id = ?", id).Update("last_signed_in", at)

	return translateErr(result.Error)
}
