package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID              uint            `gorm:"primaryKey"`
	DonorID         *uint           `gorm:"index"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency        string          `gorm:"size:3;not null;default:USD"`
	Description     string
	Status          string    `gorm:"size:16;not null;default:pending"`
	TransactionHash string    `gorm:"size:255"`
	Reference       string    `gorm:"size:128;uniqueIndex"`
	DonatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

func (d *DonationDAO) Insert(ctx context.Context, donation Donation) (Donation, error) {
	if err := translateErr(conn(ctx, d.db).Create(&donation).Error); err != nil {
		return Donation{}, err
	}

	return donation, nil
}

func (d *DonationDAO) FindByReference(ctx context.Context, reference string) (Donation, error) {
	var donation Donation

	result := conn(ctx, d.db).Where("reference = ?", reference).First(&donation)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, translateErr(result.Error)
	}

	return donation, nil
}

// UpdateStatusByReference sets the donation status and, when hash is not
// empty, its transaction hash.
func (d *DonationDAO) UpdateStatusByReference(ctx context.Context, reference, status, hash string) error {
	updates := map[string]any{"status": status}
	if hash != "" {
		updates["transaction_hash"] = hash
	}

	result := conn(ctx, d.db).Model(&Donation{}).Where("reference = ?", reference).Updates(updates)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDonationNotFound
	}

	return nil
}

func (d *DonationDAO) ListRecent(ctx context.Context, limit int) ([]Donation, error) {
	var donations []Donation

	err := conn(ctx, d.db).Order("donated_at DESC, id DESC").Limit(limit).Find(&donations).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return donations, nil
}

func (d *DonationDAO) SumAmount(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	if err := conn(ctx, d.db).Model(&Donation{}).Select("SUM(amount)").Row().Scan(&total); err != nil {
		return decimal.Zero, translateErr(err)
	}

	return total.Decimal, nil
}
