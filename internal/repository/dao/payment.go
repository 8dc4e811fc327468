package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrTransactionIDExists = errors.New("transaction id already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type MobileMoneyTransaction struct {
	ID            uint            `gorm:"primaryKey"`
	TransactionID string          `gorm:"size:128;uniqueIndex;not null"`
	UserID        *uint           `gorm:"index"`
	Provider      string          `gorm:"size:16;not null"`
	PhoneNumber   string          `gorm:"size:32;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"size:3;not null;default:USD"`
	Status        string          `gorm:"size:16;not null;default:pending;index"`
	Purpose       string          `gorm:"size:16;not null"`
	FormationID   *uint
	Description   string
	Metadata      datatypes.JSON
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, tx MobileMoneyTransaction) (MobileMoneyTransaction, error) {
	if err := insertIsolated(ctx, d.db, &tx); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return MobileMoneyTransaction{}, ErrTransactionIDExists
		}

		return MobileMoneyTransaction{}, err
	}

	return tx, nil
}

func (d *PaymentDAO) FindByTransactionID(ctx context.Context, transactionID string) (MobileMoneyTransaction, error) {
	var tx MobileMoneyTransaction

	result := conn(ctx, d.db).Where("transaction_id = ?", transactionID).First(&tx)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return MobileMoneyTransaction{}, ErrTransactionNotFound
		}

		return MobileMoneyTransaction{}, translateErr(result.Error)
	}

	return tx, nil
}

// CompareAndSetStatus moves the transaction from one status to another and
// reports whether this call made the change.
func (d *PaymentDAO) CompareAndSetStatus(ctx context.Context, transactionID, from, to string) (bool, error) {
	result := conn(ctx, d.db).Model(&MobileMoneyTransaction{}).
		Where("transaction_id = ? AND status = ?", transactionID, from).
		Update("status", to)
	if result.Error != nil {
		return false, translateErr(result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (d *PaymentDAO) ListPendingBefore(ctx context.Context, cutoff time.Time, limit int) ([]MobileMoneyTransaction, error) {
	var txs []MobileMoneyTransaction

	err := conn(ctx, d.db).
		Where("status = ? AND created_at < ?", "pending", cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&txs).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return txs, nil
}

func (d *PaymentDAO) SumAmountByPurpose(ctx context.Context, purpose string) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := conn(ctx, d.db).Model(&MobileMoneyTransaction{}).
		Select("SUM(amount)").
		Where("purpose = ?", purpose).
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, translateErr(err)
	}

	return total.Decimal, nil
}
