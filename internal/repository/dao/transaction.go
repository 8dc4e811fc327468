package dao

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is the generic ledger-of-record row. Rows are only appended.
type Transaction struct {
	ID             uint `gorm:"primaryKey"`
	FromUserID     *uint
	ToUserID       *uint
	Amount         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Type           string          `gorm:"size:16;not null"`
	Status         string          `gorm:"size:16;not null;default:pending"`
	Description    string
	BlockchainHash string `gorm:"size:255"`
	Reference      string `gorm:"size:128;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Transaction) TableName() string {
	return "transactions"
}

type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{
		db: db,
	}
}

func (d *TransactionDAO) Insert(ctx context.Context, tx Transaction) (Transaction, error) {
	if err := translateErr(conn(ctx, d.db).Create(&tx).Error); err != nil {
		return Transaction{}, err
	}

	return tx, nil
}

func (d *TransactionDAO) ListByReference(ctx context.Context, reference string) ([]Transaction, error) {
	var txs []Transaction

	err := conn(ctx, d.db).Where("reference = ?", reference).Order("id ASC").Find(&txs).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return txs, nil
}
