package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrRecordExists   = errors.New("blockchain record already exists")
	ErrRecordNotFound = errors.New("blockchain record not found")
)

type BlockchainRecord struct {
	ID              uint   `gorm:"primaryKey"`
	TransactionHash string `gorm:"size:255;uniqueIndex;not null"`
	RecordType      string `gorm:"size:16;not null"`
	RelatedID       uint   `gorm:"not null"`
	TokenID         string `gorm:"size:255;index"`
	Network         string `gorm:"size:32;not null"`
	Metadata        datatypes.JSON
	Verified        bool `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type BlockchainRecordDAO struct {
	db *gorm.DB
}

func NewBlockchainRecordDAO(db *gorm.DB) *BlockchainRecordDAO {
	return &BlockchainRecordDAO{
		db: db,
	}
}

func (d *BlockchainRecordDAO) Insert(ctx context.Context, record BlockchainRecord) (BlockchainRecord, error) {
	if err := insertIsolated(ctx, d.db, &record); err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return BlockchainRecord{}, ErrRecordExists
		}

		return BlockchainRecord{}, err
	}

	return record, nil
}

func (d *BlockchainRecordDAO) FindByTokenID(ctx context.Context, tokenID string) (BlockchainRecord, error) {
	return d.findOne(ctx, "token_id = ?", tokenID)
}

func (d *BlockchainRecordDAO) FindByHash(ctx context.Context, hash string) (BlockchainRecord, error) {
	return d.findOne(ctx, "transaction_hash = ?", hash)
}

func (d *BlockchainRecordDAO) MarkVerified(ctx context.Context, id uint) error {
	result := conn(ctx, d.db).Model(&BlockchainRecord{}).Where("id = ?", id).Update("verified", true)

	return translateErr(result.Error)
}

func (d *BlockchainRecordDAO) ListUnverified(ctx context.Context, limit int) ([]BlockchainRecord, error) {
	var records []BlockchainRecord

	err := conn(ctx, d.db).Where("verified = ?", false).Order("id ASC").Limit(limit).Find(&records).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return records, nil
}

func (d *BlockchainRecordDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	if err := conn(ctx, d.db).Model(&BlockchainRecord{}).Count(&count).Error; err != nil {
		return 0, translateErr(err)
	}

	return count, nil
}

func (d *BlockchainRecordDAO) findOne(ctx context.Context, query string, arg any) (BlockchainRecord, error) {
	var record BlockchainRecord

	result := conn(ctx, d.db).Where(query, arg).Order("id DESC").First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return BlockchainRecord{}, ErrRecordNotFound
		}

		return BlockchainRecord{}, translateErr(result.Error)
	}

	return record, nil
}
