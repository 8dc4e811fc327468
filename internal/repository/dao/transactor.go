package dao

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs a function inside a database transaction carried by the
// context. DAOs pick the transaction up through conn, so nested calls join the
// outer transaction instead of opening a new one.
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{
		db: db,
	}
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})

	return translateErr(err)
}

// Ping reports whether the database answers.
func (t *Transactor) Ping(ctx context.Context) error {
	sqlDB, err := t.db.DB()
	if err != nil {
		return translateErr(err)
	}

	return translateErr(sqlDB.PingContext(ctx))
}

func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}

	return db.WithContext(ctx)
}

// insertIsolated creates value behind a savepoint when a transaction is open,
// so a unique violation does not abort the surrounding transaction.
func insertIsolated(ctx context.Context, db *gorm.DB, value any) error {
	err := conn(ctx, db).Transaction(func(tx *gorm.DB) error {
		return tx.Create(value).Error
	})

	return translateErr(err)
}
