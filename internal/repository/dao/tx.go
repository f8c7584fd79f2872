package dao

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// ContextWithTx 把事务塞进 ctx，同一个编排操作里的所有 DAO 共用一个事务
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxManager 编排层用它把一次操作圈成一个事务
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type GORMTxManager struct {
	db *gorm.DB
}

func NewGORMTxManager(db *gorm.DB) TxManager {
	return &GORMTxManager{
		db: db,
	}
}

func (m *GORMTxManager) Transaction(ctx context.Context,
	fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ContextWithTx(ctx, tx))
	})
}

// conn 优先用 ctx 里的事务，没有就用自己的连接
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
