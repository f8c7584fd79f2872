package dao

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

var ErrDeliveryPolicyNotFound = gorm.ErrRecordNotFound

// DeliveryPolicy 只追加的版本表
// superseded_at 为 NULL 的那一条是当前版本
type DeliveryPolicy struct {
	ID            int64 `gorm:"primaryKey,autoIncrement"`
	FreeAmount    int64
	Fee           int64
	EffectiveFrom int64
	SupersededAt  sql.NullInt64
	Ctime         int64
}

type DeliveryPolicyDAO interface {
	// Insert 新版本落库的同时把老的当前版本盖掉，一个事务
	Insert(ctx context.Context, p DeliveryPolicy) error
	// GetEffectiveAt 取 t 时刻生效的版本，恰好一条
	GetEffectiveAt(ctx context.Context, t time.Time) (DeliveryPolicy, error)
}

type deliveryPolicyGORMDAO struct {
	db *gorm.DB
}

func NewDeliveryPolicyGORMDAO(db *gorm.DB) DeliveryPolicyDAO {
	return &deliveryPolicyGORMDAO{
		db: db,
	}
}

func (d *deliveryPolicyGORMDAO) Insert(ctx context.Context, p DeliveryPolicy) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	if p.EffectiveFrom == 0 {
		p.EffectiveFrom = now
	}
	return conn(ctx, d.db).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&DeliveryPolicy{}).
			Where("superseded_at IS NULL").
			Update("superseded_at", p.EffectiveFrom).Error
		if err != nil {
			return err
		}
		return tx.Create(&p).Error
	})
}

func (d *deliveryPolicyGORMDAO) GetEffectiveAt(ctx context.Context,
	t time.Time) (DeliveryPolicy, error) {
	var res DeliveryPolicy
	ms := t.UnixMilli()
	err := conn(ctx, d.db).
		Where("effective_from <= ? AND (superseded_at IS NULL OR superseded_at > ?)", ms, ms).
		First(&res).Error
	return res, err
}
