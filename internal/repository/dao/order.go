package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"gorm.io/gorm"
)

var ErrOrderNotFound = gorm.ErrRecordNotFound

type Order struct {
	ID      int64  `gorm:"primaryKey,autoIncrement"`
	OrderNo string `gorm:"unique"`
	// MemberID 0 表示非会员
	MemberID int64 `gorm:"index"`
	Status   uint8
	Ctime    int64
	Utime    int64
}

type OrderedBook struct {
	ID         int64 `gorm:"primaryKey,autoIncrement"`
	OrderID    int64 `gorm:"index"`
	BookID     int64
	Quantity   int
	UnitPrice  int64
	TotalPrice int64
	PointUsed  int64
	Status     uint8
	// DeliveredAt 没发货就是 NULL
	DeliveredAt sql.NullInt64
	Reason      string `gorm:"type:varchar(512)"`
	Ctime       int64
	Utime       int64
}

type OrderDAO interface {
	Insert(ctx context.Context, o Order, books []OrderedBook) error
	GetByOrderNo(ctx context.Context, orderNo string) (Order, []OrderedBook, error)
	UpdateStatus(ctx context.Context, orderNo string, status uint8) error
	UpdateBookStatus(ctx context.Context, ids []int64, status uint8, reason string) error
	MarkDelivered(ctx context.Context, ids []int64, t time.Time) error
}

type orderGORMDAO struct {
	db *gorm.DB
}

func NewOrderGORMDAO(db *gorm.DB) OrderDAO {
	return &orderGORMDAO{
		db: db,
	}
}

func (d *orderGORMDAO) Insert(ctx context.Context, o Order, books []OrderedBook) error {
	now := time.Now().UnixMilli()
	o.Ctime = now
	o.Utime = now
	return conn(ctx, d.db).Transaction(func(tx *gorm.DB) error {
		err := tx.Create(&o).Error
		if err != nil {
			return err
		}
		for i := range books {
			books[i].OrderID = o.ID
			books[i].Ctime = now
			books[i].Utime = now
		}
		return tx.Create(&books).Error
	})
}

func (d *orderGORMDAO) GetByOrderNo(ctx context.Context,
	orderNo string) (Order, []OrderedBook, error) {
	var o Order
	err := conn(ctx, d.db).Where("order_no = ?", orderNo).First(&o).Error
	if err != nil {
		return Order{}, nil, err
	}
	var books []OrderedBook
	err = conn(ctx, d.db).Where("order_id = ?", o.ID).Find(&books).Error
	return o, books, err
}

func (d *orderGORMDAO) UpdateStatus(ctx context.Context, orderNo string, status uint8) error {
	return conn(ctx, d.db).Model(&Order{}).
		Where("order_no = ?", orderNo).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *orderGORMDAO) UpdateBookStatus(ctx context.Context,
	ids []int64, status uint8, reason string) error {
	updates := map[string]any{
		"status": status,
		"utime":  time.Now().UnixMilli(),
	}
	if reason != "" {
		updates["reason"] = reason
	}
	return conn(ctx, d.db).Model(&OrderedBook{}).
		Where("id IN ?", ids).
		Updates(updates).Error
}

func (d *orderGORMDAO) MarkDelivered(ctx context.Context, ids []int64, t time.Time) error {
	return conn(ctx, d.db).Model(&OrderedBook{}).
		Where("id IN ?", ids).
		Updates(map[string]any{
			"delivered_at": t.UnixMilli(),
			"status":       domain.OrderedBookStatusDelivered.AsUint8(),
			"utime":        time.Now().UnixMilli(),
		}).Error
}
