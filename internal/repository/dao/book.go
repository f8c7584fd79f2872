package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrBookNotFound = gorm.ErrRecordNotFound
	// ErrInsufficientStock 扣库存的时候不够了
	ErrInsufficientStock = errors.New("库存不足")
)

type Book struct {
	ID        int64  `gorm:"primaryKey,autoIncrement"`
	Title     string `gorm:"type:varchar(256)"`
	Author    string `gorm:"type:varchar(128)"`
	Publisher string `gorm:"type:varchar(128)"`
	ISBN      string `gorm:"type:varchar(32);unique"`
	Price     int64
	Stock     int
	Ctime     int64
	Utime     int64
}

type BookDAO interface {
	Insert(ctx context.Context, b Book) (int64, error)
	UpdateById(ctx context.Context, b Book) error
	GetById(ctx context.Context, id int64) (Book, error)
	List(ctx context.Context, offset int, limit int) ([]Book, error)
	// DecrStock 带条件的扣减，扣不动返回 ErrInsufficientStock
	DecrStock(ctx context.Context, id int64, n int) error
	IncrStock(ctx context.Context, id int64, n int) error
}

type bookGORMDAO struct {
	db *gorm.DB
}

func NewBookGORMDAO(db *gorm.DB) BookDAO {
	return &bookGORMDAO{
		db: db,
	}
}

func (d *bookGORMDAO) Insert(ctx context.Context, b Book) (int64, error) {
	now := time.Now().UnixMilli()
	b.Ctime = now
	b.Utime = now
	err := conn(ctx, d.db).Create(&b).Error
	return b.ID, err
}

func (d *bookGORMDAO) UpdateById(ctx context.Context, b Book) error {
	return conn(ctx, d.db).Model(&Book{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"title":     b.Title,
			"author":    b.Author,
			"publisher": b.Publisher,
			"price":     b.Price,
			"stock":     b.Stock,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (d *bookGORMDAO) GetById(ctx context.Context, id int64) (Book, error) {
	var res Book
	err := conn(ctx, d.db).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *bookGORMDAO) List(ctx context.Context, offset int, limit int) ([]Book, error) {
	var res []Book
	err := conn(ctx, d.db).Order("id DESC").
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (d *bookGORMDAO) DecrStock(ctx context.Context, id int64, n int) error {
	res := conn(ctx, d.db).Model(&Book{}).
		Where("id = ? AND stock >= ?", id, n).
		Updates(map[string]any{
			"stock": gorm.Expr("stock - ?", n),
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientStock
	}
	return nil
}

func (d *bookGORMDAO) IncrStock(ctx context.Context, id int64, n int) error {
	return conn(ctx, d.db).Model(&Book{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stock": gorm.Expr("stock + ?", n),
			"utime": time.Now().UnixMilli(),
		}).Error
}
