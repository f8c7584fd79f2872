package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

var ErrMemberNotFound = gorm.ErrRecordNotFound

type Member struct {
	ID       int64  `gorm:"primaryKey,autoIncrement"`
	Email    string `gorm:"unique"`
	Nickname string `gorm:"type:varchar(64)"`
	Phone    string `gorm:"type:varchar(32)"`
	Point    int64
	Ctime    int64
	Utime    int64
}

type MemberDAO interface {
	Insert(ctx context.Context, m Member) (int64, error)
	GetById(ctx context.Context, id int64) (Member, error)
	// IncrPoint 会员退款是退成积分的，落在这里
	IncrPoint(ctx context.Context, id int64, point int64) error
}

type memberGORMDAO struct {
	db *gorm.DB
}

func NewMemberGORMDAO(db *gorm.DB) MemberDAO {
	return &memberGORMDAO{
		db: db,
	}
}

func (d *memberGORMDAO) Insert(ctx context.Context, m Member) (int64, error) {
	now := time.Now().UnixMilli()
	m.Ctime = now
	m.Utime = now
	err := conn(ctx, d.db).Create(&m).Error
	return m.ID, err
}

func (d *memberGORMDAO) GetById(ctx context.Context, id int64) (Member, error) {
	var res Member
	err := conn(ctx, d.db).Where("id = ?", id).First(&res).Error
	return res, err
}

func (d *memberGORMDAO) IncrPoint(ctx context.Context, id int64, point int64) error {
	return conn(ctx, d.db).Model(&Member{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"point": gorm.Expr("point + ?", point),
			"utime": time.Now().UnixMilli(),
		}).Error
}
