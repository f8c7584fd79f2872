package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrPaymentNotFound = gorm.ErrRecordNotFound

// 同一个订单号下，活着的支付记录只有一条
// 中止的审计记录是另外插的，所以 order_no 只能是普通索引
type Payment struct {
	ID         int64  `gorm:"primaryKey,autoIncrement"`
	OrderNo    string `gorm:"index"`
	PaymentKey sql.NullString
	Method     uint8
	// 金额一律用分数记
	TotalAmount  int64
	PointUsed    int64
	CancelAmount int64
	CancelPoint  int64
	// DeliveryFeeAdjusted 只会 false -> true 一次
	DeliveryFeeAdjusted bool
	Status              uint8
	PaidAt              int64
	Ctime               int64
	Utime               int64
}

// PaymentHistory 只插入，不更新不删除
type PaymentHistory struct {
	ID        int64 `gorm:"primaryKey,autoIncrement"`
	PaymentID int64 `gorm:"index"`
	Type      uint8
	Amount    int64
	Reason    string `gorm:"type:varchar(512)"`
	Ctime     int64
}

type PaymentDAO interface {
	Insert(ctx context.Context, pmt Payment) error
	GetByOrderNo(ctx context.Context, orderNo string) (Payment, error)
	// GetByOrderNoForUpdate 同一笔支付上的并发取消必须串行，
	// 在事务里加行锁
	GetByOrderNoForUpdate(ctx context.Context, orderNo string) (Payment, error)
	UpdateOnApprove(ctx context.Context, orderNo string, paymentKey string, status uint8) error
	UpdateOnCancel(ctx context.Context, pmt Payment) error
	InsertHistory(ctx context.Context, his PaymentHistory) error
	// InsertAborted 中止记录走独立连接独立提交，
	// 外层事务回滚也不影响它
	InsertAborted(ctx context.Context, pmt Payment, his PaymentHistory) error
	// MarkAborted 把还卡在 READY 的原始记录转成中止态
	MarkAborted(ctx context.Context, orderNo string) error
	FindReadyBefore(ctx context.Context, offset int, limit int, t time.Time) ([]Payment, error)
}

type paymentGORMDAO struct {
	db *gorm.DB
}

func NewPaymentGORMDAO(db *gorm.DB) PaymentDAO {
	return &paymentGORMDAO{
		db: db,
	}
}

func (d *paymentGORMDAO) Insert(ctx context.Context, pmt Payment) error {
	now := time.Now().UnixMilli()
	pmt.Ctime = now
	pmt.Utime = now
	return conn(ctx, d.db).Create(&pmt).Error
}

func (d *paymentGORMDAO) GetByOrderNo(ctx context.Context, orderNo string) (Payment, error) {
	var res Payment
	err := conn(ctx, d.db).
		Where("order_no = ? AND status <> ?", orderNo,
			domain.PaymentStatusAborted.AsUint8()).
		First(&res).Error
	return res, err
}

func (d *paymentGORMDAO) GetByOrderNoForUpdate(ctx context.Context, orderNo string) (Payment, error) {
	var res Payment
	err := conn(ctx, d.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_no = ? AND status <> ?", orderNo,
			domain.PaymentStatusAborted.AsUint8()).
		First(&res).Error
	return res, err
}

func (d *paymentGORMDAO) UpdateOnApprove(ctx context.Context,
	orderNo string, paymentKey string, status uint8) error {
	return conn(ctx, d.db).Model(&Payment{}).
		Where("order_no = ? AND status = ?", orderNo,
			domain.PaymentStatusReady.AsUint8()).
		Updates(map[string]any{
			"payment_key": paymentKey,
			"status":      status,
			"utime":       time.Now().UnixMilli(),
		}).Error
}

// UpdateOnCancel 取消相关的可变字段一把更新
// 调用方保证在事务里，而且拿过行锁
func (d *paymentGORMDAO) UpdateOnCancel(ctx context.Context, pmt Payment) error {
	return conn(ctx, d.db).Model(&Payment{}).
		Where("id = ?", pmt.ID).
		Updates(map[string]any{
			"cancel_amount":         pmt.CancelAmount,
			"cancel_point":          pmt.CancelPoint,
			"delivery_fee_adjusted": pmt.DeliveryFeeAdjusted,
			"status":                pmt.Status,
			"utime":                 time.Now().UnixMilli(),
		}).Error
}

func (d *paymentGORMDAO) InsertHistory(ctx context.Context, his PaymentHistory) error {
	his.Ctime = time.Now().UnixMilli()
	return conn(ctx, d.db).Create(&his).Error
}

// InsertAborted 故意不走 conn(ctx)，拿的是自己的连接
// 要的就是跟外层事务彻底切开，审计记录必须留下来
func (d *paymentGORMDAO) InsertAborted(ctx context.Context,
	pmt Payment, his PaymentHistory) error {
	now := time.Now().UnixMilli()
	pmt.Ctime = now
	pmt.Utime = now
	his.Ctime = now
	return d.db.WithContext(ctx).Session(&gorm.Session{NewDB: true}).
		Transaction(func(tx *gorm.DB) error {
			err := tx.Create(&pmt).Error
			if err != nil {
				return err
			}
			his.PaymentID = pmt.ID
			return tx.Create(&his).Error
		})
}

func (d *paymentGORMDAO) MarkAborted(ctx context.Context, orderNo string) error {
	return conn(ctx, d.db).Model(&Payment{}).
		Where("order_no = ? AND status = ?", orderNo,
			domain.PaymentStatusReady.AsUint8()).
		Updates(map[string]any{
			"status": domain.PaymentStatusAborted.AsUint8(),
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *paymentGORMDAO) FindReadyBefore(ctx context.Context,
	offset int, limit int, t time.Time) ([]Payment, error) {
	var res []Payment
	err := conn(ctx, d.db).
		Where("status = ? AND utime < ?",
			domain.PaymentStatusReady.AsUint8(), t.UnixMilli()).
		Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}
