package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentRepository interface {
	Create(ctx context.Context, pmt domain.Payment) error
	GetByOrderNo(ctx context.Context, orderNo string) (domain.Payment, error)
	// GetByOrderNoForUpdate 在事务里用，带行锁
	GetByOrderNoForUpdate(ctx context.Context, orderNo string) (domain.Payment, error)
	MarkApproved(ctx context.Context, pmt domain.Payment, his domain.PaymentHistory) error
	// UpdateOnCancel 支付字段和流水一起落，调用方负责圈事务
	UpdateOnCancel(ctx context.Context, pmt domain.Payment, his domain.PaymentHistory) error
	// CreateAborted 独立提交，不跟着外层事务回滚
	CreateAborted(ctx context.Context, pmt domain.Payment, his domain.PaymentHistory) error
	// MarkAborted 定时任务用，把过期没付的原始记录转到终态
	MarkAborted(ctx context.Context, orderNo string) error
	FindReadyBefore(ctx context.Context, offset int, limit int, t time.Time) ([]domain.Payment, error)
}

type paymentRepository struct {
	dao dao.PaymentDAO
}

func NewPaymentRepository(d dao.PaymentDAO) PaymentRepository {
	return &paymentRepository{
		dao: d,
	}
}

func (repo *paymentRepository) Create(ctx context.Context, pmt domain.Payment) error {
	return repo.dao.Insert(ctx, repo.toEntity(pmt))
}

func (repo *paymentRepository) GetByOrderNo(ctx context.Context,
	orderNo string) (domain.Payment, error) {
	res, err := repo.dao.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return domain.Payment{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *paymentRepository) GetByOrderNoForUpdate(ctx context.Context,
	orderNo string) (domain.Payment, error) {
	res, err := repo.dao.GetByOrderNoForUpdate(ctx, orderNo)
	if err != nil {
		return domain.Payment{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *paymentRepository) MarkApproved(ctx context.Context,
	pmt domain.Payment, his domain.PaymentHistory) error {
	err := repo.dao.UpdateOnApprove(ctx, pmt.OrderNo, pmt.PaymentKey,
		domain.PaymentStatusApproved.AsUint8())
	if err != nil {
		return err
	}
	return repo.dao.InsertHistory(ctx, repo.toHistoryEntity(his))
}

func (repo *paymentRepository) UpdateOnCancel(ctx context.Context,
	pmt domain.Payment, his domain.PaymentHistory) error {
	err := repo.dao.UpdateOnCancel(ctx, repo.toEntity(pmt))
	if err != nil {
		return err
	}
	return repo.dao.InsertHistory(ctx, repo.toHistoryEntity(his))
}

func (repo *paymentRepository) CreateAborted(ctx context.Context,
	pmt domain.Payment, his domain.PaymentHistory) error {
	entity := repo.toEntity(pmt)
	entity.Status = domain.PaymentStatusAborted.AsUint8()
	return repo.dao.InsertAborted(ctx, entity, repo.toHistoryEntity(his))
}

func (repo *paymentRepository) MarkAborted(ctx context.Context, orderNo string) error {
	return repo.dao.MarkAborted(ctx, orderNo)
}

func (repo *paymentRepository) FindReadyBefore(ctx context.Context,
	offset int, limit int, t time.Time) ([]domain.Payment, error) {
	pmts, err := repo.dao.FindReadyBefore(ctx, offset, limit, t)
	if err != nil {
		return nil, err
	}
	return slice.Map(pmts, func(idx int, src dao.Payment) domain.Payment {
		return repo.toDomain(src)
	}), nil
}

func (repo *paymentRepository) toEntity(pmt domain.Payment) dao.Payment {
	return dao.Payment{
		ID:      pmt.ID,
		OrderNo: pmt.OrderNo,
		PaymentKey: sql.NullString{
			String: pmt.PaymentKey,
			Valid:  pmt.PaymentKey != "",
		},
		Method:              pmt.Method.AsUint8(),
		TotalAmount:         pmt.TotalAmount,
		PointUsed:           pmt.PointUsed,
		CancelAmount:        pmt.CancelAmount,
		CancelPoint:         pmt.CancelPoint,
		DeliveryFeeAdjusted: pmt.DeliveryFeeAdjusted,
		Status:              pmt.Status.AsUint8(),
		PaidAt:              pmt.PaidAt.UnixMilli(),
	}
}

func (repo *paymentRepository) toDomain(pmt dao.Payment) domain.Payment {
	return domain.Payment{
		ID:                  pmt.ID,
		OrderNo:             pmt.OrderNo,
		PaymentKey:          pmt.PaymentKey.String,
		Method:              domain.PaymentMethod(pmt.Method),
		TotalAmount:         pmt.TotalAmount,
		PointUsed:           pmt.PointUsed,
		CancelAmount:        pmt.CancelAmount,
		CancelPoint:         pmt.CancelPoint,
		DeliveryFeeAdjusted: pmt.DeliveryFeeAdjusted,
		Status:              domain.PaymentStatus(pmt.Status),
		PaidAt:              time.UnixMilli(pmt.PaidAt),
	}
}

func (repo *paymentRepository) toHistoryEntity(his domain.PaymentHistory) dao.PaymentHistory {
	return dao.PaymentHistory{
		PaymentID: his.PaymentID,
		Type:      his.Type.AsUint8(),
		Amount:    his.Amount,
		Reason:    his.Reason,
	}
}
