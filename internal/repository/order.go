package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"

	"github.com/ecodeclub/ekit/slice"
)

var ErrOrderNotFound = dao.ErrOrderNotFound

type OrderRepository interface {
	Create(ctx context.Context, o domain.Order) error
	GetByOrderNo(ctx context.Context, orderNo string) (domain.Order, error)
	UpdateStatus(ctx context.Context, orderNo string, status domain.OrderStatus) error
	// UpdateBookStatus 给一批订单行改状态，顺带记原因
	UpdateBookStatus(ctx context.Context, ids []int64,
		status domain.OrderedBookStatus, reason string) error
	MarkDelivered(ctx context.Context, ids []int64, t time.Time) error
}

type orderRepository struct {
	dao dao.OrderDAO
}

func NewOrderRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{
		dao: d,
	}
}

func (repo *orderRepository) Create(ctx context.Context, o domain.Order) error {
	books := slice.Map(o.Books, func(idx int, src domain.OrderedBook) dao.OrderedBook {
		return repo.toBookEntity(src)
	})
	return repo.dao.Insert(ctx, dao.Order{
		OrderNo:  o.OrderNo,
		MemberID: o.MemberID,
		Status:   o.Status.AsUint8(),
	}, books)
}

func (repo *orderRepository) GetByOrderNo(ctx context.Context,
	orderNo string) (domain.Order, error) {
	o, books, err := repo.dao.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return domain.Order{}, err
	}
	res := domain.Order{
		ID:       o.ID,
		OrderNo:  o.OrderNo,
		MemberID: o.MemberID,
		Status:   domain.OrderStatus(o.Status),
		Ctime:    time.UnixMilli(o.Ctime),
	}
	res.Books = slice.Map(books, func(idx int, src dao.OrderedBook) domain.OrderedBook {
		return repo.toBookDomain(src)
	})
	return res, nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context,
	orderNo string, status domain.OrderStatus) error {
	return repo.dao.UpdateStatus(ctx, orderNo, status.AsUint8())
}

func (repo *orderRepository) UpdateBookStatus(ctx context.Context,
	ids []int64, status domain.OrderedBookStatus, reason string) error {
	return repo.dao.UpdateBookStatus(ctx, ids, status.AsUint8(), reason)
}

func (repo *orderRepository) MarkDelivered(ctx context.Context,
	ids []int64, t time.Time) error {
	return repo.dao.MarkDelivered(ctx, ids, t)
}

func (repo *orderRepository) toBookEntity(b domain.OrderedBook) dao.OrderedBook {
	res := dao.OrderedBook{
		BookID:     b.BookID,
		Quantity:   b.Quantity,
		UnitPrice:  b.UnitPrice,
		TotalPrice: b.TotalPrice,
		PointUsed:  b.PointUsed,
		Status:     b.Status.AsUint8(),
		Reason:     b.Reason,
	}
	if b.DeliveredAt != nil {
		res.DeliveredAt = sql.NullInt64{
			Int64: b.DeliveredAt.UnixMilli(),
			Valid: true,
		}
	}
	return res
}

func (repo *orderRepository) toBookDomain(b dao.OrderedBook) domain.OrderedBook {
	res := domain.OrderedBook{
		ID:         b.ID,
		OrderID:    b.OrderID,
		BookID:     b.BookID,
		Quantity:   b.Quantity,
		UnitPrice:  b.UnitPrice,
		TotalPrice: b.TotalPrice,
		PointUsed:  b.PointUsed,
		Status:     domain.OrderedBookStatus(b.Status),
		Reason:     b.Reason,
	}
	if b.DeliveredAt.Valid {
		t := time.UnixMilli(b.DeliveredAt.Int64)
		res.DeliveredAt = &t
	}
	return res
}
