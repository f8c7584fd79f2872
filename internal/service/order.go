package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	// ErrOutOfStock 下单到支付之间库存被别人买走了
	ErrOutOfStock = errors.New("库存不足")
	// ErrUnknownOrderedBook 请求里带了订单上不存在的订单行
	// 这是数据有问题，不是正常业务
	ErrUnknownOrderedBook = errors.New("订单行不存在")
)

type OrderItem struct {
	BookID   int64
	Quantity int
	// PointUsed 这一行想用掉多少积分
	PointUsed int64
}

type OrderService interface {
	CreateOrder(ctx context.Context, memberID int64, items []OrderItem) (domain.Order, error)
	GetOrder(ctx context.Context, orderNo string) (domain.Order, error)
	// VerifyStock 支付审批之前最后确认一次库存
	VerifyStock(ctx context.Context, orderNo string) error
	ApplyPaymentSuccess(ctx context.Context, orderNo string) error
	ApplyOrderCancel(ctx context.Context, res domain.PaymentCancelResult, reason string) error
	ApplyOrderReturnRequest(ctx context.Context, orderNo string, ids []int64, reason string) error
	ApplyOrderReturn(ctx context.Context, orderNo string, ids []int64) error
	MarkDelivered(ctx context.Context, orderNo string, ids []int64) error
}

type orderService struct {
	repo     repository.OrderRepository
	bookRepo repository.BookRepository
	l        logger.LoggerV1
}

func NewOrderService(repo repository.OrderRepository,
	bookRepo repository.BookRepository, l logger.LoggerV1) OrderService {
	return &orderService{
		repo:     repo,
		bookRepo: bookRepo,
		l:        l,
	}
}

func (svc *orderService) CreateOrder(ctx context.Context,
	memberID int64, items []OrderItem) (domain.Order, error) {
	o := domain.Order{
		OrderNo:  uuid.New().String(),
		MemberID: memberID,
		Status:   domain.OrderStatusPending,
	}
	for _, item := range items {
		b, err := svc.bookRepo.GetById(ctx, item.BookID)
		if err != nil {
			return domain.Order{}, err
		}
		// 单价和积分在下单这一刻定死，后面退款全按这里的数算
		total := b.Price * int64(item.Quantity)
		o.Books = append(o.Books, domain.OrderedBook{
			BookID:     b.ID,
			Quantity:   item.Quantity,
			UnitPrice:  b.Price,
			TotalPrice: total - item.PointUsed,
			PointUsed:  item.PointUsed,
			Status:     domain.OrderedBookStatusUnknown,
		})
	}
	err := svc.repo.Create(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	return o, nil
}

func (svc *orderService) GetOrder(ctx context.Context, orderNo string) (domain.Order, error) {
	return svc.repo.GetByOrderNo(ctx, orderNo)
}

func (svc *orderService) VerifyStock(ctx context.Context, orderNo string) error {
	o, err := svc.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return err
	}
	for _, ob := range o.Books {
		b, err := svc.bookRepo.GetById(ctx, ob.BookID)
		if err != nil {
			return err
		}
		if b.Stock < ob.Quantity {
			return fmt.Errorf("%w: book %d", ErrOutOfStock, ob.BookID)
		}
	}
	return nil
}

func (svc *orderService) ApplyPaymentSuccess(ctx context.Context, orderNo string) error {
	o, err := svc.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(o.Books))
	for _, ob := range o.Books {
		err = svc.bookRepo.DecrStock(ctx, ob.BookID, ob.Quantity)
		if err != nil {
			return err
		}
		ids = append(ids, ob.ID)
	}
	err = svc.repo.UpdateBookStatus(ctx, ids,
		domain.OrderedBookStatusPaymentComplete, "")
	if err != nil {
		return err
	}
	return svc.repo.UpdateStatus(ctx, orderNo, domain.OrderStatusPaymentComplete)
}

func (svc *orderService) ApplyOrderCancel(ctx context.Context,
	res domain.PaymentCancelResult, reason string) error {
	o, err := svc.repo.GetByOrderNo(ctx, res.OrderNo)
	if err != nil {
		return err
	}
	// 取消的书库存还回去
	for _, ob := range o.Books {
		if contains(res.OrderedBookIDs, ob.ID) {
			err = svc.bookRepo.IncrStock(ctx, ob.BookID, ob.Quantity)
			if err != nil {
				return err
			}
		}
	}
	err = svc.repo.UpdateBookStatus(ctx, res.OrderedBookIDs,
		domain.OrderedBookStatusCanceled, reason)
	if err != nil {
		return err
	}
	status := domain.OrderStatusPartiallyCanceled
	if res.Full {
		status = domain.OrderStatusCanceled
	}
	return svc.repo.UpdateStatus(ctx, res.OrderNo, status)
}

func (svc *orderService) ApplyOrderReturnRequest(ctx context.Context,
	orderNo string, ids []int64, reason string) error {
	err := svc.repo.UpdateBookStatus(ctx, ids,
		domain.OrderedBookStatusReturnRequested, reason)
	if err != nil {
		return err
	}
	return svc.repo.UpdateStatus(ctx, orderNo, domain.OrderStatusReturnRequested)
}

func (svc *orderService) ApplyOrderReturn(ctx context.Context,
	orderNo string, ids []int64) error {
	o, err := svc.repo.GetByOrderNo(ctx, orderNo)
	if err != nil {
		return err
	}
	for _, ob := range o.Books {
		if contains(ids, ob.ID) {
			err = svc.bookRepo.IncrStock(ctx, ob.BookID, ob.Quantity)
			if err != nil {
				return err
			}
		}
	}
	err = svc.repo.UpdateBookStatus(ctx, ids, domain.OrderedBookStatusReturned, "")
	if err != nil {
		return err
	}
	full := true
	for _, ob := range o.Books {
		if !ob.Finished() && !contains(ids, ob.ID) {
			full = false
			break
		}
	}
	status := domain.OrderStatusPartiallyCanceled
	if full {
		status = domain.OrderStatusReturned
	}
	return svc.repo.UpdateStatus(ctx, orderNo, status)
}

func (svc *orderService) MarkDelivered(ctx context.Context,
	orderNo string, ids []int64) error {
	return svc.repo.MarkDelivered(ctx, ids, time.Now())
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
