package domain

import (
	"errors"
	"time"
)

var (
	// ErrFeeExceedsRefund 扣的费用比可退总额还大
	// 这是数据或者代码出 bug 了，不是业务上能恢复的情况，绝对不能悄悄截断成 0
	ErrFeeExceedsRefund = errors.New("手续费超过了可退总额")
	// ErrNotDelivered 没发货的东西谈不上退货，只能走取消
	ErrNotDelivered = errors.New("订单行还没有发货，不能申请退货")
	// ErrReturnWindowExceeded 超出退货期限
	ErrReturnWindowExceeded = errors.New("超出退货期限")
)

const (
	// 买家责任（比如单纯不想要了）只有 10 天
	customerFaultReturnDays = 10
	// 商品问题给 30 天
	defectReturnDays = 30
)

// RefundAmount 一笔退款的现金/积分拆分
type RefundAmount struct {
	Cash  int64
	Point int64
}

func (r RefundAmount) Total() int64 {
	return r.Cash + r.Point
}

// DeductFee 从退款里扣一笔费用（配送费补收或者退货手续费）
// 先扣现金，扣不够的部分再扣积分，这个顺序是业务规则，不能换:
// 积分是比现金低一档的退款手段
func (r RefundAmount) DeductFee(fee int64) (RefundAmount, error) {
	feeFromCash := fee
	if feeFromCash > r.Cash {
		feeFromCash = r.Cash
	}
	remaining := fee - feeFromCash
	if remaining > r.Point {
		return RefundAmount{}, ErrFeeExceedsRefund
	}
	return RefundAmount{
		Cash:  r.Cash - feeFromCash,
		Point: r.Point - remaining,
	}, nil
}

// SumCancelAmount 把这一批被取消/退货的订单行汇总成毛退款
// 纯聚合，没有任何副作用，扣费在这之后做
func SumCancelAmount(books []OrderedBook) RefundAmount {
	var res RefundAmount
	for _, b := range books {
		res.Cash += b.TotalPrice
		res.Point += b.PointUsed
	}
	return res
}

type RefundReasonType uint8

func (t RefundReasonType) AsUint8() uint8 {
	return uint8(t)
}

const (
	RefundReasonUnknown RefundReasonType = iota
	// RefundReasonChangeOfMind 单纯不想要了
	RefundReasonChangeOfMind
	// RefundReasonDefect 商品本身有问题
	RefundReasonDefect
	// RefundReasonWrongDelivery 发错货
	RefundReasonWrongDelivery
)

// IsCustomerFault 买家责任决定两件事：退货期限是 10 天还是 30 天，
// 以及要不要收退货手续费
func (t RefundReasonType) IsCustomerFault() bool {
	return t == RefundReasonChangeOfMind
}

func (t RefundReasonType) String() string {
	switch t {
	case RefundReasonChangeOfMind:
		return "单纯变心"
	case RefundReasonDefect:
		return "商品破损"
	case RefundReasonWrongDelivery:
		return "发错商品"
	default:
		return "未知原因"
	}
}

// ValidateReturnWindow 校验这一批订单行是不是都在退货期限内
// 有一行不合格整个请求就失败，不做部分受理
func ValidateReturnWindow(books []OrderedBook,
	reason RefundReasonType, now time.Time) error {
	limit := defectReturnDays
	if reason.IsCustomerFault() {
		limit = customerFaultReturnDays
	}
	for _, b := range books {
		if b.DeliveredAt == nil {
			return ErrNotDelivered
		}
		// 按整天算，第 10 天（或者 30 天）还在期限内
		days := int(now.Sub(*b.DeliveredAt).Hours() / 24)
		if days > limit {
			return ErrReturnWindowExceeded
		}
	}
	return nil
}
