package domain

import "time"

type OrderStatus uint8

func (s OrderStatus) AsUint8() uint8 {
	return uint8(s)
}

const (
	OrderStatusUnknown OrderStatus = iota
	// OrderStatusPending 下单了，钱还没付
	OrderStatusPending
	OrderStatusPaymentComplete
	OrderStatusPartiallyCanceled
	OrderStatusCanceled
	OrderStatusReturnRequested
	OrderStatusReturned
)

// Order 订单聚合根
// MemberID 为 0 表示非会员下单，非会员只能现金结算
type Order struct {
	ID       int64
	OrderNo  string
	MemberID int64
	Books    []OrderedBook
	Status   OrderStatus
	Ctime    time.Time
}

// IsMemberOrder 退款审批的时候会员和非会员走完全不同的分支
func (o Order) IsMemberOrder() bool {
	return o.MemberID != 0
}

type OrderedBookStatus uint8

func (s OrderedBookStatus) AsUint8() uint8 {
	return uint8(s)
}

const (
	OrderedBookStatusUnknown OrderedBookStatus = iota
	OrderedBookStatusPaymentComplete
	OrderedBookStatusDelivered
	OrderedBookStatusCanceled
	OrderedBookStatusReturnRequested
	OrderedBookStatusReturned
)

// OrderedBook 订单行，一本书一行
// TotalPrice 和 PointUsed 在下单的时候就定死了，退款按这两个字段汇总
// 后面只会补一个取消/退货原因，不会改金额
type OrderedBook struct {
	ID       int64
	OrderID  int64
	BookID   int64
	Quantity int
	// UnitPrice 现金单价
	UnitPrice int64
	// TotalPrice 这一行的现金部分
	TotalPrice int64
	// PointUsed 这一行用掉的积分
	PointUsed int64
	Status    OrderedBookStatus
	// DeliveredAt 没发货就是 nil，退货窗口从这里开始算
	DeliveredAt *time.Time
	Reason      string
}

// Finished 取消或者退货都算这一行结束了
func (b OrderedBook) Finished() bool {
	return b.Status == OrderedBookStatusCanceled ||
		b.Status == OrderedBookStatusReturned
}
