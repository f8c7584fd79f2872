package domain

import "time"

type PaymentMethod uint8

func (m PaymentMethod) AsUint8() uint8 {
	return uint8(m)
}

const (
	PaymentMethodUnknown PaymentMethod = iota
	// PaymentMethodWechat 微信扫码支付，现金走第三方
	PaymentMethodWechat
	// PaymentMethodPoint 纯积分支付，不经过第三方
	PaymentMethodPoint
)

type PaymentStatus uint8

func (s PaymentStatus) AsUint8() uint8 {
	return uint8(s)
}

const (
	PaymentStatusUnknown PaymentStatus = iota
	// PaymentStatusReady 支付记录已经落库，还没拿到第三方结果
	PaymentStatusReady
	PaymentStatusApproved
	PaymentStatusAborted
	PaymentStatusCanceled
	PaymentStatusPartiallyCanceled
)

// Payment 一个订单对应一条支付记录
// 金额全部用 int64 记分数，避免浮点数
type Payment struct {
	ID int64
	// 业务方的订单号，唯一
	OrderNo string
	// 第三方那边返回的 key，支付成功之前是没有的
	PaymentKey string
	Method     PaymentMethod
	// TotalAmount 现金部分总额
	TotalAmount int64
	// PointUsed 下单时用掉的积分总额
	PointUsed int64
	// CancelAmount/CancelPoint 是累计已退的现金/积分
	// 部分取消会多次累加
	CancelAmount int64
	CancelPoint  int64
	// DeliveryFeeAdjusted 配送费只能补收一次
	// false -> true 之后不会再变回去
	DeliveryFeeAdjusted bool
	Status              PaymentStatus
	// PaidAt 原始支付时间，配送政策按这个时间取版本
	PaidAt time.Time
}

// RemainCash 还没退掉的现金
func (p Payment) RemainCash() int64 {
	return p.TotalAmount - p.CancelAmount
}

// RemainPoint 还没退掉的积分
func (p Payment) RemainPoint() int64 {
	return p.PointUsed - p.CancelPoint
}

type PaymentHistoryType uint8

func (t PaymentHistoryType) AsUint8() uint8 {
	return uint8(t)
}

const (
	PaymentHistoryTypeUnknown PaymentHistoryType = iota
	PaymentHistoryTypeApproved
	PaymentHistoryTypeAborted
	PaymentHistoryTypeCanceled
	PaymentHistoryTypePartiallyCanceled
)

// PaymentHistory 支付流水，只追加不修改
// Payment 上的字段是可变的，要查"当时发生了什么"以这里为准
type PaymentHistory struct {
	ID        int64
	PaymentID int64
	Type      PaymentHistoryType
	// Amount 本次动账的总额（现金+积分）
	Amount int64
	Reason string
	Ctime  time.Time
}
