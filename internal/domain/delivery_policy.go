package domain

import "time"

// DeliveryPolicy 配送政策是带版本的，只追加不修改
// 任意时刻恰好有一个版本是当前生效的（SupersededAt 为空）
// 一笔支付用的是"支付那一刻"生效的版本，不是今天的版本
type DeliveryPolicy struct {
	ID int64
	// FreeAmount 满多少免配送费
	FreeAmount int64
	// Fee 不满的时候收的固定配送费
	Fee           int64
	EffectiveFrom time.Time
	SupersededAt  *time.Time
}
