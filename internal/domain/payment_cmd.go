package domain

import "time"

// 这一组是支付编排操作的入参/出参
// web 层和定时任务都用它们，跟 dao 实体没关系

type PaymentApproveRequest struct {
	OrderNo    string
	PaymentKey string
	Amount     int64
}

// PaymentApproveResult 成功和中止都走这个结构返回
// 中止不是 error，error 留给真正的系统故障
type PaymentApproveResult struct {
	Success    bool
	Code       string
	Message    string
	ApprovedAt time.Time
}

type PaymentCancelRequest struct {
	OrderNo string
	Reason  string
	// OrderedBookIDs 这一批要取消的订单行
	OrderedBookIDs []int64
}

type PaymentCancelResult struct {
	OrderNo        string
	OrderedBookIDs []int64
	RefundCash     int64
	RefundPoint    int64
	// Full 这一次是不是把整笔支付都退完了
	Full bool
}

type RefundRequest struct {
	OrderNo        string
	Reason         RefundReasonType
	Detail         string
	OrderedBookIDs []int64
}

// RefundResult 申请退货时返回的是预估值，仅供展示
// 批准的时候会用当时的政策重新算，以批准时的为准
type RefundResult struct {
	OrderNo     string
	RefundCash  int64
	RefundPoint int64
	Fee         int64
	Full        bool
}
