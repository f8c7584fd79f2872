package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
)

var (
	// ErrUnknownPaymentMethod 没有注册对应支付方式的 Provider
	ErrUnknownPaymentMethod = errors.New("未知的支付方式")
	// ErrNotPaid 第三方那边还没支付成功
	ErrNotPaid = errors.New("第三方支付未完成")
)

type ApproveRequest struct {
	OrderNo string
	Amount  int64
}

type ApproveResult struct {
	// PaymentKey 第三方的交易号
	PaymentKey string
	Amount     int64
	ApprovedAt time.Time
}

type CancelRequest struct {
	OrderNo    string
	PaymentKey string
	// TotalCash 原单的现金总额，微信退款接口要原单金额做校验
	TotalCash int64
	// CancelCash 只有现金走第三方，积分是本地账
	CancelCash  int64
	CancelPoint int64
	Reason      string
}

type CancelResult struct {
	CanceledCash  int64
	CanceledPoint int64
	CanceledAt    time.Time
}

// Provider 按支付方式分发的能力接口
// 现金渠道背后是真的第三方，积分渠道是纯本地账
type Provider interface {
	MethodType() domain.PaymentMethod
	// Prepay 唤起支付，返回给前端用的凭证（比如扫码 url）
	Prepay(ctx context.Context, pmt domain.Payment, description string) (string, error)
	Approve(ctx context.Context, req ApproveRequest) (ApproveResult, error)
	Cancel(ctx context.Context, req CancelRequest) (CancelResult, error)
}

// Registry 支付方式 -> Provider 的映射
type Registry struct {
	providers map[domain.PaymentMethod]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	m := make(map[domain.PaymentMethod]Provider, len(providers))
	for _, p := range providers {
		m[p.MethodType()] = p
	}
	return &Registry{
		providers: m,
	}
}

func (r *Registry) FindProvider(method domain.PaymentMethod) (Provider, error) {
	p, ok := r.providers[method]
	if !ok {
		return nil, ErrUnknownPaymentMethod
	}
	return p, nil
}
