package gateway

import (
	"context"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
)

// PointProvider 纯积分支付，不经过任何第三方
// 账都在本地，这里只是把结果按统一的形状造出来
type PointProvider struct {
}

func NewPointProvider() *PointProvider {
	return &PointProvider{}
}

func (p *PointProvider) MethodType() domain.PaymentMethod {
	return domain.PaymentMethodPoint
}

func (p *PointProvider) Prepay(ctx context.Context,
	pmt domain.Payment, description string) (string, error) {
	// 积分支付没有扫码这一步
	return "", nil
}

func (p *PointProvider) Approve(ctx context.Context,
	req ApproveRequest) (ApproveResult, error) {
	return ApproveResult{
		PaymentKey: "POINT-" + req.OrderNo,
		Amount:     req.Amount,
		ApprovedAt: time.Now(),
	}, nil
}

func (p *PointProvider) Cancel(ctx context.Context,
	req CancelRequest) (CancelResult, error) {
	return CancelResult{
		CanceledCash:  req.CancelCash,
		CanceledPoint: req.CancelPoint,
		CanceledAt:    time.Now(),
	}, nil
}
