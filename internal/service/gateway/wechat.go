package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/services/refunddomestic"
)

// WechatProvider 现金渠道，微信扫码支付
// 审批靠查单确认，退钱走国内退款接口
type WechatProvider struct {
	nativeSvc *native.NativeApiService
	refundSvc *refunddomestic.RefundsApiService
	l         logger.LoggerV1

	appID     string
	mchID     string
	notifyURL string
}

func NewWechatProvider(nativeSvc *native.NativeApiService,
	refundSvc *refunddomestic.RefundsApiService,
	l logger.LoggerV1,
	appID, mchID, notifyURL string) *WechatProvider {
	return &WechatProvider{
		nativeSvc: nativeSvc,
		refundSvc: refundSvc,
		l:         l,
		appID:     appID,
		mchID:     mchID,
		notifyURL: notifyURL,
	}
}

func (p *WechatProvider) MethodType() domain.PaymentMethod {
	return domain.PaymentMethodWechat
}

func (p *WechatProvider) Prepay(ctx context.Context,
	pmt domain.Payment, description string) (string, error) {
	resp, result, err := p.nativeSvc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(p.appID),
		Mchid:       core.String(p.mchID),
		Description: core.String(description),
		OutTradeNo:  core.String(pmt.OrderNo),
		NotifyUrl:   core.String(p.notifyURL),
		// 30 分钟没付就过期
		TimeExpire: core.Time(time.Now().Add(time.Minute * 30)),
		Amount: &native.Amount{
			Total:    core.Int64(pmt.TotalAmount),
			Currency: core.String("CNY"),
		},
	})
	p.l.Debug("微信 prepay 响应",
		logger.Field{Key: "result", Value: result},
		logger.Field{Key: "resp", Value: resp})
	if err != nil {
		return "", err
	}
	return *resp.CodeUrl, nil
}

// Approve 微信这边没有主动"扣款"这一步，扫码付完之后查单确认
func (p *WechatProvider) Approve(ctx context.Context,
	req ApproveRequest) (ApproveResult, error) {
	txn, _, err := p.nativeSvc.QueryOrderByOutTradeNo(ctx,
		native.QueryOrderByOutTradeNoRequest{
			OutTradeNo: core.String(req.OrderNo),
			Mchid:      core.String(p.mchID),
		})
	if err != nil {
		return ApproveResult{}, err
	}
	if txn.TradeState == nil || *txn.TradeState != "SUCCESS" {
		return ApproveResult{}, fmt.Errorf("%w: %s", ErrNotPaid, p.tradeState(txn.TradeState))
	}
	res := ApproveResult{
		PaymentKey: *txn.TransactionId,
		Amount:     req.Amount,
		ApprovedAt: time.Now(),
	}
	if txn.Amount != nil && txn.Amount.Total != nil {
		res.Amount = *txn.Amount.Total
	}
	return res, nil
}

func (p *WechatProvider) Cancel(ctx context.Context,
	req CancelRequest) (CancelResult, error) {
	resp, result, err := p.refundSvc.Create(ctx, refunddomestic.CreateRequest{
		OutTradeNo: core.String(req.OrderNo),
		// 一笔支付可能部分退好几次，退款单号必须每次唯一
		OutRefundNo: core.String(uuid.New().String()),
		Reason:      core.String(req.Reason),
		Amount: &refunddomestic.AmountReq{
			Refund:   core.Int64(req.CancelCash),
			Total:    core.Int64(req.TotalCash),
			Currency: core.String("CNY"),
		},
	})
	p.l.Debug("微信退款响应",
		logger.Field{Key: "result", Value: result},
		logger.Field{Key: "resp", Value: resp})
	if err != nil {
		return CancelResult{}, err
	}
	res := CancelResult{
		CanceledCash: req.CancelCash,
		// 积分不走第三方，原样带回去
		CanceledPoint: req.CancelPoint,
		CanceledAt:    time.Now(),
	}
	if resp.SuccessTime != nil {
		res.CanceledAt = *resp.SuccessTime
	}
	return res, nil
}

func (p *WechatProvider) tradeState(state *string) string {
	if state == nil {
		return "UNKNOWN"
	}
	return *state
}
