package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	evtpmt "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/payment"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service/gateway"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"
)

var (
	ErrPaymentNotFound        = repository.ErrPaymentNotFound
	ErrDeliveryPolicyNotFound = repository.ErrDeliveryPolicyNotFound
	// ErrInvalidPaymentStatus 支付的当前状态不允许这个操作
	ErrInvalidPaymentStatus = errors.New("支付状态不允许这个操作")
	// ErrOrderedBookFinished 已经取消/退货过的行再提交一次就是重复退款
	ErrOrderedBookFinished = errors.New("订单行已经取消或退货")
	// ErrBookNotReturnRequested 批准退货要求订单行先走过申请
	ErrBookNotReturnRequested = errors.New("订单行不在退货申请中")
)

type PaymentService interface {
	// Prepay 创建支付记录并唤起第三方，返回扫码 url
	Prepay(ctx context.Context, orderNo string,
		method domain.PaymentMethod, description string) (string, error)
	// Approve 确认扣款。中止不算 error，走 result 返回
	Approve(ctx context.Context, req domain.PaymentApproveRequest) (domain.PaymentApproveResult, error)
	// Cancel 立即取消，马上动钱
	Cancel(ctx context.Context, req domain.PaymentCancelRequest) (domain.PaymentCancelResult, error)
	// RequestRefund 申请退货，不动钱，返回的金额是预估
	RequestRefund(ctx context.Context, req domain.RefundRequest) (domain.RefundResult, error)
	// ApproveRefund 批准退货，按当前政策重算，真正动钱
	ApproveRefund(ctx context.Context, req domain.RefundRequest) (domain.RefundResult, error)
	// SyncPaymentStatus 定时任务入口，清理卡在 READY 的支付
	SyncPaymentStatus(ctx context.Context) error
}

type paymentService struct {
	repo       repository.PaymentRepository
	policyRepo repository.DeliveryPolicyRepository
	memberRepo repository.MemberRepository
	orderSvc   OrderService
	registry   *gateway.Registry
	producer   evtpmt.Producer
	txm        dao.TxManager
	l          logger.LoggerV1
}

func NewPaymentService(repo repository.PaymentRepository,
	policyRepo repository.DeliveryPolicyRepository,
	memberRepo repository.MemberRepository,
	orderSvc OrderService,
	registry *gateway.Registry,
	producer evtpmt.Producer,
	txm dao.TxManager,
	l logger.LoggerV1) PaymentService {
	return &paymentService{
		repo:       repo,
		policyRepo: policyRepo,
		memberRepo: memberRepo,
		orderSvc:   orderSvc,
		registry:   registry,
		producer:   producer,
		txm:        txm,
		l:          l,
	}
}

func (svc *paymentService) Prepay(ctx context.Context, orderNo string,
	method domain.PaymentMethod, description string) (string, error) {
	o, err := svc.orderSvc.GetOrder(ctx, orderNo)
	if err != nil {
		return "", err
	}
	pmt := domain.Payment{
		OrderNo: orderNo,
		Method:  method,
		Status:  domain.PaymentStatusReady,
		PaidAt:  time.Now(),
	}
	for _, b := range o.Books {
		pmt.TotalAmount += b.TotalPrice
		pmt.PointUsed += b.PointUsed
	}
	// 先存支付记录再去第三方，唤起了没付的后面定时任务收尾
	err = svc.repo.Create(ctx, pmt)
	if err != nil {
		return "", err
	}
	provider, err := svc.registry.FindProvider(method)
	if err != nil {
		return "", err
	}
	return provider.Prepay(ctx, pmt, description)
}

func (svc *paymentService) Approve(ctx context.Context,
	req domain.PaymentApproveRequest) (domain.PaymentApproveResult, error) {
	pmt, err := svc.repo.GetByOrderNo(ctx, req.OrderNo)
	if err != nil {
		return domain.PaymentApproveResult{}, fmt.Errorf("找不到支付记录 %s: %w", req.OrderNo, err)
	}
	switch pmt.Status {
	case domain.PaymentStatusReady:
	case domain.PaymentStatusApproved:
		// 重复确认做成幂等：不再记流水，更不能再扣一次库存
		return domain.PaymentApproveResult{Success: true}, nil
	default:
		return domain.PaymentApproveResult{},
			fmt.Errorf("%w: %d", ErrInvalidPaymentStatus, pmt.Status)
	}
	var gwRes gateway.ApproveResult
	err = svc.orderSvc.VerifyStock(ctx, req.OrderNo)
	if err == nil {
		var provider gateway.Provider
		provider, err = svc.registry.FindProvider(pmt.Method)
		if err == nil {
			gwRes, err = provider.Approve(ctx, gateway.ApproveRequest{
				OrderNo: req.OrderNo,
				Amount:  pmt.TotalAmount,
			})
		}
	}
	if err != nil {
		// 业务上的中止，不是系统故障，error 吞掉走 result
		return svc.abort(ctx, pmt, err), nil
	}
	pmt.PaymentKey = gwRes.PaymentKey
	err = svc.txm.Transaction(ctx, func(ctx context.Context) error {
		err := svc.repo.MarkApproved(ctx, pmt, domain.PaymentHistory{
			PaymentID: pmt.ID,
			Type:      domain.PaymentHistoryTypeApproved,
			Amount:    pmt.TotalAmount + pmt.PointUsed,
			Reason:    "支付成功",
		})
		if err != nil {
			return err
		}
		return svc.orderSvc.ApplyPaymentSuccess(ctx, req.OrderNo)
	})
	if err != nil {
		return domain.PaymentApproveResult{}, err
	}
	// 本地提交之后才发事件
	er := svc.producer.ProducePaymentApproved(ctx, evtpmt.PaymentEvent{
		OrderNo: req.OrderNo,
		Amount:  pmt.TotalAmount,
		Point:   pmt.PointUsed,
		Status:  domain.PaymentStatusApproved.AsUint8(),
	})
	if er != nil {
		svc.l.Error("发送支付成功事件失败",
			logger.String("order_no", req.OrderNo), logger.Error(er))
	}
	return domain.PaymentApproveResult{
		Success:    true,
		ApprovedAt: gwRes.ApprovedAt,
	}, nil
}

// abort 中止记录是独立提交的审计流水
// 这里的任何写失败都只记日志，绝对不能盖过真正的失败原因
func (svc *paymentService) abort(ctx context.Context,
	pmt domain.Payment, cause error) domain.PaymentApproveResult {
	code, detail := classifyFailure(cause)
	err := svc.repo.CreateAborted(ctx, domain.Payment{
		OrderNo:     pmt.OrderNo,
		Method:      pmt.Method,
		TotalAmount: pmt.TotalAmount,
		PointUsed:   pmt.PointUsed,
		PaidAt:      pmt.PaidAt,
	}, domain.PaymentHistory{
		Type:   domain.PaymentHistoryTypeAborted,
		Amount: pmt.TotalAmount + pmt.PointUsed,
		Reason: code + ": " + detail,
	})
	if err != nil {
		svc.l.Error("写入支付中止审计记录失败",
			logger.String("order_no", pmt.OrderNo), logger.Error(err))
	}
	er := svc.producer.ProducePaymentFailed(ctx, evtpmt.PaymentEvent{
		OrderNo: pmt.OrderNo,
		Status:  domain.PaymentStatusAborted.AsUint8(),
		Reason:  code,
	})
	if er != nil {
		svc.l.Error("发送支付失败事件失败",
			logger.String("order_no", pmt.OrderNo), logger.Error(er))
	}
	return domain.PaymentApproveResult{
		Success: false,
		Code:    code,
		Message: detail,
	}
}

func classifyFailure(err error) (string, string) {
	switch {
	case errors.Is(err, ErrOutOfStock):
		return "STOCK_SHORTAGE", err.Error()
	case errors.Is(err, gateway.ErrNotPaid):
		return "PG_NOT_PAID", err.Error()
	default:
		return "PG_ERROR", err.Error()
	}
}

func (svc *paymentService) Cancel(ctx context.Context,
	req domain.PaymentCancelRequest) (domain.PaymentCancelResult, error) {
	var res domain.PaymentCancelResult
	err := svc.txm.Transaction(ctx, func(ctx context.Context) error {
		// 行锁。deliveryFeeAdjusted 和累计退款都是读改写，
		// 同一笔支付上的并发取消必须串行
		pmt, err := svc.repo.GetByOrderNoForUpdate(ctx, req.OrderNo)
		if err != nil {
			return fmt.Errorf("找不到支付记录 %s: %w", req.OrderNo, err)
		}
		// CANCELED 是终态，READY/ABORTED 还没有钱可退
		if pmt.Status != domain.PaymentStatusApproved &&
			pmt.Status != domain.PaymentStatusPartiallyCanceled {
			return fmt.Errorf("%w: %d", ErrInvalidPaymentStatus, pmt.Status)
		}
		o, err := svc.orderSvc.GetOrder(ctx, req.OrderNo)
		if err != nil {
			return err
		}
		books, err := resolveBooks(o, req.OrderedBookIDs)
		if err != nil {
			return err
		}
		err = rejectFinished(books)
		if err != nil {
			return err
		}
		gross := domain.SumCancelAmount(books)
		// 按支付那一刻的配送政策算，不是今天的
		policy, err := svc.policyRepo.FindEffectiveAt(ctx, pmt.PaidAt)
		if err != nil {
			return fmt.Errorf("找不到配送政策: %w", err)
		}
		decision, err := adjustDeliveryFee(pmt, policy, gross)
		if err != nil {
			return err
		}
		provider, err := svc.registry.FindProvider(pmt.Method)
		if err != nil {
			return err
		}
		gwRes, err := provider.Cancel(ctx, gateway.CancelRequest{
			OrderNo:     req.OrderNo,
			PaymentKey:  pmt.PaymentKey,
			TotalCash:   pmt.TotalAmount,
			CancelCash:  decision.refund.Cash,
			CancelPoint: decision.refund.Point,
			Reason:      req.Reason,
		})
		if err != nil {
			return err
		}
		// 累计的是取消掉的商品价值（毛额），不是实付的退款
		// 补收的运费体现在打款金额上，但商品确实是整件取消了，
		// 下一次取消算剩余额度的时候要按毛额扣
		canceled := gross
		if decision.full {
			canceled = domain.RefundAmount{
				Cash:  pmt.RemainCash(),
				Point: pmt.RemainPoint(),
			}
		}
		pmt.CancelAmount += canceled.Cash
		pmt.CancelPoint += canceled.Point
		if decision.markAdjusted {
			pmt.DeliveryFeeAdjusted = true
		}
		hisType := domain.PaymentHistoryTypePartiallyCanceled
		pmt.Status = domain.PaymentStatusPartiallyCanceled
		if decision.full {
			hisType = domain.PaymentHistoryTypeCanceled
			pmt.Status = domain.PaymentStatusCanceled
		}
		err = svc.repo.UpdateOnCancel(ctx, pmt, domain.PaymentHistory{
			PaymentID: pmt.ID,
			Type:      hisType,
			Amount:    gwRes.CanceledCash + gwRes.CanceledPoint,
			Reason:    req.Reason,
		})
		if err != nil {
			return err
		}
		res = domain.PaymentCancelResult{
			OrderNo:        req.OrderNo,
			OrderedBookIDs: req.OrderedBookIDs,
			RefundCash:     gwRes.CanceledCash,
			RefundPoint:    gwRes.CanceledPoint,
			Full:           decision.full,
		}
		return svc.orderSvc.ApplyOrderCancel(ctx, res, req.Reason)
	})
	if err != nil {
		return domain.PaymentCancelResult{}, err
	}
	evtStatus := domain.PaymentStatusPartiallyCanceled
	if res.Full {
		evtStatus = domain.PaymentStatusCanceled
	}
	er := svc.producer.ProducePaymentCanceled(ctx, evtpmt.PaymentEvent{
		OrderNo: req.OrderNo,
		Amount:  res.RefundCash,
		Point:   res.RefundPoint,
		Status:  evtStatus.AsUint8(),
		Reason:  req.Reason,
	})
	if er != nil {
		svc.l.Error("发送支付取消事件失败",
			logger.String("order_no", req.OrderNo), logger.Error(er))
	}
	return res, nil
}

func (svc *paymentService) RequestRefund(ctx context.Context,
	req domain.RefundRequest) (domain.RefundResult, error) {
	o, err := svc.orderSvc.GetOrder(ctx, req.OrderNo)
	if err != nil {
		return domain.RefundResult{}, err
	}
	books, err := resolveBooks(o, req.OrderedBookIDs)
	if err != nil {
		return domain.RefundResult{}, err
	}
	err = rejectFinished(books)
	if err != nil {
		return domain.RefundResult{}, err
	}
	err = domain.ValidateReturnWindow(books, req.Reason, time.Now())
	if err != nil {
		return domain.RefundResult{}, err
	}
	gross := domain.SumCancelAmount(books)
	fee, err := svc.returnFee(ctx, req.Reason)
	if err != nil {
		return domain.RefundResult{}, err
	}
	projected, err := gross.DeductFee(fee)
	if err != nil {
		return domain.RefundResult{}, err
	}
	err = svc.txm.Transaction(ctx, func(ctx context.Context) error {
		return svc.orderSvc.ApplyOrderReturnRequest(ctx, req.OrderNo,
			req.OrderedBookIDs, refundReason(req))
	})
	if err != nil {
		return domain.RefundResult{}, err
	}
	// 这里返回的只是给用户看的预估
	// 手续费和政策到批准那天可能已经变了，批准时重算
	return domain.RefundResult{
		OrderNo:     req.OrderNo,
		RefundCash:  projected.Cash,
		RefundPoint: projected.Point,
		Fee:         fee,
		Full:        exhaustsOrder(o, req.OrderedBookIDs),
	}, nil
}

func (svc *paymentService) ApproveRefund(ctx context.Context,
	req domain.RefundRequest) (domain.RefundResult, error) {
	var res domain.RefundResult
	err := svc.txm.Transaction(ctx, func(ctx context.Context) error {
		pmt, err := svc.repo.GetByOrderNoForUpdate(ctx, req.OrderNo)
		if err != nil {
			return fmt.Errorf("找不到支付记录 %s: %w", req.OrderNo, err)
		}
		if pmt.Status != domain.PaymentStatusApproved &&
			pmt.Status != domain.PaymentStatusPartiallyCanceled {
			return fmt.Errorf("%w: %d", ErrInvalidPaymentStatus, pmt.Status)
		}
		o, err := svc.orderSvc.GetOrder(ctx, req.OrderNo)
		if err != nil {
			return err
		}
		// 不信申请时算的那份，一切以现在为准
		books, err := resolveBooks(o, req.OrderedBookIDs)
		if err != nil {
			return err
		}
		for _, b := range books {
			if b.Status != domain.OrderedBookStatusReturnRequested {
				return fmt.Errorf("%w: %d", ErrBookNotReturnRequested, b.ID)
			}
		}
		gross := domain.SumCancelAmount(books)
		fee, err := svc.returnFee(ctx, req.Reason)
		if err != nil {
			return err
		}
		net, err := gross.DeductFee(fee)
		if err != nil {
			return err
		}
		full := exhaustsOrder(o, req.OrderedBookIDs)
		// 累计口径和取消保持一致：记的是毛额，
		// 手续费只体现在打款金额上。两条入口算出来的
		// 剩余额度必须一样，不然后面的取消会多退手续费
		pmt.CancelAmount += gross.Cash
		pmt.CancelPoint += gross.Point
		if o.IsMemberOrder() {
			// 会员：现金折成积分，整笔退成积分，不去找第三方
			pointRefund := net.Total()
			err = svc.memberRepo.IncrPoint(ctx, o.MemberID, pointRefund)
			if err != nil {
				return err
			}
			res = domain.RefundResult{
				OrderNo:     req.OrderNo,
				RefundPoint: pointRefund,
				Fee:         fee,
				Full:        full,
			}
		} else {
			// 非会员只有现金，积分的账跟他没关系
			provider, err := svc.registry.FindProvider(pmt.Method)
			if err != nil {
				return err
			}
			gwRes, err := provider.Cancel(ctx, gateway.CancelRequest{
				OrderNo:    req.OrderNo,
				PaymentKey: pmt.PaymentKey,
				TotalCash:  pmt.TotalAmount,
				CancelCash: net.Cash,
				Reason:     refundReason(req),
			})
			if err != nil {
				return err
			}
			res = domain.RefundResult{
				OrderNo:    req.OrderNo,
				RefundCash: gwRes.CanceledCash,
				Fee:        fee,
				Full:       full,
			}
		}
		hisType := domain.PaymentHistoryTypePartiallyCanceled
		pmt.Status = domain.PaymentStatusPartiallyCanceled
		if full {
			hisType = domain.PaymentHistoryTypeCanceled
			pmt.Status = domain.PaymentStatusCanceled
		}
		err = svc.repo.UpdateOnCancel(ctx, pmt, domain.PaymentHistory{
			PaymentID: pmt.ID,
			Type:      hisType,
			Amount:    net.Total(),
			Reason:    refundReason(req),
		})
		if err != nil {
			return err
		}
		return svc.orderSvc.ApplyOrderReturn(ctx, req.OrderNo, req.OrderedBookIDs)
	})
	if err != nil {
		return domain.RefundResult{}, err
	}
	er := svc.producer.ProduceRefundApproved(ctx, evtpmt.PaymentEvent{
		OrderNo: req.OrderNo,
		Amount:  res.RefundCash,
		Point:   res.RefundPoint,
		Reason:  req.Reason.String(),
	})
	if er != nil {
		svc.l.Error("发送退货批准事件失败",
			logger.String("order_no", req.OrderNo), logger.Error(er))
	}
	return res, nil
}

// SyncPaymentStatus 扫一遍超时还卡在 READY 的支付，逐笔走一遍审批
// 付了的转成功，没付的留下中止审计
func (svc *paymentService) SyncPaymentStatus(ctx context.Context) error {
	expired := time.Now().Add(-time.Minute * 30)
	offset := 0
	for {
		pmts, err := svc.repo.FindReadyBefore(ctx, offset, 100, expired)
		if err != nil {
			return err
		}
		for _, pmt := range pmts {
			res, err := svc.Approve(ctx, domain.PaymentApproveRequest{
				OrderNo: pmt.OrderNo,
			})
			if err != nil {
				svc.l.Error("同步支付状态失败",
					logger.String("order_no", pmt.OrderNo), logger.Error(err))
				continue
			}
			if !res.Success {
				// 过期没付的，原始记录也要转到终态，
				// 不然下一轮还会扫到同一批
				er := svc.repo.MarkAborted(ctx, pmt.OrderNo)
				if er != nil {
					svc.l.Error("标记支付中止失败",
						logger.String("order_no", pmt.OrderNo), logger.Error(er))
				}
			}
		}
		if len(pmts) < 100 {
			return nil
		}
		// 处理失败还留在 READY 的这一轮跳过，下一次 cron 再来
		offset += len(pmts)
	}
}

func (svc *paymentService) returnFee(ctx context.Context,
	reason domain.RefundReasonType) (int64, error) {
	if !reason.IsCustomerFault() {
		// 卖家责任不收退货费
		return 0, nil
	}
	// 注意是"处理退货这一刻"的政策，不是下单时候的
	policy, err := svc.policyRepo.FindEffectiveAt(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("找不到配送政策: %w", err)
	}
	return policy.Fee, nil
}

type feeDecision struct {
	refund domain.RefundAmount
	// full 这一单是不是整笔都退完了
	full bool
	// markAdjusted 这一次要不要把"配送费已补收"打上
	markAdjusted bool
}

// adjustDeliveryFee 配送费补收的决策，纯函数
// 补收是一次性的：打过标之后，后面再怎么部分取消都不会再扣
func adjustDeliveryFee(pmt domain.Payment, policy domain.DeliveryPolicy,
	gross domain.RefundAmount) (feeDecision, error) {
	remain := (pmt.RemainCash() - gross.Cash) + (pmt.RemainPoint() - gross.Point)
	everything := domain.RefundAmount{
		Cash:  pmt.RemainCash(),
		Point: pmt.RemainPoint(),
	}
	switch {
	case remain == 0:
		return feeDecision{refund: everything, full: true}, nil
	case remain == policy.Fee:
		// 剩下的刚好是运费，"只剩运费"当"什么都不剩"处理，整笔退掉
		return feeDecision{refund: everything, full: true}, nil
	case pmt.DeliveryFeeAdjusted && remain <= policy.Fee:
		// 运费已经补收过一次了，不会收第二次，剩的零头跟着一起退
		return feeDecision{refund: everything, full: true}, nil
	case !pmt.DeliveryFeeAdjusted && remain < policy.FreeAmount:
		// 这次取消导致整单掉出包邮线，把当初免掉的运费收回来
		refund, err := gross.DeductFee(policy.Fee)
		if err != nil {
			return feeDecision{}, err
		}
		return feeDecision{refund: refund, markAdjusted: true}, nil
	default:
		return feeDecision{refund: gross}, nil
	}
}

// resolveBooks 按 id 找出这一批订单行，找不到的按数据问题处理
func resolveBooks(o domain.Order, ids []int64) ([]domain.OrderedBook, error) {
	byID := make(map[int64]domain.OrderedBook, len(o.Books))
	for _, b := range o.Books {
		byID[b.ID] = b
	}
	res := make([]domain.OrderedBook, 0, len(ids))
	for _, id := range ids {
		b, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownOrderedBook, id)
		}
		res = append(res, b)
	}
	return res, nil
}

// rejectFinished 同一行退两次就是凭空造钱，挡在动钱之前
func rejectFinished(books []domain.OrderedBook) error {
	for _, b := range books {
		if b.Finished() {
			return fmt.Errorf("%w: %d", ErrOrderedBookFinished, b.ID)
		}
	}
	return nil
}

// exhaustsOrder 这一批退完之后，整张订单是不是一行不剩了
func exhaustsOrder(o domain.Order, ids []int64) bool {
	for _, b := range o.Books {
		if b.Finished() {
			continue
		}
		if !contains(ids, b.ID) {
			return false
		}
	}
	return true
}

func refundReason(req domain.RefundRequest) string {
	if req.Detail == "" {
		return req.Reason.String()
	}
	return req.Reason.String() + ": " + req.Detail
}
