package web

import (
	"errors"
	"net/http"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	svc service.PaymentService
	l   logger.LoggerV1
}

func NewPaymentHandler(svc service.PaymentService, l logger.LoggerV1) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
		l:   l,
	}
}

func (h *PaymentHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/payments")
	g.POST("/prepay", h.Prepay)
	g.POST("/approve", h.Approve)
	g.POST("/cancel", h.Cancel)
	g.POST("/refund", h.RequestRefund)
	// 退货审批是运营后台在用，鉴权在网关那边做
	g.POST("/refund/approve", h.ApproveRefund)
}

type PrepayReq struct {
	OrderNo string `json:"orderNo"`
	// Method 1 微信扫码，2 纯积分
	Method      uint8  `json:"method"`
	Description string `json:"description"`
}

func (h *PaymentHandler) Prepay(ctx *gin.Context) {
	var req PrepayReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	codeURL, err := h.svc.Prepay(ctx, req.OrderNo,
		domain.PaymentMethod(req.Method), req.Description)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("唤起支付失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: codeURL,
	})
}

type ApproveReq struct {
	OrderNo string `json:"orderNo"`
}

func (h *PaymentHandler) Approve(ctx *gin.Context) {
	var req ApproveReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	res, err := h.svc.Approve(ctx, domain.PaymentApproveRequest{
		OrderNo: req.OrderNo,
	})
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("支付审批失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
		return
	}
	if !res.Success {
		// 中止不是系统错误，把分类后的原因原样交给前端
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  res.Code,
			Data: res,
		})
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: res,
	})
}

type CancelReq struct {
	OrderNo        string  `json:"orderNo"`
	Reason         string  `json:"reason"`
	OrderedBookIDs []int64 `json:"orderedBookIds"`
}

func (h *PaymentHandler) Cancel(ctx *gin.Context) {
	var req CancelReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	res, err := h.svc.Cancel(ctx, domain.PaymentCancelRequest{
		OrderNo:        req.OrderNo,
		Reason:         req.Reason,
		OrderedBookIDs: req.OrderedBookIDs,
	})
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg:  "OK",
			Data: res,
		})
	case errors.Is(err, service.ErrPaymentNotFound):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "支付记录不存在",
		})
	case errors.Is(err, service.ErrInvalidPaymentStatus):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "当前支付状态不能取消",
		})
	case errors.Is(err, service.ErrOrderedBookFinished):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "订单行已经取消或退货",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("取消支付失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
	}
}

type RefundReq struct {
	OrderNo string `json:"orderNo"`
	// Reason 1 单纯变心，2 商品破损，3 发错商品
	Reason         uint8   `json:"reason"`
	Detail         string  `json:"detail"`
	OrderedBookIDs []int64 `json:"orderedBookIds"`
}

func (req RefundReq) toDomain() domain.RefundRequest {
	return domain.RefundRequest{
		OrderNo:        req.OrderNo,
		Reason:         domain.RefundReasonType(req.Reason),
		Detail:         req.Detail,
		OrderedBookIDs: req.OrderedBookIDs,
	}
}

func (h *PaymentHandler) RequestRefund(ctx *gin.Context) {
	var req RefundReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	res, err := h.svc.RequestRefund(ctx, req.toDomain())
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg:  "OK",
			Data: res,
		})
	case errors.Is(err, domain.ErrReturnWindowExceeded):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "超出退货期限",
		})
	case errors.Is(err, domain.ErrNotDelivered):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "商品还没发货，请走取消流程",
		})
	case errors.Is(err, service.ErrOrderedBookFinished):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "订单行已经取消或退货",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("申请退货失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
	}
}

func (h *PaymentHandler) ApproveRefund(ctx *gin.Context) {
	var req RefundReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	res, err := h.svc.ApproveRefund(ctx, req.toDomain())
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg:  "OK",
			Data: res,
		})
	case errors.Is(err, service.ErrInvalidPaymentStatus):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "当前支付状态不能退款",
		})
	case errors.Is(err, service.ErrBookNotReturnRequested):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "订单行不在退货申请中",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("批准退货失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
	}
}
