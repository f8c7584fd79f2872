package web

import (
	"errors"
	"net/http"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc service.OrderService
	l   logger.LoggerV1
}

func NewOrderHandler(svc service.OrderService, l logger.LoggerV1) *OrderHandler {
	return &OrderHandler{
		svc: svc,
		l:   l,
	}
}

func (h *OrderHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/orders")
	g.POST("/create", h.Create)
	g.GET("/detail/:orderNo", h.Detail)
	// 物流回调用，打上送达时间，退货窗口从这里起算
	g.POST("/delivered", h.MarkDelivered)
}

type OrderItemReq struct {
	BookID    int64 `json:"bookId"`
	Quantity  int   `json:"quantity"`
	PointUsed int64 `json:"pointUsed"`
}

type CreateOrderReq struct {
	// MemberID 0 表示非会员下单
	MemberID int64          `json:"memberId"`
	Items    []OrderItemReq `json:"items"`
}

func (h *OrderHandler) Create(ctx *gin.Context) {
	var req CreateOrderReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	items := slice.Map(req.Items, func(idx int, src OrderItemReq) service.OrderItem {
		return service.OrderItem{
			BookID:    src.BookID,
			Quantity:  src.Quantity,
			PointUsed: src.PointUsed,
		}
	})
	o, err := h.svc.CreateOrder(ctx, req.MemberID, items)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg:  "OK",
			Data: OrderVO{}.FromDomain(o),
		})
	case errors.Is(err, service.ErrOutOfStock):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "库存不足",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("创建订单失败", logger.Error(err))
	}
}

func (h *OrderHandler) Detail(ctx *gin.Context) {
	orderNo := ctx.Param("orderNo")
	o, err := h.svc.GetOrder(ctx, orderNo)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "订单不存在",
		})
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: OrderVO{}.FromDomain(o),
	})
}

type MarkDeliveredReq struct {
	OrderNo        string  `json:"orderNo"`
	OrderedBookIDs []int64 `json:"orderedBookIds"`
}

func (h *OrderHandler) MarkDelivered(ctx *gin.Context) {
	var req MarkDeliveredReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	err := h.svc.MarkDelivered(ctx, req.OrderNo, req.OrderedBookIDs)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("更新送达状态失败",
			logger.String("order_no", req.OrderNo), logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg: "OK",
	})
}
