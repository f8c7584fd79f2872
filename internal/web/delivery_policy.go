package web

import (
	"net/http"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DeliveryPolicyHandler 运营后台改配送政策用
// 发布即生效，历史版本留着给老支付算退款
type DeliveryPolicyHandler struct {
	svc service.DeliveryPolicyService
	l   logger.LoggerV1
}

func NewDeliveryPolicyHandler(svc service.DeliveryPolicyService,
	l logger.LoggerV1) *DeliveryPolicyHandler {
	return &DeliveryPolicyHandler{
		svc: svc,
		l:   l,
	}
}

func (h *DeliveryPolicyHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/delivery-policies")
	g.POST("/publish", h.Publish)
	g.GET("/current", h.Current)
}

type PublishPolicyReq struct {
	FreeAmount int64 `json:"freeAmount"`
	Fee        int64 `json:"fee"`
}

func (h *DeliveryPolicyHandler) Publish(ctx *gin.Context) {
	var req PublishPolicyReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	if req.FreeAmount <= 0 || req.Fee < 0 {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "参数错误",
		})
		return
	}
	err := h.svc.Publish(ctx, domain.DeliveryPolicy{
		FreeAmount: req.FreeAmount,
		Fee:        req.Fee,
	})
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("发布配送政策失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg: "OK",
	})
}

func (h *DeliveryPolicyHandler) Current(ctx *gin.Context) {
	p, err := h.svc.Current(ctx)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询配送政策失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg: "OK",
		Data: DeliveryPolicyVO{
			FreeAmount:    p.FreeAmount,
			Fee:           p.Fee,
			EffectiveFrom: p.EffectiveFrom.Format(time.DateTime),
		},
	})
}
