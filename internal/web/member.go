package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc service.MemberService
	l   logger.LoggerV1
}

func NewMemberHandler(svc service.MemberService, l logger.LoggerV1) *MemberHandler {
	return &MemberHandler{
		svc: svc,
		l:   l,
	}
}

func (h *MemberHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/members")
	g.POST("/signup", h.SignUp)
	g.GET("/profile/:id", h.Profile)
}

type SignUpReq struct {
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
}

func (h *MemberHandler) SignUp(ctx *gin.Context) {
	var req SignUpReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	id, err := h.svc.Register(ctx, domain.Member{
		Email:    req.Email,
		Nickname: req.Nickname,
		Phone:    req.Phone,
	})
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("注册会员失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: id,
	})
}

func (h *MemberHandler) Profile(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "参数错误",
		})
		return
	}
	m, err := h.svc.Profile(ctx, id)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg: "OK",
			Data: MemberVO{
				ID:       m.ID,
				Email:    m.Email,
				Nickname: m.Nickname,
				Phone:    m.Phone,
				Point:    m.Point,
			},
		})
	case errors.Is(err, service.ErrMemberNotFound):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "会员不存在",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询会员失败", logger.Int64("id", id), logger.Error(err))
	}
}
