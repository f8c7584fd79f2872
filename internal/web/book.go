package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/service"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/ginx"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	svc service.BookService
	l   logger.LoggerV1
}

func NewBookHandler(svc service.BookService, l logger.LoggerV1) *BookHandler {
	return &BookHandler{
		svc: svc,
		l:   l,
	}
}

func (h *BookHandler) RegisterRoutes(server *gin.Engine) {
	g := server.Group("/books")
	g.POST("/save", h.Save)
	g.GET("/detail/:id", h.Detail)
	g.GET("/list", h.List)
	g.GET("/search", h.Search)
}

type BookSaveReq struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
	Price     int64  `json:"price"`
	Stock     int    `json:"stock"`
}

func (h *BookHandler) Save(ctx *gin.Context) {
	var req BookSaveReq
	if err := ctx.Bind(&req); err != nil {
		return
	}
	id, err := h.svc.Save(ctx, domain.Book{
		ID:        req.ID,
		Title:     req.Title,
		Author:    req.Author,
		Publisher: req.Publisher,
		ISBN:      req.ISBN,
		Price:     req.Price,
		Stock:     req.Stock,
	})
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("保存图书失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg:  "OK",
		Data: id,
	})
}

func (h *BookHandler) Detail(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "参数错误",
		})
		return
	}
	b, err := h.svc.GetById(ctx, id)
	switch {
	case err == nil:
		ctx.JSON(http.StatusOK, ginx.Result{
			Msg:  "OK",
			Data: BookVO{}.FromDomain(b),
		})
	case errors.Is(err, service.ErrBookNotFound):
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "图书不存在",
		})
	default:
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("查询图书失败", logger.Int64("id", id), logger.Error(err))
	}
}

func (h *BookHandler) List(ctx *gin.Context) {
	offset, _ := strconv.Atoi(ctx.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	books, err := h.svc.List(ctx, offset, limit)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("图书列表查询失败", logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg: "OK",
		Data: slice.Map(books, func(idx int, src domain.Book) BookVO {
			return BookVO{}.FromDomain(src)
		}),
	})
}

func (h *BookHandler) Search(ctx *gin.Context) {
	keyword := ctx.Query("keyword")
	if keyword == "" {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 4,
			Msg:  "搜索词不能为空",
		})
		return
	}
	books, err := h.svc.Search(ctx, keyword)
	if err != nil {
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: 5,
			Msg:  "系统错误",
		})
		h.l.Error("图书搜索失败",
			logger.String("keyword", keyword), logger.Error(err))
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Msg: "OK",
		Data: slice.Map(books, func(idx int, src domain.Book) BookVO {
			return BookVO{}.FromDomain(src)
		}),
	})
}
