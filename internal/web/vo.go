package web

import (
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"

	"github.com/ecodeclub/ekit/slice"
)

// VO 是贴着前端需求的视图对象，domain 不往外漏

type OrderVO struct {
	OrderNo  string          `json:"orderNo"`
	MemberID int64           `json:"memberId"`
	Status   uint8           `json:"status"`
	Books    []OrderedBookVO `json:"books"`
	Ctime    string          `json:"ctime"`
}

type OrderedBookVO struct {
	ID          int64  `json:"id"`
	BookID      int64  `json:"bookId"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
	TotalPrice  int64  `json:"totalPrice"`
	PointUsed   int64  `json:"pointUsed"`
	Status      uint8  `json:"status"`
	DeliveredAt string `json:"deliveredAt,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

func (OrderVO) FromDomain(o domain.Order) OrderVO {
	return OrderVO{
		OrderNo:  o.OrderNo,
		MemberID: o.MemberID,
		Status:   o.Status.AsUint8(),
		Books: slice.Map(o.Books, func(idx int, src domain.OrderedBook) OrderedBookVO {
			var deliveredAt string
			if src.DeliveredAt != nil {
				deliveredAt = src.DeliveredAt.Format(time.DateTime)
			}
			return OrderedBookVO{
				ID:          src.ID,
				BookID:      src.BookID,
				Quantity:    src.Quantity,
				UnitPrice:   src.UnitPrice,
				TotalPrice:  src.TotalPrice,
				PointUsed:   src.PointUsed,
				Status:      src.Status.AsUint8(),
				DeliveredAt: deliveredAt,
				Reason:      src.Reason,
			}
		}),
		Ctime: o.Ctime.Format(time.DateTime),
	}
}

type BookVO struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	ISBN      string `json:"isbn"`
	Price     int64  `json:"price"`
	Stock     int    `json:"stock"`
}

func (BookVO) FromDomain(b domain.Book) BookVO {
	return BookVO{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		Price:     b.Price,
		Stock:     b.Stock,
	}
}

type MemberVO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Phone    string `json:"phone"`
	Point    int64  `json:"point"`
}

type DeliveryPolicyVO struct {
	FreeAmount    int64  `json:"freeAmount"`
	Fee           int64  `json:"fee"`
	EffectiveFrom string `json:"effectiveFrom"`
}
