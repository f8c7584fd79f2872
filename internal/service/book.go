package service

import (
	"context"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	evtbook "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/book"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/search"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
)

var ErrBookNotFound = repository.ErrBookNotFound

type BookService interface {
	Save(ctx context.Context, b domain.Book) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Book, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Book, error)
	Search(ctx context.Context, keyword string) ([]domain.Book, error)
}

type bookService struct {
	repo     repository.BookRepository
	indexDAO search.BookIndexDAO
	producer evtbook.Producer
	l        logger.LoggerV1
}

func NewBookService(repo repository.BookRepository,
	indexDAO search.BookIndexDAO,
	producer evtbook.Producer,
	l logger.LoggerV1) BookService {
	return &bookService{
		repo:     repo,
		indexDAO: indexDAO,
		producer: producer,
		l:        l,
	}
}

func (svc *bookService) Save(ctx context.Context, b domain.Book) (int64, error) {
	var err error
	if b.ID > 0 {
		err = svc.repo.Update(ctx, b)
	} else {
		b.ID, err = svc.repo.Create(ctx, b)
	}
	if err != nil {
		return 0, err
	}
	// 索引靠事件异步同步，发失败了也不影响落库
	er := svc.producer.ProduceBookUpdated(ctx, evtbook.BookEvent{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		Price:     b.Price,
	})
	if er != nil {
		svc.l.Error("发送图书变更事件失败",
			logger.Int64("id", b.ID), logger.Error(er))
	}
	return b.ID, nil
}

func (svc *bookService) GetById(ctx context.Context, id int64) (domain.Book, error) {
	return svc.repo.GetById(ctx, id)
}

func (svc *bookService) List(ctx context.Context,
	offset int, limit int) ([]domain.Book, error) {
	return svc.repo.List(ctx, offset, limit)
}

func (svc *bookService) Search(ctx context.Context,
	keyword string) ([]domain.Book, error) {
	docs, err := svc.indexDAO.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	return slice.Map(docs, func(idx int, src search.BookDoc) domain.Book {
		return domain.Book{
			ID:        src.ID,
			Title:     src.Title,
			Author:    src.Author,
			Publisher: src.Publisher,
			Price:     src.Price,
		}
	}), nil
}
