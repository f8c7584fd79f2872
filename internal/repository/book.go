package repository

import (
	"context"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/cache"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"

	"github.com/ecodeclub/ekit/slice"
)

var (
	ErrBookNotFound      = dao.ErrBookNotFound
	ErrInsufficientStock = dao.ErrInsufficientStock
)

type BookRepository interface {
	Create(ctx context.Context, b domain.Book) (int64, error)
	Update(ctx context.Context, b domain.Book) error
	GetById(ctx context.Context, id int64) (domain.Book, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Book, error)
	DecrStock(ctx context.Context, id int64, n int) error
	IncrStock(ctx context.Context, id int64, n int) error
}

type cachedBookRepository struct {
	dao   dao.BookDAO
	cache cache.BookCache
	l     logger.LoggerV1
}

func NewCachedBookRepository(d dao.BookDAO, c cache.BookCache,
	l logger.LoggerV1) BookRepository {
	return &cachedBookRepository{
		dao:   d,
		cache: c,
		l:     l,
	}
}

func (repo *cachedBookRepository) Create(ctx context.Context, b domain.Book) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(b))
}

func (repo *cachedBookRepository) Update(ctx context.Context, b domain.Book) error {
	err := repo.dao.UpdateById(ctx, repo.toEntity(b))
	if err != nil {
		return err
	}
	// 改完删缓存，下次读的时候回填
	err = repo.cache.Del(ctx, b.ID)
	if err != nil {
		repo.l.Error("删除图书缓存失败",
			logger.Int64("id", b.ID), logger.Error(err))
	}
	return nil
}

func (repo *cachedBookRepository) GetById(ctx context.Context, id int64) (domain.Book, error) {
	res, err := repo.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	entity, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Book{}, err
	}
	res = repo.toDomain(entity)
	err = repo.cache.Set(ctx, res)
	if err != nil {
		// 缓存挂了不影响主流程
		repo.l.Error("回填图书缓存失败",
			logger.Int64("id", id), logger.Error(err))
	}
	return res, nil
}

func (repo *cachedBookRepository) List(ctx context.Context,
	offset int, limit int) ([]domain.Book, error) {
	books, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(books, func(idx int, src dao.Book) domain.Book {
		return repo.toDomain(src)
	}), nil
}

func (repo *cachedBookRepository) DecrStock(ctx context.Context, id int64, n int) error {
	return repo.dao.DecrStock(ctx, id, n)
}

func (repo *cachedBookRepository) IncrStock(ctx context.Context, id int64, n int) error {
	return repo.dao.IncrStock(ctx, id, n)
}

func (repo *cachedBookRepository) toEntity(b domain.Book) dao.Book {
	return dao.Book{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		Price:     b.Price,
		Stock:     b.Stock,
	}
}

func (repo *cachedBookRepository) toDomain(b dao.Book) domain.Book {
	return domain.Book{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Publisher: b.Publisher,
		ISBN:      b.ISBN,
		Price:     b.Price,
		Stock:     b.Stock,
		Ctime:     time.UnixMilli(b.Ctime),
		Utime:     time.UnixMilli(b.Utime),
	}
}
