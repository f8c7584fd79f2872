package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/cache"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"
)

var ErrDeliveryPolicyNotFound = dao.ErrDeliveryPolicyNotFound

type DeliveryPolicyRepository interface {
	// Create 新版本生效，老版本被盖掉
	Create(ctx context.Context, p domain.DeliveryPolicy) error
	// FindEffectiveAt 退款算费用的时候按支付时刻取版本
	FindEffectiveAt(ctx context.Context, t time.Time) (domain.DeliveryPolicy, error)
}

type cachedDeliveryPolicyRepository struct {
	dao   dao.DeliveryPolicyDAO
	cache cache.DeliveryPolicyCache
	l     logger.LoggerV1
}

func NewCachedDeliveryPolicyRepository(d dao.DeliveryPolicyDAO,
	c cache.DeliveryPolicyCache, l logger.LoggerV1) DeliveryPolicyRepository {
	return &cachedDeliveryPolicyRepository{
		dao:   d,
		cache: c,
		l:     l,
	}
}

func (repo *cachedDeliveryPolicyRepository) Create(ctx context.Context,
	p domain.DeliveryPolicy) error {
	err := repo.dao.Insert(ctx, repo.toEntity(p))
	if err != nil {
		return err
	}
	err = repo.cache.DelCurrent(ctx)
	if err != nil {
		repo.l.Error("删除配送政策缓存失败", logger.Error(err))
	}
	return nil
}

func (repo *cachedDeliveryPolicyRepository) FindEffectiveAt(ctx context.Context,
	t time.Time) (domain.DeliveryPolicy, error) {
	// 只有"查现在生效的"才有缓存价值
	useCache := !t.Before(time.Now().Add(-time.Second))
	if useCache {
		res, err := repo.cache.GetCurrent(ctx)
		if err == nil {
			return res, nil
		}
	}
	entity, err := repo.dao.GetEffectiveAt(ctx, t)
	if err != nil {
		return domain.DeliveryPolicy{}, err
	}
	res := repo.toDomain(entity)
	if useCache {
		err = repo.cache.SetCurrent(ctx, res)
		if err != nil {
			repo.l.Error("回填配送政策缓存失败", logger.Error(err))
		}
	}
	return res, nil
}

func (repo *cachedDeliveryPolicyRepository) toEntity(p domain.DeliveryPolicy) dao.DeliveryPolicy {
	res := dao.DeliveryPolicy{
		ID:         p.ID,
		FreeAmount: p.FreeAmount,
		Fee:        p.Fee,
	}
	if !p.EffectiveFrom.IsZero() {
		res.EffectiveFrom = p.EffectiveFrom.UnixMilli()
	}
	if p.SupersededAt != nil {
		res.SupersededAt = sql.NullInt64{
			Int64: p.SupersededAt.UnixMilli(),
			Valid: true,
		}
	}
	return res
}

func (repo *cachedDeliveryPolicyRepository) toDomain(p dao.DeliveryPolicy) domain.DeliveryPolicy {
	res := domain.DeliveryPolicy{
		ID:            p.ID,
		FreeAmount:    p.FreeAmount,
		Fee:           p.Fee,
		EffectiveFrom: time.UnixMilli(p.EffectiveFrom),
	}
	if p.SupersededAt.Valid {
		t := time.UnixMilli(p.SupersededAt.Int64)
		res.SupersededAt = &t
	}
	return res
}
