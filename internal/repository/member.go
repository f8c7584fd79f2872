package repository

import (
	"context"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository/dao"
)

var ErrMemberNotFound = dao.ErrMemberNotFound

type MemberRepository interface {
	Create(ctx context.Context, m domain.Member) (int64, error)
	GetById(ctx context.Context, id int64) (domain.Member, error)
	IncrPoint(ctx context.Context, id int64, point int64) error
}

type memberRepository struct {
	dao dao.MemberDAO
}

func NewMemberRepository(d dao.MemberDAO) MemberRepository {
	return &memberRepository{
		dao: d,
	}
}

func (repo *memberRepository) Create(ctx context.Context, m domain.Member) (int64, error) {
	return repo.dao.Insert(ctx, dao.Member{
		Email:    m.Email,
		Nickname: m.Nickname,
		Phone:    m.Phone,
		Point:    m.Point,
	})
}

func (repo *memberRepository) GetById(ctx context.Context, id int64) (domain.Member, error) {
	res, err := repo.dao.GetById(ctx, id)
	if err != nil {
		return domain.Member{}, err
	}
	return domain.Member{
		ID:       res.ID,
		Email:    res.Email,
		Nickname: res.Nickname,
		Phone:    res.Phone,
		Point:    res.Point,
		Ctime:    time.UnixMilli(res.Ctime),
	}, nil
}

func (repo *memberRepository) IncrPoint(ctx context.Context, id int64, point int64) error {
	return repo.dao.IncrPoint(ctx, id, point)
}
