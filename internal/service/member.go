package service

import (
	"context"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
)

var ErrMemberNotFound = repository.ErrMemberNotFound

type MemberService interface {
	Register(ctx context.Context, m domain.Member) (int64, error)
	Profile(ctx context.Context, id int64) (domain.Member, error)
}

type memberService struct {
	repo repository.MemberRepository
}

func NewMemberService(repo repository.MemberRepository) MemberService {
	return &memberService{
		repo: repo,
	}
}

func (svc *memberService) Register(ctx context.Context, m domain.Member) (int64, error) {
	return svc.repo.Create(ctx, m)
}

func (svc *memberService) Profile(ctx context.Context, id int64) (domain.Member, error) {
	return svc.repo.GetById(ctx, id)
}
