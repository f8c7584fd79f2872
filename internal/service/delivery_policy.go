package service

import (
	"context"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/repository"
)

type DeliveryPolicyService interface {
	// Publish 发布新版本，旧版本从发布时刻起失效
	Publish(ctx context.Context, p domain.DeliveryPolicy) error
	Current(ctx context.Context) (domain.DeliveryPolicy, error)
}

type deliveryPolicyService struct {
	repo repository.DeliveryPolicyRepository
}

func NewDeliveryPolicyService(repo repository.DeliveryPolicyRepository) DeliveryPolicyService {
	return &deliveryPolicyService{
		repo: repo,
	}
}

func (svc *deliveryPolicyService) Publish(ctx context.Context, p domain.DeliveryPolicy) error {
	return svc.repo.Create(ctx, p)
}

func (svc *deliveryPolicyService) Current(ctx context.Context) (domain.DeliveryPolicy, error) {
	return svc.repo.FindEffectiveAt(ctx, time.Now())
}
