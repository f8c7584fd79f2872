package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"

	"github.com/redis/go-redis/v9"
)

// DeliveryPolicyCache 只缓存"当前生效"的版本
// 历史版本查询频率很低，直接走库
type DeliveryPolicyCache interface {
	GetCurrent(ctx context.Context) (domain.DeliveryPolicy, error)
	SetCurrent(ctx context.Context, p domain.DeliveryPolicy) error
	DelCurrent(ctx context.Context) error
}

type RedisDeliveryPolicyCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisDeliveryPolicyCache(client redis.Cmdable) DeliveryPolicyCache {
	return &RedisDeliveryPolicyCache{
		client:     client,
		expiration: time.Minute * 30,
	}
}

func (c *RedisDeliveryPolicyCache) GetCurrent(ctx context.Context) (domain.DeliveryPolicy, error) {
	val, err := c.client.Get(ctx, c.key()).Bytes()
	if err != nil {
		return domain.DeliveryPolicy{}, err
	}
	var p domain.DeliveryPolicy
	err = json.Unmarshal(val, &p)
	return p, err
}

func (c *RedisDeliveryPolicyCache) SetCurrent(ctx context.Context, p domain.DeliveryPolicy) error {
	val, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(), val, c.expiration).Err()
}

func (c *RedisDeliveryPolicyCache) DelCurrent(ctx context.Context) error {
	return c.client.Del(ctx, c.key()).Err()
}

func (c *RedisDeliveryPolicyCache) key() string {
	return "delivery_policy:current"
}
