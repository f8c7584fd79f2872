package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/domain"

	"github.com/redis/go-redis/v9"
)

var ErrKeyNotExist = redis.Nil

type BookCache interface {
	Get(ctx context.Context, id int64) (domain.Book, error)
	Set(ctx context.Context, b domain.Book) error
	Del(ctx context.Context, id int64) error
}

type RedisBookCache struct {
	client     redis.Cmdable
	expiration time.Duration
}

func NewRedisBookCache(client redis.Cmdable) BookCache {
	return &RedisBookCache{
		client:     client,
		expiration: time.Minute * 15,
	}
}

func (c *RedisBookCache) Get(ctx context.Context, id int64) (domain.Book, error) {
	val, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return domain.Book{}, err
	}
	var b domain.Book
	err = json.Unmarshal(val, &b)
	return b, err
}

func (c *RedisBookCache) Set(ctx context.Context, b domain.Book) error {
	val, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(b.ID), val, c.expiration).Err()
}

func (c *RedisBookCache) Del(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *RedisBookCache) key(id int64) string {
	return fmt.Sprintf("book:info:%d", id)
}
