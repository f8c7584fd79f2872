package book

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/search"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/logger"
	"github.com/nhnacademy-be11-1/chaekmate-core/pkg/saramax"
)

// BookUpdatedConsumer 把图书变更同步进搜索索引
type BookUpdatedConsumer struct {
	client sarama.Client
	dao    search.BookIndexDAO
	l      logger.LoggerV1
}

func NewBookUpdatedConsumer(client sarama.Client,
	dao search.BookIndexDAO, l logger.LoggerV1) *BookUpdatedConsumer {
	return &BookUpdatedConsumer{
		client: client,
		dao:    dao,
		l:      l,
	}
}

func (c *BookUpdatedConsumer) Start() error {
	cg, err := sarama.NewConsumerGroupFromClient("book_search_sync", c.client)
	if err != nil {
		return err
	}
	go func() {
		err := cg.Consume(context.Background(),
			[]string{topicBookUpdated},
			saramax.NewHandler[BookEvent](c.l, c.Consume))
		if err != nil {
			c.l.Error("退出了消费循环异常", logger.Error(err))
		}
	}()
	return err
}

func (c *BookUpdatedConsumer) Consume(msg *sarama.ConsumerMessage, evt BookEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return c.dao.Input(ctx, search.BookDoc{
		ID:        evt.ID,
		Title:     evt.Title,
		Author:    evt.Author,
		Publisher: evt.Publisher,
		Price:     evt.Price,
	})
}
