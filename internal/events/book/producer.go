package book

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

const topicBookUpdated = "book_updated"

// BookEvent 图书新增/修改之后发出来，搜索那边靠它同步索引
type BookEvent struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Price     int64  `json:"price"`
}

type Producer interface {
	ProduceBookUpdated(ctx context.Context, evt BookEvent) error
}

type SaramaProducer struct {
	producer sarama.SyncProducer
}

func NewSaramaProducer(producer sarama.SyncProducer) Producer {
	return &SaramaProducer{
		producer: producer,
	}
}

func (p *SaramaProducer) ProduceBookUpdated(ctx context.Context, evt BookEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicBookUpdated,
		Value: sarama.ByteEncoder(data),
	})
	return err
}
