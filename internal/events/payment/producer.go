package payment

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
)

const topicPaymentEvents = "payment_events"

const (
	EventTypeApproved       = "payment_approved"
	EventTypeFailed         = "payment_failed"
	EventTypeCanceled       = "payment_canceled"
	EventTypeRefundApproved = "refund_approved"
)

// PaymentEvent 动账之后对外广播的事件
// 发出去的时候本地事务已经提交了，消费方至少收到一次
type PaymentEvent struct {
	Type    string `json:"type"`
	OrderNo string `json:"orderNo"`
	Amount  int64  `json:"amount"`
	Point   int64  `json:"point"`
	Status  uint8  `json:"status"`
	Reason  string `json:"reason,omitempty"`
}

type Producer interface {
	ProducePaymentApproved(ctx context.Context, evt PaymentEvent) error
	ProducePaymentFailed(ctx context.Context, evt PaymentEvent) error
	ProducePaymentCanceled(ctx context.Context, evt PaymentEvent) error
	ProduceRefundApproved(ctx context.Context, evt PaymentEvent) error
}

type SaramaProducer struct {
	producer sarama.SyncProducer
}

func NewSaramaProducer(producer sarama.SyncProducer) Producer {
	return &SaramaProducer{
		producer: producer,
	}
}

func (p *SaramaProducer) ProducePaymentApproved(ctx context.Context, evt PaymentEvent) error {
	evt.Type = EventTypeApproved
	return p.produce(evt)
}

func (p *SaramaProducer) ProducePaymentFailed(ctx context.Context, evt PaymentEvent) error {
	evt.Type = EventTypeFailed
	return p.produce(evt)
}

func (p *SaramaProducer) ProducePaymentCanceled(ctx context.Context, evt PaymentEvent) error {
	evt.Type = EventTypeCanceled
	return p.produce(evt)
}

func (p *SaramaProducer) ProduceRefundApproved(ctx context.Context, evt PaymentEvent) error {
	evt.Type = EventTypeRefundApproved
	return p.produce(evt)
}

func (p *SaramaProducer) produce(evt PaymentEvent) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topicPaymentEvents,
		// 同一笔订单的事件要保证顺序，按订单号分区
		Key:   sarama.StringEncoder(evt.OrderNo),
		Value: sarama.ByteEncoder(data),
	})
	return err
}
