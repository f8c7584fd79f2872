package ioc

import (
	"github.com/nhnacademy-be11-1/chaekmate-core/internal/events"
	evtbook "github.com/nhnacademy-be11-1/chaekmate-core/internal/events/book"

	"github.com/IBM/sarama"
	"github.com/spf13/viper"
)

func InitKafka() sarama.Client {
	type Config struct {
		Addrs []string `yaml:"addrs"`
	}
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.Return.Successes = true
	var cfg Config
	err := viper.UnmarshalKey("kafka", &cfg)
	if err != nil {
		panic(err)
	}
	client, err := sarama.NewClient(cfg.Addrs, saramaCfg)
	if err != nil {
		panic(err)
	}
	return client
}

func InitSyncProducer(client sarama.Client) sarama.SyncProducer {
	res, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		panic(err)
	}
	return res
}

// NewConsumers 所有的 Consumer 都在这里注册一下
func NewConsumers(bookSync *evtbook.BookUpdatedConsumer) []events.Consumer {
	return []events.Consumer{bookSync}
}
