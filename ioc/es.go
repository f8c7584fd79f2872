package ioc

import (
	"fmt"
	"time"

	"github.com/nhnacademy-be11-1/chaekmate-core/internal/search"

	"github.com/olivere/elastic/v7"
	"github.com/spf13/viper"
)

func InitESClient() *elastic.Client {
	type Config struct {
		Url   string `yaml:"url"`
		Sniff bool   `yaml:"sniff"`
	}
	var cfg = Config{
		Url: "http://localhost:9200",
	}
	err := viper.UnmarshalKey("es", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 ES 配置失败: %w", err))
	}
	const timeout = time.Second * 100
	opts := []elastic.ClientOptionFunc{
		elastic.SetURL(cfg.Url),
		elastic.SetSniff(cfg.Sniff),
		elastic.SetHealthcheckTimeout(timeout),
	}
	client, err := elastic.NewClient(opts...)
	if err != nil {
		panic(err)
	}
	err = search.InitES(client)
	if err != nil {
		panic(err)
	}
	return client
}
