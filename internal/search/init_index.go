package search

import (
	"context"
	"time"

	"github.com/olivere/elastic/v7"
	"golang.org/x/sync/errgroup"
)

const bookIndex = `
{
  "settings": {
    "number_of_shards": 1,
    "number_of_replicas": 0
  },
  "mappings": {
    "properties": {
      "id": { "type": "long" },
      "title": { "type": "text" },
      "author": { "type": "text" },
      "publisher": { "type": "text" },
      "price": { "type": "long" }
    }
  }
}
`

func InitES(client *elastic.Client) error {
	const timeout = time.Second * 10
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var eg errgroup.Group
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, bookIndexName, bookIndex)
	})
	return eg.Wait()
}

// 多个节点同时启动有并发问题，索引可能已经建好了，建过就不再建
func tryCreateIndex(ctx context.Context,
	client *elastic.Client,
	idxName, idxCfg string) error {
	ok, err := client.IndexExists(idxName).Do(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = client.CreateIndex(idxName).Body(idxCfg).Do(ctx)
	return err
}
