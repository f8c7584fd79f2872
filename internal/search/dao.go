package search

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/olivere/elastic/v7"
)

const bookIndexName = "book_index"

type BookDoc struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Price     int64  `json:"price"`
}

type BookIndexDAO interface {
	Input(ctx context.Context, doc BookDoc) error
	Search(ctx context.Context, keyword string) ([]BookDoc, error)
}

type ESBookIndexDAO struct {
	client *elastic.Client
}

func NewESBookIndexDAO(client *elastic.Client) BookIndexDAO {
	return &ESBookIndexDAO{
		client: client,
	}
}

func (d *ESBookIndexDAO) Input(ctx context.Context, doc BookDoc) error {
	_, err := d.client.Index().
		Index(bookIndexName).
		Id(strconv.FormatInt(doc.ID, 10)).
		BodyJson(doc).Do(ctx)
	return err
}

func (d *ESBookIndexDAO) Search(ctx context.Context, keyword string) ([]BookDoc, error) {
	query := elastic.NewMultiMatchQuery(keyword, "title", "author", "publisher")
	resp, err := d.client.Search(bookIndexName).Query(query).Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]BookDoc, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var doc BookDoc
		err = json.Unmarshal(hit.Source, &doc)
		if err != nil {
			return nil, err
		}
		res = append(res, doc)
	}
	return res, nil
}
