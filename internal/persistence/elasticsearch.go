package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/org-lifecycle-api/internal/config"
)

// Elasticsearch оборачивает клиент поискового индекса.
// Как и Redis, используется только для проверки доступности.
type Elasticsearch struct {
	Client *elasticsearch.Client
}

// NewElasticsearch создаёт клиента для одного узла
func NewElasticsearch(cfg config.ElasticsearchConfig) (*Elasticsearch, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.URL()},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return &Elasticsearch{Client: client}, nil
}

// Ping проверяет доступность кластера
func (e *Elasticsearch) Ping(ctx context.Context) error {
	if e == nil || e.Client == nil {
		return errors.New("elasticsearch client not configured")
	}

	res, err := e.Client.Ping(e.Client.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.Status())
	}
	return nil
}
