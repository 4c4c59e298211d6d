package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

// feedDocument is the wire shape of one per-day entry in the feed payload.
type feedDocument struct {
	Date     string    `json:"date"`
	Readings []float64 `json:"readings"`
	Scale    string    `json:"scale"`
}

// FeedSource pulls temperature records from a remote JSON feed. The feed is
// expected to return an array of {date, readings, scale} documents.
type FeedSource struct {
	url     string
	client  *http.Client
	backoff BackoffConfig
	breaker *gobreaker.CircuitBreaker
}

// NewFeedSource creates a FeedSource with default resilience settings.
func NewFeedSource(client *http.Client, url string) *FeedSource {
	return &FeedSource{
		url:    url,
		client: client,
		backoff: BackoffConfig{
			MaxRetries:      2,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "readings-feed",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Name implements temperature.Source.
func (f *FeedSource) Name() string { return "readings-feed" }

// Fetch downloads the feed and turns each document into a Record. A document
// carrying an unknown scale is logged and skipped; it does not fail the
// batch.
func (f *FeedSource) Fetch(ctx context.Context) ([]*temperature.Record, error) {
	batchID := uuid.NewString()

	resp, err := f.get(ctx)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed response: %w", err)
	}

	var docs []feedDocument
	if err := json.Unmarshal(body, &docs); err != nil {
		return nil, fmt.Errorf("decode feed response: %w", err)
	}

	records := make([]*temperature.Record, 0, len(docs))
	for _, doc := range docs {
		scale, err := temperature.ParseScale("scale", doc.Scale)
		if err != nil {
			log.Printf("feed batch %s: skipping record %q: %v", batchID, doc.Date, err)
			continue
		}
		records = append(records, temperature.NewRecord(doc.Date, doc.Readings, scale))
	}

	log.Printf("feed batch %s: fetched %d of %d records from %s", batchID, len(records), len(docs), f.url)
	return records, nil
}
