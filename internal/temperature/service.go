package temperature

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Source abstracts an external origin of temperature records (e.g. a remote
// readings feed).
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]*Record, error)
}

// Store is the contract the in-memory store (and any future persistent store)
// must satisfy. Implementations must hand out copies so no caller can mutate
// stored records behind the store's back.
type Store interface {
	SaveRecord(rec *Record)
	GetRecord(date string) (*Record, error)
	ListRecords() []*Record
	ConvertRecord(date string, target Scale) (*Record, error)
}

// Service orchestrates ingestion sources and the record store.
type Service struct {
	store   Store
	sources []Source
}

// NewService creates a new Service.
func NewService(store Store, sources []Source) *Service {
	return &Service{
		store:   store,
		sources: sources,
	}
}

// Ingest pulls records from all sources concurrently and upserts them into
// the store. A failing source is logged and skipped; partial success is fine.
func (s *Service) Ingest(ctx context.Context) error {
	log.Printf("DEBUG: Ingest called with %d sources", len(s.sources))
	if len(s.sources) == 0 {
		return fmt.Errorf("no ingestion sources configured")
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		fetched []*Record
	)

	for _, src := range s.sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()

			recs, err := src.Fetch(ctx)
			if err != nil {
				// Log and continue; we want partial success when possible.
				log.Printf("source %s fetch failed: %v", src.Name(), err)
				return
			}

			mu.Lock()
			fetched = append(fetched, recs...)
			mu.Unlock()
		}()
	}

	wg.Wait()

	if len(fetched) == 0 {
		log.Printf("no successful source fetches; keeping stored records as-is")
		return nil
	}

	for _, rec := range fetched {
		s.store.SaveRecord(rec)
	}
	return nil
}

// Overview is the cross-day analytics report.
type Overview struct {
	Days        int              `json:"days"`
	Average     float64          `json:"average"`
	HottestDay  string           `json:"hottestDay"`
	Threshold   float64          `json:"threshold"`
	ExtremeDays []string         `json:"extremeDays"`
	Ranges      map[string]Range `json:"ranges"`
}

// Overview computes the cross-day report over every stored record, using
// threshold for extreme-day detection.
func (s *Service) Overview(threshold float64) (Overview, error) {
	records := s.store.ListRecords()

	hottest, err := HottestDay(records)
	if err != nil {
		return Overview{}, err
	}

	return Overview{
		Days:        len(records),
		Average:     AverageAcrossDays(records),
		HottestDay:  hottest,
		Threshold:   threshold,
		ExtremeDays: DetectExtremeDays(records, threshold),
		Ranges:      RangeForEachDay(records),
	}, nil
}

// TrendReport describes the reading-to-reading movement within one day.
type TrendReport struct {
	Date           string   `json:"date"`
	Trend          []string `json:"trend"`
	Spike          bool     `json:"spike"`
	SpikeThreshold float64  `json:"spikeThreshold"`
}

// TrendFor builds the trend report for the stored record at date.
func (s *Service) TrendFor(date string, spikeThreshold float64) (TrendReport, error) {
	rec, err := s.store.GetRecord(date)
	if err != nil {
		return TrendReport{}, err
	}

	return TrendReport{
		Date:           rec.Date,
		Trend:          Trend(rec.Readings),
		Spike:          DetectSpike(rec.Readings, spikeThreshold),
		SpikeThreshold: spikeThreshold,
	}, nil
}

// SummaryFor returns the summary of the stored record at date.
func (s *Service) SummaryFor(date string) (Summary, error) {
	rec, err := s.store.GetRecord(date)
	if err != nil {
		return Summary{}, err
	}
	return rec.Summary(), nil
}

// Summaries returns the summaries of all stored records in insertion order.
func (s *Service) Summaries() []Summary {
	records := s.store.ListRecords()
	summaries := make([]Summary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, rec.Summary())
	}
	return summaries
}

// ConvertValue delegates to Convert.
func (s *Service) ConvertValue(value float64, original, target Scale) (float64, error) {
	return Convert(value, original, target)
}

// SaveRecord delegates to the underlying store.
func (s *Service) SaveRecord(rec *Record) {
	s.store.SaveRecord(rec)
}

// ConvertRecord rescales the stored record at date in place and returns the
// converted record.
func (s *Service) ConvertRecord(date string, target Scale) (*Record, error) {
	return s.store.ConvertRecord(date, target)
}
