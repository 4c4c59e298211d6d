package store

import (
	"errors"
	"sync"

	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

var (
	// ErrNotFound is returned when no record exists for a given date.
	ErrNotFound = errors.New("no record for date")
)

// MemoryStore is a concurrency-safe in-memory implementation of the record
// store. Insertion order is preserved so analytics over ListRecords keep
// their input-order guarantees (first-wins tie-breaks, ordered extreme-day
// lists).
type MemoryStore struct {
	mu sync.RWMutex

	// key: record date, plus the dates in insertion order
	records map[string]*temperature.Record
	order   []string

	// retention: max number of records kept; <= 0 means unlimited
	maxRecords int
}

// NewMemoryStore creates a new MemoryStore with an optional record cap.
func NewMemoryStore(maxRecords int) *MemoryStore {
	return &MemoryStore{
		records:    make(map[string]*temperature.Record),
		maxRecords: maxRecords,
	}
}

// SaveRecord inserts or replaces the record for its date and enforces
// retention. A replaced date keeps its original position in insertion order.
// The store keeps its own copy of the record.
func (s *MemoryStore) SaveRecord(rec *temperature.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[rec.Date]; !ok {
		s.order = append(s.order, rec.Date)
	}
	s.records[rec.Date] = clone(rec)

	// Enforce retention by count, dropping oldest first.
	if s.maxRecords > 0 && len(s.order) > s.maxRecords {
		over := len(s.order) - s.maxRecords
		for _, date := range s.order[:over] {
			delete(s.records, date)
		}
		s.order = s.order[over:]
	}
}

// GetRecord returns a copy of the record stored for date.
func (s *MemoryStore) GetRecord(date string) (*temperature.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[date]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(rec), nil
}

// ListRecords returns copies of all records in insertion order.
func (s *MemoryStore) ListRecords() []*temperature.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*temperature.Record, 0, len(s.order))
	for _, date := range s.order {
		out = append(out, clone(s.records[date]))
	}
	return out
}

// ConvertRecord rescales the stored record for date in place. Holding the
// write lock for the whole rescale makes it atomic to every other accessor.
func (s *MemoryStore) ConvertRecord(date string, target temperature.Scale) (*temperature.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[date]
	if !ok {
		return nil, ErrNotFound
	}
	if err := rec.ConvertTo(target); err != nil {
		return nil, err
	}
	return clone(rec), nil
}

func clone(rec *temperature.Record) *temperature.Record {
	cp := *rec
	cp.Readings = append([]float64(nil), rec.Readings...)
	return &cp
}
