package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

// Scheduler periodically ingests readings from the configured sources.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *temperature.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *temperature.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic ingestion job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running readings ingestion job")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.Ingest(ctx); err != nil {
			log.Printf("scheduler: ingestion failed: %v", err)
		}

		log.Println("scheduler: completed readings ingestion job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
