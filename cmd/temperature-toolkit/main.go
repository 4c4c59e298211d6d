package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/kojofoli/temperature-toolkit/internal/api/http"
	"github.com/kojofoli/temperature-toolkit/internal/config"
	"github.com/kojofoli/temperature-toolkit/internal/ingest"
	"github.com/kojofoli/temperature-toolkit/internal/scheduler"
	"github.com/kojofoli/temperature-toolkit/internal/store"
	"github.com/kojofoli/temperature-toolkit/internal/temperature"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// In-memory store with configured retention.
	memStore := store.NewMemoryStore(cfg.StoreMaxRecords)

	// Optional remote readings feed with resilience (backoff + circuit breaker).
	var sources []temperature.Source
	if cfg.FeedURL != "" {
		httpClient := &http.Client{
			Timeout: cfg.FeedTimeout,
		}
		sources = append(sources, ingest.NewFeedSource(httpClient, cfg.FeedURL))
	}

	// Core service orchestrating sources and store.
	service := temperature.NewService(memStore, sources)

	if cfg.SeedSampleData {
		seed := sampleRecords()
		for _, rec := range seed {
			service.SaveRecord(rec)
		}
		log.Printf("INFO: seeded %d sample records", len(seed))
	}

	// Scheduler that periodically pulls the feed.
	if len(sources) > 0 {
		sched := scheduler.New(cfg.IngestInterval, service)
		if err := sched.Start(); err != nil {
			log.Fatalf("failed to start scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "temperature-toolkit",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "temperature-toolkit",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}

// sampleRecords builds a week of demo data so the API is explorable without
// a configured feed.
func sampleRecords() []*temperature.Record {
	return []*temperature.Record{
		temperature.NewRecord("2025-04-27", []float64{14.2, 15.0, 13.8, 14.5, 15.1, 17.0}, temperature.Celsius),
		temperature.NewRecord("2025-04-28", []float64{17.1, 18.5, 16.4, 17.0, 18.0, 16.8}, temperature.Celsius),
		temperature.NewRecord("2025-04-29", []float64{11.0, 9.5, 12.2, 10.0, 11.3, 10.7}, temperature.Celsius),
		temperature.NewRecord("2025-04-30", []float64{20.0, 21.5, 19.8, 20.2, 21.0, 15.5}, temperature.Celsius),
		temperature.NewRecord("2025-05-01", []float64{22.0, 23.5, 21.8, 22.2, 23.0}, temperature.Celsius),
		temperature.NewRecord("2025-05-02", []float64{25.0, 26.5, 24.8, 25.2, 26.0}, temperature.Celsius),
		temperature.NewRecord("2025-05-03", []float64{20.0, 27.0, 28.5, 26.8, 27.2, 28.0}, temperature.Celsius),
		temperature.NewRecord("2025-05-05", []float64{295.52, 296.94, 298.8, 303.1, 302.27, 302.64}, temperature.Kelvin),
	}
}
