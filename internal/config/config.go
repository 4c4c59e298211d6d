package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// FeedURL points at the remote readings feed; empty disables ingestion.
	FeedURL     string
	FeedTimeout time.Duration

	// IngestInterval controls how often the feed is pulled.
	IngestInterval time.Duration

	// StoreMaxRecords caps how many days the store retains (0 = unlimited).
	StoreMaxRecords int

	// SeedSampleData loads the built-in demo records at startup.
	SeedSampleData bool

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	cfg.FeedURL = os.Getenv("FEED_URL")

	timeoutStr := getenvDefault("FEED_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FEED_TIMEOUT: %w", err)
	}
	cfg.FeedTimeout = timeout

	// Ingestion interval: default 15 minutes.
	intervalStr := getenvDefault("INGEST_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid INGEST_INTERVAL: %w", err)
	}
	cfg.IngestInterval = interval

	cfg.StoreMaxRecords = getenvInt("STORE_MAX_RECORDS", 0)
	cfg.SeedSampleData = getenvBool("SEED_SAMPLE_DATA", false)
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}
