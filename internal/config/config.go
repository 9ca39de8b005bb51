package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds all runtime configuration, read from the environment.
type AppConfig struct {
	Port string

	// MockMode serves fixture data instead of calling the live feeds.
	MockMode bool

	// HTTPTimeout bounds every outbound provider call.
	HTTPTimeout time.Duration

	BinsAPIBaseURL       string
	PlanningAPIBaseURL   string
	AirQualityAPIBaseURL string

	// Per-domain cache TTLs. Collection schedules change slowest, air
	// quality fastest.
	CacheTTLBins       time.Duration
	CacheTTLPlanning   time.Duration
	CacheTTLAirQuality time.Duration

	// SweepInterval controls how often expired cache entries are evicted.
	SweepInterval time.Duration
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}
	cfg.Port = getenvDefault("PORT", "8080")
	cfg.MockMode = getenvBool("MOCK_MODE", false)

	cfg.BinsAPIBaseURL = getenvDefault("BINS_API_BASE_URL", "https://waste-api.york.gov.uk/api/Collections")
	cfg.PlanningAPIBaseURL = getenvDefault("PLANNING_API_BASE_URL", "https://www.planning.data.gov.uk")
	cfg.AirQualityAPIBaseURL = getenvDefault("AIR_QUALITY_API_BASE_URL", "https://api.erg.ic.ac.uk/AirQuality")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.CacheTTLBins, err = getenvDuration("CACHE_TTL_BINS", "1h"); err != nil {
		return nil, err
	}
	if cfg.CacheTTLPlanning, err = getenvDuration("CACHE_TTL_PLANNING", "30m"); err != nil {
		return nil, err
	}
	if cfg.CacheTTLAirQuality, err = getenvDuration("CACHE_TTL_AIR_QUALITY", "10m"); err != nil {
		return nil, err
	}
	if cfg.SweepInterval, err = getenvDuration("SWEEP_INTERVAL", "5m"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
