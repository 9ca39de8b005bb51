package airquality

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

// DefaultArea is used when a query does not name a forecast area.
const DefaultArea = "Yorkshire & Humber"

// Fetcher abstracts the upstream UK-AIR client.
type Fetcher interface {
	FetchDaily(ctx context.Context, area string) (any, error)
	FetchForecast(ctx context.Context, area string) (any, error)
}

// Service resolves air-quality forecasts through the cache, the mock
// fixtures, or the upstream API.
type Service struct {
	cache    *cache.Cache[Result]
	client   Fetcher
	ttl      time.Duration
	mockMode bool
}

// NewService creates a Service around an injected cache instance.
func NewService(c *cache.Cache[Result], client Fetcher, ttl time.Duration, mockMode bool) *Service {
	return &Service{
		cache:    c,
		client:   client,
		ttl:      ttl,
		mockMode: mockMode,
	}
}

// AirQuality returns the canonical forecast for the queried area, serving
// from cache when a fresh entry exists.
func (s *Service) AirQuality(ctx context.Context, q Query) (Result, error) {
	area := q.Area
	if area == "" {
		area = DefaultArea
	}

	key := cache.Key("air_quality", nil, map[string]string{"area": area})

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("INFO: returning cached air quality data for key: %s", key)
		return cached, nil
	}

	var result Result
	if s.mockMode {
		result = mockResult(area)
	} else {
		var err error
		result, err = s.fetchLive(ctx, area)
		if err != nil {
			return Result{}, err
		}
	}

	s.cache.Set(key, result, s.ttl)
	return result, nil
}

func (s *Service) fetchLive(ctx context.Context, area string) (Result, error) {
	data, err := s.client.FetchDaily(ctx, area)
	if err != nil {
		// Transport failures propagate; status failures fall through to
		// the forecast endpoint, then to the conservative default.
		if upstream.StatusCode(err) == 0 {
			return Result{}, fmt.Errorf("fetch air quality: %w", err)
		}

		log.Printf("WARN: daily air quality endpoint failed (%v), trying forecast", err)
		data, err = s.client.FetchForecast(ctx, area)
		if err != nil {
			log.Printf("WARN: forecast fallback also failed: %v", err)
			return Fallback(area), nil
		}
	}

	return Normalize(data, area), nil
}
