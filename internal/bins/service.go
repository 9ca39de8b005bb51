package bins

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

// Fetcher abstracts the upstream waste API client.
type Fetcher interface {
	Fetch(ctx context.Context, uprn string) (any, error)
}

// Service resolves collection schedules through the cache, the mock
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

// Collections returns the canonical schedule for the queried property,
// serving from cache when a fresh entry exists.
func (s *Service) Collections(ctx context.Context, q Query) (Result, error) {
	key := cache.Key("bins", nil, map[string]string{
		"uprn":     q.UPRN,
		"postcode": q.Postcode,
	})

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("INFO: returning cached bin collection data for key: %s", key)
		return cached, nil
	}

	var result Result
	if s.mockMode {
		result = mockResult(q)
	} else {
		var err error
		result, err = s.fetchLive(ctx, q)
		if err != nil {
			return Result{}, err
		}
	}

	s.cache.Set(key, result, s.ttl)
	return result, nil
}

func (s *Service) fetchLive(ctx context.Context, q Query) (Result, error) {
	if q.UPRN == "" {
		// The waste API only supports UPRN lookups; without one the best we
		// can serve is an empty schedule naming what we were given.
		log.Printf("WARN: no UPRN provided, returning fallback data")
		return fallbackResult(q), nil
	}

	data, err := s.client.Fetch(ctx, q.UPRN)
	if err != nil {
		if upstream.StatusCode(err) == http.StatusNotFound {
			return fallbackResult(q), nil
		}
		return Result{}, fmt.Errorf("fetch bin collections: %w", err)
	}

	return Normalize(data, q.UPRN), nil
}

// fallbackResult degrades gracefully when the upstream cannot serve data:
// an empty schedule with an address assembled from whatever was supplied.
func fallbackResult(q Query) Result {
	var parts []string
	if q.HouseNumber != "" {
		parts = append(parts, q.HouseNumber)
	}
	if q.Postcode != "" {
		parts = append(parts, q.Postcode)
	}
	if q.UPRN != "" {
		parts = append(parts, "(UPRN: "+q.UPRN+")")
	}

	address := "Unknown Address"
	if len(parts) > 0 {
		address = strings.Join(parts, ", ")
	}

	return Result{
		Address: address,
		Council: council,
		Bins:    []Collection{},
	}
}
