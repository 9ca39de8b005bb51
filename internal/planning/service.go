package planning

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

// ErrMissingLPA is returned when a lookup lacks the required local planning
// authority. It is the only caller-contract failure this service surfaces.
var ErrMissingLPA = errors.New("local planning authority (lpa) is required")

// Fetcher abstracts the upstream planning API client.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) (any, error)
}

// Service resolves planning applications through the cache, the mock
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

// Applications returns the canonical planning response for the query,
// serving from cache when a fresh entry exists.
func (s *Service) Applications(ctx context.Context, q Query) (Result, error) {
	if q.LPA == "" {
		return Result{}, ErrMissingLPA
	}

	key := cache.Key("planning", nil, map[string]string{
		"lpa":       q.LPA,
		"date_from": q.DateFrom,
		"date_to":   q.DateTo,
	})

	if cached, ok := s.cache.Get(key); ok {
		log.Printf("INFO: returning cached planning data for key: %s", key)
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
	data, err := s.client.Fetch(ctx, q)
	if err != nil {
		// Upstream status failures degrade to an empty, valid response;
		// transport failures propagate to the caller.
		if code := upstream.StatusCode(err); code != 0 {
			log.Printf("WARN: planning upstream returned status %d, serving fallback", code)
			return fallbackResult(q.LPA), nil
		}
		return Result{}, fmt.Errorf("fetch planning applications: %w", err)
	}
	return Normalize(data, q.LPA, q.DateFrom, q.DateTo), nil
}

func fallbackResult(lpa string) Result {
	return Result{
		LPA:          lpa,
		Applications: []Application{},
		TotalCount:   0,
	}
}
