package planning

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

type fakeFetcher struct {
	payload any
	err     error
	calls   int
}

func (f *fakeFetcher) Fetch(ctx context.Context, q Query) (any, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func TestApplicationsRequiresLPA(t *testing.T) {
	svc := NewService(cache.New[Result](), nil, time.Hour, true)

	if _, err := svc.Applications(context.Background(), Query{}); !errors.Is(err, ErrMissingLPA) {
		t.Fatalf("expected ErrMissingLPA, got %v", err)
	}
}

func TestApplicationsCachesResult(t *testing.T) {
	fetcher := &fakeFetcher{payload: map[string]any{
		"entities": []any{
			map[string]any{"reference": "23/00001/FUL", "entry-date": "2025-11-10"},
		},
	}}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	q := Query{LPA: "york"}
	if _, err := svc.Applications(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Applications(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.calls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", fetcher.calls)
	}
}

// Distinct date bounds must not share a cache line.
func TestApplicationsCacheKeyedByDateRange(t *testing.T) {
	fetcher := &fakeFetcher{payload: map[string]any{"entities": []any{}}}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	if _, err := svc.Applications(context.Background(), Query{LPA: "york"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Applications(context.Background(), Query{LPA: "york", DateFrom: "2025-01-01"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.calls != 2 {
		t.Fatalf("expected two upstream fetches for two keys, got %d", fetcher.calls)
	}
}

func TestApplicationsStatusErrorFallback(t *testing.T) {
	fetcher := &fakeFetcher{err: &upstream.StatusError{Code: 500}}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	got, err := svc.Applications(context.Background(), Query{LPA: "york"})
	if err != nil {
		t.Fatalf("expected fallback instead of error, got %v", err)
	}
	if got.LPA != "york" || got.TotalCount != 0 || len(got.Applications) != 0 {
		t.Fatalf("unexpected fallback result: %+v", got)
	}
}

func TestApplicationsTransportErrorPropagates(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	if _, err := svc.Applications(context.Background(), Query{LPA: "york"}); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}

func TestApplicationsMockMode(t *testing.T) {
	svc := NewService(cache.New[Result](), nil, time.Hour, true)

	got, err := svc.Applications(context.Background(), Query{LPA: "york"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.LPA != "City of York Council" || got.TotalCount != 3 {
		t.Fatalf("unexpected mock result: %+v", got)
	}
}

func TestApplicationsMockModeDateFilter(t *testing.T) {
	svc := NewService(cache.New[Result](), nil, time.Hour, true)

	got, err := svc.Applications(context.Background(), Query{
		LPA:      "york",
		DateFrom: "2025-10-01",
		DateTo:   "2025-10-31",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TotalCount != 1 || got.Applications[0].Reference != "23/12346/HOU" {
		t.Fatalf("unexpected filtered mock result: %+v", got)
	}
}
