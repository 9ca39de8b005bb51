package airquality

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

type fakeFetcher struct {
	dailyPayload    any
	dailyErr        error
	forecastPayload any
	forecastErr     error
	dailyCalls      int
	forecastCalls   int
}

func (f *fakeFetcher) FetchDaily(ctx context.Context, area string) (any, error) {
	f.dailyCalls++
	if f.dailyErr != nil {
		return nil, f.dailyErr
	}
	return f.dailyPayload, nil
}

func (f *fakeFetcher) FetchForecast(ctx context.Context, area string) (any, error) {
	f.forecastCalls++
	if f.forecastErr != nil {
		return nil, f.forecastErr
	}
	return f.forecastPayload, nil
}

func dailyPayload() any {
	return map[string]any{
		"DailyAirQualityIndex": map[string]any{
			"@ForecastDate": "2025-12-03",
			"LocalAuthority": map[string]any{
				"Site": map[string]any{
					"Species": map[string]any{
						"@SpeciesCode": "NO2", "@AirQualityIndex": "4", "@Value": "42.0",
					},
				},
			},
		},
	}
}

func TestAirQualityCachesResult(t *testing.T) {
	fetcher := &fakeFetcher{dailyPayload: dailyPayload()}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	q := Query{Area: "York"}
	if _, err := svc.AirQuality(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AirQuality(context.Background(), q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.dailyCalls != 1 {
		t.Fatalf("expected a single upstream fetch, got %d", fetcher.dailyCalls)
	}
}

func TestAirQualityDefaultsArea(t *testing.T) {
	fetcher := &fakeFetcher{dailyPayload: dailyPayload()}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	got, err := svc.AirQuality(context.Background(), Query{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Area != DefaultArea {
		t.Fatalf("expected default area, got %q", got.Area)
	}
}

func TestAirQualityForecastFallback(t *testing.T) {
	fetcher := &fakeFetcher{
		dailyErr:        &upstream.StatusError{Code: 500},
		forecastPayload: dailyPayload(),
	}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	got, err := svc.AirQuality(context.Background(), Query{Area: "York"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if fetcher.forecastCalls != 1 {
		t.Fatal("expected the forecast endpoint to be tried")
	}
	if got.MaxDAQI != 4 || got.Summary != "Moderate" {
		t.Fatalf("unexpected result from forecast fallback: %+v", got)
	}
}

func TestAirQualityBothEndpointsFailing(t *testing.T) {
	fetcher := &fakeFetcher{
		dailyErr:    &upstream.StatusError{Code: 500},
		forecastErr: &upstream.StatusError{Code: 503},
	}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	got, err := svc.AirQuality(context.Background(), Query{Area: "York"})
	if err != nil {
		t.Fatalf("expected conservative fallback instead of error, got %v", err)
	}
	if got.MaxDAQI != 1 || got.Summary != "Low" || len(got.Pollutants) != 0 {
		t.Fatalf("unexpected fallback result: %+v", got)
	}
}

func TestAirQualityTransportErrorPropagates(t *testing.T) {
	fetcher := &fakeFetcher{dailyErr: errors.New("connection refused")}
	svc := NewService(cache.New[Result](), fetcher, time.Hour, false)

	if _, err := svc.AirQuality(context.Background(), Query{Area: "York"}); err == nil {
		t.Fatal("expected transport error to propagate")
	}
	if fetcher.forecastCalls != 0 {
		t.Fatal("expected no forecast attempt after a transport failure")
	}
}

func TestAirQualityMockMode(t *testing.T) {
	svc := NewService(cache.New[Result](), nil, time.Hour, true)

	got, err := svc.AirQuality(context.Background(), Query{Area: "london"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Area != "Greater London" || got.MaxDAQI != 4 {
		t.Fatalf("expected Greater London fixture, got %+v", got)
	}
	if got.ForecastDate != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's forecast date, got %q", got.ForecastDate)
	}
}
