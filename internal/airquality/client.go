package airquality

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/councildata/council-data-explorer/internal/upstream"
)

// Client fetches raw DAQI forecasts from the UK-AIR API.
type Client struct {
	baseURL string
	cfg     upstream.Config
	circuit *gobreaker.CircuitBreaker
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		cfg: upstream.Config{
			Client:  httpClient,
			Backoff: upstream.DefaultBackoff(),
		},
		circuit: upstream.NewBreaker("uk-air"),
	}
}

// FetchDaily retrieves the daily monitoring index for an area group.
func (c *Client) FetchDaily(ctx context.Context, area string) (any, error) {
	return c.fetch(ctx, "Daily", area)
}

// FetchForecast retrieves the forecast monitoring index, used as a fallback
// when the daily endpoint fails.
func (c *Client) FetchForecast(ctx context.Context, area string) (any, error) {
	return c.fetch(ctx, "Forecast", area)
}

func (c *Client) fetch(ctx context.Context, index, area string) (any, error) {
	group := area
	if group == "" {
		group = "All"
	}
	u := fmt.Sprintf("%s/%s/MonitoringIndex/GroupName=%s/Json", c.baseURL, index, url.PathEscape(group))
	return upstream.GetJSON(ctx, c.cfg, c.circuit, u)
}
