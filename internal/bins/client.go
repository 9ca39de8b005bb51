package bins

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/councildata/council-data-explorer/internal/upstream"
)

// Client fetches raw collection schedules from the City of York waste API.
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
		circuit: upstream.NewBreaker("york-waste"),
	}
}

// Fetch retrieves the raw schedule payload for a UPRN.
func (c *Client) Fetch(ctx context.Context, uprn string) (any, error) {
	u := fmt.Sprintf("%s/GetBinCollectionDataForUprn/%s", c.baseURL, url.PathEscape(uprn))
	return upstream.GetJSON(ctx, c.cfg, c.circuit, u)
}
