package planning

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sony/gobreaker"

	"github.com/councildata/council-data-explorer/internal/common"
	"github.com/councildata/council-data-explorer/internal/upstream"
)

// Client fetches raw planning entities from planning.data.gov.uk.
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
		circuit: upstream.NewBreaker("planning-data"),
	}
}

// Fetch retrieves raw planning-application entities, translating the
// optional lower date bound into the API's entry-date filter parameters.
func (c *Client) Fetch(ctx context.Context, q Query) (any, error) {
	params := url.Values{}
	params.Set("dataset", "planning-application")
	params.Set("limit", "100")

	if q.DateFrom != "" {
		if t, ok := common.ParseISODate(q.DateFrom); ok {
			params.Set("entry_date_year", strconv.Itoa(t.Year()))
			params.Set("entry_date_month", strconv.Itoa(int(t.Month())))
			params.Set("entry_date_day", strconv.Itoa(t.Day()))
			params.Set("entry_date_match", "after")
		} else {
			log.Printf("WARN: invalid date_from format: %s", q.DateFrom)
		}
	}

	u := fmt.Sprintf("%s/entity.json?%s", c.baseURL, params.Encode())
	return upstream.GetJSON(ctx, c.cfg, c.circuit, u)
}
