// Package route fetches driving directions and derives waypoints from them.
package route

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnylez/authenticfinder/internal/geo"

	"github.com/rs/zerolog/log"
)

// Step is one directional sub-segment of a route leg. Only the step
// distance and its end coordinate are consumed from the provider response.
type Step struct {
	Distance struct {
		Value float64 `json:"value"` // meters
	} `json:"distance"`
	EndLocation geo.Location `json:"end_location"`
}

type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Legs []struct {
			Steps []Step `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// StatusError reports a non-2xx response from the directions provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status %d", e.Code)
}

// Client queries the directions provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a directions client sharing the given HTTP client.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// FetchRoute requests directions between two free-text locations and returns
// the steps of the first route, legs in order. Any transport or status
// failure is fatal to the caller's run.
func (c *Client) FetchRoute(ctx context.Context, start, end string) ([]Step, error) {
	params := url.Values{}
	params.Set("origin", start)
	params.Set("destination", end)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching route: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var dir directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dir); err != nil {
		return nil, fmt.Errorf("decoding directions response: %w", err)
	}

	if dir.Status != "OK" {
		log.Warn().
			Str("status", dir.Status).
			Msg("Directions provider returned non-OK body status")
	}

	if len(dir.Routes) == 0 {
		return nil, nil
	}

	var steps []Step
	for _, leg := range dir.Routes[0].Legs {
		steps = append(steps, leg.Steps...)
	}

	return steps, nil
}
