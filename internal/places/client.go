// Package places searches a places provider for points of interest
// around route waypoints.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnylez/authenticfinder/internal/geo"

	"github.com/rs/zerolog/log"
)

// NoNamePlaceholder is printed for results the provider returned without a name.
const NoNamePlaceholder = "No name available"

// POI is a single nearby-search result. Provider fields beyond the name are
// carried through unchanged for callers that want them.
type POI struct {
	Name     string       `json:"name"`
	PlaceID  string       `json:"place_id,omitempty"`
	Vicinity string       `json:"vicinity,omitempty"`
	Types    []string     `json:"types,omitempty"`
	Rating   float64      `json:"rating,omitempty"`
	Geometry *poiGeometry `json:"geometry,omitempty"`
}

type poiGeometry struct {
	Location geo.Location `json:"location"`
}

// DisplayName returns the POI name, or a placeholder when the provider
// omitted it.
func (p POI) DisplayName() string {
	if p.Name == "" {
		return NoNamePlaceholder
	}
	return p.Name
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []POI  `json:"results"`
}

// Client queries the places provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a places client sharing the given HTTP client.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// searchNearby issues one nearby-search request around a single location.
// Only the first page of results is consumed.
func (c *Client) searchNearby(ctx context.Context, loc geo.Location, keyword string, radiusMeters float64) ([]POI, error) {
	params := url.Values{}
	params.Set("location", loc.String())
	params.Set("radius", strconv.FormatFloat(radiusMeters, 'f', -1, 64))
	params.Set("keyword", keyword)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching POIs: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var nearby nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&nearby); err != nil {
		return nil, fmt.Errorf("decoding places response: %w", err)
	}

	return nearby.Results, nil
}

// SearchAlong queries the provider once per waypoint, in order, and
// concatenates the results into one flat slice. A failed waypoint is logged
// and contributes no results; the remaining waypoints are still searched.
// Results are never deduplicated across waypoints. The collected per-waypoint
// errors are returned alongside the results.
func (c *Client) SearchAlong(ctx context.Context, waypoints []geo.Location, keyword string, radiusMeters float64) ([]POI, []error) {
	var pois []POI
	var errs []error

	for _, wp := range waypoints {
		results, err := c.searchNearby(ctx, wp, keyword, radiusMeters)
		if err != nil {
			log.Error().
				Err(err).
				Str("waypoint", wp.String()).
				Msg("Failed to search POIs near waypoint")
			errs = append(errs, err)
			continue
		}
		pois = append(pois, results...)
	}

	return pois, errs
}
