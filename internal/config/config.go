// Package config handles configuration loading and the assembled run parameters.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultDirectionsURL = "https://maps.googleapis.com/maps/api/directions/json"
	defaultPlacesURL     = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	defaultTimeoutSec    = 15
	defaultIntervalMiles = 25
)

// Config represents the optional YAML configuration file. It overrides
// provider endpoints and tuning defaults, mainly for tests and proxies.
type Config struct {
	DirectionsURL  string  `yaml:"directions_url,omitempty"`
	PlacesURL      string  `yaml:"places_url,omitempty"`
	TimeoutSeconds int     `yaml:"timeout,omitempty"`
	IntervalMiles  float64 `yaml:"interval,omitempty"`
}

// Load reads and parses the YAML configuration file from the specified path.
// A missing file is not an error; defaults are returned instead.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DirectionsURL:  defaultDirectionsURL,
		PlacesURL:      defaultPlacesURL,
		TimeoutSeconds: defaultTimeoutSec,
		IntervalMiles:  defaultIntervalMiles,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.IntervalMiles <= 0 {
		return nil, fmt.Errorf("interval must be positive, got %v", cfg.IntervalMiles)
	}

	return cfg, nil
}

// Params is the assembled run configuration. It is built by exactly one
// input provider, either CLI flags or interactive prompts, never a mix.
type Params struct {
	Start         string
	End           string
	Keyword       string
	DistanceMiles float64
	APIKey        string
}

// FromFlags assembles Params from CLI flag values. The second return value
// reports whether all four inputs were supplied; when it is false the caller
// must fall back to interactive prompts for all of them, never a mix.
func FromFlags(start, end, keyword, distance string) (Params, bool, error) {
	if start == "" || end == "" || keyword == "" || distance == "" {
		return Params{}, false, nil
	}

	dist, err := strconv.ParseFloat(distance, 64)
	if err != nil {
		return Params{}, true, fmt.Errorf("invalid distance %q: %w", distance, err)
	}

	return Params{
		Start:         start,
		End:           end,
		Keyword:       keyword,
		DistanceMiles: dist,
	}, true, nil
}

// Validate checks that every field required for a run is usable.
func (p Params) Validate() error {
	if p.APIKey == "" {
		return errors.New("API key is required")
	}
	if p.Start == "" || p.End == "" {
		return errors.New("start and end locations are required")
	}
	if p.Keyword == "" {
		return errors.New("search keyword is required")
	}
	if p.DistanceMiles <= 0 {
		return fmt.Errorf("distance must be positive, got %v", p.DistanceMiles)
	}
	return nil
}
