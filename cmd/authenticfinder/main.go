package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/bnylez/authenticfinder/internal/config"
	"github.com/bnylez/authenticfinder/internal/geo"
	"github.com/bnylez/authenticfinder/internal/logger"
	"github.com/bnylez/authenticfinder/internal/places"
	"github.com/bnylez/authenticfinder/internal/prompt"
	"github.com/bnylez/authenticfinder/internal/route"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string `short:"c" long:"config"  env:"CONFIG_FILE" description:"Path to optional provider configuration file" default:"config.yaml"`
	APIKey     string `short:"k" long:"apikey"  env:"API_KEY"     description:"Google API key" required:"true"`
	Start      string `short:"s" long:"start"    description:"Starting location"`
	End        string `short:"e" long:"end"      description:"Ending location"`
	Keyword    string `short:"w" long:"keyword"  description:"Search keyword (e.g., 'antique stores', 'national parks')"`
	Distance   string `short:"d" long:"distance" description:"How far off the path are you willing to go, in miles"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	params, fromFlags, err := config.FromFlags(opts.Start, opts.End, opts.Keyword, opts.Distance)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid flag values")
	}
	if !fromFlags {
		params, err = prompt.Collect(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read input")
		}
	}
	params.APIKey = opts.APIKey

	if err := params.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid run parameters")
	}

	client := &http.Client{
		Transport: &http.Transport{
			TLSNextProto:        make(map[string]func(string, *tls.Conn) http.RoundTripper),
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
		Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
	}

	ctx := context.Background()

	routeClient := route.NewClient(client, cfg.DirectionsURL, params.APIKey)
	steps, err := routeClient.FetchRoute(ctx, params.Start, params.End)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to fetch route data")
	}

	waypoints, err := route.SampleWaypoints(steps, cfg.IntervalMiles)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to sample waypoints")
	}

	log.Info().
		Int("steps", len(steps)).
		Int("waypoints", len(waypoints)).
		Float64("interval_miles", cfg.IntervalMiles).
		Msg("Route sampled")

	placesClient := places.NewClient(client, cfg.PlacesURL, params.APIKey)
	pois, errs := placesClient.SearchAlong(ctx, waypoints, params.Keyword, geo.MilesToMeters(params.DistanceMiles))

	for _, poi := range pois {
		fmt.Println(poi.DisplayName())
	}

	log.Info().
		Int("pois", len(pois)).
		Int("failed_waypoints", len(errs)).
		Msg("Search finished")
}
