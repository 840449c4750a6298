package main

import (
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/brand"
	"github.com/sells-group/storescout/internal/cache"
	"github.com/sells-group/storescout/internal/cost"
	"github.com/sells-group/storescout/internal/gazetteer"
	"github.com/sells-group/storescout/internal/market"
	"github.com/sells-group/storescout/internal/search"
	"github.com/sells-group/storescout/internal/store"
	"github.com/sells-group/storescout/pkg/places"
	"github.com/sells-group/storescout/pkg/zippopotam"
)

// appEnv wires the application's collaborators from config. Places and
// Search stay nil when no Maps API key is configured; the server degrades
// those endpoints and the search command refuses to run.
type appEnv struct {
	places   places.Client
	search   *search.Service
	importer *market.Importer
	store    *store.FileStore
	cache    *cache.ResultCache
	tracker  *cost.Tracker
}

func initEnv() (*appEnv, error) {
	fileStore, err := store.NewFileStore(cfg.Data.Dir)
	if err != nil {
		return nil, err
	}

	gaz := gazetteer.Empty()
	if cfg.Gazetteer.Path != "" {
		g, err := gazetteer.Load(cfg.Gazetteer.Path)
		if err != nil {
			zap.L().Warn("could not load gazetteer, postal fallback disabled",
				zap.String("path", cfg.Gazetteer.Path),
				zap.Error(err),
			)
		} else {
			gaz = g
			zap.L().Info("gazetteer loaded", zap.Int("entries", gaz.Len()))
		}
	}

	postal := zippopotam.NewClient(zippopotam.WithBaseURL(cfg.Postal.BaseURL))

	env := &appEnv{
		importer: market.NewImporter(postal, gaz),
		store:    fileStore,
		cache:    cache.New(cacheTTL()),
		tracker: cost.NewTracker(cost.NewCalculator(cost.Rates{
			PlacesSearch: cfg.Pricing.PlacesSearch,
			Geocode:      cfg.Pricing.Geocode,
			PlaceDetails: cfg.Pricing.PlaceDetails,
			FreeTier:     cfg.Pricing.FreeTier,
		})),
	}

	if cfg.Maps.Key != "" {
		env.places = places.NewClient(cfg.Maps.Key,
			places.WithBaseURL(cfg.Maps.BaseURL),
			places.WithRateLimit(cfg.Maps.QPS),
		)
		env.search = search.NewService(env.places, brand.NewMatcher(brand.DefaultRules()), search.Config{
			MaxAPICalls: cfg.Search.MaxAPICalls,
			Workers:     cfg.Search.Workers,
			PlaceType:   cfg.Search.PlaceType,
		})
	} else {
		zap.L().Warn("no Maps API key configured, search is disabled")
	}

	return env, nil
}

func cacheTTL() time.Duration {
	return time.Duration(cfg.Cache.TTLMinutes) * time.Minute
}
