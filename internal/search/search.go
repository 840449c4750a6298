// Package search runs retailer store searches against the places provider
// and assembles the cleaned result set.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/storescout/internal/address"
	"github.com/sells-group/storescout/internal/brand"
	"github.com/sells-group/storescout/internal/model"
	"github.com/sells-group/storescout/pkg/places"
)

const (
	// DefaultMaxAPICalls bounds how many (retailer, location) searches a
	// single batch may spend.
	DefaultMaxAPICalls = 200

	// DefaultWorkers keeps batch searches sequential unless configured
	// otherwise.
	DefaultWorkers = 1
)

var detailFields = []string{"formatted_address", "formatted_phone_number", "opening_hours", "website"}

// Config tunes a search Service. Zero values fall back to defaults.
type Config struct {
	MaxAPICalls int
	Workers     int
	PlaceType   string
}

// Service searches for official retailer stores. Individual provider
// failures degrade the result rather than aborting the whole search.
type Service struct {
	places  places.Client
	matcher *brand.Matcher
	cfg     Config
	log     *zap.Logger
}

// NewService creates a search Service.
func NewService(client places.Client, matcher *brand.Matcher, cfg Config) *Service {
	if cfg.MaxAPICalls <= 0 {
		cfg.MaxAPICalls = DefaultMaxAPICalls
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.PlaceType == "" {
		cfg.PlaceType = "store"
	}
	return &Service{
		places:  client,
		matcher: matcher,
		cfg:     cfg,
		log:     zap.L().With(zap.String("component", "search.service")),
	}
}

// SearchRetailer finds official stores of one retailer around one location.
// Geocode and nearby-search failures return an empty result; a failed
// details lookup keeps the store with whatever the nearby search provided.
func (s *Service) SearchRetailer(ctx context.Context, retailer, location string, radius int) []model.Store {
	log := s.log.With(zap.String("retailer", retailer), zap.String("location", location))

	center, err := s.places.Geocode(ctx, location)
	if err != nil {
		log.Warn("geocode failed", zap.Error(err))
		return nil
	}

	candidates, err := s.places.NearbySearch(ctx, center, radius, retailer, s.cfg.PlaceType)
	if err != nil {
		log.Warn("nearby search failed", zap.Error(err))
		return nil
	}

	var stores []model.Store
	for _, cand := range candidates {
		if !s.matcher.IsOfficial(cand.Name, retailer) {
			log.Debug("filtered non-official place", zap.String("place", cand.Name))
			continue
		}
		stores = append(stores, s.buildStore(ctx, cand, retailer, log))
	}

	log.Info("location searched",
		zap.Int("candidates", len(candidates)),
		zap.Int("official", len(stores)),
	)
	return stores
}

// buildStore enriches one nearby-search candidate with place details and
// parsed address components.
func (s *Service) buildStore(ctx context.Context, cand places.Place, retailer string, log *zap.Logger) model.Store {
	store := model.Store{
		Name:             cand.Name,
		Address:          cand.Vicinity,
		FormattedAddress: cand.Vicinity,
		Rating:           cand.Rating,
		UserRatingsTotal: cand.UserRatingsTotal,
		PlaceID:          cand.PlaceID,
		Latitude:         cand.Geometry.Location.Lat,
		Longitude:        cand.Geometry.Location.Lng,
		Types:            cand.Types,
		BusinessStatus:   cand.BusinessStatus,
		PriceLevel:       cand.PriceLevel,
		RetailerName:     retailer,
	}

	details, err := s.places.PlaceDetails(ctx, cand.PlaceID, detailFields)
	if err != nil {
		log.Warn("place details failed", zap.String("place_id", cand.PlaceID), zap.Error(err))
	} else {
		if details.FormattedAddress != "" {
			store.FormattedAddress = details.FormattedAddress
		}
		store.PhoneNumber = details.FormattedPhoneNumber
		store.Website = details.Website
		store.OpeningHours = strings.Join(details.OpeningHours.WeekdayText, "; ")
	}

	comp := address.Parse(store.FormattedAddress)
	store.Address = comp.Street
	store.City = comp.City
	store.State = comp.State
	store.ZipCode = comp.Zip

	return store
}

// BatchSearch runs every retailer against every location, deduplicates by
// place ID, and groups the stores per retailer. One API call is charged per
// (retailer, location) pair; pairs beyond the budget are skipped.
func (s *Service) BatchSearch(ctx context.Context, retailers []string, locations []Location) *model.SearchResult {
	var (
		mu    sync.Mutex
		seen  = make(map[string]struct{})
		all   []model.Store
		calls atomic.Int64

		budgetOnce sync.Once
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for _, retailer := range retailers {
		for _, loc := range locations {
			g.Go(func() error {
				if n := calls.Add(1); n > int64(s.cfg.MaxAPICalls) {
					calls.Add(-1)
					budgetOnce.Do(func() {
						s.log.Warn("search budget exhausted, skipping remaining locations",
							zap.Int("max_api_calls", s.cfg.MaxAPICalls),
						)
					})
					return nil
				}

				stores := s.SearchRetailer(ctx, retailer, loc.Query, loc.Radius)

				mu.Lock()
				for _, st := range stores {
					if _, dup := seen[st.PlaceID]; dup {
						continue
					}
					seen[st.PlaceID] = struct{}{}
					all = append(all, st)
				}
				mu.Unlock()
				return nil
			})
		}
	}
	g.Wait() //nolint:errcheck // workers never return errors

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].RetailerName != all[j].RetailerName {
			return all[i].RetailerName < all[j].RetailerName
		}
		return all[i].BestAddress() < all[j].BestAddress()
	})

	byRetailer := make(map[string]model.RetailerStores, len(retailers))
	for _, retailer := range retailers {
		var stores []model.Store
		for _, st := range all {
			if st.RetailerName == retailer {
				stores = append(stores, st)
			}
		}
		byRetailer[retailer] = model.RetailerStores{Stores: stores, Count: len(stores)}
	}

	return &model.SearchResult{
		DisplayName:   displayName(retailers),
		RetailerNames: retailers,
		ByRetailer:    byRetailer,
		Stores:        all,
		TotalFound:    len(all),
		APICalls:      int(calls.Load()),
	}
}

func displayName(retailers []string) string {
	if len(retailers) == 1 {
		return retailers[0]
	}
	return fmt.Sprintf("%d Retailers", len(retailers))
}
