// Package market resolves uploaded city lists into ZIP code sets.
package market

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/storescout/internal/gazetteer"
	"github.com/sells-group/storescout/internal/model"
	"github.com/sells-group/storescout/pkg/zippopotam"
)

// Importer turns "City, State" or bare-city entries into market rows. State
// resolution for bare cities tries the major-city table first, then a
// majority vote against the reference dataset; ZIP collection prefers the
// postal lookup provider and falls back to the reference dataset.
type Importer struct {
	postal zippopotam.Client
	gaz    *gazetteer.Gazetteer
	log    *zap.Logger
}

// NewImporter creates an Importer.
func NewImporter(postal zippopotam.Client, gaz *gazetteer.Gazetteer) *Importer {
	return &Importer{
		postal: postal,
		gaz:    gaz,
		log:    zap.L().With(zap.String("component", "market.importer")),
	}
}

// Import resolves the given entries into one market row per city. Duplicate
// entries are processed once; cities with no resolvable state or no ZIP
// codes are dropped silently.
func (imp *Importer) Import(ctx context.Context, entries []string) []model.MarketRow {
	seen := make(map[string]struct{})
	var rows []model.MarketRow

	for _, raw := range entries {
		entry := strings.TrimSpace(raw)
		if entry == "" {
			continue
		}
		if _, dup := seen[entry]; dup {
			continue
		}
		seen[entry] = struct{}{}

		city, state, ok := imp.resolveCityState(entry)
		if !ok {
			imp.log.Info("dropping entry with unresolvable state", zap.String("entry", entry))
			continue
		}

		zips := imp.collectZips(ctx, state, city)
		if len(zips) == 0 {
			imp.log.Info("dropping city with no ZIP codes",
				zap.String("city", city),
				zap.String("state", state),
			)
			continue
		}

		rows = append(rows, model.MarketRow{
			City:     city,
			State:    state,
			ZipCodes: strings.Join(zips, ", "),
		})
	}

	return rows
}

func (imp *Importer) resolveCityState(entry string) (city, state string, ok bool) {
	if strings.Contains(entry, ",") {
		parts := strings.Split(entry, ",")
		return strings.TrimSpace(parts[0]), strings.ToUpper(strings.TrimSpace(parts[1])), true
	}

	city = entry
	if st, found := majorCityStates[strings.ToLower(strings.TrimSpace(city))]; found {
		imp.log.Debug("state from major-city table", zap.String("city", city), zap.String("state", st))
		return city, st, true
	}
	if st, found := imp.gaz.StateFor(city); found {
		imp.log.Debug("state from reference dataset", zap.String("city", city), zap.String("state", st))
		return city, st, true
	}
	return "", "", false
}

// collectZips returns the sorted, deduplicated ZIP codes for a city. The
// postal lookup provider wins when it has any answer; errors and empty
// responses both fall back to the reference dataset.
func (imp *Importer) collectZips(ctx context.Context, state, city string) []string {
	places, err := imp.postal.Lookup(ctx, state, city)
	if err != nil {
		imp.log.Debug("postal lookup failed, using reference dataset",
			zap.String("city", city),
			zap.String("state", state),
			zap.Error(err),
		)
	}

	zipSet := make(map[string]struct{})
	for _, p := range places {
		zipSet[p.ZipCode] = struct{}{}
	}
	if len(zipSet) == 0 {
		for _, z := range imp.gaz.ZIPs(city, state) {
			zipSet[z] = struct{}{}
		}
	}

	zips := make([]string, 0, len(zipSet))
	for z := range zipSet {
		zips = append(zips, z)
	}
	sort.Strings(zips)
	return zips
}
