// Package analyze aggregates saved retailers against uploaded market lists,
// producing a per-city coverage report.
package analyze

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sells-group/storescout/internal/address"
	"github.com/sells-group/storescout/internal/model"
)

const maxPrioritizedZips = 5

// zipStores collects stores by store name for one ZIP code.
type zipStores struct {
	byName map[string][]model.Store
	names  []string
}

// Analyze groups active stores by ZIP code, resolves each ZIP to a city, and
// aggregates store-name counts per city. The join ZIP comes from the store's
// address text; unnamed stores and stores with no extractable ZIP are
// skipped. ZIPs listed in a market row are flagged as reflex markets and
// resolved to the row's city and state; other ZIPs resolve city and state
// independently from store records, with a "ZIP <code>" placeholder when no
// record names a city. Rows aggregate by city name and are ordered by total
// stores, descending.
func Analyze(retailers []model.Retailer, markets []model.MarketRow) []model.CityReport {
	var zipOrder []string
	byZip := make(map[string]*zipStores)

	for _, r := range model.ActiveRetailers(retailers) {
		for _, st := range r.ActiveStores() {
			if st.Name == "" {
				continue
			}
			zip := storeZip(st)
			if zip == "" {
				continue
			}
			zs, ok := byZip[zip]
			if !ok {
				zs = &zipStores{byName: make(map[string][]model.Store)}
				byZip[zip] = zs
				zipOrder = append(zipOrder, zip)
			}
			if _, seen := zs.byName[st.Name]; !seen {
				zs.names = append(zs.names, st.Name)
			}
			zs.byName[st.Name] = append(zs.byName[st.Name], st)
		}
	}

	marketByZip := make(map[string]model.MarketRow)
	for _, row := range markets {
		for _, zip := range strings.Split(row.ZipCodes, ",") {
			if z := strings.TrimSpace(zip); z != "" {
				marketByZip[z] = row
			}
		}
	}

	type cityAgg struct {
		city   string
		state  string
		zips   []string
		counts map[string]int
		names  []string
		total  int
		reflex bool
	}

	var cityOrder []string
	cities := make(map[string]*cityAgg)

	for _, zip := range zipOrder {
		zs := byZip[zip]

		city, state, reflex := resolveCity(zip, marketByZip, zs)

		agg, ok := cities[city]
		if !ok {
			agg = &cityAgg{city: city, counts: make(map[string]int)}
			cities[city] = agg
			cityOrder = append(cityOrder, city)
		}
		if agg.state == "" {
			agg.state = state
		}
		agg.zips = append(agg.zips, zip)
		if reflex {
			agg.reflex = true
		}
		for _, name := range zs.names {
			if _, seen := agg.counts[name]; !seen {
				agg.names = append(agg.names, name)
			}
			n := len(zs.byName[name])
			agg.counts[name] += n
			agg.total += n
		}
	}

	reports := make([]model.CityReport, 0, len(cityOrder))
	for _, city := range cityOrder {
		agg := cities[city]
		reports = append(reports, model.CityReport{
			City:            agg.city,
			State:           agg.state,
			PrioritizedZips: prioritizeZips(agg.zips),
			Retailers:       nameSummary(agg.names, agg.counts),
			TotalStores:     agg.total,
			IsReflexMarket:  agg.reflex,
		})
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].TotalStores > reports[j].TotalStores
	})
	return reports
}

// storeZip derives the join ZIP from the store's address text.
func storeZip(st model.Store) string {
	return address.ExtractZip(st.BestAddress())
}

// resolveCity names the city and state a ZIP belongs to. A market row wins
// and flags the reflex market; otherwise city and state come independently
// from the first store record carrying each.
func resolveCity(zip string, marketByZip map[string]model.MarketRow, zs *zipStores) (city, state string, reflex bool) {
	if row, ok := marketByZip[zip]; ok {
		return row.City, row.State, true
	}
	for _, name := range zs.names {
		for _, st := range zs.byName[name] {
			if city == "" && st.City != "" {
				city = st.City
			}
			if state == "" && st.State != "" {
				state = st.State
			}
		}
	}
	if city == "" {
		city = fmt.Sprintf("ZIP %s", zip)
	}
	return city, state, false
}

// prioritizeZips returns up to five ZIPs, sorted, comma-joined.
func prioritizeZips(zips []string) string {
	sorted := append([]string(nil), zips...)
	sort.Strings(sorted)
	if len(sorted) > maxPrioritizedZips {
		sorted = sorted[:maxPrioritizedZips]
	}
	return strings.Join(sorted, ", ")
}

// nameSummary renders "Name" or "Name (n)" per store name, sorted by name,
// comma-joined.
func nameSummary(names []string, counts map[string]int) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)

	parts := make([]string, 0, len(sorted))
	for _, name := range sorted {
		if n := counts[name]; n > 1 {
			parts = append(parts, fmt.Sprintf("%s (%d)", name, n))
		} else {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, ", ")
}
