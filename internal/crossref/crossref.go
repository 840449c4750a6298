// Package crossref reconciles stores found through the places provider
// against rows from an uploaded reference spreadsheet.
package crossref

import (
	"strconv"
	"strings"

	"github.com/golang/geo/s2"

	"github.com/sells-group/storescout/internal/model"
)

const earthRadiusMiles = 3958.8

// Match pairs one found store with the reference row it reconciled to.
type Match struct {
	Store     model.Store       `json:"store"`
	Row       map[string]string `json:"row"`
	Distance  float64           `json:"distance_miles"`
	MatchType string            `json:"match_type"`
}

// Summary counts the outcome of a cross-reference run.
type Summary struct {
	TotalStores   int `json:"total_stores"`
	TotalRows     int `json:"total_rows"`
	Matched       int `json:"matched"`
	UnmatchedRows int `json:"unmatched_rows"`
}

// Result is the full outcome of a cross-reference run.
type Result struct {
	Matches         []Match             `json:"matches"`
	UnmatchedStores []model.Store       `json:"unmatched_stores"`
	UnmatchedRows   []map[string]string `json:"unmatched_rows"`
	Summary         Summary             `json:"summary"`
}

// CrossReference matches each store to at most one spreadsheet row. A row
// within thresholdMiles of the store wins, closest first; when no row is
// within range, a name containment check against the row's store name is
// tried instead. Each row is consumed by the first store it matches.
func CrossReference(stores []model.Store, rows []map[string]string, thresholdMiles float64) Result {
	remaining := make([]map[string]string, len(rows))
	copy(remaining, rows)

	result := Result{
		Summary: Summary{TotalStores: len(stores), TotalRows: len(rows)},
	}

	for _, st := range stores {
		idx, dist := closestRow(st, remaining, thresholdMiles)
		matchType := "location"
		if idx < 0 {
			idx = nameMatch(st, remaining)
			matchType = "name"
			dist = 0
		}
		if idx < 0 {
			result.UnmatchedStores = append(result.UnmatchedStores, st)
			continue
		}
		if dist == 0 {
			matchType = "name"
		}

		result.Matches = append(result.Matches, Match{
			Store:     st,
			Row:       remaining[idx],
			Distance:  dist,
			MatchType: matchType,
		})
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	result.UnmatchedRows = remaining
	result.Summary.Matched = len(result.Matches)
	result.Summary.UnmatchedRows = len(remaining)
	return result
}

// closestRow finds the nearest row with coordinates within the threshold.
// Returns -1 when no row qualifies.
func closestRow(st model.Store, rows []map[string]string, thresholdMiles float64) (int, float64) {
	if st.Latitude == 0 && st.Longitude == 0 {
		return -1, 0
	}

	best := -1
	bestDist := thresholdMiles
	for i, row := range rows {
		lat, lng, ok := rowCoords(row)
		if !ok {
			continue
		}
		d := distanceMiles(st.Latitude, st.Longitude, lat, lng)
		if d <= thresholdMiles && (best < 0 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	if best < 0 {
		return -1, 0
	}
	return best, bestDist
}

// nameMatch finds the first row whose store name contains, or is contained
// by, the store's name. Returns -1 when none does.
func nameMatch(st model.Store, rows []map[string]string) int {
	name := strings.ToLower(strings.TrimSpace(st.Name))
	if name == "" {
		return -1
	}
	for i, row := range rows {
		rowName := strings.ToLower(strings.TrimSpace(rowValue(row, "store name", "name")))
		if rowName == "" {
			continue
		}
		if strings.Contains(rowName, name) || strings.Contains(name, rowName) {
			return i
		}
	}
	return -1
}

func rowCoords(row map[string]string) (lat, lng float64, ok bool) {
	lat, okLat := parseCoord(rowValue(row, "latitude", "lat"))
	lng, okLng := parseCoord(rowValue(row, "longitude", "lng", "long"))
	if !okLat || !okLng {
		return 0, 0, false
	}
	return lat, lng, true
}

func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func rowValue(row map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// distanceMiles is the great-circle distance between two WGS84 points.
func distanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lng1)
	b := s2.LatLngFromDegrees(lat2, lng2)
	return a.Distance(b).Radians() * earthRadiusMiles
}
