package fetcher

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/storescout/internal/model"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// StoresFromRows converts uploaded results rows (header row first) into
// stores. Headers are matched case-insensitively against the recognized
// names; unrecognized columns are ignored and missing values default to
// empty/zero. ZIP values stay strings so leading zeros survive.
func StoresFromRows(rows [][]string, retailerName string) []model.Store {
	if len(rows) < 2 {
		return nil
	}

	idx := headerIndex(rows[0])
	get := func(row []string, keys ...string) string {
		for _, k := range keys {
			if i, ok := idx[k]; ok && i < len(row) {
				return strings.TrimSpace(row[i])
			}
		}
		return ""
	}

	var stores []model.Store
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}

		addr := get(row, "address")
		status := get(row, "status")
		if status == "" {
			status = "OPERATIONAL"
		}

		stores = append(stores, model.Store{
			Name:             get(row, "store name", "name"),
			Address:          addr,
			FormattedAddress: addr,
			City:             get(row, "city"),
			State:            get(row, "state"),
			ZipCode:          get(row, "zip", "zip code"),
			PhoneNumber:      get(row, "phone"),
			Rating:           parseFloat(get(row, "rating")),
			Website:          get(row, "website"),
			Latitude:         parseFloat(get(row, "latitude", "lat")),
			Longitude:        parseFloat(get(row, "longitude", "long")),
			BusinessStatus:   status,
			PlaceID:          fmt.Sprintf("uploaded_%d", len(stores)),
			RetailerName:     retailerName,
		})
	}
	return stores
}

// RowMaps converts rows (header row first) into maps keyed by lowercased
// header name, for header-agnostic consumers like the cross-referencer.
func RowMaps(rows [][]string) []map[string]string {
	if len(rows) < 2 {
		return nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []map[string]string
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		m := make(map[string]string, len(header))
		for i, h := range header {
			if h == "" || i >= len(row) {
				continue
			}
			m[h] = strings.TrimSpace(row[i])
		}
		out = append(out, m)
	}
	return out
}

// RetailerNameFromFilename derives a display name from an uploaded filename:
// extension stripped, underscores to spaces, title-cased.
func RetailerNameFromFilename(filename string) string {
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	return titleCaser.String(strings.ReplaceAll(base, "_", " "))
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	return idx
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
