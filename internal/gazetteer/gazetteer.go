// Package gazetteer is an in-memory US postal reference dataset: rows of
// (place name, state code, ZIP) loaded once from a local CSV/TSV dump. It
// backs the offline fallbacks of the market importer when the postal lookup
// provider has no answer.
package gazetteer

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// Entry is one (place, state, ZIP) row of the reference dataset.
type Entry struct {
	PlaceName  string
	StateCode  string
	PostalCode string
}

// Gazetteer indexes reference entries by lowercased place name.
type Gazetteer struct {
	byCity map[string][]Entry
}

// New builds a Gazetteer from in-memory entries.
func New(entries []Entry) *Gazetteer {
	g := &Gazetteer{byCity: make(map[string][]Entry)}
	for _, e := range entries {
		if e.PlaceName == "" || e.StateCode == "" {
			continue
		}
		key := strings.ToLower(e.PlaceName)
		g.byCity[key] = append(g.byCity[key], Entry{
			PlaceName:  e.PlaceName,
			StateCode:  strings.ToUpper(e.StateCode),
			PostalCode: e.PostalCode,
		})
	}
	return g
}

// Empty returns a gazetteer with no entries; every lookup misses.
func Empty() *Gazetteer {
	return New(nil)
}

// Load reads a reference dataset file. The file is CSV (or TSV for a .tsv
// extension) with a header row; columns are located by the header names
// place_name, state_code and postal_code, falling back to positions 0, 1, 2.
func Load(path string) (*Gazetteer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "gazetteer: open dataset")
	}
	defer f.Close() //nolint:errcheck

	r := csv.NewReader(f)
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		r.Comma = '\t'
	}
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, eris.Wrap(err, "gazetteer: read dataset")
	}
	if len(rows) == 0 {
		return Empty(), nil
	}

	placeIdx, stateIdx, zipIdx := columnIndexes(rows[0])

	var entries []Entry
	for _, row := range rows[1:] {
		max := placeIdx
		if stateIdx > max {
			max = stateIdx
		}
		if zipIdx > max {
			max = zipIdx
		}
		if len(row) <= max {
			continue
		}
		entries = append(entries, Entry{
			PlaceName:  strings.TrimSpace(row[placeIdx]),
			StateCode:  strings.TrimSpace(row[stateIdx]),
			PostalCode: strings.TrimSpace(row[zipIdx]),
		})
	}
	return New(entries), nil
}

func columnIndexes(header []string) (place, state, zip int) {
	place, state, zip = 0, 1, 2
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "place_name", "place name", "city":
			place = i
		case "state_code", "state code", "state":
			state = i
		case "postal_code", "postal code", "zip", "zip_code":
			zip = i
		}
	}
	return place, state, zip
}

// StateFor resolves a bare city name to a state code by majority vote: the
// state with the most ZIP rows for that place name wins. The second return
// is false when the city is absent from the dataset.
func (g *Gazetteer) StateFor(city string) (string, bool) {
	entries := g.byCity[strings.ToLower(strings.TrimSpace(city))]
	if len(entries) == 0 {
		return "", false
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.StateCode]++
	}

	best := ""
	for state, n := range counts {
		if best == "" || n > counts[best] || (n == counts[best] && state < best) {
			best = state
		}
	}
	return best, true
}

// ZIPs returns the deduplicated, sorted postal codes for a (city, state)
// pair. The city match is case-insensitive; the state match is exact after
// uppercasing.
func (g *Gazetteer) ZIPs(city, state string) []string {
	entries := g.byCity[strings.ToLower(strings.TrimSpace(city))]
	state = strings.ToUpper(strings.TrimSpace(state))

	seen := make(map[string]struct{})
	var zips []string
	for _, e := range entries {
		if e.StateCode != state || e.PostalCode == "" {
			continue
		}
		if _, ok := seen[e.PostalCode]; ok {
			continue
		}
		seen[e.PostalCode] = struct{}{}
		zips = append(zips, e.PostalCode)
	}
	sort.Strings(zips)
	return zips
}

// Len returns the number of distinct place names loaded.
func (g *Gazetteer) Len() int {
	return len(g.byCity)
}
