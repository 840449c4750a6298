package model

import "time"

// MarketRow is one resolved city from an uploaded market list: the city, its
// state, and a sorted comma-joined set of ZIP codes.
type MarketRow struct {
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCodes string `json:"zip_codes"`
}

// MarketUpload is one spreadsheet upload of market rows. Uploads are
// append-only; the analyzer reads the most recent one. TotalEntries counts
// the resolved rows, TotalCities the distinct city entries in the upload.
type MarketUpload struct {
	Filename     string      `json:"filename"`
	Rows         []MarketRow `json:"data"`
	TotalEntries int         `json:"total_entries"`
	TotalCities  int         `json:"total_cities"`
	DateUploaded time.Time   `json:"date_uploaded"`
}

// NewMarketUpload builds the upload record for a resolved market list.
// entries are the raw city lines from the spreadsheet, rows the resolved
// output.
func NewMarketUpload(filename string, entries []string, rows []MarketRow, now time.Time) MarketUpload {
	distinct := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		distinct[e] = struct{}{}
	}
	return MarketUpload{
		Filename:     filename,
		Rows:         rows,
		TotalEntries: len(rows),
		TotalCities:  len(distinct),
		DateUploaded: now,
	}
}

// CityReport is one row of analyzer output: stores aggregated per resolved
// city. Never persisted; recomputed on every analyze request.
type CityReport struct {
	City            string `json:"city"`
	State           string `json:"state"`
	PrioritizedZips string `json:"prioritized_zip_codes"`
	Retailers       string `json:"retailers"`
	TotalStores     int    `json:"total_stores"`
	IsReflexMarket  bool   `json:"is_reflex_market"`
}

// RetailerStores is the per-retailer slice of a search result.
type RetailerStores struct {
	Stores []Store `json:"stores"`
	Count  int     `json:"count"`
}

// SearchResult is the cached outcome of one batch search. It lives in the
// in-process result cache keyed by a session token.
type SearchResult struct {
	DisplayName   string                    `json:"retailer_name"`
	RetailerNames []string                  `json:"retailer_names"`
	ByRetailer    map[string]RetailerStores `json:"retailer_results"`
	Stores        []Store                   `json:"stores"`
	TotalFound    int                       `json:"total_found"`
	APICalls      int                       `json:"api_calls_made"`
	CreatedAt     time.Time                 `json:"-"`
}
