// Package model defines the core data types shared across storescout.
package model

import (
	"strings"
	"time"
)

// Store is a single retail location found through the places provider or
// loaded from an uploaded results file.
type Store struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	FormattedAddress string   `json:"formatted_address"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	ZipCode          string   `json:"zip_code"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PlaceID          string   `json:"place_id"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Types            []string `json:"types,omitempty"`
	BusinessStatus   string   `json:"business_status"`
	PriceLevel       int      `json:"price_level,omitempty"`
	PhoneNumber      string   `json:"phone_number"`
	Website          string   `json:"website"`
	OpeningHours     string   `json:"opening_hours,omitempty"`
	RetailerName     string   `json:"retailer_name"`
}

// IsClosed reports whether the place provider marked the store as
// permanently closed.
func (s Store) IsClosed() bool {
	switch strings.ToLower(s.BusinessStatus) {
	case "permanently_closed", "closed_permanently":
		return true
	}
	return false
}

// BestAddress returns the formatted address, falling back to the street
// address when the provider returned no formatted form.
func (s Store) BestAddress() string {
	if s.FormattedAddress != "" {
		return s.FormattedAddress
	}
	return s.Address
}

// Retailer groups every store saved for one retailer name. Records are
// soft-deleted via the Removed flag so they can be restored later.
type Retailer struct {
	RetailerName string     `json:"retailer_name"`
	Stores       []Store    `json:"stores"`
	TotalStores  int        `json:"total_stores"`
	TotalCities  int        `json:"total_cities"`
	DateAdded    time.Time  `json:"date_added"`
	Source       string     `json:"source,omitempty"`
	Filename     string     `json:"filename,omitempty"`
	Removed      bool       `json:"removed,omitempty"`
	RemovedDate  *time.Time `json:"removed_date,omitempty"`
}

// ActiveStores returns the stores that are not permanently closed.
func (r Retailer) ActiveStores() []Store {
	return Active(r.Stores)
}

// Active returns the stores that are not permanently closed.
func Active(stores []Store) []Store {
	var active []Store
	for _, s := range stores {
		if !s.IsClosed() {
			active = append(active, s)
		}
	}
	return active
}

// RetailerFromSearch builds a persistable record from search results.
// Permanently closed stores are dropped and both counts come from the
// remaining stores; ok is false when nothing remains.
func RetailerFromSearch(name string, stores []Store, now time.Time) (rec Retailer, ok bool) {
	active := Active(stores)
	if len(active) == 0 {
		return Retailer{}, false
	}
	return Retailer{
		RetailerName: name,
		Stores:       active,
		TotalStores:  len(active),
		TotalCities:  CountCities(active),
		DateAdded:    now,
		Source:       "search",
	}, true
}

// CountCities returns the number of distinct non-empty city names among the
// given stores. City names are compared as exact strings.
func CountCities(stores []Store) int {
	cities := make(map[string]struct{})
	for _, s := range stores {
		if c := strings.TrimSpace(s.City); c != "" {
			cities[c] = struct{}{}
		}
	}
	return len(cities)
}

// ActiveRetailers filters out soft-deleted records.
func ActiveRetailers(records []Retailer) []Retailer {
	var active []Retailer
	for _, r := range records {
		if !r.Removed {
			active = append(active, r)
		}
	}
	return active
}
