package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreIsClosed(t *testing.T) {
	tests := []struct {
		status string
		closed bool
	}{
		{"OPERATIONAL", false},
		{"PERMANENTLY_CLOSED", true},
		{"closed_permanently", true},
		{"CLOSED_TEMPORARILY", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.closed, Store{BusinessStatus: tt.status}.IsClosed(), tt.status)
	}
}

func TestStoreBestAddress(t *testing.T) {
	assert.Equal(t, "formatted", Store{Address: "street", FormattedAddress: "formatted"}.BestAddress())
	assert.Equal(t, "street", Store{Address: "street"}.BestAddress())
}

func TestRetailerActiveStores(t *testing.T) {
	r := Retailer{Stores: []Store{
		{Name: "open", BusinessStatus: "OPERATIONAL"},
		{Name: "closed", BusinessStatus: "PERMANENTLY_CLOSED"},
	}}

	active := r.ActiveStores()
	assert.Len(t, active, 1)
	assert.Equal(t, "open", active[0].Name)
}

func TestCountCities(t *testing.T) {
	stores := []Store{
		{City: "Houston"},
		{City: "Houston"},
		{City: "Dallas"},
		{City: " "},
	}
	assert.Equal(t, 2, CountCities(stores))
}

func TestRetailerFromSearch(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	stores := []Store{
		{Name: "open", City: "Houston", BusinessStatus: "OPERATIONAL"},
		{Name: "closed", City: "Dallas", BusinessStatus: "PERMANENTLY_CLOSED"},
	}

	rec, ok := RetailerFromSearch("Lacoste", stores, now)
	require.True(t, ok)
	assert.Equal(t, "Lacoste", rec.RetailerName)
	require.Len(t, rec.Stores, 1)
	assert.Equal(t, "open", rec.Stores[0].Name)
	assert.Equal(t, 1, rec.TotalStores)
	assert.Equal(t, 1, rec.TotalCities)
	assert.Equal(t, "search", rec.Source)
	assert.Equal(t, now, rec.DateAdded)
}

func TestRetailerFromSearch_AllClosed(t *testing.T) {
	stores := []Store{{Name: "closed", BusinessStatus: "PERMANENTLY_CLOSED"}}

	_, ok := RetailerFromSearch("Lacoste", stores, time.Now())
	assert.False(t, ok)
}

func TestNewMarketUpload(t *testing.T) {
	entries := []string{"Houston, TX", "Houston, TX", "Atlantis"}
	rows := []MarketRow{{City: "Houston", State: "TX", ZipCodes: "77001"}}

	u := NewMarketUpload("markets.csv", entries, rows, time.Now())
	assert.Equal(t, "markets.csv", u.Filename)
	assert.Equal(t, 1, u.TotalEntries)
	assert.Equal(t, 2, u.TotalCities)
}

func TestActiveRetailers(t *testing.T) {
	records := []Retailer{
		{RetailerName: "A"},
		{RetailerName: "B", Removed: true},
	}

	active := ActiveRetailers(records)
	assert.Len(t, active, 1)
	assert.Equal(t, "A", active[0].RetailerName)
}
