package fetcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoresFromRows(t *testing.T) {
	rows := [][]string{
		{"Store Name", "Address", "City", "State", "Zip", "Phone", "Rating", "Lat", "Long", "Status"},
		{"Acme Downtown", "1 Main St", "Springfield", "IL", "62701", "555-0100", "4.5", "39.78", "-89.65", ""},
		{"Acme Mall", "2 Mall Rd", "Springfield", "IL", "02108", "", "", "", "", "CLOSED_TEMPORARILY"},
	}

	stores := StoresFromRows(rows, "Acme")
	require.Len(t, stores, 2)

	assert.Equal(t, "Acme Downtown", stores[0].Name)
	assert.Equal(t, "1 Main St", stores[0].Address)
	assert.Equal(t, "1 Main St", stores[0].FormattedAddress)
	assert.Equal(t, "62701", stores[0].ZipCode)
	assert.InDelta(t, 4.5, stores[0].Rating, 0.001)
	assert.InDelta(t, 39.78, stores[0].Latitude, 0.001)
	assert.Equal(t, "OPERATIONAL", stores[0].BusinessStatus)
	assert.Equal(t, "uploaded_0", stores[0].PlaceID)
	assert.Equal(t, "Acme", stores[0].RetailerName)

	// Leading zero preserved, explicit status kept.
	assert.Equal(t, "02108", stores[1].ZipCode)
	assert.Equal(t, "CLOSED_TEMPORARILY", stores[1].BusinessStatus)
	assert.Equal(t, "uploaded_1", stores[1].PlaceID)
}

func TestStoresFromRows_AlternateHeaders(t *testing.T) {
	rows := [][]string{
		{"Name", "Zip Code", "Latitude", "Longitude"},
		{"Acme North", "10001", "40.75", "-73.99"},
	}

	stores := StoresFromRows(rows, "Acme")
	require.Len(t, stores, 1)
	assert.Equal(t, "Acme North", stores[0].Name)
	assert.Equal(t, "10001", stores[0].ZipCode)
	assert.InDelta(t, 40.75, stores[0].Latitude, 0.001)
}

func TestStoresFromRows_HeaderOnly(t *testing.T) {
	assert.Nil(t, StoresFromRows([][]string{{"Name"}}, "Acme"))
	assert.Nil(t, StoresFromRows(nil, "Acme"))
}

func TestRowMaps(t *testing.T) {
	rows := [][]string{
		{"Name", "Latitude", "Longitude"},
		{"Acme", "40.0", "-90.0"},
		{"Other", "41.0"},
	}

	maps := RowMaps(rows)
	require.Len(t, maps, 2)
	assert.Equal(t, "Acme", maps[0]["name"])
	assert.Equal(t, "-90.0", maps[0]["longitude"])
	assert.Equal(t, "41.0", maps[1]["latitude"])
	_, ok := maps[1]["longitude"]
	assert.False(t, ok)
}

func TestRetailerNameFromFilename(t *testing.T) {
	assert.Equal(t, "Ralph Lauren Stores", RetailerNameFromFilename("ralph_lauren_stores.csv"))
	assert.Equal(t, "Acme", RetailerNameFromFilename("acme.xlsx"))
}
