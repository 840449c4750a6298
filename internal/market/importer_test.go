package market

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/storescout/internal/gazetteer"
	"github.com/sells-group/storescout/pkg/zippopotam"
)

type fakePostal struct {
	lookup func(state, city string) ([]zippopotam.PostalPlace, error)
}

func (f *fakePostal) Lookup(_ context.Context, state, city string) ([]zippopotam.PostalPlace, error) {
	return f.lookup(state, city)
}

func noPostal() *fakePostal {
	return &fakePostal{lookup: func(string, string) ([]zippopotam.PostalPlace, error) {
		return nil, eris.New("postal: unavailable")
	}}
}

func TestImport_CityStateEntry(t *testing.T) {
	postal := &fakePostal{lookup: func(state, city string) ([]zippopotam.PostalPlace, error) {
		require.Equal(t, "TX", state)
		require.Equal(t, "Houston", city)
		return []zippopotam.PostalPlace{
			{ZipCode: "77002", PlaceName: "Houston"},
			{ZipCode: "77001", PlaceName: "Houston"},
			{ZipCode: "77001", PlaceName: "Houston"},
		}, nil
	}}
	imp := NewImporter(postal, gazetteer.Empty())

	rows := imp.Import(context.Background(), []string{"Houston, tx"})
	require.Len(t, rows, 1)
	assert.Equal(t, "Houston", rows[0].City)
	assert.Equal(t, "TX", rows[0].State)
	assert.Equal(t, "77001, 77002", rows[0].ZipCodes)
}

func TestImport_BareCityUsesMajorCityTable(t *testing.T) {
	var gotState string
	postal := &fakePostal{lookup: func(state, _ string) ([]zippopotam.PostalPlace, error) {
		gotState = state
		return []zippopotam.PostalPlace{{ZipCode: "85001"}}, nil
	}}
	imp := NewImporter(postal, gazetteer.Empty())

	rows := imp.Import(context.Background(), []string{"Phoenix"})
	require.Len(t, rows, 1)
	assert.Equal(t, "AZ", gotState)
	assert.Equal(t, "AZ", rows[0].State)
}

func TestImport_BareCityFallsBackToGazetteerMajorityVote(t *testing.T) {
	gaz := gazetteer.New([]gazetteer.Entry{
		{PlaceName: "Smalltown", StateCode: "OH", PostalCode: "44101"},
		{PlaceName: "Smalltown", StateCode: "OH", PostalCode: "44102"},
		{PlaceName: "Smalltown", StateCode: "PA", PostalCode: "15201"},
	})
	imp := NewImporter(noPostal(), gaz)

	rows := imp.Import(context.Background(), []string{"Smalltown"})
	require.Len(t, rows, 1)
	assert.Equal(t, "OH", rows[0].State)
	assert.Equal(t, "44101, 44102", rows[0].ZipCodes)
}

func TestImport_UnresolvableStateDropsEntry(t *testing.T) {
	imp := NewImporter(noPostal(), gazetteer.Empty())

	rows := imp.Import(context.Background(), []string{"Atlantis"})
	assert.Empty(t, rows)
}

func TestImport_NoZipsDropsEntry(t *testing.T) {
	imp := NewImporter(noPostal(), gazetteer.Empty())

	rows := imp.Import(context.Background(), []string{"Houston, TX"})
	assert.Empty(t, rows)
}

func TestImport_PostalEmptyFallsBackToGazetteer(t *testing.T) {
	postal := &fakePostal{lookup: func(string, string) ([]zippopotam.PostalPlace, error) {
		return nil, nil
	}}
	gaz := gazetteer.New([]gazetteer.Entry{
		{PlaceName: "Houston", StateCode: "TX", PostalCode: "77001"},
	})
	imp := NewImporter(postal, gaz)

	rows := imp.Import(context.Background(), []string{"Houston, TX"})
	require.Len(t, rows, 1)
	assert.Equal(t, "77001", rows[0].ZipCodes)
}

func TestImport_DeduplicatesEntries(t *testing.T) {
	calls := 0
	postal := &fakePostal{lookup: func(string, string) ([]zippopotam.PostalPlace, error) {
		calls++
		return []zippopotam.PostalPlace{{ZipCode: "77001"}}, nil
	}}
	imp := NewImporter(postal, gazetteer.Empty())

	rows := imp.Import(context.Background(), []string{"Houston, TX", "Houston, TX", "", "  "})
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, calls)
}
