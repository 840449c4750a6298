package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/storescout/internal/model"
)

func retailer(name string, stores ...model.Store) model.Retailer {
	return model.Retailer{RetailerName: name, Stores: stores, TotalStores: len(stores)}
}

func store(name, city, state, zip string) model.Store {
	return model.Store{
		Name:             name,
		City:             city,
		State:            state,
		FormattedAddress: "100 Main St, " + city + ", " + state + " " + zip + ", USA",
		BusinessStatus:   "OPERATIONAL",
	}
}

func TestAnalyze_AggregatesPerCity(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A", store("Brand A", "New York", "NY", "10001"), store("Brand A", "New York", "NY", "10001")),
		retailer("Brand B", store("Brand B", "New York", "NY", "10002")),
	}
	markets := []model.MarketRow{{City: "New York", State: "NY", ZipCodes: "10001, 10002"}}

	reports := Analyze(retailers, markets)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, "New York", r.City)
	assert.Equal(t, "NY", r.State)
	assert.Equal(t, "10001, 10002", r.PrioritizedZips)
	assert.Equal(t, "Brand A (2), Brand B", r.Retailers)
	assert.Equal(t, 3, r.TotalStores)
	assert.True(t, r.IsReflexMarket)
}

func TestAnalyze_GroupsByStoreName(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Ralph Lauren",
			store("Polo Ralph Lauren Factory Store", "New York", "NY", "10001"),
			store("Ralph Lauren", "New York", "NY", "10001"),
		),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "Polo Ralph Lauren Factory Store, Ralph Lauren", reports[0].Retailers)
	assert.Equal(t, 2, reports[0].TotalStores)
}

func TestAnalyze_SkipsUnnamedStores(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A", store("", "Houston", "TX", "77001")),
	}

	reports := Analyze(retailers, nil)
	assert.Empty(t, reports)
}

func TestAnalyze_MarketCityWithSyntheticOverflow(t *testing.T) {
	retailers := []model.Retailer{
		retailer("A", store("A", "", "", "10001"), store("A", "", "", "10001")),
		retailer("B", store("B", "", "", "10002")),
	}
	markets := []model.MarketRow{{City: "NYC", State: "NY", ZipCodes: "10001"}}

	reports := Analyze(retailers, markets)
	require.Len(t, reports, 2)

	assert.Equal(t, "NYC", reports[0].City)
	assert.Equal(t, "A (2)", reports[0].Retailers)
	assert.Equal(t, 2, reports[0].TotalStores)
	assert.True(t, reports[0].IsReflexMarket)

	assert.Equal(t, "ZIP 10002", reports[1].City)
	assert.Equal(t, "B", reports[1].Retailers)
	assert.False(t, reports[1].IsReflexMarket)
}

func TestAnalyze_GroupsByCityNameAcrossStates(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A",
			store("Brand A", "Springfield", "IL", "62701"),
			store("Brand A", "Springfield", "MO", "65801"),
		),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "Springfield", reports[0].City)
	assert.Equal(t, "IL", reports[0].State)
	assert.Equal(t, 2, reports[0].TotalStores)
}

func TestAnalyze_NonMarketZipResolvesFromStore(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A", store("Brand A", "Houston", "TX", "77001")),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "Houston", reports[0].City)
	assert.Equal(t, "TX", reports[0].State)
	assert.False(t, reports[0].IsReflexMarket)
}

func TestAnalyze_UnresolvableZipGetsPlaceholder(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A", store("Brand A", "", "", "99999")),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "ZIP 99999", reports[0].City)
	assert.Empty(t, reports[0].State)
}

func TestAnalyze_SyntheticRowKeepsStoreState(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A", store("Brand A", "", "TX", "99999")),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "ZIP 99999", reports[0].City)
	assert.Equal(t, "TX", reports[0].State)
}

func TestAnalyze_ZipFromAddressNotZipField(t *testing.T) {
	inAddress := model.Store{
		Name:             "Brand A",
		City:             "Dallas",
		State:            "TX",
		ZipCode:          "11111",
		FormattedAddress: "100 Main St, Dallas, TX 75201, USA",
		BusinessStatus:   "OPERATIONAL",
	}
	noAddressZip := model.Store{
		Name:           "Brand A",
		City:           "Dallas",
		State:          "TX",
		ZipCode:        "22222",
		Address:        "100 Main St",
		BusinessStatus: "OPERATIONAL",
	}

	reports := Analyze([]model.Retailer{retailer("Brand A", inAddress, noAddressZip)}, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "75201", reports[0].PrioritizedZips)
	assert.Equal(t, 1, reports[0].TotalStores)
}

func TestAnalyze_ZipFromPlainAddressFallback(t *testing.T) {
	st := model.Store{
		Name:           "Brand A",
		City:           "Dallas",
		State:          "TX",
		Address:        "100 Main St, Dallas, TX 75201",
		BusinessStatus: "OPERATIONAL",
	}

	reports := Analyze([]model.Retailer{retailer("Brand A", st)}, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "75201", reports[0].PrioritizedZips)
}

func TestAnalyze_SkipsClosedStoresAndRemovedRetailers(t *testing.T) {
	closed := store("Brand A", "Houston", "TX", "77001")
	closed.BusinessStatus = "PERMANENTLY_CLOSED"

	removed := retailer("Brand B", store("Brand B", "Houston", "TX", "77001"))
	removed.Removed = true

	reports := Analyze([]model.Retailer{retailer("Brand A", closed), removed}, nil)
	assert.Empty(t, reports)
}

func TestAnalyze_SortsByTotalStoresDescending(t *testing.T) {
	retailers := []model.Retailer{
		retailer("Brand A",
			store("Brand A", "Houston", "TX", "77001"),
			store("Brand A", "Dallas", "TX", "75201"),
			store("Brand A", "Dallas", "TX", "75201"),
		),
	}

	reports := Analyze(retailers, nil)
	require.Len(t, reports, 2)
	assert.Equal(t, "Dallas", reports[0].City)
	assert.Equal(t, 2, reports[0].TotalStores)
	assert.Equal(t, "Houston", reports[1].City)
}

func TestAnalyze_PrioritizedZipsCappedAtFive(t *testing.T) {
	stores := []model.Store{
		store("Brand A", "Austin", "TX", "78705"),
		store("Brand A", "Austin", "TX", "78701"),
		store("Brand A", "Austin", "TX", "78704"),
		store("Brand A", "Austin", "TX", "78703"),
		store("Brand A", "Austin", "TX", "78702"),
		store("Brand A", "Austin", "TX", "78706"),
	}

	reports := Analyze([]model.Retailer{retailer("Brand A", stores...)}, nil)
	require.Len(t, reports, 1)
	assert.Equal(t, "78701, 78702, 78703, 78704, 78705", reports[0].PrioritizedZips)
	assert.Equal(t, 6, reports[0].TotalStores)
}
