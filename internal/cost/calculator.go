// Package cost tracks Maps API usage and estimates monthly spend.
package cost

// Rates holds per-operation pricing configuration, in dollars per call.
type Rates struct {
	PlacesSearch float64 `yaml:"places_search" mapstructure:"places_search"`
	Geocode      float64 `yaml:"geocode" mapstructure:"geocode"`
	PlaceDetails float64 `yaml:"place_details" mapstructure:"place_details"`
	// FreeTier is the number of place searches covered by monthly credit.
	FreeTier int `yaml:"free_tier" mapstructure:"free_tier"`
}

// DefaultRates returns the default Maps pricing.
func DefaultRates() Rates {
	return Rates{
		PlacesSearch: 0.032,
		Geocode:      0.005,
		PlaceDetails: 0.017,
		FreeTier:     200,
	}
}

// Calculator computes costs for Maps API usage.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Searches returns the cost of n place searches.
func (c *Calculator) Searches(n int) float64 {
	return float64(n) * c.rates.PlacesSearch
}

// Geocodes returns the cost of n geocode calls.
func (c *Calculator) Geocodes(n int) float64 {
	return float64(n) * c.rates.Geocode
}

// Details returns the cost of n place-details calls.
func (c *Calculator) Details(n int) float64 {
	return float64(n) * c.rates.PlaceDetails
}

// FreeTierRemaining returns how many searches of the monthly credit are
// left after n searches, never negative.
func (c *Calculator) FreeTierRemaining(n int) int {
	if n >= c.rates.FreeTier {
		return 0
	}
	return c.rates.FreeTier - n
}
