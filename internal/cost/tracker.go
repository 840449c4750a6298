package cost

import (
	"sync/atomic"
	"time"
)

// Tracker counts API calls made by this process. Counters are cumulative
// since startup; actual billing lives with the provider, so the snapshot is
// an estimate, not an invoice.
type Tracker struct {
	searches atomic.Int64
	geocodes atomic.Int64
	details  atomic.Int64

	calc *Calculator
	now  func() time.Time
}

// NewTracker creates a Tracker priced by calc.
func NewTracker(calc *Calculator) *Tracker {
	return &Tracker{
		calc: calc,
		now:  time.Now,
	}
}

// AddSearches records n place searches.
func (t *Tracker) AddSearches(n int) { t.searches.Add(int64(n)) }

// AddGeocodes records n geocode calls.
func (t *Tracker) AddGeocodes(n int) { t.geocodes.Add(int64(n)) }

// AddDetails records n place-details calls.
func (t *Tracker) AddDetails(n int) { t.details.Add(int64(n)) }

// Breakdown is the per-operation slice of a Snapshot.
type Breakdown struct {
	Calls int     `json:"calls"`
	Cost  float64 `json:"cost_usd"`
}

// Snapshot is a point-in-time usage and spend estimate.
type Snapshot struct {
	Month             string               `json:"month"`
	Date              string               `json:"date"`
	TotalCalls        int                  `json:"total_calls"`
	EstimatedCost     float64              `json:"estimated_cost_usd"`
	APIBreakdown      map[string]Breakdown `json:"api_breakdown"`
	FreeTierRemaining int                  `json:"free_tier_remaining"`
	QuotaUsage        float64              `json:"quota_usage"`
	BillingStatus     string               `json:"billing_status"`
	LastUpdated       time.Time            `json:"last_updated"`
}

// Snapshot reports usage since startup. billingConfigured toggles the
// billing_status field between an estimate and "not_configured".
func (t *Tracker) Snapshot(billingConfigured bool) Snapshot {
	searches := int(t.searches.Load())
	geocodes := int(t.geocodes.Load())
	details := int(t.details.Load())

	breakdown := map[string]Breakdown{
		"places_search": {Calls: searches, Cost: t.calc.Searches(searches)},
		"geocode":       {Calls: geocodes, Cost: t.calc.Geocodes(geocodes)},
		"place_details": {Calls: details, Cost: t.calc.Details(details)},
	}

	total := 0.0
	for _, b := range breakdown {
		total += b.Cost
	}

	status := "estimated"
	if !billingConfigured {
		status = "not_configured"
	}

	now := t.now()
	free := t.calc.FreeTierRemaining(searches)
	quota := 0.0
	if t.calc.rates.FreeTier > 0 {
		quota = float64(searches) / float64(t.calc.rates.FreeTier)
		if quota > 1 {
			quota = 1
		}
	}

	return Snapshot{
		Month:             now.Format("2006-01"),
		Date:              now.Format("2006-01-02"),
		TotalCalls:        searches + geocodes + details,
		EstimatedCost:     total,
		APIBreakdown:      breakdown,
		FreeTierRemaining: free,
		QuotaUsage:        quota,
		BillingStatus:     status,
		LastUpdated:       now,
	}
}
