// Package places is a client for the Google Maps web services used by
// storescout: geocoding, nearby search, and place details.
package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Client performs places and geocoding operations.
type Client interface {
	Geocode(ctx context.Context, location string) (LatLng, error)
	NearbySearch(ctx context.Context, loc LatLng, radius int, name, placeType string) ([]Place, error)
	PlaceDetails(ctx context.Context, placeID string, fields []string) (*Details, error)
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is one candidate returned by nearby search.
type Place struct {
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PlaceID          string   `json:"place_id"`
	Types            []string `json:"types"`
	BusinessStatus   string   `json:"business_status"`
	PriceLevel       int      `json:"price_level"`
	Geometry         Geometry `json:"geometry"`
}

// Geometry holds the location of a place.
type Geometry struct {
	Location LatLng `json:"location"`
}

// Details is the extended information for a single place.
type Details struct {
	FormattedAddress     string       `json:"formatted_address"`
	FormattedPhoneNumber string       `json:"formatted_phone_number"`
	Website              string       `json:"website"`
	OpeningHours         OpeningHours `json:"opening_hours"`
}

// OpeningHours holds the weekly opening schedule of a place.
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

// WithRateLimit caps outgoing request rate in queries per second.
func WithRateLimit(qps float64) Option {
	return func(c *httpClient) {
		c.limiter = rate.NewLimiter(rate.Limit(qps), 1)
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates a Maps web-services client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 1),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry Geometry `json:"geometry"`
	} `json:"results"`
}

func (c *httpClient) Geocode(ctx context.Context, location string) (LatLng, error) {
	q := url.Values{}
	q.Set("address", location)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", q, &resp); err != nil {
		return LatLng{}, err
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return LatLng{}, eris.Errorf("places: no geocode result for %q (status %s)", location, resp.Status)
	}
	return resp.Results[0].Geometry.Location, nil
}

type nearbyResponse struct {
	Status  string  `json:"status"`
	Results []Place `json:"results"`
}

func (c *httpClient) NearbySearch(ctx context.Context, loc LatLng, radius int, name, placeType string) ([]Place, error) {
	q := url.Values{}
	q.Set("location", strconv.FormatFloat(loc.Lat, 'f', -1, 64)+","+strconv.FormatFloat(loc.Lng, 'f', -1, 64))
	q.Set("radius", strconv.Itoa(radius))
	q.Set("name", name)
	if placeType != "" {
		q.Set("type", placeType)
	}

	var resp nearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", q, &resp); err != nil {
		return nil, err
	}
	switch resp.Status {
	case "OK":
		return resp.Results, nil
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, eris.Errorf("places: nearby search failed with status %s", resp.Status)
	}
}

type detailsResponse struct {
	Status string  `json:"status"`
	Result Details `json:"result"`
}

func (c *httpClient) PlaceDetails(ctx context.Context, placeID string, fields []string) (*Details, error) {
	q := url.Values{}
	q.Set("place_id", placeID)
	if len(fields) > 0 {
		q.Set("fields", strings.Join(fields, ","))
	}

	var resp detailsResponse
	if err := c.get(ctx, "/place/details/json", q, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, eris.Errorf("places: details for %s failed with status %s", placeID, resp.Status)
	}
	return &resp.Result, nil
}

func (c *httpClient) get(ctx context.Context, path string, q url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "places: rate limit wait")
	}

	q.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "places: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "places: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "places: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "places: unmarshal response")
	}

	return nil
}
