// Package zippopotam is a client for the Zippopotam.us postal lookup API.
package zippopotam

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

const defaultBaseURL = "https://api.zippopotam.us"

// Client performs postal lookups.
type Client interface {
	Lookup(ctx context.Context, state, city string) ([]PostalPlace, error)
}

// PostalPlace is one ZIP entry for a city.
type PostalPlace struct {
	ZipCode   string `json:"post code"`
	PlaceName string `json:"place name"`
}

type lookupResponse struct {
	Places []PostalPlace `json:"places"`
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

type httpClient struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Zippopotam client.
func NewClient(opts ...Option) Client {
	c := &httpClient{
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Lookup returns the ZIP entries for a US (state, city) pair. Unknown
// city/state combinations surface as an error; callers fall back to the
// offline reference dataset.
func (c *httpClient) Lookup(ctx context.Context, state, city string) ([]PostalPlace, error) {
	path := c.baseURL + "/us/" + strings.ToLower(state) + "/" + url.PathEscape(city)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, eris.Wrap(err, "zippopotam: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, eris.Wrap(err, "zippopotam: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, eris.Wrap(err, "zippopotam: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("zippopotam: unexpected status %d for %s/%s", resp.StatusCode, state, city)
	}

	var result lookupResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, eris.Wrap(err, "zippopotam: unmarshal response")
	}

	var places []PostalPlace
	for _, p := range result.Places {
		if p.ZipCode == "" {
			continue
		}
		if p.PlaceName == "" {
			p.PlaceName = city
		}
		places = append(places, p)
	}
	return places, nil
}
