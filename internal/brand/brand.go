// Package brand decides whether a place listing looks like an official brand
// store rather than a reseller or department-store counter.
//
// This is a heuristic filter, not proof of brand identity. False positives
// and negatives are expected; the rule tables are configuration so they can
// be swapped without touching the match policy.
package brand

import (
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Rules holds the match tables used by the Matcher.
type Rules struct {
	// Denylist names known reseller and department-store chains. A place
	// name containing any of these is rejected outright.
	Denylist []string `yaml:"denylist"`
	// VariantPrefixes are brand-line prefixes that may precede the retailer
	// name in official listings (e.g. "Polo Ralph Lauren").
	VariantPrefixes []string `yaml:"variant_prefixes"`
}

// DefaultRules returns the built-in match tables.
func DefaultRules() Rules {
	return Rules{
		Denylist: []string{
			"macy", "nordstrom", "dillard", "bloomingdale", "saks", "neiman marcus",
			"kohls", "jcpenney", "tj maxx", "marshalls", "ross dress", "burlington",
			"target", "walmart", "costco", "sam's club", "amazon hub", "belk",
		},
		VariantPrefixes: []string{"polo", "factory", "outlet", "ralph", "lauren"},
	}
}

// LoadRules reads match tables from a YAML file.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, eris.Wrap(err, "brand: read rules file")
	}
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, eris.Wrap(err, "brand: parse rules file")
	}
	return r, nil
}

// Matcher classifies place names against a retailer name.
type Matcher struct {
	rules Rules
}

// NewMatcher creates a Matcher with the given rules.
func NewMatcher(rules Rules) *Matcher {
	return &Matcher{rules: rules}
}

// IsOfficial reports whether placeName looks like an official store of the
// given retailer.
//
// The decision is a short-circuit chain: the denylist always wins, then an
// exact brand substring, then any significant brand token, then all tokens
// in any order, then a variant prefix immediately followed by the brand or
// one of its tokens.
func (m *Matcher) IsOfficial(placeName, retailer string) bool {
	if placeName == "" {
		return false
	}

	name := strings.ToLower(placeName)
	brand := strings.TrimSpace(strings.ToLower(retailer))

	for _, excluded := range m.rules.Denylist {
		if strings.Contains(name, excluded) {
			return false
		}
	}

	if strings.Contains(name, brand) {
		return true
	}

	tokens := strings.Fields(brand)
	var significant []string
	for _, t := range tokens {
		if len(t) > 2 {
			significant = append(significant, t)
		}
	}
	for _, t := range significant {
		if strings.Contains(name, t) {
			return true
		}
	}

	if len(tokens) >= 2 {
		all := true
		for _, t := range tokens {
			if !strings.Contains(name, t) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}

	for _, prefix := range m.rules.VariantPrefixes {
		if strings.Contains(name, prefix+" "+brand) {
			return true
		}
		for _, t := range significant {
			if strings.Contains(name, prefix+" "+t) {
				return true
			}
		}
	}

	return false
}
