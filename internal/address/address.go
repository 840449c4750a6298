// Package address parses US formatted address strings into components.
//
// Input is expected to look like "Street, City, State ZIP[, Country]".
// Anything else degrades to empty fields rather than an error; callers must
// tolerate missing components.
package address

import (
	"regexp"
	"strings"
)

var (
	stateZipRe     = regexp.MustCompile(`^([A-Z]{2})\s+(\d{5}(?:-\d{4})?)$`)
	stateOnlyRe    = regexp.MustCompile(`^([A-Z]{2})`)
	cityStateZipRe = regexp.MustCompile(`^(.+?)\s+([A-Z]{2})\s+(\d{5}(?:-\d{4})?)$`)
	zipRe          = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)
)

// Components holds the parsed pieces of a formatted address.
type Components struct {
	Street string
	City   string
	State  string
	Zip    string
}

// Parse splits a formatted address into street, city, state and ZIP.
//
// With three or more comma-separated parts the third part is matched as
// "ST 12345[-6789]"; if only the state matches, the ZIP stays empty. With
// exactly two parts the second is matched as "City ST 12345". Any other
// shape yields all-empty components.
func Parse(formatted string) Components {
	if formatted == "" {
		return Components{}
	}

	parts := strings.Split(formatted, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	var c Components
	switch {
	case len(parts) >= 3:
		c.Street = parts[0]
		c.City = parts[1]
		if m := stateZipRe.FindStringSubmatch(parts[2]); m != nil {
			c.State = m[1]
			c.Zip = m[2]
		} else if m := stateOnlyRe.FindStringSubmatch(parts[2]); m != nil {
			c.State = m[1]
		}
	case len(parts) == 2:
		c.Street = parts[0]
		if m := cityStateZipRe.FindStringSubmatch(parts[1]); m != nil {
			c.City = strings.TrimSpace(m[1])
			c.State = m[2]
			c.Zip = m[3]
		}
	}
	return c
}

// ExtractZip returns the first 5-digit ZIP run in s, with any +4 suffix
// dropped. Empty string when none is present.
func ExtractZip(s string) string {
	if s == "" {
		return ""
	}
	if m := zipRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return ""
}
