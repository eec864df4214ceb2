// Package field normalizes scalar values scraped from DMS pages.
package field

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006 03:04 PM",
	time.RFC3339,
}

// ShipmentNumber matches inbound shipment numbers such as A1234567-1.
var ShipmentNumber = regexp.MustCompile(`^[A-Z]\d{7}-\d$`)

// Date parses the date formats the DMS renders, returning nil for blanks
// and anything unrecognised.
func Date(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return &t
		}
	}
	return nil
}

// Int parses an integer, tolerating thousands separators. Blank or invalid
// input yields 0.
func Int(s string) int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// Clean trims s and collapses inner whitespace.
func Clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Upper is Clean followed by upper-casing; serials and models compare
// case-insensitively upstream.
func Upper(s string) string {
	return strings.ToUpper(Clean(s))
}
