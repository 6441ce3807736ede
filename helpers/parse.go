package helpers

import (
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// LITERAL PARSING — Typed interpretation of explicit tick values
// ============================================================================
// The value materializer maps user-supplied tick literals into the field's
// typed domain. These helpers do the per-value parsing; unparseable values
// are reported, not failed on — the engine drops them (best-effort merging).
// ============================================================================

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2006",
	"2006-01",
}

// ParseDate interprets a string as a calendar date or timestamp.
// Layouts are tried most- to least-specific; times are taken as UTC.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseNumber interprets a string as a number, tolerating surrounding
// whitespace and thousands separators.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
