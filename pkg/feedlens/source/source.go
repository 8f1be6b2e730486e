// Package source reads tabular feedback data into ingest records. Sources
// are the validation boundary of the pipeline: column resolution and file
// errors surface here, while per-row defects (unparsable dates, blank cells)
// coerce to the record's zero values so the core never sees an error.
package source

import (
	"strconv"
	"strings"
	"time"
)

// Options selects which input columns feed each record field. TextColumn is
// required; the rest are optional and leave the corresponding field zeroed
// when empty.
type Options struct {
	TextColumn     string
	DateColumn     string
	CategoryColumn string
	RatingColumn   string
}

// timestampLayouts are tried in order when coercing a date cell.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
}

// parseTimestamp coerces a date cell to a timestamp. Anything unparsable
// becomes the zero time, never an error: the record still participates in
// classification and keyword extraction, just not in temporal aggregation.
func parseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

// parseRating coerces a rating cell, defaulting to 0.
func parseRating(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
