package ingest

import "time"

// Record is one consumer-feedback row after ingestion coercion. The core
// pipeline only ever sees this shape: loosely-typed tabular input is mapped
// into it at the source boundary, and timestamp parse failures arrive as a
// zero Timestamp rather than errors. Records are immutable once read.
type Record struct {
	Index     int       // sequence position in the input, 0-based
	Text      string    // raw feedback text, may be empty
	Timestamp time.Time // zero when missing or unparsable
	Category  string    // optional source label
	Rating    int       // optional 1-5 score, 0 when absent
}

// HasTimestamp reports whether the record carries a usable timestamp and
// therefore participates in temporal aggregation.
func (r Record) HasTimestamp() bool {
	return !r.Timestamp.IsZero()
}
