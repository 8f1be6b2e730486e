package analytics

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
)

// monthKey is a calendar-month truncation of a timestamp.
type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(other monthKey) bool {
	if k.year != other.year {
		return k.year < other.year
	}
	return k.month < other.month
}

// MonthBucket holds the sentiment cross-tabulation for one calendar month.
// Counts carries an entry for every label, zero when absent.
type MonthBucket struct {
	Month  time.Time
	Counts map[sentiment.Label]int
}

// MarshalJSON renders the bucket with a YYYY-MM month key.
func (b MonthBucket) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Month  string                  `json:"month"`
		Counts map[sentiment.Label]int `json:"counts"`
	}{
		Month:  b.Month.Format("2006-01"),
		Counts: b.Counts,
	})
}

// MonthlyBuckets accumulates per-month sentiment counts. Records without a
// usable timestamp are silently excluded; buckets exist only for months with
// at least one qualifying record. Like Counter, it is single-goroutine with
// an explicit Merge for fan-in.
type MonthlyBuckets struct {
	counts map[monthKey]map[sentiment.Label]int
}

// NewMonthlyBuckets creates an empty temporal aggregator.
func NewMonthlyBuckets() *MonthlyBuckets {
	return &MonthlyBuckets{counts: make(map[monthKey]map[sentiment.Label]int)}
}

// Observe records one labeled timestamp. Zero timestamps are ignored.
func (m *MonthlyBuckets) Observe(ts time.Time, label sentiment.Label) {
	if ts.IsZero() {
		return
	}
	key := monthKey{year: ts.Year(), month: ts.Month()}
	bucket := m.counts[key]
	if bucket == nil {
		bucket = make(map[sentiment.Label]int)
		m.counts[key] = bucket
	}
	bucket[label]++
}

// Merge folds another aggregator into this one. Bucket counts simply add, so
// merging is associative and commutative.
func (m *MonthlyBuckets) Merge(other *MonthlyBuckets) {
	for key, counts := range other.counts {
		bucket := m.counts[key]
		if bucket == nil {
			bucket = make(map[sentiment.Label]int)
			m.counts[key] = bucket
		}
		for label, count := range counts {
			bucket[label] += count
		}
	}
}

// Series returns the buckets ordered chronologically ascending. Every bucket
// carries all labels, defaulting to zero. An empty aggregator yields nil.
func (m *MonthlyBuckets) Series() []MonthBucket {
	if len(m.counts) == 0 {
		return nil
	}

	keys := make([]monthKey, 0, len(m.counts))
	for key := range m.counts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	out := make([]MonthBucket, 0, len(keys))
	for _, key := range keys {
		counts := make(map[sentiment.Label]int, 3)
		for _, label := range sentiment.All() {
			counts[label] = m.counts[key][label]
		}
		out = append(out, MonthBucket{
			Month:  time.Date(key.year, key.month, 1, 0, 0, 0, 0, time.UTC),
			Counts: counts,
		})
	}
	return out
}
