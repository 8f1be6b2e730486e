package analytics

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestMonthlyBucketsSeries(t *testing.T) {
	b := NewMonthlyBuckets()
	b.Observe(ts(t, "2024-02-10"), sentiment.Negative)
	b.Observe(ts(t, "2024-01-05"), sentiment.Positive)
	b.Observe(ts(t, "2024-01-20"), sentiment.Positive)
	b.Observe(ts(t, "2024-01-31"), sentiment.Neutral)

	series := b.Series()
	if len(series) != 2 {
		t.Fatalf("want 2 buckets, got %d", len(series))
	}

	jan, feb := series[0], series[1]
	if !jan.Month.Before(feb.Month) {
		t.Error("series should be chronologically ascending")
	}
	if jan.Counts[sentiment.Positive] != 2 || jan.Counts[sentiment.Neutral] != 1 {
		t.Errorf("january counts: %v", jan.Counts)
	}
	if jan.Counts[sentiment.Negative] != 0 {
		t.Error("absent label should default to 0, not be missing")
	}
	if _, ok := jan.Counts[sentiment.Negative]; !ok {
		t.Error("every label key must be present in a bucket")
	}
}

func TestMonthlyBucketsSumPerMonth(t *testing.T) {
	b := NewMonthlyBuckets()
	stamps := []string{"2024-03-01", "2024-03-15", "2024-03-31"}
	labels := []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Negative}
	for i, s := range stamps {
		b.Observe(ts(t, s), labels[i])
	}

	series := b.Series()
	if len(series) != 1 {
		t.Fatalf("want 1 bucket, got %d", len(series))
	}
	sum := 0
	for _, count := range series[0].Counts {
		sum += count
	}
	if sum != len(stamps) {
		t.Errorf("bucket sum %d, want %d", sum, len(stamps))
	}
}

func TestMonthlyBucketsIgnoreZeroTimestamps(t *testing.T) {
	b := NewMonthlyBuckets()
	b.Observe(time.Time{}, sentiment.Positive)

	if got := b.Series(); got != nil {
		t.Errorf("zero timestamps should produce no buckets, got %v", got)
	}
}

func TestMonthlyBucketsMerge(t *testing.T) {
	left := NewMonthlyBuckets()
	left.Observe(ts(t, "2024-01-10"), sentiment.Positive)

	right := NewMonthlyBuckets()
	right.Observe(ts(t, "2024-01-11"), sentiment.Positive)
	right.Observe(ts(t, "2024-02-01"), sentiment.Negative)

	left.Merge(right)
	series := left.Series()
	if len(series) != 2 {
		t.Fatalf("want 2 buckets after merge, got %d", len(series))
	}
	if series[0].Counts[sentiment.Positive] != 2 {
		t.Errorf("january positive count: got %d, want 2", series[0].Counts[sentiment.Positive])
	}
}

func TestMonthBucketJSON(t *testing.T) {
	b := NewMonthlyBuckets()
	b.Observe(ts(t, "2024-01-10"), sentiment.Positive)

	data, err := json.Marshal(b.Series())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, `"month":"2024-01"`) {
		t.Errorf("month key should render as YYYY-MM: %s", out)
	}
	if !strings.Contains(out, `"Positive":1`) {
		t.Errorf("label keys should render as names: %s", out)
	}
}
