package feedlens

import (
	"context"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
)

func TestAnalyzeEmptyCorpus(t *testing.T) {
	engine := New(Options{})

	report, err := engine.Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("empty corpus should not error: %v", err)
	}

	if report.ID == "" {
		t.Error("report should carry a run ID")
	}
	if len(report.Labels) != 0 {
		t.Errorf("want no labels, got %d", len(report.Labels))
	}
	if report.Summary.Total != 0 {
		t.Errorf("want total 0, got %d", report.Summary.Total)
	}
	for _, label := range sentiment.All() {
		if count, ok := report.Summary.Counts[label]; !ok || count != 0 {
			t.Errorf("label %v should be present with count 0", label)
		}
	}
	if report.TopKeywords != nil || report.Monthly != nil {
		t.Error("empty corpus should yield empty tables")
	}
}

func TestAnalyzeNullText(t *testing.T) {
	engine := New(Options{})

	records := []ingest.Record{{Index: 0, Text: ""}}
	report, err := engine.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if report.Labels[0] != sentiment.Neutral {
		t.Errorf("missing text should classify Neutral, got %v", report.Labels[0])
	}
	if report.TotalKeywords != 0 {
		t.Errorf("missing text should yield no keywords, got %d", report.TotalKeywords)
	}
	if len(report.Samples[sentiment.Neutral]) != 0 {
		t.Error("empty texts should not appear in samples")
	}
}

func TestAnalyzeDeterministicAcrossWorkerCounts(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var records []ingest.Record
	for i := 0; i < 40; i++ {
		records = append(records, ingest.Record{
			Index:     i,
			Text:      fmt.Sprintf("배송 품질 불만 item%d 만족", i%7),
			Timestamp: base.AddDate(0, 0, i*3),
		})
	}

	sequential := New(Options{Workers: 1})
	parallel := New(Options{Workers: 8})

	want, err := sequential.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("sequential: %v", err)
	}
	got, err := parallel.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if !reflect.DeepEqual(got.Labels, want.Labels) {
		t.Error("labels differ across worker counts")
	}
	if !reflect.DeepEqual(got.TopKeywords, want.TopKeywords) {
		t.Errorf("rankings differ: %v vs %v", got.TopKeywords, want.TopKeywords)
	}
	if !reflect.DeepEqual(got.Monthly, want.Monthly) {
		t.Error("monthly buckets differ across worker counts")
	}
	if !reflect.DeepEqual(got.Summary, want.Summary) {
		t.Error("summaries differ across worker counts")
	}
	if got.TotalKeywords != want.TotalKeywords {
		t.Errorf("keyword totals differ: %d vs %d", got.TotalKeywords, want.TotalKeywords)
	}
}

func TestAnalyzeCancelledContext(t *testing.T) {
	engine := New(Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Analyze(ctx, []ingest.Record{{Index: 0, Text: "배송"}})
	if err == nil {
		t.Fatal("cancelled context should abort the run")
	}
}

func TestSampleLimit(t *testing.T) {
	engine := New(Options{SampleLimit: 2})

	var records []ingest.Record
	for i := 0; i < 5; i++ {
		records = append(records, ingest.Record{Index: i, Text: fmt.Sprintf("만족합니다 %d", i)})
	}

	report, err := engine.Analyze(context.Background(), records)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	got := report.Samples[sentiment.Positive]
	if len(got) != 2 {
		t.Fatalf("want 2 samples, got %d", len(got))
	}
	if got[0] != "만족합니다 0" || got[1] != "만족합니다 1" {
		t.Errorf("samples should preserve input order: %v", got)
	}
}

func TestReportIDsAreUnique(t *testing.T) {
	engine := New(Options{})

	seen := make(map[string]struct{})
	for i := 0; i < 10; i++ {
		report, err := engine.Analyze(context.Background(), nil)
		if err != nil {
			t.Fatalf("Analyze: %v", err)
		}
		if _, dup := seen[report.ID]; dup {
			t.Fatalf("duplicate run ID %s", report.ID)
		}
		seen[report.ID] = struct{}{}
	}
}
