// Package feedlens classifies short free-text consumer feedback into
// sentiment categories, extracts salient keywords, and aggregates both into
// ranked and time-bucketed summaries.
package feedlens

import (
	"context"
	"crypto/rand"
	"runtime"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/feedlens/pkg/feedlens/analytics"
	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/lexicon"
	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
	"github.com/cognicore/feedlens/pkg/feedlens/stoplist"
)

// Default tuning knobs for report shaping.
const (
	// DefaultTopKeywords is how many ranked terms a report carries for
	// chart display.
	DefaultTopKeywords = 20

	// DefaultCloudKeywords is how many ranked terms feed word-cloud
	// frequency weighting.
	DefaultCloudKeywords = 100

	// DefaultSampleLimit is how many raw texts are kept per label as
	// illustrative samples.
	DefaultSampleLimit = 10
)

// Options configures an Engine. Zero-value fields fall back to the built-in
// Korean lexicon and stoplist and to the default report shape.
type Options struct {
	Lexicon   *lexicon.Lexicon
	Tokenizer *ingest.Tokenizer

	// Workers bounds the analysis fan-out; <= 0 means GOMAXPROCS.
	Workers int

	TopKeywords   int
	CloudKeywords int
	SampleLimit   int
}

// Engine is the analysis facade. It holds only immutable configuration, so
// one Engine may serve any number of concurrent Analyze calls.
type Engine struct {
	classifier *sentiment.Classifier
	tokenizer  *ingest.Tokenizer
	workers    int
	topN       int
	cloudN     int
	samples    int

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	lex := opts.Lexicon
	if lex == nil {
		lex = lexicon.Default()
	}
	tok := opts.Tokenizer
	if tok == nil {
		tok = ingest.NewTokenizer(stoplist.Default())
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	topN := opts.TopKeywords
	if topN <= 0 {
		topN = DefaultTopKeywords
	}
	cloudN := opts.CloudKeywords
	if cloudN <= 0 {
		cloudN = DefaultCloudKeywords
	}
	samples := opts.SampleLimit
	if samples <= 0 {
		samples = DefaultSampleLimit
	}

	return &Engine{
		classifier: sentiment.NewClassifier(lex),
		tokenizer:  tok,
		workers:    workers,
		topN:       topN,
		cloudN:     cloudN,
		samples:    samples,
		entropy:    ulid.Monotonic(rand.Reader, 0),
	}
}

// Summary holds corpus-level sentiment counts.
type Summary struct {
	Total   int                         `json:"total"`
	Counts  map[sentiment.Label]int     `json:"counts"`
	Percent map[sentiment.Label]float64 `json:"percent"`
}

// Report is the full output of one analysis run.
type Report struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`

	// Labels aligns 1:1 with the input records, in input order.
	Labels []sentiment.Label `json:"labels"`

	Summary Summary `json:"summary"`

	// TopKeywords is the display-sized ranked frequency table;
	// CloudWeights is the larger cut used as word-cloud input weights.
	TopKeywords  []analytics.TermCount `json:"top_keywords"`
	CloudWeights []analytics.TermCount `json:"cloud_weights"`

	// TotalKeywords is the number of keyword occurrences across the
	// corpus, which equals the sum of all frequency-table counts.
	TotalKeywords int `json:"total_keywords"`

	// Monthly is present only when at least one record carried a usable
	// timestamp.
	Monthly []analytics.MonthBucket `json:"monthly,omitempty"`

	// Samples holds up to SampleLimit raw texts per label, in input
	// order.
	Samples map[sentiment.Label][]string `json:"samples"`
}

// partial is one worker's share of the aggregation fan-in.
type partial struct {
	counter *analytics.Counter
	buckets *analytics.MonthlyBuckets
}

// Analyze runs the full pipeline over records: per-record classification and
// keyword extraction fan out across workers, then partial aggregates merge
// into a Report. Every stage is a pure function of one record plus the
// engine's immutable configuration, so results are deterministic regardless
// of scheduling; ranking tie-breaks use global record order, not worker
// arrival order. An empty corpus yields an empty report, not an error.
func (e *Engine) Analyze(ctx context.Context, records []ingest.Record) (*Report, error) {
	labels := make([]sentiment.Label, len(records))

	workers := e.workers
	if workers > len(records) {
		workers = len(records)
	}
	if workers < 1 {
		workers = 1
	}

	partials := make([]partial, workers)
	indices := make(chan int, len(records))
	for i := range records {
		indices <- i
	}
	close(indices)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		part := partial{
			counter: analytics.NewCounter(),
			buckets: analytics.NewMonthlyBuckets(),
		}
		partials[w] = part

		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				if ctx.Err() != nil {
					return
				}
				rec := records[i]
				label := e.classifier.Classify(rec.Text)
				labels[i] = label
				part.counter.Observe(i, e.tokenizer.ExtractKeywords(rec.Text))
				part.buckets.Observe(rec.Timestamp, label)
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	counter := analytics.NewCounter()
	buckets := analytics.NewMonthlyBuckets()
	for _, part := range partials {
		counter.Merge(part.counter)
		buckets.Merge(part.buckets)
	}

	report := &Report{
		ID:            e.newID(),
		GeneratedAt:   time.Now(),
		Labels:        labels,
		Summary:       summarize(labels),
		TopKeywords:   counter.Ranked(e.topN),
		CloudWeights:  counter.Ranked(e.cloudN),
		TotalKeywords: counter.Total(),
		Monthly:       buckets.Series(),
		Samples:       e.collectSamples(records, labels),
	}
	return report, nil
}

// collectSamples gathers up to the configured number of raw texts per label,
// preserving input order. Empty texts are skipped.
func (e *Engine) collectSamples(records []ingest.Record, labels []sentiment.Label) map[sentiment.Label][]string {
	samples := make(map[sentiment.Label][]string, 3)
	for i, rec := range records {
		if rec.Text == "" {
			continue
		}
		label := labels[i]
		if len(samples[label]) >= e.samples {
			continue
		}
		samples[label] = append(samples[label], rec.Text)
	}
	return samples
}

func summarize(labels []sentiment.Label) Summary {
	summary := Summary{
		Total:   len(labels),
		Counts:  make(map[sentiment.Label]int, 3),
		Percent: make(map[sentiment.Label]float64, 3),
	}
	for _, label := range sentiment.All() {
		summary.Counts[label] = 0
		summary.Percent[label] = 0
	}
	for _, label := range labels {
		summary.Counts[label]++
	}
	if summary.Total > 0 {
		for label, count := range summary.Counts {
			summary.Percent[label] = 100 * float64(count) / float64(summary.Total)
		}
	}
	return summary
}

func (e *Engine) newID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ulid.MustNew(ulid.Now(), e.entropy).String()
}
