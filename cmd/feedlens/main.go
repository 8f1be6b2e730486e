package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cognicore/feedlens/pkg/feedlens"
	"github.com/cognicore/feedlens/pkg/feedlens/config"
	"github.com/cognicore/feedlens/pkg/feedlens/export"
	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
	"github.com/cognicore/feedlens/pkg/feedlens/source"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to CSV or SQLite input file (required)")
		table      = flag.String("table", "", "Table name (SQLite input only)")
		textCol    = flag.String("text-column", "feedback", "Column holding the feedback text")
		dateCol    = flag.String("date-column", "", "Optional column holding the record timestamp")
		catCol     = flag.String("category-column", "", "Optional column holding the record category")
		ratingCol  = flag.String("rating-column", "", "Optional column holding the record rating")
		lexiconCfg = flag.String("lexicon", "", "Lexicon YAML file (default: built-in Korean lexicon)")
		stopCfg    = flag.String("stoplist", "", "Stoplist YAML file (default: built-in Korean particles)")
		top        = flag.Int("top", feedlens.DefaultTopKeywords, "Ranked keywords to keep in the report")
		workers    = flag.Int("workers", 0, "Analysis worker count (0 = GOMAXPROCS)")
		exportPath = flag.String("export", "", "Optional path for the label-augmented CSV export")
		asJSON     = flag.Bool("json", false, "Emit the full report as JSON instead of a text summary")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	ctx := context.Background()

	loader := config.Loader{
		LexiconPath:  *lexiconCfg,
		StoplistPath: *stopCfg,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	opts := source.Options{
		TextColumn:     *textCol,
		DateColumn:     *dateCol,
		CategoryColumn: *catCol,
		RatingColumn:   *ratingCol,
	}

	records, err := readRecords(ctx, *input, *table, opts)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	engine := feedlens.New(feedlens.Options{
		Lexicon:     components.Lexicon,
		Tokenizer:   components.Tokenizer,
		Workers:     *workers,
		TopKeywords: *top,
	})

	report, err := engine.Analyze(ctx, records)
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	if *exportPath != "" {
		if err := writeExport(*exportPath, records, report.Labels); err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("wrote %s", *exportPath)
	}

	if *asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			log.Fatalf("marshal report: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	printSummary(report)
}

// readRecords picks the source by file extension; --table forces SQLite.
func readRecords(ctx context.Context, input, table string, opts source.Options) ([]ingest.Record, error) {
	ext := strings.ToLower(filepath.Ext(input))
	if table != "" || ext == ".db" || ext == ".sqlite" || ext == ".sqlite3" {
		if table == "" {
			table = "feedback"
		}
		return source.SQLite(ctx, input, table, opts)
	}
	return source.CSV(input, opts)
}

func writeExport(path string, records []ingest.Record, labels []sentiment.Label) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteCSV(f, records, labels)
}

func printSummary(report *feedlens.Report) {
	fmt.Printf("run %s\n", report.ID)
	fmt.Printf("records: %d\n", report.Summary.Total)
	for _, label := range sentiment.All() {
		fmt.Printf("  %-8s %5d  (%.1f%%)\n",
			label, report.Summary.Counts[label], report.Summary.Percent[label])
	}

	fmt.Printf("keywords: %d occurrences, top %d:\n", report.TotalKeywords, len(report.TopKeywords))
	for _, tc := range report.TopKeywords {
		fmt.Printf("  %-20s %d\n", tc.Term, tc.Count)
	}

	if len(report.Monthly) > 0 {
		fmt.Println("monthly sentiment:")
		for _, bucket := range report.Monthly {
			fmt.Printf("  %s  pos=%d neg=%d neu=%d\n",
				bucket.Month.Format("2006-01"),
				bucket.Counts[sentiment.Positive],
				bucket.Counts[sentiment.Negative],
				bucket.Counts[sentiment.Neutral])
		}
	}
}
