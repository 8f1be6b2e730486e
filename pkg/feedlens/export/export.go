// Package export serializes analysis output for the presentation layer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/internalerr"
	"github.com/cognicore/feedlens/pkg/feedlens/sentiment"
)

// BOM is the UTF-8 byte order mark. Export prepends it so spreadsheet tools
// decode Hangul correctly; the payload itself is plain UTF-8 and lossless
// for any script.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// header lists the exported columns: the input record fields augmented with
// the sentiment label.
var header = []string{"index", "date", "category", "rating", "feedback", "sentiment"}

// WriteCSV writes the input records augmented with their sentiment labels as
// BOM-prefixed UTF-8 CSV. labels must align 1:1 with records.
func WriteCSV(w io.Writer, records []ingest.Record, labels []sentiment.Label) error {
	if len(records) != len(labels) {
		return fmt.Errorf("%w: %d records but %d labels", internalerr.ErrInvalidInput, len(records), len(labels))
	}

	if _, err := w.Write(BOM); err != nil {
		return fmt.Errorf("write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range records {
		row := []string{
			strconv.Itoa(rec.Index),
			formatTimestamp(rec.Timestamp),
			rec.Category,
			formatRating(rec.Rating),
			rec.Text,
			labels[i].String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename returns the conventional export file name for a run finishing at
// the given time, e.g. feedback_analysis_20240131_154500.csv.
func Filename(now time.Time) string {
	return "feedback_analysis_" + now.Format("20060102_150405") + ".csv"
}

func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format("2006-01-02 15:04:05")
}

func formatRating(rating int) string {
	if rating == 0 {
		return ""
	}
	return strconv.Itoa(rating)
}
