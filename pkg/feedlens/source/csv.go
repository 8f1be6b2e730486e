package source

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/internalerr"
)

// CSV reads feedback records from a delimited file. The first row is the
// header; column names resolve case-insensitively. A leading UTF-8 BOM, as
// written by spreadsheet exports, is tolerated.
func CSV(path string, opts Options) ([]ingest.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f, opts)
}

// ReadCSV reads feedback records from r. See CSV.
func ReadCSV(r io.Reader, opts Options) ([]ingest.Record, error) {
	if strings.TrimSpace(opts.TextColumn) == "" {
		return nil, fmt.Errorf("%w: text column name is required", internalerr.ErrInvalidInput)
	}

	cr := csv.NewReader(stripBOM(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	textCol, err := findColumn(header, opts.TextColumn, true)
	if err != nil {
		return nil, err
	}
	dateCol, err := findColumn(header, opts.DateColumn, false)
	if err != nil {
		return nil, err
	}
	catCol, err := findColumn(header, opts.CategoryColumn, false)
	if err != nil {
		return nil, err
	}
	ratingCol, err := findColumn(header, opts.RatingColumn, false)
	if err != nil {
		return nil, err
	}

	var records []ingest.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(records)+1, err)
		}

		rec := ingest.Record{
			Index: len(records),
			Text:  ingest.Clean(cell(row, textCol)),
		}
		if dateCol >= 0 {
			rec.Timestamp = parseTimestamp(cell(row, dateCol))
		}
		if catCol >= 0 {
			rec.Category = strings.TrimSpace(cell(row, catCol))
		}
		if ratingCol >= 0 {
			rec.Rating = parseRating(cell(row, ratingCol))
		}
		records = append(records, rec)
	}

	return records, nil
}

// findColumn resolves a header name to its index. Optional columns with an
// empty name resolve to -1; a named column that is absent is an error either
// way, so a typo never silently drops a field.
func findColumn(header []string, name string, required bool) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if required {
			return -1, fmt.Errorf("%w: column name is required", internalerr.ErrInvalidInput)
		}
		return -1, nil
	}
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q not in header %v", internalerr.ErrMissingColumn, name, header)
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// stripBOM drops a leading UTF-8 byte order mark if present.
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	head, err := br.Peek(3)
	if err == nil && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		br.Discard(3)
	}
	return br
}
