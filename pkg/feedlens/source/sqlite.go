package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/feedlens/pkg/feedlens/ingest"
	"github.com/cognicore/feedlens/pkg/feedlens/internalerr"
)

// identRe restricts table and column names to plain SQL identifiers, since
// they are interpolated into the query text.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLite reads feedback records from a table in a SQLite database file. The
// database is opened read-only; the analysis engine never writes anything
// back. Column selection and row coercion behave exactly like the CSV
// source: NULL or unparsable date cells become zero timestamps.
func SQLite(ctx context.Context, path, table string, opts Options) ([]ingest.Record, error) {
	if strings.TrimSpace(opts.TextColumn) == "" {
		return nil, fmt.Errorf("%w: text column name is required", internalerr.ErrInvalidInput)
	}

	cols := []string{opts.TextColumn}
	for _, c := range []string{opts.DateColumn, opts.CategoryColumn, opts.RatingColumn} {
		if strings.TrimSpace(c) != "" {
			cols = append(cols, c)
		}
	}
	for _, ident := range append([]string{table}, cols...) {
		if !identRe.MatchString(ident) {
			return nil, fmt.Errorf("%w: invalid identifier %q", internalerr.ErrInvalidInput, ident)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var records []ingest.Record
	for rows.Next() {
		cells := make([]sql.NullString, len(cols))
		dest := make([]any, len(cols))
		for i := range cells {
			dest[i] = &cells[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(records)+1, err)
		}

		rec := ingest.Record{
			Index: len(records),
			Text:  ingest.Clean(cells[0].String),
		}
		next := 1
		if strings.TrimSpace(opts.DateColumn) != "" {
			rec.Timestamp = parseTimestamp(cells[next].String)
			next++
		}
		if strings.TrimSpace(opts.CategoryColumn) != "" {
			rec.Category = strings.TrimSpace(cells[next].String)
			next++
		}
		if strings.TrimSpace(opts.RatingColumn) != "" {
			rec.Rating = parseRating(cells[next].String)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}

	return records, nil
}
