package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"figure-catalog/internal/catalog/model"
)

// IngestionError is a stream-level failure. It aborts the whole batch; no
// partial commit is promised at this layer.
type IngestionError struct {
	Err error
}

func (e *IngestionError) Error() string { return fmt.Sprintf("ingestion aborted: %v", e.Err) }
func (e *IngestionError) Unwrap() error { return e.Err }

// Store is the slice of the storage collaborator the ingestor needs.
type Store interface {
	BulkInsert(ctx context.Context, drafts []model.DraftRecord) ([]model.CatalogRecord, error)
}

// Ingestor streams a source file through the row parser and bulk-inserts the
// resulting drafts. Holds no state across calls: no dedup, no upsert, each
// call is a fresh append.
type Ingestor struct {
	store Store
	// Strict aborts the batch on the first row-level date error instead of
	// the default log-and-skip.
	Strict bool
	log    zerolog.Logger
}

func NewIngestor(store Store, log zerolog.Logger) *Ingestor {
	return &Ingestor{store: store, log: log}
}

// Ingest reads newline-delimited tab-separated text, skips the header line,
// and returns the number of draft records produced.
func (g *Ingestor) Ingest(ctx context.Context, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var drafts []model.DraftRecord
	line := 0
	for sc.Scan() {
		line++
		if line == 1 {
			continue // header
		}
		draft, err := ParseRow(sc.Text())
		if err != nil {
			if g.Strict {
				return 0, err
			}
			g.log.Warn().Int("line", line).Err(err).Msg("row skipped")
			continue
		}
		if draft == nil {
			continue // blank line, not a failure
		}
		drafts = append(drafts, *draft)
	}
	if err := sc.Err(); err != nil {
		return 0, &IngestionError{Err: err}
	}

	return g.flush(ctx, drafts)
}

// IngestRows is Ingest for pre-split positional rows (spreadsheet readers).
// The first row is treated as the header.
func (g *Ingestor) IngestRows(ctx context.Context, rows [][]string) (int, error) {
	var drafts []model.DraftRecord
	for i, fields := range rows {
		if i == 0 {
			continue // header
		}
		draft, err := ParseFields(fields)
		if err != nil {
			if g.Strict {
				return 0, err
			}
			g.log.Warn().Int("row", i+1).Err(err).Msg("row skipped")
			continue
		}
		if draft == nil {
			continue
		}
		drafts = append(drafts, *draft)
	}
	return g.flush(ctx, drafts)
}

func (g *Ingestor) flush(ctx context.Context, drafts []model.DraftRecord) (int, error) {
	if len(drafts) == 0 {
		return 0, nil
	}
	if _, err := g.store.BulkInsert(ctx, drafts); err != nil {
		return 0, fmt.Errorf("bulk insert: %w", err)
	}
	g.log.Info().Int("count", len(drafts)).Msg("drafts ingested")
	return len(drafts), nil
}

// AsDateParseError reports whether err is a row-level date failure.
func AsDateParseError(err error) (*DateParseError, bool) {
	var dpe *DateParseError
	ok := errors.As(err, &dpe)
	return dpe, ok
}
