package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"figure-catalog/internal/catalog/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id                TEXT PRIMARY KEY,
	original_name     TEXT NOT NULL,
	base_name         TEXT NOT NULL DEFAULT '',
	line_up           TEXT NOT NULL,
	series            TEXT NOT NULL DEFAULT '',
	grp               TEXT NOT NULL DEFAULT 'OTHER',
	distribution      TEXT NOT NULL DEFAULT '',
	base_price        TEXT,
	release_price     TEXT,
	announcement_date TEXT,
	preorder_date     TEXT,
	release_date      TEXT,
	confirmed_date    INTEGER NOT NULL DEFAULT 0,
	url               TEXT NOT NULL DEFAULT '',
	flags             TEXT NOT NULL DEFAULT '{}',
	tags              TEXT NOT NULL DEFAULT '[]',
	remarks           TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_records_line_up ON records(line_up);
`

const recordColumns = `id, original_name, base_name, line_up, series, grp, distribution,
	base_price, release_price, announcement_date, preorder_date, release_date,
	confirmed_date, url, flags, tags, remarks`

// SQLite persists catalog records in a single-file database
// (modernc.org/sqlite, no cgo). Prices are stored as decimal strings, dates
// as ISO days, flags and tags as JSON.
type SQLite struct {
	db *sql.DB
}

func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) FindAll(ctx context.Context) ([]model.CatalogRecord, error) {
	return s.query(ctx, `SELECT `+recordColumns+` FROM records ORDER BY rowid`)
}

func (s *SQLite) FindAllByLineUp(ctx context.Context, lineUp model.LineUp) ([]model.CatalogRecord, error) {
	return s.query(ctx, `SELECT `+recordColumns+` FROM records WHERE line_up = ? ORDER BY rowid`, string(lineUp))
}

func (s *SQLite) FindByID(ctx context.Context, id string) (model.CatalogRecord, error) {
	rows, err := s.query(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	if err != nil {
		return model.CatalogRecord{}, err
	}
	if len(rows) == 0 {
		return model.CatalogRecord{}, ErrNotFound
	}
	return rows[0], nil
}

func (s *SQLite) Insert(ctx context.Context, draft model.DraftRecord) (model.CatalogRecord, error) {
	recs, err := s.BulkInsert(ctx, []model.DraftRecord{draft})
	if err != nil {
		return model.CatalogRecord{}, err
	}
	return recs[0], nil
}

func (s *SQLite) BulkInsert(ctx context.Context, drafts []model.DraftRecord) ([]model.CatalogRecord, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	out := make([]model.CatalogRecord, 0, len(drafts))
	for _, d := range drafts {
		rec := draftToRecord(d)
		rec.ID = uuid.NewString()

		flags, err := json.Marshal(rec.Flags)
		if err != nil {
			return nil, fmt.Errorf("encode flags: %w", err)
		}
		tags, err := json.Marshal(emptyIfNil(rec.Tags))
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}

		_, err = stmt.ExecContext(ctx,
			rec.ID, rec.OriginalName, rec.BaseName, string(rec.LineUp),
			string(rec.Series), string(rec.Group), string(rec.Distribution),
			decString(rec.BasePrice), decString(rec.ReleasePrice),
			dayString(rec.FirstAnnouncementDate), dayString(rec.PreorderDate), dayString(rec.ReleaseDate),
			boolInt(rec.ConfirmedDate), rec.URL, string(flags), string(tags), rec.Remarks,
		)
		if err != nil {
			return nil, fmt.Errorf("insert %q: %w", rec.OriginalName, err)
		}
		out = append(out, rec)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (s *SQLite) Update(ctx context.Context, rec model.CatalogRecord) error {
	flags, err := json.Marshal(rec.Flags)
	if err != nil {
		return fmt.Errorf("encode flags: %w", err)
	}
	tags, err := json.Marshal(emptyIfNil(rec.Tags))
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE records SET
		original_name = ?, base_name = ?, line_up = ?, series = ?, grp = ?, distribution = ?,
		base_price = ?, release_price = ?, announcement_date = ?, preorder_date = ?, release_date = ?,
		confirmed_date = ?, url = ?, flags = ?, tags = ?, remarks = ?
		WHERE id = ?`,
		rec.OriginalName, rec.BaseName, string(rec.LineUp), string(rec.Series), string(rec.Group), string(rec.Distribution),
		decString(rec.BasePrice), decString(rec.ReleasePrice),
		dayString(rec.FirstAnnouncementDate), dayString(rec.PreorderDate), dayString(rec.ReleaseDate),
		boolInt(rec.ConfirmedDate), rec.URL, string(flags), string(tags), rec.Remarks, rec.ID,
	)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) AddTag(ctx context.Context, id, tag string) error {
	return s.mutateTags(ctx, id, func(tags []string) []string {
		for _, t := range tags {
			if t == tag {
				return tags
			}
		}
		return append(tags, tag)
	})
}

func (s *SQLite) RemoveTag(ctx context.Context, id, tag string) error {
	return s.mutateTags(ctx, id, func(tags []string) []string {
		kept := tags[:0]
		for _, t := range tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		return kept
	})
}

func (s *SQLite) mutateTags(ctx context.Context, id string, fn func([]string) []string) error {
	rec, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	rec.Tags = fn(rec.Tags)
	return s.Update(ctx, rec)
}

func (s *SQLite) query(ctx context.Context, q string, args ...any) ([]model.CatalogRecord, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var out []model.CatalogRecord
	for rows.Next() {
		var (
			rec                          model.CatalogRecord
			lineUp, series, grp, distrib string
			basePrice, releasePrice      sql.NullString
			annDate, preDate, relDate    sql.NullString
			confirmed                    int
			flagsJSON, tagsJSON          string
		)
		err := rows.Scan(&rec.ID, &rec.OriginalName, &rec.BaseName, &lineUp, &series, &grp, &distrib,
			&basePrice, &releasePrice, &annDate, &preDate, &relDate,
			&confirmed, &rec.URL, &flagsJSON, &tagsJSON, &rec.Remarks)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		rec.LineUp = model.LineUp(lineUp)
		rec.Series = model.Series(series)
		rec.Group = model.Group(grp)
		rec.Distribution = model.Distribution(distrib)
		rec.ConfirmedDate = confirmed != 0
		if rec.BasePrice, err = scanDec(basePrice); err != nil {
			return nil, err
		}
		if rec.ReleasePrice, err = scanDec(releasePrice); err != nil {
			return nil, err
		}
		if rec.FirstAnnouncementDate, err = scanDay(annDate); err != nil {
			return nil, err
		}
		if rec.PreorderDate, err = scanDay(preDate); err != nil {
			return nil, err
		}
		if rec.ReleaseDate, err = scanDay(relDate); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(flagsJSON), &rec.Flags); err != nil {
			return nil, fmt.Errorf("decode flags: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &rec.Tags); err != nil {
			return nil, fmt.Errorf("decode tags: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

const dayLayout = "2006-01-02"

func dayString(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dayLayout)
}

func decString(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func scanDay(v sql.NullString) (*time.Time, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(dayLayout, v.String, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("decode date %q: %w", v.String, err)
	}
	return &t, nil
}

func scanDec(v sql.NullString) (*decimal.Decimal, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("decode price %q: %w", v.String, err)
	}
	return &d, nil
}

func emptyIfNil(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
