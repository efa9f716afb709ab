package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateParseError reports a date cell with non-numeric components. Row-scoped:
// the ingestor decides whether it kills the row or the batch.
type DateParseError struct {
	Text string
	Err  error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q: %v", e.Text, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }

// ResolveDate disambiguates the two date shapes the source data mixes by
// counting "/" separators:
//
//	zero  → not a date for this resolver, absent
//	one   → month/year, resolved to the first of that month
//	two+  → month/day/year, exact
//
// The returned bool reports whether the day is exact (the confirmation flag).
// Deliberately fragile: downstream confirmation logic depends on exactly this
// rule, so do not "fix" it to guess harder.
func ResolveDate(text string) (*time.Time, bool, error) {
	text = strings.TrimSpace(text)
	if strings.Count(text, "/") == 0 {
		return nil, false, nil
	}

	parts := strings.Split(text, "/")
	if len(parts) == 2 {
		month, err := atoiCell(text, parts[0])
		if err != nil {
			return nil, false, err
		}
		year, err := atoiCell(text, parts[1])
		if err != nil {
			return nil, false, err
		}
		d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		return &d, false, nil
	}

	month, err := atoiCell(text, parts[0])
	if err != nil {
		return nil, false, err
	}
	day, err := atoiCell(text, parts[1])
	if err != nil {
		return nil, false, err
	}
	year, err := atoiCell(text, parts[2])
	if err != nil {
		return nil, false, err
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &d, true, nil
}

func atoiCell(cell, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(part))
	if err != nil {
		return 0, &DateParseError{Text: cell, Err: err}
	}
	return n, nil
}
