package model

import (
	"fmt"
	"time"
)

// CatalogEpoch is the historical minimum for release dates: nothing in the
// catalog predates the first figures of the oldest line.
var CatalogEpoch = time.Date(2003, time.January, 1, 0, 0, 0, 0, time.UTC)

// releaseHorizon bounds how far into the future an unconfirmed release date
// may sit.
const releaseHorizon = 2 * 365 * 24 * time.Hour

// Validate checks the draft's invariants. It returns the first violation
// found, nil when the draft is storable.
func (d DraftRecord) Validate() error {
	return d.validateAt(time.Now())
}

func (d DraftRecord) validateAt(now time.Time) error {
	if d.BasePrice != nil && d.BasePrice.IsNegative() {
		return fmt.Errorf("base price %s is negative", d.BasePrice)
	}
	if d.ReleasePrice != nil && d.ReleasePrice.IsNegative() {
		return fmt.Errorf("release price %s is negative", d.ReleasePrice)
	}
	if d.ReleaseDate != nil {
		if d.ReleaseDate.Before(CatalogEpoch) {
			return fmt.Errorf("release date %s predates the catalog epoch", d.ReleaseDate.Format("2006-01-02"))
		}
		if !d.ConfirmedDate && d.ReleaseDate.After(now.Add(releaseHorizon)) {
			return fmt.Errorf("unconfirmed release date %s is too far in the future", d.ReleaseDate.Format("2006-01-02"))
		}
	}
	return nil
}
