package store

import (
	"context"
	"errors"

	"figure-catalog/internal/catalog/model"
)

// ErrNotFound is returned for lookups of unknown record ids.
var ErrNotFound = errors.New("record not found")

// Store is the storage collaborator for catalog records. Implementations
// assign ids on insert and default an absent group to OTHER.
type Store interface {
	FindAll(ctx context.Context) ([]model.CatalogRecord, error)
	FindAllByLineUp(ctx context.Context, lineUp model.LineUp) ([]model.CatalogRecord, error)
	FindByID(ctx context.Context, id string) (model.CatalogRecord, error)
	Insert(ctx context.Context, draft model.DraftRecord) (model.CatalogRecord, error)
	BulkInsert(ctx context.Context, drafts []model.DraftRecord) ([]model.CatalogRecord, error)
	Update(ctx context.Context, rec model.CatalogRecord) error
	AddTag(ctx context.Context, id, tag string) error
	RemoveTag(ctx context.Context, id, tag string) error
	Close() error
}

func draftToRecord(draft model.DraftRecord) model.CatalogRecord {
	rec := draft.Record()
	if rec.Group == "" {
		rec.Group = model.GroupOther
	}
	return rec
}
