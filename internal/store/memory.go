package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"figure-catalog/internal/catalog/model"
)

// Memory is an in-process Store used when no DB_PATH is configured, and by
// tests.
type Memory struct {
	mu      sync.RWMutex
	records map[string]model.CatalogRecord
	order   []string // insertion order, keeps listings deterministic
}

func NewMemory() *Memory {
	return &Memory{records: make(map[string]model.CatalogRecord)}
}

func (m *Memory) FindAll(_ context.Context) ([]model.CatalogRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]model.CatalogRecord, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.records[id])
	}
	return out, nil
}

func (m *Memory) FindAllByLineUp(_ context.Context, lineUp model.LineUp) ([]model.CatalogRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []model.CatalogRecord
	for _, id := range m.order {
		if rec := m.records[id]; rec.LineUp == lineUp {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Memory) FindByID(_ context.Context, id string) (model.CatalogRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return model.CatalogRecord{}, ErrNotFound
	}
	return rec, nil
}

func (m *Memory) Insert(_ context.Context, draft model.DraftRecord) (model.CatalogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.insertLocked(draft), nil
}

func (m *Memory) BulkInsert(_ context.Context, drafts []model.DraftRecord) ([]model.CatalogRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.CatalogRecord, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, m.insertLocked(d))
	}
	return out, nil
}

func (m *Memory) insertLocked(draft model.DraftRecord) model.CatalogRecord {
	rec := draftToRecord(draft)
	rec.ID = uuid.NewString()
	m.records[rec.ID] = rec
	m.order = append(m.order, rec.ID)
	return rec
}

func (m *Memory) Update(_ context.Context, rec model.CatalogRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[rec.ID]; !ok {
		return ErrNotFound
	}
	m.records[rec.ID] = rec
	return nil
}

func (m *Memory) AddTag(_ context.Context, id, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	for _, t := range rec.Tags {
		if t == tag {
			return nil
		}
	}
	// Tags keep insertion order; listings rely on it. Records returned by the
	// read methods share the old backing array, so mutate a fresh one.
	tags := make([]string, 0, len(rec.Tags)+1)
	tags = append(tags, rec.Tags...)
	rec.Tags = append(tags, tag)
	m.records[id] = rec
	return nil
}

func (m *Memory) RemoveTag(_ context.Context, id, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return ErrNotFound
	}
	// Never compact in place: earlier snapshots alias the backing array.
	kept := make([]string, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	rec.Tags = kept
	m.records[id] = rec
	return nil
}

func (m *Memory) Close() error { return nil }
