package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-catalog/internal/catalog/model"
)

type fakeStore struct {
	records    []model.CatalogRecord
	lastLineUp model.LineUp
}

func (f *fakeStore) FindAllByLineUp(_ context.Context, lineUp model.LineUp) ([]model.CatalogRecord, error) {
	f.lastLineUp = lineUp
	var out []model.CatalogRecord
	for _, r := range f.records {
		if r.LineUp == lineUp {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestMatcher(t *testing.T, st Store, cfg MatcherConfig) *Matcher {
	t.Helper()
	m, err := NewMatcher(st, cfg, zerolog.Nop())
	require.NoError(t, err)
	return m
}

func TestMatchByNameEndToEnd(t *testing.T) {
	st := &fakeStore{records: []model.CatalogRecord{
		{ID: "1", OriginalName: "Gemini Saga GOLD24", LineUp: model.MythClothEX},
		{ID: "2", OriginalName: "Libra Dohko (Sacred Cloth)", LineUp: model.MythClothEX},
	}}
	m := newTestMatcher(t, st, DefaultMatcherConfig())

	rec, err := m.MatchByName(context.Background(),
		"Bandai Spirits Saint Seiya Myth Cloth EX Masami Kurumada Gemini Saga GOLD24 Tamashi Nation 2021")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "1", rec.ID)
	assert.Equal(t, model.MythClothEX, st.lastLineUp, "candidates fetched for the detected line-up only")
}

func TestResolveDerivedQuery(t *testing.T) {
	st := &fakeStore{records: []model.CatalogRecord{
		{ID: "1", OriginalName: "Gemini Saga GOLD24", LineUp: model.MythClothEX},
	}}
	m := newTestMatcher(t, st, DefaultMatcherConfig())

	query, rec, err := m.Resolve(context.Background(), "Bandai Myth Cloth EX Gemini Saga GOLD24")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, model.MythClothEX, query.LineUp)
	assert.Equal(t, "Gemini Saga GOLD24", query.NormalizedText, "line-up wording stripped from the search string")
}

func TestMatchByNameInvalidInput(t *testing.T) {
	m := newTestMatcher(t, &fakeStore{}, DefaultMatcherConfig())

	for _, name := range []string{"", "   ", "x", " x "} {
		_, err := m.MatchByName(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidInput, "name %q", name)
	}
}

func TestMatchByNameNoCandidates(t *testing.T) {
	// catalog only holds EX records; a Figuarts Zero query finds nothing,
	// which is a valid empty result
	st := &fakeStore{records: []model.CatalogRecord{
		{ID: "1", OriginalName: "Gemini Saga GOLD24", LineUp: model.MythClothEX},
	}}
	m := newTestMatcher(t, st, DefaultMatcherConfig())

	rec, err := m.MatchByName(context.Background(), "Figuarts Zero Pegasus")
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestMatchByNameConfigurableThreshold(t *testing.T) {
	st := &fakeStore{records: []model.CatalogRecord{
		{ID: "1", OriginalName: "Pegasus", LineUp: model.MythCloth},
	}}

	// "Pegasus!!!" is distance 3 from "Pegasus"; a threshold of 3 rejects
	// (strictly-less rule), 4 accepts
	cfg := DefaultMatcherConfig()
	cfg.SymbolPattern = ""
	cfg.Threshold = 3
	rec, err := newTestMatcher(t, st, cfg).MatchByName(context.Background(), "Pegasus!!!")
	require.NoError(t, err)
	assert.Nil(t, rec)

	cfg.Threshold = 4
	rec, err = newTestMatcher(t, st, cfg).MatchByName(context.Background(), "Pegasus!!!")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "1", rec.ID)
}

func TestMatchByNamePrefersBaseName(t *testing.T) {
	st := &fakeStore{records: []model.CatalogRecord{
		{ID: "1", OriginalName: "Pegasus Seiya ~Final Bronze Cloth~", BaseName: "Pegasus Final", LineUp: model.MythCloth},
	}}
	m := newTestMatcher(t, st, DefaultMatcherConfig())

	rec, err := m.MatchByName(context.Background(), "Myth Cloth Pegasus Final")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "1", rec.ID)
}
