package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-catalog/internal/catalog/model"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	price := decimal.NewFromInt(6000)
	release := time.Date(2013, time.August, 24, 0, 0, 0, 0, time.UTC)
	draft := model.DraftRecord{
		OriginalName:  "Gemini Saga GOLD24",
		BaseName:      "Gemini Saga GOLD24",
		LineUp:        model.MythClothEX,
		Series:        model.SaintSeiya,
		Group:         model.GroupGold,
		Distribution:  model.TamashiiWeb,
		BasePrice:     &price,
		ReleaseDate:   &release,
		ConfirmedDate: true,
		URL:           "http://example.com/saga",
		Flags:         model.Flags{Gold: true, MetalBody: true},
		Remarks:       "Tamashii Nation exclusive",
	}

	recs, err := s.BulkInsert(ctx, []model.DraftRecord{draft})
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.NotEmpty(t, recs[0].ID)

	got, err := s.FindByID(ctx, recs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, draft.OriginalName, got.OriginalName)
	assert.Equal(t, model.MythClothEX, got.LineUp)
	assert.Equal(t, model.GroupGold, got.Group)
	require.NotNil(t, got.BasePrice)
	assert.True(t, got.BasePrice.Equal(price))
	assert.Nil(t, got.ReleasePrice)
	require.NotNil(t, got.ReleaseDate)
	assert.True(t, got.ReleaseDate.Equal(release))
	assert.Nil(t, got.PreorderDate)
	assert.True(t, got.ConfirmedDate)
	assert.True(t, got.Flags.Gold)
	assert.False(t, got.Flags.Surplice)
	assert.Equal(t, "Tamashii Nation exclusive", got.Remarks)
}

func TestSQLiteFindAllByLineUp(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	_, err := s.BulkInsert(ctx, []model.DraftRecord{
		{OriginalName: "Gemini Saga GOLD24", LineUp: model.MythClothEX},
		{OriginalName: "Pegasus Seiya", LineUp: model.MythCloth},
		{OriginalName: "Libra Dohko", LineUp: model.MythClothEX},
	})
	require.NoError(t, err)

	ex, err := s.FindAllByLineUp(ctx, model.MythClothEX)
	require.NoError(t, err)
	require.Len(t, ex, 2)
	assert.Equal(t, "Gemini Saga GOLD24", ex[0].OriginalName)

	all, err := s.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSQLiteGroupDefault(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	rec, err := s.Insert(ctx, model.DraftRecord{OriginalName: "Pegasus Seiya", LineUp: model.MythCloth})
	require.NoError(t, err)
	assert.Equal(t, model.GroupOther, rec.Group)

	got, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, model.GroupOther, got.Group)
}

func TestSQLiteTagsAndUpdate(t *testing.T) {
	s := openTestDB(t)
	ctx := context.Background()

	rec, err := s.Insert(ctx, model.DraftRecord{OriginalName: "Pegasus Seiya", LineUp: model.MythCloth})
	require.NoError(t, err)

	require.NoError(t, s.AddTag(ctx, rec.ID, "restock"))
	require.NoError(t, s.AddTag(ctx, rec.ID, "grail"))
	require.NoError(t, s.RemoveTag(ctx, rec.ID, "restock"))

	got, err := s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"grail"}, got.Tags)

	got.Remarks = "revised"
	require.NoError(t, s.Update(ctx, got))
	got, err = s.FindByID(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Remarks)

	_, err = s.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.AddTag(ctx, "nope", "x"), ErrNotFound)
}
