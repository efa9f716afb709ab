package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"figure-catalog/internal/catalog/model"
)

type captureStore struct {
	drafts []model.DraftRecord
	err    error
}

func (c *captureStore) BulkInsert(_ context.Context, drafts []model.DraftRecord) ([]model.CatalogRecord, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.drafts = append(c.drafts, drafts...)
	out := make([]model.CatalogRecord, len(drafts))
	for i, d := range drafts {
		out[i] = d.Record()
	}
	return out, nil
}

const header = "Original Name\tBase Name\tBase Price\t\tAnnouncement\tPreorder\tRelease\tURL\tDistribution\tLine Up\tSeries\tGroup\n"

func TestIngestCountsProducedDrafts(t *testing.T) {
	src := header +
		"Gemini Saga GOLD24\tGemini Saga GOLD24\t¥6,000\t\t8/2013\t\t8/24/2013\n" +
		"\n" +
		"Libra Dohko\tLibra Dohko\t$180\n" +
		"   \n" +
		"Pegasus Seiya\tPegasus\n"

	st := &captureStore{}
	g := NewIngestor(st, zerolog.Nop())

	count, err := g.Ingest(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, count, "blank lines are skipped, not counted or failed")
	require.Len(t, st.drafts, 3)
	assert.Equal(t, "Gemini Saga GOLD24", st.drafts[0].OriginalName)
	assert.Equal(t, "Pegasus Seiya", st.drafts[2].OriginalName)
}

func TestIngestSkipsHeaderOnly(t *testing.T) {
	st := &captureStore{}
	g := NewIngestor(st, zerolog.Nop())

	count, err := g.Ingest(context.Background(), strings.NewReader(header))
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, st.drafts)
}

func TestIngestTolerantSkipsBadDates(t *testing.T) {
	src := header +
		"Good Row\tGood\t\t\t8/2013\n" +
		"Bad Row\tBad\t\t\taug/2013\n"

	st := &captureStore{}
	g := NewIngestor(st, zerolog.Nop())

	count, err := g.Ingest(context.Background(), strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1, count, "bad-date row is skipped by default")
}

func TestIngestStrictAbortsOnBadDate(t *testing.T) {
	src := header +
		"Good Row\tGood\t\t\t8/2013\n" +
		"Bad Row\tBad\t\t\taug/2013\n"

	st := &captureStore{}
	g := NewIngestor(st, zerolog.Nop())
	g.Strict = true

	_, err := g.Ingest(context.Background(), strings.NewReader(src))
	var dpe *DateParseError
	require.ErrorAs(t, err, &dpe)
	assert.Empty(t, st.drafts, "nothing committed on strict failure")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestIngestStreamFailure(t *testing.T) {
	g := NewIngestor(&captureStore{}, zerolog.Nop())

	_, err := g.Ingest(context.Background(), failingReader{})
	var ie *IngestionError
	require.ErrorAs(t, err, &ie)
}

func TestIngestRows(t *testing.T) {
	rows := [][]string{
		{"Original Name", "Base Name"}, // header
		{"Gemini Saga GOLD24", "Gemini Saga GOLD24", "¥6,000"},
		{"", ""}, // blank row
		{"Libra Dohko", "Libra Dohko"},
	}

	st := &captureStore{}
	g := NewIngestor(st, zerolog.Nop())

	count, err := g.IngestRows(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestIngestBulkInsertFailure(t *testing.T) {
	st := &captureStore{err: errors.New("db gone")}
	g := NewIngestor(st, zerolog.Nop())

	_, err := g.Ingest(context.Background(), strings.NewReader(header+"Row\tRow\n"))
	require.Error(t, err)
}
