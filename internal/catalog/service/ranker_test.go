package service

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRankPicksSmallestDistance(t *testing.T) {
	r := NewRanker(DefaultThreshold, StrictOneWinner, zerolog.Nop())

	got := r.Rank("gemini saga", []string{"Libra Dohko", "Gemini Saga", "Gemini Kanon"})
	assert.True(t, got.Accepted)
	assert.Equal(t, "Gemini Saga", got.Winner)
	assert.Equal(t, 0, got.Distance)
}

func TestRankThresholdBoundary(t *testing.T) {
	r := NewRanker(DefaultThreshold, StrictOneWinner, zerolog.Nop())
	query := strings.Repeat("a", 10)

	// distance exactly 10: rejected, the threshold is strict
	got := r.Rank(query, []string{""})
	assert.False(t, got.Accepted)
	assert.Empty(t, got.Winner)
	assert.Equal(t, 10, got.Distance)

	// distance 9: accepted
	got = r.Rank(query, []string{"a"})
	assert.True(t, got.Accepted)
	assert.Equal(t, "a", got.Winner)
	assert.Equal(t, 9, got.Distance)
}

func TestRankLastWriteWinsPerBucket(t *testing.T) {
	r := NewRanker(DefaultThreshold, StrictOneWinner, zerolog.Nop())

	// both candidates sit at distance 1 from the query; the later one
	// silently owns the bucket
	got := r.Rank("saga", []string{"saga1", "sagax"})
	assert.True(t, got.Accepted)
	assert.Equal(t, "sagax", got.Winner)
	assert.Nil(t, got.Ties)
}

func TestRankReportTiesKeepsBucket(t *testing.T) {
	r := NewRanker(DefaultThreshold, ReportTies, zerolog.Nop())

	got := r.Rank("saga", []string{"saga1", "sagax", "unrelated name"})
	assert.True(t, got.Accepted)
	assert.Equal(t, []string{"saga1", "sagax"}, got.Ties)
}

func TestRankNoCandidates(t *testing.T) {
	r := NewRanker(DefaultThreshold, StrictOneWinner, zerolog.Nop())

	got := r.Rank("anything", nil)
	assert.False(t, got.Accepted)
	assert.Equal(t, -1, got.Distance)
}

func TestRankCaseInsensitive(t *testing.T) {
	r := NewRanker(DefaultThreshold, StrictOneWinner, zerolog.Nop())

	got := r.Rank("GEMINI SAGA", []string{"gemini saga"})
	assert.True(t, got.Accepted)
	assert.Equal(t, 0, got.Distance)
}
