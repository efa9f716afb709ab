package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFilterDropsExcludedTokens(t *testing.T) {
	got, err := Filter("Bandai Gemini Saga bandai GOLD24", []string{"Bandai"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Gemini Saga GOLD24", got, "exclusion is case-insensitive")
}

func TestFilterSymbolPatternAppliesFirst(t *testing.T) {
	symbols := regexp.MustCompile(`[~™]`)
	got, err := Filter("~Pegasus Seiya~ ™", []string{"seiya"}, symbols)
	require.NoError(t, err)
	assert.Equal(t, "Pegasus", got)
}

func TestFilterCollapsesWhitespace(t *testing.T) {
	got, err := Filter("  Gemini \t  Saga  ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Gemini Saga", got)
}

func TestFilterBlankInput(t *testing.T) {
	_, err := Filter("   ", []string{"x"}, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFilterIdempotent(t *testing.T) {
	symbols := regexp.MustCompile(DefaultSymbolPattern)
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")
		exclusions := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z0-9]{1,8}`), 0, 5).Draw(t, "exclusions")

		once := filterTolerant(text, exclusions, symbols)
		twice := filterTolerant(once, exclusions, symbols)
		if once != twice {
			t.Fatalf("not idempotent: %q -> %q -> %q", text, once, twice)
		}
	})
}
