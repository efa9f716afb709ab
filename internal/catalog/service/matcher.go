package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"figure-catalog/internal/catalog/model"
)

// Store is the slice of the storage collaborator the matcher needs. Matching
// is read-only.
type Store interface {
	FindAllByLineUp(ctx context.Context, lineUp model.LineUp) ([]model.CatalogRecord, error)
}

// MatcherConfig is passed in explicitly; the matcher reads no ambient
// configuration.
type MatcherConfig struct {
	KeywordExclusions []string
	SymbolPattern     string // regexp source, empty disables symbol stripping
	Threshold         int
	DefaultLineUp     model.LineUp
	Policy            Policy
}

func DefaultMatcherConfig() MatcherConfig {
	return MatcherConfig{
		KeywordExclusions: DefaultKeywordExclusions,
		SymbolPattern:     DefaultSymbolPattern,
		Threshold:         DefaultThreshold,
		DefaultLineUp:     model.MythCloth,
		Policy:            StrictOneWinner,
	}
}

// Matcher resolves one external free-text name into zero-or-one canonical
// catalog record. Stateless per call; safe for concurrent use.
type Matcher struct {
	store        Store
	classifier   LineUpClassifier
	ranker       *Ranker
	exclusions   []string
	symbols      *regexp.Regexp
	lineUpTokens []string
	log          zerolog.Logger
}

func NewMatcher(store Store, cfg MatcherConfig, log zerolog.Logger) (*Matcher, error) {
	var symbols *regexp.Regexp
	if cfg.SymbolPattern != "" {
		var err error
		symbols, err = regexp.Compile(cfg.SymbolPattern)
		if err != nil {
			return nil, fmt.Errorf("symbol pattern: %w", err)
		}
	}
	defaultLineUp := cfg.DefaultLineUp
	if defaultLineUp == "" {
		defaultLineUp = model.MythCloth
	}
	return &Matcher{
		store:        store,
		classifier:   LineUpClassifier{Default: defaultLineUp},
		ranker:       NewRanker(cfg.Threshold, cfg.Policy, log),
		exclusions:   cfg.KeywordExclusions,
		symbols:      symbols,
		lineUpTokens: model.LineUpLabelTokens(),
		log:          log,
	}, nil
}

// MatchByName resolves rawName against the catalog. (nil, nil) means no match,
// which is a valid result, not an error.
func (m *Matcher) MatchByName(ctx context.Context, rawName string) (*model.CatalogRecord, error) {
	_, rec, err := m.Resolve(ctx, rawName)
	return rec, err
}

// Resolve is MatchByName plus the derived query, for callers that want to show
// what the engine actually searched for.
func (m *Matcher) Resolve(ctx context.Context, rawName string) (model.MatchQuery, *model.CatalogRecord, error) {
	var query model.MatchQuery

	if len(strings.TrimSpace(rawName)) < 2 {
		return query, nil, fmt.Errorf("%w: name %q is blank or too short", ErrInvalidInput, rawName)
	}
	query.Raw = rawName

	// Pass 1: drop configured noise so the line-up wording stands out.
	filtered, err := Filter(rawName, m.exclusions, m.symbols)
	if err != nil {
		return query, nil, err
	}

	query.LineUp = m.classifier.Classify(filtered)

	// Pass 2: drop the line-up wording itself; what is left is the search
	// string. A name made of nothing but line-up words legitimately filters
	// down to empty here.
	query.NormalizedText = filterTolerant(filtered, m.lineUpTokens, nil)

	records, err := m.store.FindAllByLineUp(ctx, query.LineUp)
	if err != nil {
		return query, nil, fmt.Errorf("find by line-up %s: %w", query.LineUp, err)
	}

	names := make([]string, len(records))
	for i := range records {
		names[i] = records[i].SearchName()
	}

	ranking := m.ranker.Rank(query.NormalizedText, names)
	if !ranking.Accepted {
		return query, nil, nil
	}

	winner := m.pickWinner(records, ranking)
	if winner == nil {
		// Should not happen: the winning name came from this record set.
		m.log.Warn().Str("winner", ranking.Winner).Msg("winning name not found among records")
		return query, nil, nil
	}

	m.log.Debug().
		Str("raw", rawName).
		Str("search", query.NormalizedText).
		Str("line_up", string(query.LineUp)).
		Int("distance", winner.Distance).
		Str("matched", winner.Record.OriginalName).
		Msg("match resolved")
	return query, winner.Record, nil
}

// pickWinner maps the winning name back to its record: first record whose
// search name case-insensitively equals it, by iteration order.
func (m *Matcher) pickWinner(records []model.CatalogRecord, ranking Ranking) *model.MatchCandidate {
	for i := range records {
		if strings.EqualFold(records[i].SearchName(), ranking.Winner) {
			return &model.MatchCandidate{Record: &records[i], Distance: ranking.Distance}
		}
	}
	return nil
}
