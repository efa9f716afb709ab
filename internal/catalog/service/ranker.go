package service

import (
	"strings"

	"github.com/rs/zerolog"
)

// Policy decides what happens when two candidates land on the same distance.
type Policy int

const (
	// StrictOneWinner keeps one name per distance bucket, last write wins.
	// This mirrors long-observed production behavior; a collision is logged
	// but never surfaced to callers.
	StrictOneWinner Policy = iota
	// ReportTies keeps every name in the bucket so callers can inspect
	// ambiguity instead of silently losing it.
	ReportTies
)

// DefaultThreshold is the distance a winner must stay strictly below to be
// accepted. Tunable, not a law; nobody has written down why it is 10.
const DefaultThreshold = 10

// Ranker computes case-insensitive Levenshtein distances between a normalized
// query and candidate names and picks a winner under the threshold.
type Ranker struct {
	Threshold int
	Policy    Policy
	log       zerolog.Logger
}

func NewRanker(threshold int, policy Policy, log zerolog.Logger) *Ranker {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Ranker{Threshold: threshold, Policy: policy, log: log}
}

// Ranking is the outcome of one Rank call.
type Ranking struct {
	Winner   string   // empty unless Accepted
	Distance int      // winning (or rejected minimum) distance; -1 with no candidates
	Ties     []string // all names in the winning bucket, ReportTies only
	Accepted bool
}

// Rank scans candidates and returns the provisional winner, accepted only if
// its distance is strictly below the threshold.
func (r *Ranker) Rank(normalizedQuery string, candidates []string) Ranking {
	if len(candidates) == 0 {
		return Ranking{Distance: -1}
	}

	q := strings.ToLower(normalizedQuery)
	buckets := make(map[int]string, len(candidates))
	var tieBuckets map[int][]string
	if r.Policy == ReportTies {
		tieBuckets = make(map[int][]string, len(candidates))
	}

	best := -1
	for _, cand := range candidates {
		d := levenshtein(q, strings.ToLower(cand))
		if prev, ok := buckets[d]; ok {
			r.log.Warn().
				Int("distance", d).
				Str("kept", cand).
				Str("dropped", prev).
				Msg("distance bucket collision, last write wins")
		}
		buckets[d] = cand
		if r.Policy == ReportTies {
			tieBuckets[d] = append(tieBuckets[d], cand)
		}
		if best == -1 || d < best {
			best = d
		}
	}

	if best >= r.Threshold {
		r.log.Warn().
			Int("distance", best).
			Int("threshold", r.Threshold).
			Str("query", normalizedQuery).
			Msg("best candidate rejected by threshold")
		return Ranking{Distance: best}
	}

	out := Ranking{Winner: buckets[best], Distance: best, Accepted: true}
	if r.Policy == ReportTies {
		out.Ties = tieBuckets[best]
	}
	return out
}
