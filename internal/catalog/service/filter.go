package service

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter strips known noise from a raw name: symbol matches first, then whole
// tokens that case-insensitively equal an exclusion entry. Remaining tokens
// are rejoined with single spaces. Idempotent for a fixed exclusion set.
// Blank-after-trim input fails with ErrInvalidInput; callers that tolerate
// empty use filterTolerant.
func Filter(text string, exclusions []string, symbolPattern *regexp.Regexp) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: blank text", ErrInvalidInput)
	}
	return filterTolerant(text, exclusions, symbolPattern), nil
}

func filterTolerant(text string, exclusions []string, symbolPattern *regexp.Regexp) string {
	out := text
	if symbolPattern != nil {
		out = symbolPattern.ReplaceAllString(out, "")
	}

	drop := make(map[string]struct{}, len(exclusions))
	for _, e := range exclusions {
		drop[strings.ToLower(e)] = struct{}{}
	}

	kept := make([]string, 0, 8)
	for _, tok := range strings.Fields(out) {
		if _, ok := drop[strings.ToLower(tok)]; ok {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// DefaultKeywordExclusions covers the manufacturer, franchise and event
// wording marketplaces prepend to listings. Line-up words are deliberately
// absent: the matcher still needs them to classify before the second filter
// pass strips them.
var DefaultKeywordExclusions = []string{
	"Bandai",
	"Spirits",
	"Seiya",
	"Masami",
	"Kurumada",
	"Tamashii",
	"Tamashi",
	"Nation",
	"Nations",
	"Exclusive",
	"Limited",
	"Action",
	"Figure",
	"Figurine",
	"New",
	"Sealed",
	"Authentic",
}

// DefaultSymbolPattern removes decoration glyphs sellers sprinkle into
// listings.
const DefaultSymbolPattern = `[~™®©†‼«»"]`
