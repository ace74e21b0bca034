package match

import "github.com/npillmayer/geotext"

// MatchType is the quality of a match between a text and a search term,
// from worst to best.
type MatchType int8

// Qualities of matches.
const (
	MatchNone      MatchType = iota // no match
	MatchSubstring                  // a substring matches, not aligned to word boundaries
	MatchFuzzy                      // a few extra, missing or wrong characters
	MatchPhrase                     // a substring aligned to word boundaries
	MatchFull                       // full match, ignoring case, accents and symbols
)

func (t MatchType) String() string {
	switch t {
	case MatchSubstring:
		return "Substring"
	case MatchFuzzy:
		return "Fuzzy"
	case MatchPhrase:
		return "Phrase"
	case MatchFull:
		return "Full"
	}
	return "None"
}

// Type classifies how well a search term matches a text, e.g. a map object's
// name. Clients use it to rank search results.
func Type(text, term geotext.Text) MatchType {
	if geotext.IsEmpty(term) {
		return MatchNone
	}
	if Compare(text, term, LooseMethod) == geotext.Equal {
		return MatchFull
	}
	if Contains(text, term, LooseMethod) {
		return MatchPhrase
	}
	folded := Folded(term, LooseMethod)
	if FuzzyMatchText(text, term, LooseMethod, DefaultFuzzyDistance(len(folded))) {
		return MatchFuzzy
	}
	if Contains(text, term, FoldMethod) {
		return MatchSubstring
	}
	return MatchNone
}
