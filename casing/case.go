package casing

import (
	"strings"

	"github.com/npillmayer/geotext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// LetterCase is a kind of letter case transformation.
type LetterCase int8

// Letter cases.
const (
	NoCase   LetterCase = iota // leave text as it is
	Lower                      // all lower case
	Upper                      // ALL UPPER CASE
	Title                      // Every Word Capitalized
	Sentence                   // First word capitalized
)

func (c LetterCase) String() string {
	switch c {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Title:
		return "title"
	case Sentence:
		return "sentence"
	}
	return "none"
}

// ParseLetterCase reads a letter case from its name, as returned by String().
func ParseLetterCase(s string) (LetterCase, bool) {
	for c := NoCase; c <= Sentence; c++ {
		if strings.EqualFold(s, c.String()) {
			return c, true
		}
	}
	return NoCase, false
}

// TitleCaseRule tells how a word is treated in title case.
type TitleCaseRule int8

// Title case rules.
const (
	StandardTitle TitleCaseRule = iota // capitalize
	LowerTitle                         // lower case, unless first word
	UpperTitle                         // upper case, always
)

// TitleDictionary holds the exceptions to standard title case, keyed by
// lower-case words. A nil dictionary is valid and has no exceptions.
type TitleDictionary map[string]TitleCaseRule

// Rule returns the title case rule for a word.
func (d TitleDictionary) Rule(word string) TitleCaseRule {
	if d == nil {
		return StandardTitle
	}
	return d[cases.Lower(language.Und).String(word)]
}

// SetCase changes the letter case of a text, in place. Letter case mappings
// are those of the language given by tag. Dictionary dict is used for Title
// and Sentence case and may be nil.
//
// Bounded texts may be truncated, as some mappings make a text longer
// (e.g., 'ß' → "SS").
func SetCase(t geotext.Text, kind LetterCase, dict TitleDictionary, tag language.Tag) error {
	if t == nil || !t.Writable() {
		T().Errorf("casing: cannot change case of read-only text")
		return geotext.ErrInvalidOperation
	}
	if kind == NoCase || t.Len() == 0 {
		return nil
	}
	var out []uint16
	switch kind {
	case Lower:
		out = geotext.UTF16(cases.Lower(tag).String(geotext.ToUTF8(t)))
	case Upper:
		out = geotext.UTF16(cases.Upper(tag).String(geotext.ToUTF8(t)))
	case Title, Sentence:
		out = caseWords(t, kind, dict, tag)
	}
	T().Debugf("casing: %s case for %s", kind, tag)
	return geotext.Set(t, out)
}

// SetSentenceCase is SetCase for Sentence case, without exceptions, using
// language-neutral mappings.
func SetSentenceCase(t geotext.Text) error {
	return SetCase(t, Sentence, nil, language.Und)
}

// caseWords maps every word of t separately. Text between words is copied
// unchanged.
func caseWords(t geotext.Text, kind LetterCase, dict TitleDictionary, tag language.Tag) []uint16 {
	data := t.Data()
	lower, upper, title := cases.Lower(tag), cases.Upper(tag), cases.Title(tag)
	out := make([]uint16, 0, len(data))
	pos := 0
	for i, span := range geotext.Words(t) {
		out = append(out, data[pos:span.Start]...)
		word := geotext.ToUTF8(geotext.Substring(t, span.Start, span.Len()))
		switch rule := dict.Rule(word); {
		case rule == UpperTitle:
			word = upper.String(word)
		case i == 0:
			word = title.String(word)
		case kind == Sentence || rule == LowerTitle:
			word = lower.String(word)
		default:
			word = title.String(word)
		}
		out = append(out, geotext.UTF16(word)...)
		pos = span.End
	}
	return append(out, data[pos:]...)
}
