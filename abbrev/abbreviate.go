package abbrev

import (
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/geotext"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Abbreviate replaces the words of t by their abbreviations from dict, in place.
// Words without an entry are left alone. If deleteWords is set, words with
// an empty short form are removed, together with one adjacent space.
//
// A nil or empty dictionary leaves t unchanged. Abbreviate returns
// geotext.ErrInvalidOperation for read-only texts.
func Abbreviate(t geotext.Text, dict *Dictionary, deleteWords bool) error {
	if dict.IsEmpty() || geotext.IsEmpty(t) {
		return nil
	}
	if !t.Writable() {
		T().Errorf("abbrev: cannot abbreviate read-only text")
		return geotext.ErrInvalidOperation
	}
	words := geotext.Words(t)
	for i := len(words) - 1; i >= 0; i-- { // right to left keeps spans valid
		span := words[i]
		var pos Position
		if i == 0 {
			pos |= FirstWord
		}
		if i == len(words)-1 {
			pos |= LastWord
		}
		word := []rune(geotext.ToUTF8(geotext.Substring(t, span.Start, span.Len())))
		a, ok := dict.Lookup(string(word), pos)
		if !ok {
			continue
		}
		if a.ShortForm == "" {
			if deleteWords && a.ReplaceCount == 0 {
				T().Debugf("abbrev: deleting word %q", string(word))
				if err := deleteWord(t, span); err != nil {
					return err
				}
			}
			continue
		}
		keep := 0
		if a.ReplaceCount > 0 {
			var ok bool
			if keep, ok = splitSuffix(word, a.ReplaceCount); !ok {
				T().Debugf("abbrev: suffix of %q does not end on a code-point boundary", string(word))
				continue
			}
		}
		short := adaptCase(a.ShortForm, word[keep:], keep == 0)
		start := span.Start + len(geotext.UTF16(string(word[:keep])))
		T().Debugf("abbrev: %q → %q", string(word), string(word[:keep])+short)
		if err := geotext.Replace(t, start, span.End, geotext.UTF16(short)); err != nil {
			return err
		}
	}
	return nil
}

// splitSuffix returns the number of leading code-points of word which stay
// when the last n code-points of the lower-cased word are replaced.
// Lower-casing may change the number of code-points (e.g. 'İ' → "i̇"), so
// the suffix is counted on the lower-cased form of each code-point.
// ok is false if the suffix starts inside the lower-cased form of a code-point.
func splitSuffix(word []rune, n int) (keep int, ok bool) {
	i := len(word)
	for ; i > 0 && n > 0; i-- {
		n -= utf8.RuneCountInString(lower(string(word[i-1])))
	}
	return i, n == 0
}

func deleteWord(t geotext.Text, span geotext.Span) error {
	start, end := span.Start, span.End
	data := t.Data()
	if end < len(data) && data[end] == ' ' {
		end++
	} else if start > 0 && data[start-1] == ' ' {
		start--
	}
	return geotext.Delete(t, start, end)
}

// adaptCase makes a short form follow the letter case of the text it
// replaces: all upper case stays all upper case, and a capitalized
// word stays capitalized.
func adaptCase(short string, replaced []rune, wholeWord bool) string {
	letters, upper := 0, 0
	for _, r := range replaced {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	switch {
	case letters > 1 && upper == letters:
		return cases.Upper(language.Und).String(short)
	case wholeWord && len(replaced) > 0 && unicode.IsUpper(replaced[0]):
		return capitalize(short)
	}
	return short
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToTitle(r[0])
	return string(r)
}
