package geotext

import "github.com/npillmayer/geotext/ucp"

// Span is a range of UTF-16 units start…end within a text.
type Span struct {
	Start, End int
}

// Len returns the number of units in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Words breaks a text into words: maximal runs of letters and digits.
// An apostrophe between two letters does not break a word ("O'Brien").
// Everything else – whitespace and symbols – separates words.
func Words(t Text) []Span {
	if IsEmpty(t) {
		return nil
	}
	var words []Span
	it := Runes(t)
	inWord, start, pos := false, 0, 0
	prev := rune(0)
	for {
		r, err := it.Next()
		if err != nil {
			break
		}
		next := it.Pos()
		if ucp.IsWordChar(r) {
			if !inWord {
				inWord, start = true, pos
			}
		} else if inWord && isApostrophe(r) && ucp.ClassForRune(prev) == ucp.Letter && letterFollows(it) {
			// keep the word open
		} else if inWord {
			words = append(words, Span{Start: start, End: pos})
			inWord = false
		}
		prev, pos = r, next
	}
	if inWord {
		words = append(words, Span{Start: start, End: pos})
	}
	CT().Debugf("geotext: text broken into %d words", len(words))
	return words
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}

func letterFollows(it *ucp.UTF16Iter) bool {
	r, err := it.Next()
	if err != nil {
		return false
	}
	_ = it.Back()
	return ucp.ClassForRune(r) == ucp.Letter
}
