package geotext

import (
	"unicode"
	"unicode/utf16"

	"github.com/npillmayer/geotext/ucp"
)

// IsLineBreak is true if a line may be broken before unit pos of t.
// This is a small subset of the line breaking rules of UAX#14, enough to
// wrap the labels of map objects:
//
//   - after a run of whitespace, before the next non-whitespace,
//   - after a hyphen between two letters or digits,
//   - before and after ideographs (Han, Hiragana, Katakana), unless next
//     to whitespace or followed by punctuation,
//   - at the end of a non-empty text.
//
// There is never a break at position 0 or inside a surrogate pair.
func IsLineBreak(t Text, pos int) bool {
	if IsEmpty(t) || pos <= 0 || pos > t.Len() {
		return false
	}
	data := t.Data()
	if pos == len(data) {
		return true
	}
	if isLowSurrogate(data[pos]) && isHighSurrogate(data[pos-1]) {
		return false
	}
	before, prev := runeBefore(data, pos)
	next := runeAt(data, pos)
	pc, nc := ucp.ClassForRune(prev), ucp.ClassForRune(next)
	switch {
	case nc == ucp.Whitespace:
		return false
	case pc == ucp.Whitespace:
		return true
	case isHyphen(prev):
		if before == 0 {
			return false
		}
		_, prev2 := runeBefore(data, before)
		return ucp.IsWordChar(prev2) && ucp.IsWordChar(next)
	case nc == ucp.Symbol:
		return false
	case isIdeographic(prev) || isIdeographic(next):
		return true
	}
	return false
}

// LineBreakBefore returns the last line break position at or before pos,
// or 0 if there is none.
func LineBreakBefore(t Text, pos int) int {
	if t == nil {
		return 0
	}
	for pos = clamp(pos, 0, t.Len()); pos > 0; pos-- {
		if IsLineBreak(t, pos) {
			return pos
		}
	}
	return 0
}

// LineBreakAfter returns the first line break position at or after pos.
// For a non-empty text, this is at most the length of the text.
func LineBreakAfter(t Text, pos int) int {
	if t == nil {
		return 0
	}
	n := t.Len()
	for pos = clamp(pos, 0, n); pos < n; pos++ {
		if IsLineBreak(t, pos) {
			return pos
		}
	}
	return n
}

// runeBefore decodes the code-point ending at pos and returns its start.
func runeBefore(data []uint16, pos int) (int, rune) {
	if pos >= 2 && isHighSurrogate(data[pos-2]) && isLowSurrogate(data[pos-1]) {
		return pos - 2, utf16.DecodeRune(rune(data[pos-2]), rune(data[pos-1]))
	}
	return pos - 1, rune(data[pos-1])
}

// runeAt decodes the code-point starting at pos.
func runeAt(data []uint16, pos int) rune {
	if pos+1 < len(data) && isHighSurrogate(data[pos]) && isLowSurrogate(data[pos+1]) {
		return utf16.DecodeRune(rune(data[pos]), rune(data[pos+1]))
	}
	return rune(data[pos])
}

func isLowSurrogate(u uint16) bool {
	return u >= 0xdc00 && u < 0xe000
}

func isHyphen(r rune) bool {
	return r == '-' || r == '‐'
}

var ideographic = []*unicode.RangeTable{unicode.Han, unicode.Hiragana, unicode.Katakana}

func isIdeographic(r rune) bool {
	return r >= 0x2e80 && unicode.IsOneOf(ideographic, r)
}
