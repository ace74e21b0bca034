package ucp

import (
	"sync"
	"unicode"
)

// Class is a coarse code-point class, used for matching and for word breaking.
type Class int8

// Code-point classes. Combining marks are counted as letters, as they
// never start or end a word.
const (
	Letter Class = iota
	Digit
	Whitespace
	Symbol
)

func (c Class) String() string {
	switch c {
	case Letter:
		return "Letter"
	case Digit:
		return "Digit"
	case Whitespace:
		return "Whitespace"
	}
	return "Symbol"
}

var rangesFromClass = [...][]*unicode.RangeTable{
	Letter:     {unicode.L, unicode.M},
	Digit:      {unicode.N},
	Whitespace: {unicode.White_Space, unicode.Zs},
}

var asciiClasses [0x80]Class

var setupOnce sync.Once

// SetupClasses creates the lookup table for ASCII code-points.
// It is called automatically by ClassForRune. (Concurrency-safe).
func SetupClasses() {
	setupOnce.Do(setupClasses)
}

func setupClasses() {
	for r := rune(0); r < 0x80; r++ {
		asciiClasses[r] = lookupClass(r)
	}
	T().Debugf("ucp: set up %d ASCII code-point classes", len(asciiClasses))
}

// ClassForRune returns the class of a code-point.
func ClassForRune(r rune) Class {
	if r >= 0 && r < 0x80 {
		SetupClasses()
		return asciiClasses[r]
	}
	return lookupClass(r)
}

func lookupClass(r rune) Class {
	for c := Letter; c <= Whitespace; c++ {
		if unicode.IsOneOf(rangesFromClass[c], r) {
			return c
		}
	}
	return Symbol
}

// IsWordChar is true for letters and digits.
func IsWordChar(r rune) bool {
	c := ClassForRune(r)
	return c == Letter || c == Digit
}

// IsWhitespace is true for whitespace code-points.
func IsWhitespace(r rune) bool {
	return ClassForRune(r) == Whitespace
}

// IsSymbol is true for all code-points which are neither letters, digits
// nor whitespace.
func IsSymbol(r rune) bool {
	return ClassForRune(r) == Symbol
}

// IsNonSpacingMark is true for combining marks of category Mn, e.g. the
// accents of decomposed (NFD) text.
func IsNonSpacingMark(r rune) bool {
	return r >= 0x300 && unicode.Is(unicode.Mn, r)
}
