package ucp

import (
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrEndOfData is returned by iterators when the input is exhausted.
// ErrUnimplemented is returned by iterators which cannot perform an operation,
// e.g., stepping back more than once or stepping back over a folded expansion.
var (
	ErrEndOfData     = errors.New("ucp: end of data")
	ErrUnimplemented = errors.New("ucp: operation not implemented for iterator")
)

// Iterator is a pull-based sequence of code-points.
//
// Next returns the next code-point or ErrEndOfData. Back pushes back the
// code-point most recently returned by Next, so that the following call to
// Next returns it again. Only one step of pushback is guaranteed; iterators
// return ErrUnimplemented if they cannot step back.
type Iterator interface {
	Next() (rune, error)
	Back() error
}

// Collect drains an iterator and returns all remaining code-points.
func Collect(it Iterator) []rune {
	var runes []rune
	for {
		r, err := it.Next()
		if err != nil {
			return runes
		}
		runes = append(runes, r)
	}
}

// --- UTF-8 -----------------------------------------------------------------

// UTF8Iter iterates over UTF-8 encoded text.
//
// Invalid or truncated byte sequences are returned as utf8.RuneError (U+FFFD),
// consuming a single byte. This is the behaviour of utf8.DecodeRune.
type UTF8Iter struct {
	text  []byte
	start int
	pos   int
	end   int
	prev  int // start of the last code-point returned, or -1
	eof   bool
}

// NewUTF8Iter creates an iterator over UTF-8 text. The iterator does not copy
// the text and the caller must not modify it during iteration.
func NewUTF8Iter(text []byte) *UTF8Iter {
	return &UTF8Iter{text: text, end: len(text), prev: -1}
}

// Next returns the next code-point (interface Iterator).
func (it *UTF8Iter) Next() (rune, error) {
	if it.pos >= it.end {
		it.eof = true
		return utf8.RuneError, ErrEndOfData
	}
	r, size := utf8.DecodeRune(it.text[it.pos:it.end])
	it.prev = it.pos
	it.pos += size
	return r, nil
}

// Back steps back one code-point (interface Iterator).
func (it *UTF8Iter) Back() error {
	if it.prev < it.start {
		return ErrUnimplemented
	}
	it.pos, it.prev, it.eof = it.prev, -1, false
	return nil
}

// Pos returns the current byte offset into the text.
func (it *UTF8Iter) Pos() int {
	return it.pos
}

// AtEnd is true if the last call to Next has reported ErrEndOfData.
func (it *UTF8Iter) AtEnd() bool {
	return it.eof
}

// --- UTF-16 ----------------------------------------------------------------

// UTF16Iter iterates over UTF-16 encoded text.
//
// Unpaired surrogates are returned as U+FFFD, consuming a single code unit.
type UTF16Iter struct {
	text  []uint16
	start int
	pos   int
	end   int
	prev  int
	eof   bool
}

// NewUTF16Iter creates an iterator over UTF-16 text. The iterator does not
// copy the text.
func NewUTF16Iter(text []uint16) *UTF16Iter {
	return &UTF16Iter{text: text, end: len(text), prev: -1}
}

// Next returns the next code-point (interface Iterator).
func (it *UTF16Iter) Next() (rune, error) {
	if it.pos >= it.end {
		it.eof = true
		return utf8.RuneError, ErrEndOfData
	}
	it.prev = it.pos
	u := rune(it.text[it.pos])
	it.pos++
	if !utf16.IsSurrogate(u) {
		return u, nil
	}
	if u < 0xdc00 && it.pos < it.end { // high surrogate, look for the low one
		if r := utf16.DecodeRune(u, rune(it.text[it.pos])); r != utf8.RuneError {
			it.pos++
			return r, nil
		}
	}
	T().Debugf("unpaired surrogate %#04x at position %d", u, it.prev)
	return utf8.RuneError, nil
}

// Back steps back one code-point (interface Iterator).
func (it *UTF16Iter) Back() error {
	if it.prev < it.start {
		return ErrUnimplemented
	}
	it.pos, it.prev, it.eof = it.prev, -1, false
	return nil
}

// Pos returns the current offset into the text in UTF-16 code units.
func (it *UTF16Iter) Pos() int {
	return it.pos
}

// AtEnd is true if the last call to Next has reported ErrEndOfData.
func (it *UTF16Iter) AtEnd() bool {
	return it.eof
}

// --- UTF-32 ----------------------------------------------------------------

// UTF32Iter passes UTF-32 text through. Values which are not Unicode scalar
// values (negative, surrogates or beyond U+10FFFF) are returned as U+FFFD.
type UTF32Iter struct {
	text  []rune
	start int
	pos   int
	end   int
	prev  int
	eof   bool
}

// NewUTF32Iter creates an iterator over UTF-32 text. The iterator does not
// copy the text.
func NewUTF32Iter(text []rune) *UTF32Iter {
	return &UTF32Iter{text: text, end: len(text), prev: -1}
}

// Next returns the next code-point (interface Iterator).
func (it *UTF32Iter) Next() (rune, error) {
	if it.pos >= it.end {
		it.eof = true
		return utf8.RuneError, ErrEndOfData
	}
	r := it.text[it.pos]
	it.prev = it.pos
	it.pos++
	if !utf8.ValidRune(r) {
		return utf8.RuneError, nil
	}
	return r, nil
}

// Back steps back one code-point (interface Iterator).
func (it *UTF32Iter) Back() error {
	if it.prev < it.start {
		return ErrUnimplemented
	}
	it.pos, it.prev, it.eof = it.prev, -1, false
	return nil
}

// Pos returns the current offset into the text in code-points.
func (it *UTF32Iter) Pos() int {
	return it.pos
}

// AtEnd is true if the last call to Next has reported ErrEndOfData.
func (it *UTF32Iter) AtEnd() bool {
	return it.eof
}
