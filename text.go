package geotext

import (
	"errors"

	"github.com/npillmayer/geotext/ucp"
)

// ErrInvalidOperation flags an attempt to modify a read-only text.
var ErrInvalidOperation = errors.New("geotext: text is not writable")

// Text is a sequence of UTF-16 code units.
//
// Data returns exactly Len() units. For writable texts, WritableData returns
// the same units as a modifiable slice and Resize adjusts the length.
// Resize may grant less than requested: the actual new length is returned.
// Units added by Resize are zero.
//
// Clients usually do not call WritableData or Resize directly, but use
// the functions Replace, Insert, Append, Set and Delete of this package.
type Text interface {
	Len() int
	Data() []uint16
	Writable() bool         // may the text be modified?
	MaxWritableLen() int    // current capacity, 0 for read-only text
	WritableData() []uint16 // nil for read-only text
	Resize(n int) int       // adjust length to n units, if possible
}

// IsEmpty is true for nil or empty text.
func IsEmpty(t Text) bool {
	return t == nil || t.Len() == 0
}

// Runes returns a code-point iterator over t.
func Runes(t Text) *ucp.UTF16Iter {
	if t == nil {
		return ucp.NewUTF16Iter(nil)
	}
	return ucp.NewUTF16Iter(t.Data())
}

// Replace replaces units start…end of t with src.
// Indices are clamped to the text. Bounded texts will truncate the result.
func Replace(t Text, start, end int, src []uint16) error {
	if t == nil || !t.Writable() {
		CT().Errorf("geotext: attempt to modify read-only text")
		return ErrInvalidOperation
	}
	n := t.Len()
	start, end = clamp(start, 0, n), clamp(end, 0, n)
	if end < start {
		start, end = end, start
	}
	tail := append([]uint16(nil), t.Data()[end:n]...)
	want := start + len(src) + len(tail)
	got := t.Resize(want)
	if got < want {
		CT().Debugf("geotext: text truncated to %d units (wanted %d)", got, want)
	}
	buf := t.WritableData()
	k := copy(buf[start:], src)
	copy(buf[start+k:], tail)
	if got < want && got > 0 && isHighSurrogate(buf[got-1]) {
		t.Resize(got - 1) // do not leave half a surrogate pair
	}
	return nil
}

func isHighSurrogate(u uint16) bool {
	return u >= 0xd800 && u < 0xdc00
}

// Insert inserts src at index i.
func Insert(t Text, i int, src []uint16) error {
	return Replace(t, i, i, src)
}

// Append appends src to t.
func Append(t Text, src []uint16) error {
	if t == nil {
		return ErrInvalidOperation
	}
	return Replace(t, t.Len(), t.Len(), src)
}

// AppendString appends a Go string to t.
func AppendString(t Text, s string) error {
	return Append(t, UTF16(s))
}

// Set replaces the contents of t with src.
func Set(t Text, src []uint16) error {
	if t == nil {
		return ErrInvalidOperation
	}
	return Replace(t, 0, t.Len(), src)
}

// SetString replaces the contents of t with a Go string.
func SetString(t Text, s string) error {
	return Set(t, UTF16(s))
}

// Delete deletes units start…end.
func Delete(t Text, start, end int) error {
	return Replace(t, start, end, nil)
}

// Clear deletes all the text.
func Clear(t Text) error {
	if t == nil || !t.Writable() {
		CT().Errorf("geotext: attempt to clear read-only text")
		return ErrInvalidOperation
	}
	t.Resize(0)
	return nil
}

// Substring returns a read-only view of n units of t, starting at start.
// The range is clamped to the text.
func Substring(t Text, start, n int) View {
	l := t.Len()
	start = clamp(start, 0, l)
	end := clamp(start+n, start, l)
	return View{text: t.Data()[start:end]}
}

// First returns a view of the first n units of t.
func First(t Text, n int) View {
	return Substring(t, 0, n)
}

// Last returns a view of the last n units of t.
func Last(t Text, n int) View {
	n = clamp(n, 0, t.Len())
	return Substring(t, t.Len()-n, n)
}

// DeletePrefix deletes prefix from t, if t starts with it.
// Returns true if the prefix has been deleted.
func DeletePrefix(t Text, prefix Text) bool {
	if IsEmpty(prefix) || !t.Writable() {
		return false
	}
	if o := Compare(prefix, t); o != Equal && o != IsPrefix {
		return false
	}
	return Delete(t, 0, prefix.Len()) == nil
}

// DeleteSuffix deletes suffix from t, if t ends with it.
// Returns true if the suffix has been deleted.
func DeleteSuffix(t Text, suffix Text) bool {
	if IsEmpty(suffix) || !t.Writable() || suffix.Len() > t.Len() {
		return false
	}
	if !Identical(Last(t, suffix.Len()), suffix) {
		return false
	}
	return Delete(t, t.Len()-suffix.Len(), t.Len()) == nil
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
