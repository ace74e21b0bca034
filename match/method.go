package match

import (
	"strings"

	"github.com/npillmayer/geotext/ucp"
)

// Flag is a single flag of a string match method.
type Flag uint16

// Flags for string matching. A Method without any flags matches exactly.
const (
	Prefix           Flag = 1 << iota // search term may be a prefix of the found text
	IgnoreSymbols                     // ignore everything but letters, digits and whitespace
	FoldAccents                       // match accented and unaccented letters
	Fuzzy                             // allow a small number of wrong, missing or extra characters
	FoldCase                          // ignore letter case
	IgnoreWhitespace                  // ignore whitespace
)

const allFlags = Prefix | IgnoreSymbols | FoldAccents | Fuzzy | FoldCase | IgnoreWhitespace

var flagNames = [...]string{"Prefix", "IgnoreSymbols", "FoldAccents", "Fuzzy", "FoldCase", "IgnoreWhitespace"}

// Method is an immutable set of flags controlling comparison and matching.
// Methods are values and are compared with ==.
type Method struct {
	flags Flag
}

// Frequently used match methods.
var (
	ExactMethod       = Method{}
	FoldCaseMethod    = NewMethod(FoldCase)
	FoldAccentsMethod = NewMethod(FoldAccents)
	FoldMethod        = NewMethod(FoldCase, FoldAccents)
	PrefixMethod      = NewMethod(Prefix)
	LooseMethod       = NewMethod(IgnoreSymbols, FoldAccents, FoldCase)
	FuzzyMethod       = NewMethod(IgnoreSymbols, FoldAccents, Fuzzy, FoldCase)
)

// NewMethod creates a method from up to six flags.
func NewMethod(flags ...Flag) Method {
	m := Method{}
	for _, f := range flags {
		m.flags |= f
	}
	m.flags &= allFlags
	return m
}

// MethodFromFlags creates a method from a raw bit pattern.
// Bits beyond the six defined flags are dropped.
func MethodFromFlags(bits uint) Method {
	return Method{flags: Flag(bits) & allFlags}
}

// Flags returns the raw bit pattern of a method.
func (m Method) Flags() uint {
	return uint(m.flags)
}

// Has is true if flag f is set.
func (m Method) Has(f Flag) bool {
	return m.flags&f != 0
}

// With returns a copy of m with flag f set.
func (m Method) With(f Flag) Method {
	return Method{flags: (m.flags | f) & allFlags}
}

// Without returns a copy of m with flag f cleared.
func (m Method) Without(f Flag) Method {
	return Method{flags: m.flags &^ f}
}

// MayIgnore is true if m ignores any code-points.
func (m Method) MayIgnore() bool {
	return m.flags&(IgnoreSymbols|IgnoreWhitespace) != 0
}

// Ignore is true if code-point r is to be skipped when matching with m.
func (m Method) Ignore(r rune) bool {
	if !m.MayIgnore() {
		return false
	}
	switch ucp.ClassForRune(r) {
	case ucp.Symbol:
		return m.Has(IgnoreSymbols)
	case ucp.Whitespace:
		return m.Has(IgnoreWhitespace)
	}
	return false
}

// drops is true if code-point r does not take part in matching with m.
// Besides ignored code-points these are the non-spacing marks of decomposed
// accents, if m folds accents.
func (m Method) drops(r rune) bool {
	if m.Has(FoldAccents) && ucp.IsNonSpacingMark(r) {
		return true
	}
	return m.Ignore(r)
}

func (m Method) String() string {
	if m.flags == 0 {
		return "Exact"
	}
	var names []string
	for i, name := range flagNames {
		if m.flags&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
