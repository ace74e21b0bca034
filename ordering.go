package geotext

// Ordering is the outcome of a prefix-aware comparison of two texts a and b.
type Ordering int8

// The five possible outcomes of a comparison. Values are signed, so that
// swapping the operands negates the result.
const (
	LessNotPrefix    Ordering = -2 // a < b, a is not a prefix of b
	IsPrefix         Ordering = -1 // a is a proper prefix of b
	Equal            Ordering = 0  // a == b
	HasPrefix        Ordering = 1  // b is a proper prefix of a
	GreaterNotPrefix Ordering = 2  // b < a, b is not a prefix of a
)

// Sign collapses an Ordering to -1, 0 or 1.
func (o Ordering) Sign() int {
	switch {
	case o < 0:
		return -1
	case o > 0:
		return 1
	}
	return 0
}

// IsPrefixOrEqual is true if the first operand is a prefix of the second one
// or equal to it.
func (o Ordering) IsPrefixOrEqual() bool {
	return o == Equal || o == IsPrefix
}

func (o Ordering) String() string {
	switch o {
	case LessNotPrefix:
		return "LessNotPrefix"
	case IsPrefix:
		return "IsPrefix"
	case Equal:
		return "Equal"
	case HasPrefix:
		return "HasPrefix"
	case GreaterNotPrefix:
		return "GreaterNotPrefix"
	}
	return "<invalid ordering>"
}

// Compare compares two texts lexicographically, unit by unit.
// It reports prefix relationships as well as order, see type Ordering.
func Compare(a, b Text) Ordering {
	var p, q []uint16
	if a != nil {
		p = a.Data()
	}
	if b != nil {
		q = b.Data()
	}
	return CompareUnits(p, q)
}

// CompareUnits compares two slices of UTF-16 units, see Compare.
func CompareUnits(p, q []uint16) Ordering {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] < q[i] {
			return LessNotPrefix
		}
		if p[i] > q[i] {
			return GreaterNotPrefix
		}
	}
	switch {
	case len(p) < len(q):
		return IsPrefix
	case len(p) > len(q):
		return HasPrefix
	}
	return Equal
}

// Identical is true if two texts hold identical units.
func Identical(a, b Text) bool {
	return Compare(a, b) == Equal
}
