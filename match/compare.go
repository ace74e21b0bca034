package match

import (
	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
)

// Compare compares two texts under a match method. The result is the same
// five-way outcome as geotext.Compare, computed over the folded code-points.
//
// If m includes Fuzzy, the texts are compared by edit distance instead:
// Compare returns geotext.Equal if they are within DefaultFuzzyDistance of
// each other, and their ordered comparison otherwise.
func Compare(a, b geotext.Text, m Method) geotext.Ordering {
	return CompareIter(geotext.Runes(a), geotext.Runes(b), m)
}

// CompareIter compares two code-point sequences under a match method,
// see Compare.
func CompareIter(it1, it2 ucp.Iterator, m Method) geotext.Ordering {
	if m.Has(Fuzzy) {
		return fuzzyCompare(it1, it2, m)
	}
	f1 := NewFoldingIterator(it1, m)
	f2 := NewFoldingIterator(it2, m)
	for {
		c1, err1 := f1.Next()
		c2, err2 := f2.Next()
		if err1 != nil {
			if err2 != nil {
				return geotext.Equal
			}
			return geotext.IsPrefix
		}
		if err2 != nil {
			return geotext.HasPrefix
		}
		if c1 < c2 {
			return geotext.LessNotPrefix
		}
		if c1 > c2 {
			return geotext.GreaterNotPrefix
		}
	}
}

// Matches is true if a search term matches a text under m: either they
// compare equal, or m includes Prefix and term is a prefix of text.
func Matches(text, term geotext.Text, m Method) bool {
	o := Compare(term, text, m)
	return o == geotext.Equal || (o == geotext.IsPrefix && m.Has(Prefix))
}

func fuzzyCompare(it1, it2 ucp.Iterator, m Method) geotext.Ordering {
	m = m.Without(Fuzzy)
	r1 := ucp.Collect(NewFoldingIterator(it1, m))
	r2 := ucp.Collect(NewFoldingIterator(it2, m))
	n := len(r1)
	if len(r2) < n {
		n = len(r2)
	}
	if _, ok := distance(r1, r2, DefaultFuzzyDistance(n)); ok {
		return geotext.Equal
	}
	return compareRunes(r1, r2)
}

func compareRunes(p, q []rune) geotext.Ordering {
	n := len(p)
	if len(q) < n {
		n = len(q)
	}
	for i := 0; i < n; i++ {
		if p[i] < q[i] {
			return geotext.LessNotPrefix
		}
		if p[i] > q[i] {
			return geotext.GreaterNotPrefix
		}
	}
	switch {
	case len(p) < len(q):
		return geotext.IsPrefix
	case len(p) > len(q):
		return geotext.HasPrefix
	}
	return geotext.Equal
}
