package match

import (
	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
)

// source code-point of a text, with its position in UTF-16 units.
type sourceRune struct {
	start, end int
	word       bool // letter or digit
	mark       bool // non-spacing mark dropped by folding
}

// folded code-point, referring to the source code-point it stems from.
type foldedRune struct {
	r     rune
	src   int  // index into the source code-points
	first bool // first code-point of an expansion
	last  bool // last code-point of an expansion
}

func foldWithPositions(t geotext.Text, m Method) ([]sourceRune, []foldedRune) {
	it := geotext.Runes(t)
	var src []sourceRune
	var folded []foldedRune
	var buf [ucp.MaxCaseVariantLength]rune
	for {
		start := it.Pos()
		r, err := it.Next()
		if err != nil {
			break
		}
		f := foldRune(r, m, buf[:0])
		src = append(src, sourceRune{
			start: start,
			end:   it.Pos(),
			word:  ucp.IsWordChar(r),
			mark:  len(f) == 0 && ucp.IsNonSpacingMark(r),
		})
		for i, c := range f {
			folded = append(folded, foldedRune{
				r:     c,
				src:   len(src) - 1,
				first: i == 0,
				last:  i == len(f)-1,
			})
		}
	}
	return src, folded
}

// Find searches the haystack for a needle, both folded by m. It returns the
// start and end of the first match, in UTF-16 units of the haystack.
//
// Without Prefix, the complete folded needle has to match. With Prefix, it is
// enough for the needle to match the start of a word in the haystack, e.g.
// "york" is found in "new york city". If m ignores symbols or whitespace,
// matches have to be aligned to word boundaries: they must start at the
// beginning of a word and, without Prefix, end at the end of a word.
//
// An empty needle matches at position 0. Flag Fuzzy is not used.
func Find(haystack, needle geotext.Text, m Method) (start, end int, ok bool) {
	m = m.Without(Fuzzy)
	n := Folded(needle, m)
	if len(n) == 0 {
		return 0, 0, true
	}
	src, h := foldWithPositions(haystack, m)
	aligned := m.MayIgnore()
	for k := 0; k+len(n) <= len(h); k++ {
		if !h[k].first {
			continue
		}
		if aligned && !startsWord(src, h[k].src) {
			continue
		}
		j := 0
		for j < len(n) && h[k+j].r == n[j] {
			j++
		}
		if j < len(n) {
			continue
		}
		last := h[k+len(n)-1]
		if !last.last {
			continue // match would end inside an expansion
		}
		e := last.src
		for e+1 < len(src) && src[e+1].mark {
			e++ // include dropped accents of the last code-point
		}
		if aligned && !m.Has(Prefix) && !endsWord(src, e) {
			continue
		}
		start, end = src[h[k].src].start, src[e].end
		T().Debugf("match: found needle at %d…%d", start, end)
		return start, end, true
	}
	return -1, -1, false
}

// Contains is true if Find succeeds.
func Contains(haystack, needle geotext.Text, m Method) bool {
	_, _, ok := Find(haystack, needle, m)
	return ok
}

func startsWord(src []sourceRune, i int) bool {
	return i == 0 || !src[i-1].word
}

func endsWord(src []sourceRune, i int) bool {
	return i == len(src)-1 || !src[i+1].word
}
