package match

import (
	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
)

// KMaxFuzzyDistance is the maximum edit distance fuzzy matching will compute.
// Larger limits are capped to it.
const KMaxFuzzyDistance = 4

// DefaultFuzzyDistance is the edit distance tolerated for a search term of
// n code-points: one error per four code-points, at most KMaxFuzzyDistance.
func DefaultFuzzyDistance(n int) int {
	d := n / 4
	if d > KMaxFuzzyDistance {
		d = KMaxFuzzyDistance
	}
	return d
}

// FuzzyDistance computes the edit distance between two code-point sequences,
// counting insertions, deletions and substitutions. It gives up as soon as the
// distance is known to exceed max, returning false.
func FuzzyDistance(it1, it2 ucp.Iterator, max int) (int, bool) {
	return distance(ucp.Collect(it1), ucp.Collect(it2), max)
}

// FuzzyMatch is true if the edit distance between two code-point sequences is
// at most max (which is capped to KMaxFuzzyDistance).
func FuzzyMatch(it1, it2 ucp.Iterator, max int) bool {
	_, ok := FuzzyDistance(it1, it2, max)
	return ok
}

// FuzzyMatchText is true if the edit distance between two texts, folded by m,
// is at most max. Flags Prefix and Fuzzy of m are not used.
func FuzzyMatchText(a, b geotext.Text, m Method, max int) bool {
	m = m.Without(Fuzzy)
	_, ok := distance(Folded(a, m), Folded(b, m), max)
	return ok
}

// distance computes the Levenshtein distance between a and b, limited to max.
//
// Only cells within a band of max cells around the diagonal are computed;
// any cell outside the band has a distance > max. Cells beyond the limit are
// saturated to max+1. The run time is O(len(a) · max).
func distance(a, b []rune, max int) (int, bool) {
	if max > KMaxFuzzyDistance {
		max = KMaxFuzzyDistance
	} else if max < 0 {
		max = 0
	}
	n, m := len(a), len(b)
	exceeded := max + 1
	if n-m > max || m-n > max {
		return exceeded, false
	}
	prevRow, curRow := borrowRow(m+1), borrowRow(m+1)
	defer releaseRow(prevRow)
	defer releaseRow(curRow)
	prev, cur := prevRow.cells, curRow.cells
	for j := 0; j <= m; j++ {
		if j <= max {
			prev[j] = j
		} else {
			prev[j] = exceeded
		}
	}
	for i := 1; i <= n; i++ {
		lo, hi := i-max, i+max
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}
		if lo == 1 {
			cur[0] = minInt(i, exceeded)
		} else {
			cur[lo-1] = exceeded
		}
		rowMin := cur[lo-1]
		for j := lo; j <= hi; j++ {
			d := prev[j-1]
			if a[i-1] != b[j-1] {
				d++
			}
			if prev[j]+1 < d {
				d = prev[j] + 1
			}
			if cur[j-1]+1 < d {
				d = cur[j-1] + 1
			}
			d = minInt(d, exceeded)
			cur[j] = d
			rowMin = minInt(rowMin, d)
		}
		if hi < m {
			cur[hi+1] = exceeded
		}
		if rowMin > max {
			T().Debugf("match: fuzzy distance exceeds %d after %d code-points", max, i)
			return exceeded, false
		}
		prev, cur = cur, prev
	}
	d := prev[m]
	return d, d <= max
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
