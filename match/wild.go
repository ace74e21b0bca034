package match

import (
	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
)

// Wildcards in patterns for WildMatch and LayerMatch.
const (
	AnySequence = '*'
	AnyRune     = '?'
)

// WildMatch matches a text against a pattern containing wildcards:
// '*' matches any sequence of code-points (including none) and '?' matches
// a single code-point. All other code-points match themselves, exactly.
func WildMatch(t, pattern geotext.Text) bool {
	return wildMatch(ucp.Collect(geotext.Runes(t)), ucp.Collect(geotext.Runes(pattern)))
}

// WildMatchString is WildMatch for a Go string pattern.
func WildMatchString(t geotext.Text, pattern string) bool {
	return wildMatch(ucp.Collect(geotext.Runes(t)), []rune(pattern))
}

// LayerMatch matches a layer name against a comma separated list of wildcard
// patterns, e.g. "road,path,track*". Alternatives are tried in order and
// surrounding spaces of alternatives are ignored. An empty pattern matches
// nothing.
func LayerMatch(layer, patterns geotext.Text) bool {
	return LayerMatchString(layer, geotext.ToUTF8(patterns))
}

// LayerMatchString is LayerMatch for a Go string pattern list.
func LayerMatchString(layer geotext.Text, patterns string) bool {
	text := ucp.Collect(geotext.Runes(layer))
	alternatives := []rune(patterns)
	for len(alternatives) > 0 {
		i := 0
		for i < len(alternatives) && alternatives[i] != ',' {
			i++
		}
		if alt := trimSpaces(alternatives[:i]); len(alt) > 0 && wildMatch(text, alt) {
			return true
		}
		if i == len(alternatives) {
			break
		}
		alternatives = alternatives[i+1:]
	}
	return false
}

// wildMatch backtracks to the most recent '*' only, which is sufficient for
// patterns made of '*' and '?' and keeps matching linear in most cases.
func wildMatch(s, p []rune) bool {
	si, pi := 0, 0
	star, mark := -1, 0
	for si < len(s) {
		switch {
		case pi < len(p) && p[pi] == AnySequence:
			star, mark = pi, si
			pi++
		case pi < len(p) && (p[pi] == AnyRune || p[pi] == s[si]):
			si++
			pi++
		case star >= 0:
			mark++
			si, pi = mark, star+1
		default:
			return false
		}
	}
	for pi < len(p) && p[pi] == AnySequence {
		pi++
	}
	return pi == len(p)
}

func trimSpaces(r []rune) []rune {
	for len(r) > 0 && r[0] == ' ' {
		r = r[1:]
	}
	for len(r) > 0 && r[len(r)-1] == ' ' {
		r = r[:len(r)-1]
	}
	return r
}
