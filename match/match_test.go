package match

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func ExampleFind() {
	haystack := geotext.FromUTF8("new york city")
	needle := geotext.FromUTF8("york")
	start, end, ok := Find(haystack, needle, NewMethod(Prefix, IgnoreWhitespace))
	fmt.Println(start, end, ok)
	// Output: 4 8 true
}

func TestMethodFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := NewMethod(FoldCase, FoldAccents)
	if m != FoldMethod {
		t.Errorf("expected %s to equal FoldMethod", m)
	}
	if m.Flags() != 20 {
		t.Errorf("expected raw flags 20, have %d", m.Flags())
	}
	if MethodFromFlags(0xff) != NewMethod(Prefix, IgnoreSymbols, FoldAccents, Fuzzy, FoldCase, IgnoreWhitespace) {
		t.Errorf("expected raw flags to be masked to six bits")
	}
	if m.With(Prefix).Without(Prefix) != m {
		t.Errorf("With/Without are not inverse")
	}
	if !LooseMethod.Ignore('-') || LooseMethod.Ignore(' ') || LooseMethod.Ignore('a') {
		t.Errorf("LooseMethod should ignore symbols only")
	}
	if s := FuzzyMethod.String(); s != "IgnoreSymbols|FoldAccents|Fuzzy|FoldCase" {
		t.Errorf("unexpected method string %q", s)
	}
}

func TestFoldingIterator(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	m := NewMethod(FoldCase, FoldAccents, IgnoreSymbols, IgnoreWhitespace)
	fit := NewFoldingIterator(geotext.Runes(geotext.FromUTF8("Große-Allee 5")), m)
	if s := string(ucp.Collect(fit)); s != "grosseallee5" {
		t.Errorf("expected 'grosseallee5', have %q", s)
	}
	if err := fit.Back(); err != ucp.ErrUnimplemented {
		t.Errorf("expected Back() to be unimplemented, have %v", err)
	}
}

func TestFoldIdempotence(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	inputs := []string{"Straße", "ÎLE-DE-FRANCE", "Ærøskøbing", "Łódź", "İstanbul", "ΐ Σίσυφος", "東京", "Cafe\u0301", "A\u030a\u0301"}
	methods := []Method{FoldCaseMethod, FoldAccentsMethod, FoldMethod, LooseMethod}
	for _, in := range inputs {
		for _, m := range methods {
			once := Fold(geotext.FromUTF8(in), m)
			twice := Fold(once, m)
			if !geotext.Identical(once, twice) {
				t.Errorf("folding %q with %s is not idempotent: %q → %q", in, m, once, twice)
			}
		}
	}
}

func TestCompareWithMethod(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		a, b     string
		m        Method
		expected geotext.Ordering
	}{
		{"Straße", "strasse", FoldMethod, geotext.Equal},
		{"Straße", "strasse", ExactMethod, geotext.LessNotPrefix},
		{"Café", "cafe", FoldCaseMethod, geotext.GreaterNotPrefix},
		{"Café", "CAFE", FoldMethod, geotext.Equal},
		{"Cafe\u0301", "cafe", FoldMethod, geotext.Equal},
		{"Cafe\u0301", "Café", FoldAccentsMethod, geotext.Equal},
		{"Cafe\u0301", "cafe", FoldCaseMethod, geotext.HasPrefix},
		{"St. Moritz", "st moritz", LooseMethod, geotext.Equal},
		{"Main", "main street", FoldCaseMethod, geotext.IsPrefix},
		{"Main St", "main", FoldCaseMethod, geotext.HasPrefix},
		{"new york", "newyork", NewMethod(IgnoreWhitespace), geotext.Equal},
	}
	for _, test := range tests {
		a, b := geotext.FromUTF8(test.a), geotext.FromUTF8(test.b)
		if o := Compare(a, b, test.m); o != test.expected {
			t.Errorf("Compare(%q, %q, %s): expected %s, have %s", test.a, test.b, test.m, test.expected, o)
		}
		if o := Compare(b, a, test.m); o != -test.expected {
			t.Errorf("Compare(%q, %q, %s) not antisymmetric: %s", test.b, test.a, test.m, o)
		}
	}
	if !Matches(geotext.FromUTF8("Piccadilly Circus"), geotext.FromUTF8("piccadilly"), FoldMethod.With(Prefix)) {
		t.Errorf("expected prefix match")
	}
	if Matches(geotext.FromUTF8("Piccadilly Circus"), geotext.FromUTF8("piccadilly"), FoldMethod) {
		t.Errorf("expected no match without Prefix")
	}
}

func TestFuzzyCompare(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	a, b := geotext.FromUTF8("Picadilly"), geotext.FromUTF8("Piccadilly")
	if o := Compare(a, b, FuzzyMethod); o != geotext.Equal {
		t.Errorf("expected fuzzy compare to report Equal, have %s", o)
	}
	c := geotext.FromUTF8("Oxford Street")
	if o := Compare(a, c, FuzzyMethod); o == geotext.Equal {
		t.Errorf("expected fuzzy compare to fail")
	}
}

func TestFind(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		haystack, needle string
		m                Method
		start, end       int
		ok               bool
	}{
		{"new york city", "york", NewMethod(Prefix, IgnoreWhitespace), 4, 8, true},
		{"new york city", "yor", NewMethod(Prefix, IgnoreWhitespace), 4, 7, true},
		{"new york city", "yor", NewMethod(IgnoreWhitespace), -1, -1, false},
		{"new york city", "ork", ExactMethod, 5, 8, true},
		{"new york city", "ork", LooseMethod, -1, -1, false},
		{"new york city", "wy", NewMethod(IgnoreWhitespace), -1, -1, false},
		{"Große Straße", "strasse", FoldMethod, 6, 12, true},
		{"Große Straße", "stras", FoldMethod, -1, -1, false},
		{"Rue de l'Église", "eglise", LooseMethod, 9, 15, true},
		{"Rue de l'E\u0301glise", "eglise", LooseMethod, 9, 16, true},
		{"Rue de l'E\u0301glise", "Église", FoldAccentsMethod, 9, 16, true},
		{"Cafe\u0301 Royal", "cafe", LooseMethod, 0, 5, true},
		{"Cafe\u0301 Royal", "caf", LooseMethod.With(Prefix), 0, 3, true},
		{"anything", "", ExactMethod, 0, 0, true},
		{"", "x", ExactMethod, -1, -1, false},
	}
	for _, test := range tests {
		start, end, ok := Find(geotext.FromUTF8(test.haystack), geotext.FromUTF8(test.needle), test.m)
		if ok != test.ok || start != test.start || end != test.end {
			t.Errorf("Find(%q, %q, %s): expected (%d, %d, %v), have (%d, %d, %v)",
				test.haystack, test.needle, test.m, test.start, test.end, test.ok, start, end, ok)
		}
	}
}

func TestFuzzyPiccadilly(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	a, b := []rune("Picadilly"), []rune("Piccadilly")
	if !FuzzyMatch(ucp.NewUTF32Iter(a), ucp.NewUTF32Iter(b), 1) {
		t.Errorf("expected fuzzy match with distance 1")
	}
	if FuzzyMatch(ucp.NewUTF32Iter(a), ucp.NewUTF32Iter(b), 0) {
		t.Errorf("expected no fuzzy match with distance 0")
	}
	d, ok := FuzzyDistance(ucp.NewUTF32Iter([]rune("kitten")), ucp.NewUTF32Iter([]rune("sitting")), 10)
	if !ok || d != 3 {
		t.Errorf("expected distance 3 (capped limit), have %d, %v", d, ok)
	}
	if !FuzzyMatchText(geotext.FromUTF8("Champs-Élysées"), geotext.FromUTF8("champs elysees"), LooseMethod, 1) {
		t.Errorf("expected folded texts to match within distance 1")
	}
}

func TestFuzzyBound(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	rnd := rand.New(rand.NewSource(4711))
	alphabet := []rune("abcé")
	word := func() []rune {
		w := make([]rune, rnd.Intn(12))
		for i := range w {
			w[i] = alphabet[rnd.Intn(len(alphabet))]
		}
		return w
	}
	for i := 0; i < 500; i++ {
		a, b := word(), word()
		d := levenshtein(a, b)
		for max := 0; max <= KMaxFuzzyDistance; max++ {
			dist, ok := distance(a, b, max)
			if ok != (d <= max) {
				t.Fatalf("distance(%q, %q, %d): true distance %d, have ok=%v", string(a), string(b), max, d, ok)
			}
			if ok && dist != d {
				t.Fatalf("distance(%q, %q, %d): expected %d, have %d", string(a), string(b), max, d, dist)
			}
		}
	}
}

// levenshtein computes the full distance matrix, for reference.
func levenshtein(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
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
			cur[j] = d
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func TestWildMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		text, pattern string
		expected      bool
	}{
		{"Main North Street", "Main*Street", true},
		{"Main Street", "Main*Street", true},
		{"Main Road", "Main*Street", false},
		{"road", "r??d", true},
		{"road", "r?d", false},
		{"", "*", true},
		{"", "", true},
		{"x", "", false},
		{"Straße", "Stra?e", true},
		{"aaab", "*a*b", true},
		{"abc", "*c*", true},
	}
	for _, test := range tests {
		if WildMatch(geotext.FromUTF8(test.text), geotext.FromUTF8(test.pattern)) != test.expected {
			t.Errorf("WildMatch(%q, %q): expected %v", test.text, test.pattern, test.expected)
		}
	}
}

func TestLayerMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	layer := geotext.FromUTF8("road/major")
	if !LayerMatchString(layer, "path, road/*") {
		t.Errorf("expected second alternative to match")
	}
	if LayerMatchString(layer, "path,track") {
		t.Errorf("expected no alternative to match")
	}
	if LayerMatch(layer, geotext.FromUTF8("")) {
		t.Errorf("expected empty pattern to match nothing")
	}
	if !LayerMatch(layer, geotext.FromUTF8("road/major")) {
		t.Errorf("expected single alternative to match")
	}
}

func TestMatchType(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name := geotext.FromUTF8("St. Pancras International")
	tests := map[string]MatchType{
		"st pancras international": MatchFull,
		"pancras":                  MatchPhrase,
		"St. Pancras Internationl": MatchFuzzy,
		"ancra":                    MatchSubstring,
		"Euston":                   MatchNone,
	}
	for term, expected := range tests {
		if mt := Type(name, geotext.FromUTF8(term)); mt != expected {
			t.Errorf("Type(%q): expected %s, have %s", term, expected, mt)
		}
	}
	if mt := Type(geotext.FromUTF8("Cafe\u0301 Royal"), geotext.FromUTF8("café royal")); mt != MatchFull {
		t.Errorf("expected decomposed accents to match fully, have %s", mt)
	}
}
