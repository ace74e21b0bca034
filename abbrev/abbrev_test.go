package abbrev

import (
	"fmt"
	"testing"

	"github.com/npillmayer/geotext"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func ExampleAbbreviate() {
	dict := NewDictionary()
	dict.Add("strasse", "str.", Suffix)
	s := geotext.FromUTF8("Hauptstrasse")
	if err := Abbreviate(s, dict, false); err != nil {
		fmt.Println(err)
	}
	fmt.Println(s)
	// Output: Hauptstr.
}

func testDictionary() *Dictionary {
	dict := NewDictionary()
	dict.Add("strasse", "str.", Suffix)
	dict.Add("straße", "str.", Suffix)
	dict.Add("avenue", "Ave", End)
	dict.Add("road", "Rd", End)
	dict.Add("street", "st", Any)
	dict.Add("saint", "St", Start)
	dict.Add("the", "", Any)
	return dict
}

func TestDictionary(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := testDictionary()
	if dict.IsEmpty() || dict.Len() != 7 {
		t.Fatalf("expected dictionary with 7 entries, have %d", dict.Len())
	}
	if a, ok := dict.Lookup("Avenue", LastWord); !ok || a.ShortForm != "Ave" || a.ReplaceCount != 0 {
		t.Errorf("expected 'avenue' to be abbreviated at the end, have %v, %v", a, ok)
	}
	if _, ok := dict.Lookup("Avenue", FirstWord); ok {
		t.Errorf("expected 'avenue' not to be abbreviated at the start")
	}
	if a, ok := dict.Lookup("Hauptstraße", FirstWord|LastWord); !ok || a.ReplaceCount != 6 {
		t.Errorf("expected suffix rule for 'straße' replacing 6 code-points, have %v, %v", a, ok)
	}
	if _, ok := dict.Lookup("strasse", FirstWord); ok {
		t.Errorf("suffix rule must not apply to the suffix itself")
	}
	var words []string
	dict.Each(func(long string, a Abbreviation) {
		words = append(words, long)
	})
	if fmt.Sprint(words) != "[avenue road saint street the strasse straße]" {
		t.Errorf("unexpected order of entries: %v", words)
	}
	var nodict *Dictionary
	if !nodict.IsEmpty() || nodict.Len() != 0 {
		t.Errorf("nil dictionary should be empty")
	}
}

func TestParseType(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, typ := range []Type{Any, Start, End, Suffix} {
		if p, err := ParseType(typ.String()); err != nil || p != typ {
			t.Errorf("cannot parse type %s: %v", typ, err)
		}
	}
	if _, err := ParseType("middle"); err == nil {
		t.Errorf("expected error for unknown type")
	}
}

func TestAbbreviate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := testDictionary()
	tests := []struct {
		in, out string
		del     bool
	}{
		{"Hauptstrasse", "Hauptstr.", false},
		{"HAUPTSTRASSE", "HAUPTSTR.", false},
		{"Große Straße", "Große Straße", false},
		{"Fifth Avenue", "Fifth Ave", false},
		{"Avenue Road", "Avenue Rd", false},
		{"Baker Street", "Baker St", false},
		{"Saint Mary Street", "St Mary St", false},
		{"Mary Saint", "Mary Saint", false},
		{"The Mall", "The Mall", false},
		{"The Mall", "Mall", true},
		{"Mall of the Americas", "Mall of Americas", true},
		{"Pub the", "Pub", true},
		{"", "", true},
	}
	for _, test := range tests {
		s := geotext.FromUTF8(test.in)
		if err := Abbreviate(s, dict, test.del); err != nil {
			t.Fatalf("abbreviate %q: %v", test.in, err)
		}
		if s.String() != test.out {
			t.Errorf("abbreviate %q: expected %q, have %q", test.in, test.out, s.String())
		}
	}
}

func TestAbbreviateIsIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := testDictionary()
	for _, in := range []string{"Hauptstrasse", "Fifth Avenue", "The Baker Street Mall", "Avenue Road"} {
		s := geotext.FromUTF8(in)
		_ = Abbreviate(s, dict, true)
		once := s.String()
		_ = Abbreviate(s, dict, true)
		if s.String() != once {
			t.Errorf("abbreviating %q twice: %q → %q", in, once, s.String())
		}
	}
}

func TestAbbreviateBoundedText(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := testDictionary()
	if err := Abbreviate(geotext.NewView(geotext.UTF16("Baker Street")), dict, false); err != geotext.ErrInvalidOperation {
		t.Errorf("expected read-only view to be rejected, have %v", err)
	}
	b := geotext.FixedBufferFrom(16, "Fifth Avenue")
	if err := Abbreviate(b, dict, false); err != nil || b.String() != "Fifth Ave" {
		t.Errorf("expected 'Fifth Ave' in fixed buffer, have %q, %v", b.String(), err)
	}
	if err := Abbreviate(geotext.FromUTF8("Baker Street"), nil, false); err != nil {
		t.Errorf("expected nil dictionary to be a no-op, have %v", err)
	}
}

func TestAbbreviateExpandingLowerCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := NewDictionary()
	dict.Add("İstasyonu", "İst.", Suffix) // lower-cased to 10 code-points
	s := geotext.FromUTF8("Merkezİstasyonu")
	if err := Abbreviate(s, dict, false); err != nil {
		t.Fatal(err)
	}
	if s.String() != "Merkezİst." {
		t.Errorf("expected 'Merkezİst.', have %q", s.String())
	}
	keep, ok := splitSuffix([]rune("Merkezİstasyonu"), 9)
	if ok {
		t.Errorf("expected suffix inside the lower-case form of 'İ' to be rejected, have keep=%d", keep)
	}
}
