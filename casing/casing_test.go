package casing

import (
	"fmt"
	"testing"

	"github.com/npillmayer/geotext"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
)

func ExampleSetCase() {
	dict := TitleDictionary{"of": LowerTitle, "the": LowerTitle, "usa": UpperTitle}
	s := geotext.FromUTF8("bank OF the usa")
	if err := SetCase(s, Title, dict, language.English); err != nil {
		fmt.Println(err)
	}
	fmt.Println(s)
	// Output: Bank of the USA
}

func TestSetCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	dict := TitleDictionary{"of": LowerTitle, "the": LowerTitle, "usa": UpperTitle}
	tests := []struct {
		in   string
		kind LetterCase
		tag  language.Tag
		out  string
	}{
		{"Große STRASSE", Lower, language.German, "große strasse"},
		{"Große Straße", Upper, language.German, "GROSSE STRASSE"},
		{"istanbul", Upper, language.Turkish, "İSTANBUL"},
		{"the bank of england", Title, language.English, "The Bank of England"},
		{"NEW YORK-CITY", Title, language.English, "New York-City"},
		{"NEW YORK CITY", Sentence, language.English, "New york city"},
		{"welcome to the usa!", Sentence, language.English, "Welcome to the USA!"},
		{"  leading space", Sentence, language.English, "  Leading space"},
		{"Unchanged", NoCase, language.English, "Unchanged"},
		{"", Title, language.English, ""},
	}
	for _, test := range tests {
		s := geotext.FromUTF8(test.in)
		if err := SetCase(s, test.kind, dict, test.tag); err != nil {
			t.Fatalf("%s case for %q: %v", test.kind, test.in, err)
		}
		if s.String() != test.out {
			t.Errorf("%s case for %q: expected %q, have %q", test.kind, test.in, test.out, s.String())
		}
	}
}

func TestSetSentenceCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := geotext.FromUTF8("RUE DE LA PAIX")
	if err := SetSentenceCase(s); err != nil || s.String() != "Rue de la paix" {
		t.Errorf("expected 'Rue de la paix', have %q, %v", s.String(), err)
	}
	v := geotext.NewView(geotext.UTF16("read only"))
	if err := SetSentenceCase(v); err != geotext.ErrInvalidOperation {
		t.Errorf("expected read-only view to be rejected, have %v", err)
	}
}

func TestParseLetterCase(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for c := NoCase; c <= Sentence; c++ {
		if p, ok := ParseLetterCase(c.String()); !ok || p != c {
			t.Errorf("cannot parse letter case %s", c)
		}
	}
	if _, ok := ParseLetterCase("camel"); ok {
		t.Errorf("expected 'camel' to be rejected")
	}
}

func TestTransliterate(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		in, out string
	}{
		{"Москва", "Moskva"},
		{"Wien", "Wien"},
		{"Crème Brûlée", "Crème Brûlée"},
		{"", ""},
	}
	for _, test := range tests {
		s := geotext.FromUTF8(test.in)
		if err := Transliterate(s, nil, language.English); err != nil {
			t.Fatalf("transliterate %q: %v", test.in, err)
		}
		if s.String() != test.out {
			t.Errorf("transliterate %q: expected %q, have %q", test.in, test.out, s.String())
		}
	}
	if !IsLatin("Ærøskøbing 12") || IsLatin("東京") {
		t.Errorf("IsLatin misclassifies scripts")
	}
}
