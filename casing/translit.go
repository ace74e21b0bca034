package casing

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-unidecode"
	"github.com/npillmayer/geotext"
	"golang.org/x/text/language"
)

// Transliterate converts a text in a non-Latin script to Latin script and
// puts the result in title case, in place. Text already in Latin script is
// left alone, as is text for which no transliteration is known.
func Transliterate(t geotext.Text, dict TitleDictionary, tag language.Tag) error {
	if t == nil || !t.Writable() {
		T().Errorf("casing: cannot transliterate read-only text")
		return geotext.ErrInvalidOperation
	}
	s := geotext.ToUTF8(t)
	if IsLatin(s) {
		return nil
	}
	latin := strings.Join(strings.Fields(unidecode.Unidecode(s)), " ")
	if latin == "" {
		T().Debugf("casing: no transliteration for %q", s)
		return nil
	}
	T().Debugf("casing: transliterated %q → %q", s, latin)
	if err := geotext.SetString(t, latin); err != nil {
		return err
	}
	return SetCase(t, Title, dict, tag)
}

// IsLatin is true if s contains no letters other than Latin ones.
func IsLatin(s string) bool {
	for _, r := range s {
		if !unicode.In(r, unicode.Latin, unicode.Common, unicode.Inherited) {
			return false
		}
	}
	return true
}
