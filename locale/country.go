package locale

import (
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

var countryCodes map[string]string // lower-cased English name → lower-cased ISO code
var countryOnce sync.Once

func setupCountryCodes() {
	countryCodes = make(map[string]string, 256)
	namer := display.English.Regions()
	code := []byte{'A', 'A'}
	for code[0] = 'A'; code[0] <= 'Z'; code[0]++ {
		for code[1] = 'A'; code[1] <= 'Z'; code[1]++ {
			region, err := language.ParseRegion(string(code))
			if err != nil || !region.IsCountry() || region.String() != string(code) {
				continue
			}
			if name := namer.Name(region); name != "" {
				countryCodes[lowerName(name)] = strings.ToLower(string(code))
			}
		}
	}
	T().Debugf("locale: set up %d country codes", len(countryCodes))
}

// CountryToCode returns the two-letter country code (ISO 3166-1 alpha-2) in
// lower case, given the English name of a country, e.g. "Germany" → "de".
// Letter case is ignored. CountryToCode returns "" for unknown names.
func CountryToCode(country string) string {
	countryOnce.Do(setupCountryCodes)
	return countryCodes[lowerName(strings.TrimSpace(country))]
}

// CodeToCountry returns the English name of a country in lower case, given
// its two-letter country code (ISO 3166-1 alpha-2), e.g. "DE" → "germany".
// Letter case is ignored. For unknown codes, the code itself is returned
// in lower case.
func CodeToCountry(code string) string {
	code = strings.TrimSpace(code)
	lower := strings.ToLower(code)
	if len(code) != 2 {
		return lower
	}
	region, err := language.ParseRegion(strings.ToUpper(code))
	if err != nil || !region.IsCountry() {
		return lower
	}
	name := display.English.Regions().Name(region)
	if name == "" {
		return lower
	}
	return lowerName(name)
}

func lowerName(name string) string {
	return cases.Lower(language.English).String(name)
}
