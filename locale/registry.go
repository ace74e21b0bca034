package locale

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	jj "github.com/cloudfoundry/jibber_jabber"
	"github.com/npillmayer/geotext/abbrev"
	"github.com/npillmayer/geotext/casing"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Entry is an abbreviation as given in locale data files.
// Type is one of "any" (or empty), "start", "end" or "suffix".
type Entry struct {
	Long  string `yaml:"long" toml:"long"`
	Short string `yaml:"short" toml:"short"`
	Type  string `yaml:"type,omitempty" toml:"type,omitempty"`
}

// Data is the text processing data for a locale.
// Data records must not be modified once they are part of a registry.
type Data struct {
	Locale        string       `yaml:"locale" toml:"locale"` // "" for universal data
	Tag           language.Tag `yaml:"-" toml:"-"`
	Abbreviations []Entry      `yaml:"abbreviations,omitempty" toml:"abbreviations,omitempty"`
	LowerTitle    []string     `yaml:"lower_title,omitempty" toml:"lower_title,omitempty"`
	UpperTitle    []string     `yaml:"upper_title,omitempty" toml:"upper_title,omitempty"`
}

// TitleDictionary creates the title case exceptions of the locale.
func (d *Data) TitleDictionary() casing.TitleDictionary {
	dict := make(casing.TitleDictionary, len(d.LowerTitle)+len(d.UpperTitle))
	lower := cases.Lower(language.Und)
	for _, w := range d.LowerTitle {
		dict[lower.String(w)] = casing.LowerTitle
	}
	for _, w := range d.UpperTitle {
		dict[lower.String(w)] = casing.UpperTitle
	}
	return dict
}

// AbbreviationDictionary creates the abbreviation dictionary of the locale.
func (d *Data) AbbreviationDictionary() *abbrev.Dictionary {
	dict := abbrev.NewDictionary()
	for _, e := range d.Abbreviations {
		typ, err := abbrev.ParseType(e.Type)
		if err != nil {
			T().Errorf("locale %q: %v", d.Locale, err)
			continue
		}
		dict.Add(e.Long, e.Short, typ)
	}
	return dict
}

func (d *Data) validate() error {
	for _, e := range d.Abbreviations {
		if e.Long == "" {
			return fmt.Errorf("locale %q: abbreviation %q without long form", d.Locale, e.Short)
		}
		if _, err := abbrev.ParseType(e.Type); err != nil {
			return fmt.Errorf("locale %q: %w", d.Locale, err)
		}
	}
	return nil
}

// Format is the format of a locale data file.
type Format int8

// Supported formats.
const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "TOML"
	}
	return "YAML"
}

// FormatForFile derives the format of a file from its extension.
func FormatForFile(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return FormatYAML, fmt.Errorf("unsupported format for locale file %s", path)
}

type dataFile struct {
	Locales []*Data `yaml:"locales" toml:"locales"`
}

// Load reads locale data records from r. The data is a list of records
// under key "locales".
func Load(r io.Reader, format Format) ([]*Data, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read locale data: %w", err)
	}
	var f dataFile
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), &f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML locale data: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			T().Infof("locale: ignoring unknown keys %v", undecoded)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML locale data: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format %d for locale data", format)
	}
	for _, d := range f.Locales {
		if err := d.validate(); err != nil {
			return nil, err
		}
	}
	T().Debugf("locale: loaded %d locale records from %s data", len(f.Locales), format)
	return f.Locales, nil
}

// LoadFile reads locale data records from a YAML or TOML file.
func LoadFile(path string) ([]*Data, error) {
	format, err := FormatForFile(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open locale file %s: %w", path, err)
	}
	defer file.Close()
	return Load(file, format)
}

// Registry maps locale identifiers to locale data. Registries are immutable
// and may be shared between goroutines.
type Registry struct {
	data map[string]*Data
}

// NewRegistry creates a registry from data records. Records for the same
// locale replace earlier ones.
func NewRegistry(data ...*Data) *Registry {
	reg := &Registry{data: make(map[string]*Data, len(data))}
	reg.add(data)
	return reg
}

// With returns a new registry with the records of reg, extended or replaced
// by data.
func (reg *Registry) With(data ...*Data) *Registry {
	r := &Registry{data: make(map[string]*Data, len(reg.data)+len(data))}
	for k, d := range reg.data {
		r.data[k] = d
	}
	r.add(data)
	return r
}

func (reg *Registry) add(data []*Data) {
	for _, d := range data {
		if d == nil {
			continue
		}
		key, tag := normalize(d.Locale)
		d.Tag = tag
		reg.data[key] = d
	}
}

// Locales returns the identifiers of all locales in the registry, sorted.
func (reg *Registry) Locales() []string {
	locales := make([]string, 0, len(reg.data))
	for k := range reg.data {
		locales = append(locales, k)
	}
	sort.Strings(locales)
	return locales
}

// Lookup finds the data for a locale, given as a BCP 47 tag or in POSIX
// style ("en_GB"). It falls back to the data for the language and then to
// the universal data. Lookup never returns nil.
func (reg *Registry) Lookup(loc string) *Data {
	key, tag := normalize(loc)
	if d, ok := reg.data[key]; ok {
		return d
	}
	if key != "" {
		if base, conf := tag.Base(); conf != language.No {
			if d, ok := reg.data[base.String()]; ok {
				T().Debugf("locale: %q falls back to %q", loc, base.String())
				return d
			}
		}
	}
	if d, ok := reg.data[""]; ok {
		return d
	}
	return &Data{Tag: language.Und}
}

// TagFor returns the language tag for a locale identifier, given as a BCP 47
// tag or in POSIX style. Malformed identifiers map to language.Und.
func TagFor(loc string) language.Tag {
	_, tag := normalize(loc)
	return tag
}

// normalize returns the registry key and the language tag for a locale
// identifier. Unknown or malformed identifiers map to the universal key "".
func normalize(loc string) (string, language.Tag) {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return "", language.Und
	}
	if i := strings.IndexAny(loc, ".@"); i >= 0 { // "de_DE.UTF-8"
		loc = loc[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil {
		T().Debugf("locale: cannot parse %q: %v", loc, err)
		return "", language.Und
	}
	return tag.String(), tag
}

//go:embed data/locales.yaml
var builtinData []byte

var defaultRegistry *Registry
var defaultOnce sync.Once

// Default returns the registry with the built-in locale data.
func Default() *Registry {
	defaultOnce.Do(func() {
		data, err := Load(bytes.NewReader(builtinData), FormatYAML)
		if err != nil {
			T().Errorf("locale: built-in data: %v", err)
		}
		defaultRegistry = NewRegistry(data...)
	})
	return defaultRegistry
}

// FromEnvironment detects the locale of the user from the environment.
// If it cannot be detected, "en-US" is assumed.
func FromEnvironment() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("locale: default user locale %v", userLocale)
	} else {
		T().Infof("locale: detected user locale %v", userLocale)
	}
	return userLocale
}

// ForEnvironment finds the data for the locale of the user.
func (reg *Registry) ForEnvironment() *Data {
	return reg.Lookup(FromEnvironment())
}
