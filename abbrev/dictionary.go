package abbrev

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type determines where in a phrase an abbreviation may be used.
type Type int8

// Types of abbreviations.
const (
	Any    Type = iota // anywhere in a phrase
	Start              // only for the first word of a phrase
	End                // only for the last word of a phrase
	Suffix             // at the end of any word
)

func (t Type) String() string {
	switch t {
	case Start:
		return "start"
	case End:
		return "end"
	case Suffix:
		return "suffix"
	}
	return "any"
}

// ParseType reads a type from its name, as returned by String().
// An empty name denotes Any.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return Any, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	case "suffix":
		return Suffix, nil
	}
	return Any, fmt.Errorf("abbrev: unknown abbreviation type %q", s)
}

// Abbreviation is an entry of a dictionary.
//
// ReplaceCount is the number of trailing code-points of a word to be replaced
// by ShortForm. 0 means to replace the whole word.
type Abbreviation struct {
	ShortForm    string
	Type         Type
	ReplaceCount int
}

// Position tells which words of a phrase a word is, for lookup.
type Position uint8

// Positions of a word within a phrase. A phrase consisting of a single word
// has position FirstWord|LastWord.
const (
	FirstWord Position = 1 << iota
	LastWord
)

type suffixRule struct {
	suffix []rune
	abbrev Abbreviation
}

// Dictionary maps lower-cased words to abbreviations and holds an ordered
// list of suffix rules.
type Dictionary struct {
	words    *treemap.Map   // lower-cased long form → Abbreviation
	suffixes *arraylist.List // of suffixRule, in order of insertion
}

// NewDictionary creates an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{
		words:    treemap.NewWithStringComparator(),
		suffixes: arraylist.New(),
	}
}

// Add inserts an abbreviation. Entries of type Suffix are appended to the
// suffix rules and replace as many code-points as long has. Other entries
// overwrite an existing entry for the same (lower-cased) word.
//
// Dictionaries must not be modified once they are in use.
func (d *Dictionary) Add(long, short string, typ Type) {
	long = lower(long)
	if long == "" {
		T().Errorf("abbrev: ignoring abbreviation with empty long form")
		return
	}
	if typ == Suffix {
		suffix := []rune(long)
		d.suffixes.Add(suffixRule{
			suffix: suffix,
			abbrev: Abbreviation{ShortForm: short, Type: Suffix, ReplaceCount: len(suffix)},
		})
		return
	}
	d.words.Put(long, Abbreviation{ShortForm: short, Type: typ})
}

// IsEmpty is true if the dictionary has no entries.
func (d *Dictionary) IsEmpty() bool {
	return d == nil || (d.words.Empty() && d.suffixes.Empty())
}

// Len returns the number of entries, words and suffixes.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return d.words.Size() + d.suffixes.Size()
}

// Lookup finds the abbreviation for a word at a position within a phrase.
// Word entries take precedence; if none applies, suffix rules are tried in
// order. A suffix rule applies only to words longer than the suffix.
func (d *Dictionary) Lookup(word string, pos Position) (Abbreviation, bool) {
	if d.IsEmpty() {
		return Abbreviation{}, false
	}
	w := lower(word)
	if v, found := d.words.Get(w); found {
		a := v.(Abbreviation)
		switch {
		case a.Type == Start && pos&FirstWord == 0:
		case a.Type == End && pos&LastWord == 0:
		default:
			return a, true
		}
	}
	runes := []rune(w)
	it := d.suffixes.Iterator()
	for it.Next() {
		rule := it.Value().(suffixRule)
		if len(runes) > len(rule.suffix) && hasSuffix(runes, rule.suffix) {
			return rule.abbrev, true
		}
	}
	return Abbreviation{}, false
}

// Each calls f for every word entry, in lexical order of the words, followed
// by every suffix rule, in insertion order.
func (d *Dictionary) Each(f func(long string, a Abbreviation)) {
	if d == nil {
		return
	}
	d.words.Each(func(k, v interface{}) {
		f(k.(string), v.(Abbreviation))
	})
	d.suffixes.Each(func(_ int, v interface{}) {
		rule := v.(suffixRule)
		f(string(rule.suffix), rule.abbrev)
	})
}

func hasSuffix(runes, suffix []rune) bool {
	off := len(runes) - len(suffix)
	for i, r := range suffix {
		if runes[off+i] != r {
			return false
		}
	}
	return true
}

// Casers are not safe for concurrent use, so we create one per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
