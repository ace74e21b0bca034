package attrib

import (
	"errors"

	"github.com/npillmayer/geotext"
)

// Control characters of the attribute format.
const (
	Escape          = 0x10 // escapes the next code unit
	RecordSeparator = 0x1E // terminates a key/value pair
	UnitSeparator   = 0x1F // separates key from value
)

// ErrEmptyKey is returned when trying to set an attribute without a key.
var ErrEmptyKey = errors.New("attrib: attribute key must not be empty")

// Tag is a key/value pair, used to move attributes into and out of a text.
type Tag struct {
	Key, Value string
}

// record is the position of a key/value pair within a text.
type record struct {
	start, sep, end int // key = start…sep, value = sep+1…end, RS at end
	keyEsc, valEsc  bool
}

// scan finds the end of a field starting at i: the index of the next
// unescaped separator, or len(data).
func scan(data []uint16, i int) (end int, escaped bool) {
	for i < len(data) {
		switch data[i] {
		case Escape:
			escaped = true
			i += 2
			continue
		case UnitSeparator, RecordSeparator:
			return i, escaped
		}
		i++
	}
	return len(data), escaped
}

// nextRecord parses the pair at position i. Records without a key/value
// separator or with extra separators are skipped. ok is false at the end
// of data or if the remaining data is not terminated.
func nextRecord(data []uint16, i int) (rec record, ok bool) {
	for i < len(data) {
		sep, kesc := scan(data, i)
		if sep >= len(data) {
			break
		}
		if data[sep] == RecordSeparator {
			T().Debugf("attrib: skipping record without value at %d", i)
			i = sep + 1
			continue
		}
		end, vesc := scan(data, sep+1)
		if end >= len(data) {
			break
		}
		if data[end] == UnitSeparator {
			T().Debugf("attrib: skipping malformed record at %d", i)
			for end < len(data) && data[end] != RecordSeparator {
				end, _ = scan(data, end+1)
			}
			i = end + 1
			continue
		}
		return record{start: i, sep: sep, end: end, keyEsc: kesc, valEsc: vesc}, true
	}
	if i < len(data) {
		T().Debugf("attrib: ignoring unterminated data at %d", i)
	}
	return record{}, false
}

// terminated returns the position after the last record separator.
func terminated(data []uint16) int {
	last := 0
	for i := 0; i < len(data); {
		end, _ := scan(data, i)
		if end < len(data) && data[end] == RecordSeparator {
			last = end + 1
		}
		i = end + 1
	}
	return last
}

func find(data []uint16, key []uint16) (record, bool) {
	for i := 0; ; {
		rec, ok := nextRecord(data, i)
		if !ok {
			return rec, false
		}
		if geotext.CompareUnits(data[rec.start:rec.sep], key) == geotext.Equal {
			return rec, true
		}
		i = rec.end + 1
	}
}

// Attribute returns the value of the attribute key. The result is a view
// into t, unless the value contains escaped characters. If there is no such
// attribute, an empty view is returned.
func Attribute(t geotext.Text, key string) geotext.Text {
	if geotext.IsEmpty(t) || key == "" {
		return geotext.View{}
	}
	data := t.Data()
	rec, ok := find(data, escape(geotext.UTF16(key)))
	if !ok {
		return geotext.View{}
	}
	return field(data[rec.sep+1:rec.end], rec.valEsc)
}

// SetAttribute sets the value of the attribute key, in place. An existing
// value is replaced, otherwise the pair is appended. An empty value removes
// the attribute.
//
// Bounded texts may not have room for the result; they are truncated, which
// drops the last attribute.
func SetAttribute(t geotext.Text, key, value string) error {
	if key == "" {
		T().Errorf("attrib: attempt to set attribute with empty key")
		return ErrEmptyKey
	}
	if t == nil || !t.Writable() {
		T().Errorf("attrib: attempt to set attribute %q on read-only text", key)
		return geotext.ErrInvalidOperation
	}
	k := escape(geotext.UTF16(key))
	rec, found := find(t.Data(), k)
	switch {
	case found && value == "":
		return geotext.Delete(t, rec.start, rec.end+1)
	case found:
		return geotext.Replace(t, rec.sep+1, rec.end, escape(geotext.UTF16(value)))
	case value == "":
		return nil
	}
	if end := terminated(t.Data()); end < t.Len() {
		T().Debugf("attrib: dropping unterminated data at %d", end)
		if err := geotext.Delete(t, end, t.Len()); err != nil {
			return err
		}
	}
	n := len(k) + 1 + len(value) + 1
	pair := make([]uint16, 0, n)
	pair = append(append(pair, k...), UnitSeparator)
	pair = append(append(pair, escape(geotext.UTF16(value))...), RecordSeparator)
	return geotext.Append(t, pair)
}

// NextAttribute enumerates the attributes of t. It returns the pair at
// position *cursor and advances the cursor. Start with a cursor of 0.
// ok is false if there are no more attributes.
//
//   cursor := 0
//   for key, value, ok := NextAttribute(t, &cursor); ok; key, value, ok = NextAttribute(t, &cursor) {
//       ...
//   }
func NextAttribute(t geotext.Text, cursor *int) (key, value geotext.Text, ok bool) {
	if geotext.IsEmpty(t) || *cursor < 0 {
		return nil, nil, false
	}
	data := t.Data()
	rec, ok := nextRecord(data, *cursor)
	if !ok {
		*cursor = len(data)
		return nil, nil, false
	}
	*cursor = rec.end + 1
	return field(data[rec.start:rec.sep], rec.keyEsc), field(data[rec.sep+1:rec.end], rec.valEsc), true
}

// Tags returns all attributes of t, in order.
func Tags(t geotext.Text) []Tag {
	var tags []Tag
	cursor := 0
	for key, value, ok := NextAttribute(t, &cursor); ok; key, value, ok = NextAttribute(t, &cursor) {
		tags = append(tags, Tag{Key: geotext.ToUTF8(key), Value: geotext.ToUTF8(value)})
	}
	return tags
}

// SetTags replaces the contents of t by a list of attributes.
// Tags with empty keys or values are skipped; later tags for the same key
// overwrite earlier ones.
func SetTags(t geotext.Text, tags []Tag) error {
	if err := geotext.Clear(t); err != nil {
		return err
	}
	for _, tag := range tags {
		if tag.Key == "" {
			continue
		}
		if err := SetAttribute(t, tag.Key, tag.Value); err != nil {
			return err
		}
	}
	return nil
}

func field(units []uint16, escaped bool) geotext.Text {
	if !escaped {
		return geotext.NewView(units)
	}
	return geotext.FromUTF16(unescape(units))
}

func escape(units []uint16) []uint16 {
	out := units[:0:0]
	for _, u := range units {
		if u == Escape || u == UnitSeparator || u == RecordSeparator {
			out = append(out, Escape)
		}
		out = append(out, u)
	}
	return out
}

func unescape(units []uint16) []uint16 {
	out := make([]uint16, 0, len(units))
	for i := 0; i < len(units); i++ {
		if units[i] == Escape && i+1 < len(units) {
			i++
		}
		out = append(out, units[i])
	}
	return out
}
