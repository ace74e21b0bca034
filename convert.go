package geotext

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/npillmayer/geotext/ucp"
)

// FromUTF8 creates a string from UTF-8 text. Malformed UTF-8 is converted
// to U+FFFD, one per invalid byte.
func FromUTF8(s string) *String {
	return FromUTF8Bytes([]byte(s))
}

// FromUTF8Bytes creates a string from a slice of UTF-8 encoded bytes.
func FromUTF8Bytes(b []byte) *String {
	str := NewString()
	if len(b) == 0 {
		return str
	}
	_ = Set(str, appendUTF16(make([]uint16, 0, len(b)), ucp.NewUTF8Iter(b)))
	return str
}

// FromUTF16 creates a string holding a copy of UTF-16 units.
// The units are copied as they are, including unpaired surrogates.
func FromUTF16(units []uint16) *String {
	str := NewString()
	_ = Set(str, units)
	return str
}

// FromRunes creates a string from UTF-32 text.
func FromRunes(runes []rune) *String {
	str := NewString()
	_ = Set(str, appendUTF16(make([]uint16, 0, len(runes)), ucp.NewUTF32Iter(runes)))
	return str
}

// UTF16 encodes a Go string as UTF-16.
func UTF16(s string) []uint16 {
	if s == "" {
		return nil
	}
	return appendUTF16(make([]uint16, 0, len(s)), ucp.NewUTF8Iter([]byte(s)))
}

// ToUTF8 converts a text to a Go string. Unpaired surrogates are converted
// to U+FFFD.
func ToUTF8(t Text) string {
	if IsEmpty(t) {
		return ""
	}
	it := ucp.NewUTF16Iter(t.Data())
	b := make([]byte, 0, t.Len())
	var enc [utf8.UTFMax]byte
	for {
		r, err := it.Next()
		if err != nil {
			break
		}
		n := utf8.EncodeRune(enc[:], r)
		b = append(b, enc[:n]...)
	}
	return string(b)
}

// ToUTF16 returns a copy of the UTF-16 units of a text.
func ToUTF16(t Text) []uint16 {
	if IsEmpty(t) {
		return nil
	}
	return append([]uint16(nil), t.Data()...)
}

func appendUTF16(dst []uint16, it ucp.Iterator) []uint16 {
	for {
		r, err := it.Next()
		if err != nil {
			return dst
		}
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			dst = append(dst, uint16(r1), uint16(r2))
		} else {
			dst = append(dst, uint16(r))
		}
	}
}
