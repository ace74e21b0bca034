package geotext

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func breaks(t Text) []int {
	var b []int
	for pos := 0; pos <= t.Len(); pos++ {
		if IsLineBreak(t, pos) {
			b = append(b, pos)
		}
	}
	return b
}

func TestLineBreaks(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	tests := []struct {
		text     string
		expected []int
	}{
		{"Rue de la Paix", []int{4, 7, 10, 14}},
		{"Saint-Denis", []int{6, 11}},
		{"A - B", []int{2, 4, 5}},
		{"東京都", []int{1, 2, 3}},
		{"東京。", []int{1, 3}},
		{"𠀀𠀁", []int{2, 4}},
		{"a😀b", []int{4}},
		{"", nil},
	}
	for _, test := range tests {
		have := breaks(FromUTF8(test.text))
		if len(have) != len(test.expected) {
			t.Errorf("%q: expected breaks %v, have %v", test.text, test.expected, have)
			continue
		}
		for i := range have {
			if have[i] != test.expected[i] {
				t.Errorf("%q: expected breaks %v, have %v", test.text, test.expected, have)
				break
			}
		}
	}
}

func TestLineBreakBeforeAfter(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	s := FromUTF8("Rue de la Paix")
	tests := []struct {
		pos, before, after int
	}{
		{0, 0, 4},
		{3, 0, 4},
		{4, 4, 4},
		{9, 7, 10},
		{11, 10, 14},
		{14, 14, 14},
		{99, 14, 14},
	}
	for _, test := range tests {
		if b := LineBreakBefore(s, test.pos); b != test.before {
			t.Errorf("LineBreakBefore(%d): expected %d, have %d", test.pos, test.before, b)
		}
		if a := LineBreakAfter(s, test.pos); a != test.after {
			t.Errorf("LineBreakAfter(%d): expected %d, have %d", test.pos, test.after, a)
		}
	}
}
