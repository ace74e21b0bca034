package geotext

// InlineSize is the number of UTF-16 units a String stores without
// a separate allocation.
const InlineSize = 32

// String is a growable text owning its units.
//
// Short text (up to InlineSize units) is stored inline. As soon as the text
// grows beyond that, it is moved to a heap-allocated slice and stays there,
// even if it shrinks again later.
//
// A String must not be copied after first use; use Clone instead.
type String struct {
	inline [InlineSize]uint16
	heap   []uint16 // valid if onHeap
	n      int
	onHeap bool
}

// NewString creates an empty string.
func NewString() *String {
	return &String{}
}

// NewStringFrom creates a string holding a copy of the units of t.
func NewStringFrom(t Text) *String {
	s := &String{}
	if t != nil {
		_ = Set(s, t.Data())
	}
	return s
}

// Clone returns a deep copy of s.
func (s *String) Clone() *String {
	return NewStringFrom(s)
}

// Len is part of interface Text.
func (s *String) Len() int { return s.n }

// Data is part of interface Text.
func (s *String) Data() []uint16 {
	if s.onHeap {
		return s.heap[:s.n]
	}
	return s.inline[:s.n]
}

// Writable is part of interface Text.
func (s *String) Writable() bool { return true }

// MaxWritableLen is part of interface Text.
func (s *String) MaxWritableLen() int {
	if s.onHeap {
		return cap(s.heap)
	}
	return InlineSize
}

// WritableData is part of interface Text.
func (s *String) WritableData() []uint16 { return s.Data() }

// Resize is part of interface Text. A String may grow or shrink to any size.
func (s *String) Resize(n int) int {
	if n < 0 {
		n = 0
	}
	if n > s.MaxWritableLen() {
		c := 2 * s.MaxWritableLen()
		if c < n {
			c = n
		}
		buf := make([]uint16, n, c)
		copy(buf, s.Data())
		s.heap, s.onHeap = buf, true
		s.n = n
		return n
	}
	if s.onHeap {
		s.heap = s.heap[:cap(s.heap)]
		if n > s.n {
			zero(s.heap[s.n:n])
		}
		s.heap = s.heap[:n]
	} else if n > s.n {
		zero(s.inline[s.n:n])
	}
	s.n = n
	return n
}

// IsInline is true as long as the string has not been moved to the heap.
func (s *String) IsInline() bool {
	return !s.onHeap
}

func (s *String) String() string {
	return ToUTF8(s)
}
