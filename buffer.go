package geotext

// FixedBuffer is a writable text owning a buffer of fixed capacity.
// The buffer is allocated once, at construction time; text exceeding the
// capacity is truncated.
type FixedBuffer struct {
	text []uint16
	n    int
}

// NewFixedBuffer creates an empty buffer for up to capacity UTF-16 units.
func NewFixedBuffer(capacity int) *FixedBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &FixedBuffer{text: make([]uint16, capacity)}
}

// FixedBufferFrom creates a buffer of the given capacity and fills it with s,
// truncated to the capacity if necessary.
func FixedBufferFrom(capacity int, s string) *FixedBuffer {
	b := NewFixedBuffer(capacity)
	_ = SetString(b, s)
	return b
}

// Len is part of interface Text.
func (b *FixedBuffer) Len() int { return b.n }

// Data is part of interface Text.
func (b *FixedBuffer) Data() []uint16 { return b.text[:b.n] }

// Writable is part of interface Text.
func (b *FixedBuffer) Writable() bool { return true }

// MaxWritableLen is part of interface Text.
func (b *FixedBuffer) MaxWritableLen() int { return len(b.text) }

// WritableData is part of interface Text.
func (b *FixedBuffer) WritableData() []uint16 { return b.text[:b.n] }

// Resize is part of interface Text. The new length is clamped to the
// capacity of the buffer.
func (b *FixedBuffer) Resize(n int) int {
	n = clamp(n, 0, len(b.text))
	if n > b.n {
		zero(b.text[b.n:n])
	}
	b.n = n
	return n
}

func (b *FixedBuffer) String() string {
	return ToUTF8(b)
}
