package geotext

// View is a read-only text which does not own its units.
// A View is valid as long as the borrowed units are not modified by their owner.
type View struct {
	text []uint16
}

// NewView creates a view onto UTF-16 units.
func NewView(units []uint16) View {
	return View{text: units}
}

// ViewOf creates a read-only view of another text.
func ViewOf(t Text) View {
	if t == nil {
		return View{}
	}
	return View{text: t.Data()}
}

// Len is part of interface Text.
func (v View) Len() int { return len(v.text) }

// Data is part of interface Text.
func (v View) Data() []uint16 { return v.text }

// Writable is part of interface Text. Views are never writable.
func (v View) Writable() bool { return false }

// MaxWritableLen is part of interface Text.
func (v View) MaxWritableLen() int { return 0 }

// WritableData is part of interface Text.
func (v View) WritableData() []uint16 { return nil }

// Resize is part of interface Text. A view cannot be resized.
func (v View) Resize(n int) int {
	CT().Errorf("geotext: cannot resize a read-only view")
	return len(v.text)
}

func (v View) String() string {
	return ToUTF8(v)
}

// --- Writable view ---------------------------------------------------------

// WritableView is a writable text which does not own its units.
// Its maximum length is the length of the borrowed slice.
type WritableView struct {
	text []uint16
	n    int
}

// NewWritableView creates a writable view onto buf, with an initial length
// of n units.
func NewWritableView(buf []uint16, n int) *WritableView {
	return &WritableView{text: buf, n: clamp(n, 0, len(buf))}
}

// Len is part of interface Text.
func (w *WritableView) Len() int { return w.n }

// Data is part of interface Text.
func (w *WritableView) Data() []uint16 { return w.text[:w.n] }

// Writable is part of interface Text.
func (w *WritableView) Writable() bool { return true }

// MaxWritableLen is part of interface Text.
func (w *WritableView) MaxWritableLen() int { return len(w.text) }

// WritableData is part of interface Text.
func (w *WritableView) WritableData() []uint16 { return w.text[:w.n] }

// Resize is part of interface Text. The new length is clamped to the length
// of the borrowed slice.
func (w *WritableView) Resize(n int) int {
	n = clamp(n, 0, len(w.text))
	if n > w.n {
		zero(w.text[w.n:n])
	}
	w.n = n
	return n
}

func (w *WritableView) String() string {
	return ToUTF8(w)
}

func zero(units []uint16) {
	for i := range units {
		units[i] = 0
	}
}
