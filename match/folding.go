package match

import (
	"github.com/npillmayer/geotext"
	"github.com/npillmayer/geotext/ucp"
)

// FoldingIterator wraps a code-point iterator and folds its output according
// to a match method: ignored code-points are skipped, accents are stripped
// and letter case is folded. Case folding may expand a single input
// code-point to several output code-points. With FoldAccents, non-spacing
// marks are dropped, so decomposed and precomposed text fold alike.
//
// Folding is not reversible, therefore Back() is not implemented.
type FoldingIterator struct {
	inner      ucp.Iterator
	method     Method
	variant    [ucp.MaxCaseVariantLength]rune
	variantLen int
	variantInx int
}

var _ ucp.Iterator = &FoldingIterator{}

// NewFoldingIterator creates a folding iterator for inner, applying method m.
func NewFoldingIterator(inner ucp.Iterator, m Method) *FoldingIterator {
	return &FoldingIterator{inner: inner, method: m}
}

// Next is part of interface ucp.Iterator.
func (fit *FoldingIterator) Next() (rune, error) {
	if fit.variantInx < fit.variantLen {
		r := fit.variant[fit.variantInx]
		fit.variantInx++
		return r, nil
	}
	var r rune
	for {
		var err error
		if r, err = fit.inner.Next(); err != nil {
			return r, err
		}
		if !fit.method.drops(r) {
			break
		}
	}
	if fit.method.Has(FoldAccents) {
		r = ucp.StripAccent(r)
	}
	if fit.method.Has(FoldCase) {
		v := ucp.FoldCase(r, fit.variant[:0])
		fit.variantLen, fit.variantInx = len(v), 1
		return v[0], nil
	}
	return r, nil
}

// Back is part of interface ucp.Iterator. It always returns ucp.ErrUnimplemented.
func (fit *FoldingIterator) Back() error {
	return ucp.ErrUnimplemented
}

// foldRune appends the folded form of r to buf[:0]. The result is empty if
// r is dropped by m.
func foldRune(r rune, m Method, buf []rune) []rune {
	buf = buf[:0]
	if m.drops(r) {
		return buf
	}
	if m.Has(FoldAccents) {
		r = ucp.StripAccent(r)
	}
	if m.Has(FoldCase) {
		return ucp.FoldCase(r, buf)
	}
	return append(buf, r)
}

// Folded returns the folded code-points of a text.
func Folded(t geotext.Text, m Method) []rune {
	return ucp.Collect(NewFoldingIterator(geotext.Runes(t), m))
}

// Fold returns a new string holding the text t folded by method m.
// Flags Prefix and Fuzzy have no effect.
func Fold(t geotext.Text, m Method) *geotext.String {
	return geotext.FromRunes(Folded(t, m))
}
