package ucp

import (
	"context"
	"sync"
	"unicode"
	"unicode/utf8"

	pool "github.com/jolestar/go-commons-pool"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxCaseVariantLength is the maximum number of code-points the case folding
// of a single code-point may expand to.
const MaxCaseVariantLength = 3

// Letters which carry a diacritic but do not have a canonical decomposition.
var strippedWithoutDecomposition = map[rune]rune{
	'Ø': 'O', 'ø': 'o',
	'Ł': 'L', 'ł': 'l',
	'Đ': 'D', 'đ': 'd',
	'Ħ': 'H', 'ħ': 'h',
	'Ŧ': 'T', 'ŧ': 't',
	'Ƀ': 'B', 'ƀ': 'b',
	'Ɨ': 'I', 'ı': 'i',
	'Ŀ': 'L', 'ŀ': 'l',
}

// Transformers (accent strippers, case folders) are stateful, so we pool them.
type transformerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

func newTransformerPool(create func() transform.Transformer) *transformerPool {
	tp := &transformerPool{ctx: context.Background()}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return create(), nil
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	tp.opool = pool.NewObjectPool(tp.ctx, factory, config)
	return tp
}

// apply transforms s with a pooled transformer. If anything goes wrong,
// s is returned unchanged.
func (tp *transformerPool) apply(s string) string {
	o, err := tp.opool.BorrowObject(tp.ctx)
	if err != nil {
		T().Errorf("ucp: cannot borrow transformer: %v", err)
		return s
	}
	t := o.(transform.Transformer)
	defer func() {
		_ = tp.opool.ReturnObject(tp.ctx, t)
	}()
	out, _, err := transform.String(t, s)
	if err != nil {
		T().Errorf("ucp: transforming %q: %v", s, err)
		return s
	}
	return out
}

var globalStripperPool, globalFolderPool *transformerPool

func init() {
	globalStripperPool = newTransformerPool(func() transform.Transformer {
		return transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		)
	})
	globalFolderPool = newTransformerPool(func() transform.Transformer {
		folder := cases.Fold()
		return &folder // pooled objects are tracked by identity
	})
}

// StripAccents removes all non-spacing combining marks from s,
// i.e. NFD → remove(Mn) → NFC.
func StripAccents(s string) string {
	return globalStripperPool.apply(s)
}

var strippedCache sync.Map // rune → rune

// StripAccent returns the unaccented form of a code-point, e.g., 'é' → 'e'.
// Code-points without accents are returned unchanged.
func StripAccent(r rune) rune {
	if r < 0x80 {
		return r
	}
	if s, ok := strippedWithoutDecomposition[r]; ok {
		return s
	}
	if s, ok := strippedCache.Load(r); ok {
		return s.(rune)
	}
	stripped := r
	if !unicode.Is(unicode.Mn, r) {
		s := StripAccents(string(r))
		if c, size := utf8.DecodeRuneInString(s); size > 0 && size == len(s) {
			stripped = c
		}
	}
	strippedCache.Store(r, stripped)
	return stripped
}

var foldedCache sync.Map // rune → []rune

// FoldCase appends the full case folding of r to buf[:0] and returns it.
// The result holds between 1 and MaxCaseVariantLength code-points.
func FoldCase(r rune, buf []rune) []rune {
	buf = buf[:0]
	if r < 0x80 {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		return append(buf, r)
	}
	if f, ok := foldedCache.Load(r); ok {
		return append(buf, f.([]rune)...)
	}
	folded := []rune(globalFolderPool.apply(string(r)))
	if len(folded) == 0 || len(folded) > MaxCaseVariantLength {
		T().Debugf("ucp: unexpected case folding %#U → %q", r, string(folded))
		folded = []rune{r}
	}
	foldedCache.Store(r, folded)
	return append(buf, folded...)
}
