package arithbuf

import (
	"math/big"

	"github.com/npillmayer/arithbuf/poly"
)

// Conversion to the canonical polynomial representation, the hand-off point
// to hash-consing layers above the buffer.
//
// Each operation takes an index map v supplied by the caller: v[j] is the
// variable index for the buffer's j-th monomial in graded-lex order, with
// pprod.Empty mapped to poly.ConstIdx, ascending, and v[NumTerms()] holding
// the poly.MaxIdx end marker. The buffer never derives this mapping itself.

// checkIndexMap validates the shape of the caller-supplied index map.
func (b *Buffer) checkIndexMap(v []int32) {
	assert(uint32(len(v)) > b.nterms, "arithbuf: index map must cover all monomials plus the end marker")
	assert(v[b.nterms] == poly.MaxIdx, "arithbuf: index map must be terminated by the end marker")
}

// Hash returns the canonical hash of the polynomial defined by the buffer
// and the index map v. It equals poly's Hash of the polynomial BuildPoly
// would return, so buffers can be probed against a hash-consing table
// without materializing the polynomial.
func (b *Buffer) Hash(v []int32) uint32 {
	b.checkIndexMap(v)
	hs := poly.NewHasher()
	j := 0
	b.each(b.root, func(i uint32) bool {
		hs.WriteMono(&b.mono[i].coeff, v[j])
		j++
		return true
	})
	return hs.Sum32()
}

// EqualPoly reports whether the polynomial defined by the buffer and the
// index map v equals p.
func (b *Buffer) EqualPoly(v []int32, p *poly.Polynomial) bool {
	b.checkIndexMap(v)
	if int(b.nterms) != p.Len() {
		return false
	}
	j := 0
	return b.each(b.root, func(i uint32) bool {
		m := p.Mono(j)
		j++
		return m.Var == v[j-1] && m.Coeff.Cmp(&b.mono[i].coeff) == 0
	})
}

// BuildPoly converts the buffer into a canonical polynomial and resets the
// buffer to zero. Ownership of the term data moves to the returned
// polynomial: its coefficients are independent storage, never shared with
// the buffer's arena.
func (b *Buffer) BuildPoly(v []int32) *poly.Polynomial {
	b.checkIndexMap(v)
	mons := make([]poly.Monomial, 0, b.nterms)
	j := 0
	b.each(b.root, func(i uint32) bool {
		mons = append(mons, poly.Monomial{
			Var:   v[j],
			Coeff: new(big.Rat).Set(&b.mono[i].coeff),
		})
		j++
		return true
	})
	T().Debugf("arith buffer: drained %d monomials into a canonical polynomial", len(mons))
	b.Reset()
	return poly.New(mons)
}
