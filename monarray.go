package arithbuf

import (
	"math/big"

	"github.com/npillmayer/arithbuf/poly"
	"github.com/npillmayer/arithbuf/pprod"
)

// Operations combining a buffer with a monomial array: a sparse external
// polynomial given as (variable index, coefficient) pairs terminated by the
// poly.MaxIdx end marker. Variable indices mean nothing to the buffer, so
// every operation takes a parallel slice pp of already resolved power
// products: pp[k] is the product for mons[k]. The caller guarantees that pp
// is sorted in graded-lex order and at least as long as the monomial count,
// and that a constant monomial comes first with pp[0] == pprod.Empty.

// monarrayLen returns the number of monomials before the end marker.
func monarrayLen(mons []poly.Monomial) int {
	for k := range mons {
		if mons[k].Var == poly.MaxIdx {
			return k
		}
	}
	assert(false, "arithbuf: monomial array must be terminated by the end marker")
	return 0
}

// AddMonarray adds the monomial array to b.
func (b *Buffer) AddMonarray(mons []poly.Monomial, pp []*pprod.PProd) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	for k := 0; k < n; k++ {
		b.addTerm(mons[k].Coeff, pp[k])
	}
}

// SubMonarray subtracts the monomial array from b.
func (b *Buffer) SubMonarray(mons []poly.Monomial, pp []*pprod.PProd) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	for k := 0; k < n; k++ {
		b.subTerm(mons[k].Coeff, pp[k])
	}
}

// AddConstTimesMonarray adds a times the monomial array to b.
func (b *Buffer) AddConstTimesMonarray(mons []poly.Monomial, pp []*pprod.PProd, a *big.Rat) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	for k := 0; k < n; k++ {
		t.Mul(a, mons[k].Coeff)
		b.addTerm(&t, pp[k])
	}
}

// SubConstTimesMonarray subtracts a times the monomial array from b.
func (b *Buffer) SubConstTimesMonarray(mons []poly.Monomial, pp []*pprod.PProd, a *big.Rat) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	for k := 0; k < n; k++ {
		t.Mul(a, mons[k].Coeff)
		b.subTerm(&t, pp[k])
	}
}

// AddMonoTimesMonarray adds a·r times the monomial array to b.
func (b *Buffer) AddMonoTimesMonarray(mons []poly.Monomial, pp []*pprod.PProd, a *big.Rat, r *pprod.PProd) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	for k := 0; k < n; k++ {
		t.Mul(a, mons[k].Coeff)
		b.addTerm(&t, b.tbl.Mul(pp[k], r))
	}
}

// SubMonoTimesMonarray subtracts a·r times the monomial array from b.
func (b *Buffer) SubMonoTimesMonarray(mons []poly.Monomial, pp []*pprod.PProd, a *big.Rat, r *pprod.PProd) {
	n := monarrayLen(mons)
	assert(len(pp) >= n, "arithbuf: power-product slice shorter than monomial array")
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	for k := 0; k < n; k++ {
		t.Mul(a, mons[k].Coeff)
		b.subTerm(&t, b.tbl.Mul(pp[k], r))
	}
}

// MulMonarray multiplies b by the monomial array.
func (b *Buffer) MulMonarray(mons []poly.Monomial, pp []*pprod.PProd) {
	if b.nterms == 0 {
		return
	}
	snap := b.snapshot()
	b.Reset()
	for _, m := range snap {
		b.AddMonoTimesMonarray(mons, pp, m.Coeff, m.Prod)
	}
}

// powerCutoff bounds the exponent up to which repeated multiplication beats
// square-and-multiply (small products dominate the tree bookkeeping).
const powerCutoff = 4

// MulMonarrayPower multiplies b by the d-th power of the monomial array,
// using aux as scratch for the squaring ladder. aux must be distinct from b
// and is clobbered.
func (b *Buffer) MulMonarrayPower(mons []poly.Monomial, pp []*pprod.PProd, d uint32, aux *Buffer) {
	assert(aux != b, "arithbuf: auxiliary buffer must be distinct from the destination")
	assert(aux.tbl == b.tbl, "arithbuf: operands must share one power-product table")
	if d == 0 {
		return // multiplication by the constant one
	}
	if d <= powerCutoff {
		for ; d > 0; d-- {
			b.MulMonarray(mons, pp)
		}
		return
	}
	aux.Reset()
	aux.AddMonarray(mons, pp)
	for {
		if d&1 != 0 {
			b.MulBuffer(aux)
		}
		d >>= 1
		if d == 0 {
			return
		}
		aux.Square()
	}
}
