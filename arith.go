package arithbuf

import (
	"math/big"

	"github.com/npillmayer/arithbuf/pprod"
)

// Rational constants shared by the shortcut operations. Read-only.
var ratOne = big.NewRat(1, 1)

// addTerm combines a·r into the buffer: the single pointwise-update pattern
// behind every additive entry point. A coefficient reaching zero removes its
// node in the same step, reusing the search path of the lookup.
func (b *Buffer) addTerm(a *big.Rat, r *pprod.PProd) {
	if a.Sign() == 0 {
		return
	}
	i, isNew := b.GetNode(r)
	c := &b.mono[i].coeff
	if isNew {
		c.Set(a)
		return
	}
	c.Add(c, a)
	if c.Sign() == 0 {
		b.DeleteNode(i)
	}
}

// subTerm combines (-a)·r into the buffer.
func (b *Buffer) subTerm(a *big.Rat, r *pprod.PProd) {
	if a.Sign() == 0 {
		return
	}
	i, isNew := b.GetNode(r)
	c := &b.mono[i].coeff
	if isNew {
		c.Neg(a)
		return
	}
	c.Sub(c, a)
	if c.Sign() == 0 {
		b.DeleteNode(i)
	}
}

// SetOne sets the buffer to the constant one.
func (b *Buffer) SetOne() {
	b.Reset()
	b.addTerm(ratOne, pprod.Empty)
}

// Negate multiplies the buffer by -1.
func (b *Buffer) Negate() {
	b.each(b.root, func(i uint32) bool {
		c := &b.mono[i].coeff
		c.Neg(c)
		return true
	})
}

// MulConst multiplies the buffer by the constant a. Multiplying by zero
// yields the zero polynomial.
func (b *Buffer) MulConst(a *big.Rat) {
	if a.Sign() == 0 {
		b.Reset()
		return
	}
	b.each(b.root, func(i uint32) bool {
		c := &b.mono[i].coeff
		c.Mul(c, a)
		return true
	})
}

// DivConst divides the buffer by the constant a. a must be nonzero.
func (b *Buffer) DivConst(a *big.Rat) {
	assert(a.Sign() != 0, "arithbuf: division by zero")
	b.each(b.root, func(i uint32) bool {
		c := &b.mono[i].coeff
		c.Quo(c, a)
		return true
	})
}

// MulPP multiplies the buffer by the power product r. Multiplying every
// stored product by the same r preserves the graded-lex order, so the tree
// shape is untouched.
func (b *Buffer) MulPP(r *pprod.PProd) {
	if r.IsEmpty() {
		return
	}
	b.each(b.root, func(i uint32) bool {
		b.mono[i].prod = b.tbl.Mul(b.mono[i].prod, r)
		return true
	})
}

// MulNegPP multiplies the buffer by -r.
func (b *Buffer) MulNegPP(r *pprod.PProd) {
	b.each(b.root, func(i uint32) bool {
		m := &b.mono[i]
		m.coeff.Neg(&m.coeff)
		m.prod = b.tbl.Mul(m.prod, r)
		return true
	})
}

// MulMono multiplies the buffer by the monomial a·r. A zero coefficient
// yields the zero polynomial.
func (b *Buffer) MulMono(a *big.Rat, r *pprod.PProd) {
	if a.Sign() == 0 {
		b.Reset()
		return
	}
	b.each(b.root, func(i uint32) bool {
		m := &b.mono[i]
		m.coeff.Mul(&m.coeff, a)
		m.prod = b.tbl.Mul(m.prod, r)
		return true
	})
}

// AddConst adds the constant a to the buffer.
func (b *Buffer) AddConst(a *big.Rat) {
	b.addTerm(a, pprod.Empty)
}

// SubConst subtracts the constant a from the buffer.
func (b *Buffer) SubConst(a *big.Rat) {
	b.subTerm(a, pprod.Empty)
}

// AddPP adds the power product r to the buffer.
func (b *Buffer) AddPP(r *pprod.PProd) {
	b.addTerm(ratOne, r)
}

// SubPP subtracts the power product r from the buffer.
func (b *Buffer) SubPP(r *pprod.PProd) {
	b.subTerm(ratOne, r)
}

// AddMono adds the monomial a·r to the buffer.
func (b *Buffer) AddMono(a *big.Rat, r *pprod.PProd) {
	b.addTerm(a, r)
}

// SubMono subtracts the monomial a·r from the buffer.
func (b *Buffer) SubMono(a *big.Rat, r *pprod.PProd) {
	b.subTerm(a, r)
}

// checkOperand guards binary operations: operands share the destination's
// power-product table and must not alias the destination, whose tree is
// mutated while the operand is traversed.
func (b *Buffer) checkOperand(b1 *Buffer) {
	assert(b1 != b, "arithbuf: operand must be distinct from the destination buffer")
	assert(b1.tbl == b.tbl, "arithbuf: operands must share one power-product table")
}

// AddBuffer adds buffer b1 to b. b1 must be distinct from b.
func (b *Buffer) AddBuffer(b1 *Buffer) {
	b.checkOperand(b1)
	b1.each(b1.root, func(i uint32) bool {
		b.addTerm(&b1.mono[i].coeff, b1.mono[i].prod)
		return true
	})
}

// SubBuffer subtracts buffer b1 from b. b1 must be distinct from b.
func (b *Buffer) SubBuffer(b1 *Buffer) {
	b.checkOperand(b1)
	b1.each(b1.root, func(i uint32) bool {
		b.subTerm(&b1.mono[i].coeff, b1.mono[i].prod)
		return true
	})
}

// AddConstTimesBuffer adds a·b1 to b. b1 must be distinct from b.
func (b *Buffer) AddConstTimesBuffer(b1 *Buffer, a *big.Rat) {
	b.checkOperand(b1)
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	b1.each(b1.root, func(i uint32) bool {
		t.Mul(a, &b1.mono[i].coeff)
		b.addTerm(&t, b1.mono[i].prod)
		return true
	})
}

// SubConstTimesBuffer subtracts a·b1 from b. b1 must be distinct from b.
func (b *Buffer) SubConstTimesBuffer(b1 *Buffer, a *big.Rat) {
	b.checkOperand(b1)
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	b1.each(b1.root, func(i uint32) bool {
		t.Mul(a, &b1.mono[i].coeff)
		b.subTerm(&t, b1.mono[i].prod)
		return true
	})
}

// AddPPTimesBuffer adds r·b1 to b. b1 must be distinct from b.
func (b *Buffer) AddPPTimesBuffer(b1 *Buffer, r *pprod.PProd) {
	b.checkOperand(b1)
	b1.each(b1.root, func(i uint32) bool {
		b.addTerm(&b1.mono[i].coeff, b.tbl.Mul(b1.mono[i].prod, r))
		return true
	})
}

// SubPPTimesBuffer subtracts r·b1 from b. b1 must be distinct from b.
func (b *Buffer) SubPPTimesBuffer(b1 *Buffer, r *pprod.PProd) {
	b.checkOperand(b1)
	b1.each(b1.root, func(i uint32) bool {
		b.subTerm(&b1.mono[i].coeff, b.tbl.Mul(b1.mono[i].prod, r))
		return true
	})
}

// AddMonoTimesBuffer adds a·r·b1 to b. b1 must be distinct from b.
func (b *Buffer) AddMonoTimesBuffer(b1 *Buffer, a *big.Rat, r *pprod.PProd) {
	b.checkOperand(b1)
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	b1.each(b1.root, func(i uint32) bool {
		t.Mul(a, &b1.mono[i].coeff)
		b.addTerm(&t, b.tbl.Mul(b1.mono[i].prod, r))
		return true
	})
}

// SubMonoTimesBuffer subtracts a·r·b1 from b. b1 must be distinct from b.
func (b *Buffer) SubMonoTimesBuffer(b1 *Buffer, a *big.Rat, r *pprod.PProd) {
	b.checkOperand(b1)
	if a.Sign() == 0 {
		return
	}
	var t big.Rat
	b1.each(b1.root, func(i uint32) bool {
		t.Mul(a, &b1.mono[i].coeff)
		b.subTerm(&t, b.tbl.Mul(b1.mono[i].prod, r))
		return true
	})
}

// MulBuffer multiplies b by b1. b1 must be distinct from b.
//
// The current content of b is snapshotted, b is cleared, and every snapshot
// monomial is distributed over b1 with the pointwise-update pattern.
func (b *Buffer) MulBuffer(b1 *Buffer) {
	b.checkOperand(b1)
	if b.nterms == 0 {
		return
	}
	if b1.nterms == 0 {
		b.Reset()
		return
	}
	snap := b.snapshot()
	b.Reset()
	for _, m := range snap {
		b.AddMonoTimesBuffer(b1, m.Coeff, m.Prod)
	}
}

// Square replaces b by b². Squaring is the one sanctioned case of a product
// aliasing its destination; the snapshot stabilizes the operand.
func (b *Buffer) Square() {
	if b.nterms == 0 {
		return
	}
	snap := b.snapshot()
	b.Reset()
	var t big.Rat
	for _, m1 := range snap {
		for _, m2 := range snap {
			t.Mul(m1.Coeff, m2.Coeff)
			b.addTerm(&t, b.tbl.Mul(m1.Prod, m2.Prod))
		}
	}
}

// AddBufferTimesBuffer adds b1·b2 to b. b1 and b2 must be distinct from b,
// but may alias each other.
func (b *Buffer) AddBufferTimesBuffer(b1, b2 *Buffer) {
	b.checkOperand(b1)
	b.checkOperand(b2)
	b1.each(b1.root, func(i uint32) bool {
		b.AddMonoTimesBuffer(b2, &b1.mono[i].coeff, b1.mono[i].prod)
		return true
	})
}

// SubBufferTimesBuffer subtracts b1·b2 from b. b1 and b2 must be distinct
// from b, but may alias each other.
func (b *Buffer) SubBufferTimesBuffer(b1, b2 *Buffer) {
	b.checkOperand(b1)
	b.checkOperand(b2)
	b1.each(b1.root, func(i uint32) bool {
		b.SubMonoTimesBuffer(b2, &b1.mono[i].coeff, b1.mono[i].prod)
		return true
	})
}
