package arithbuf

import (
	"iter"
	"math/big"

	"github.com/npillmayer/arithbuf/pprod"
)

// IsZero reports whether the buffer holds the zero polynomial.
func (b *Buffer) IsZero() bool {
	return b.nterms == 0
}

// IsConstant reports whether the buffer holds a constant polynomial
// (including zero).
func (b *Buffer) IsConstant() bool {
	return b.nterms == 0 || (b.nterms == 1 && b.mono[b.root].prod.IsEmpty())
}

// constCoeff returns the coefficient of a one-term constant buffer, or nil.
func (b *Buffer) constCoeff() *big.Rat {
	if b.nterms == 1 && b.mono[b.root].prod.IsEmpty() {
		return &b.mono[b.root].coeff
	}
	return nil
}

// IsPos reports whether the buffer is a positive constant.
func (b *Buffer) IsPos() bool {
	c := b.constCoeff()
	return c != nil && c.Sign() > 0
}

// IsNeg reports whether the buffer is a negative constant.
func (b *Buffer) IsNeg() bool {
	c := b.constCoeff()
	return c != nil && c.Sign() < 0
}

// IsNonneg reports whether the buffer is a nonnegative constant. The zero
// polynomial counts as nonnegative.
func (b *Buffer) IsNonneg() bool {
	if b.nterms == 0 {
		return true
	}
	c := b.constCoeff()
	return c != nil && c.Sign() >= 0
}

// IsNonpos reports whether the buffer is a nonpositive constant. The zero
// polynomial counts as nonpositive.
func (b *Buffer) IsNonpos() bool {
	if b.nterms == 0 {
		return true
	}
	c := b.constCoeff()
	return c != nil && c.Sign() <= 0
}

// mainNode returns the node with the maximal power product: the rightmost
// node of the tree. The buffer must be non-empty.
func (b *Buffer) mainNode() uint32 {
	assert(b.nterms > 0, "arithbuf: main term of the zero polynomial")
	i := b.root
	for b.child[i][1] != nullNode {
		i = b.child[i][1]
	}
	return i
}

// MainTerm returns the maximal power product under the graded-lex order.
// The buffer must be non-empty.
func (b *Buffer) MainTerm() *pprod.PProd {
	return b.mono[b.mainNode()].prod
}

// MainMono returns the monomial whose product is the main term. The buffer
// must be non-empty; the view follows the rules of Mono.
func (b *Buffer) MainMono() Mono {
	i := b.mainNode()
	return Mono{Prod: b.mono[i].prod, Coeff: &b.mono[i].coeff}
}

// Degree returns the total degree of the polynomial, 0 for the zero
// polynomial.
func (b *Buffer) Degree() uint32 {
	if b.nterms == 0 {
		return 0
	}
	return b.MainTerm().Degree()
}

// VarDegree returns the largest exponent of variable x across the buffer's
// monomials, 0 if x does not occur. The graded-lex order does not index
// single-variable degrees, so this is a full traversal.
func (b *Buffer) VarDegree(x int32) uint32 {
	var d uint32
	b.each(b.root, func(i uint32) bool {
		if e := b.mono[i].prod.ExpOf(x); e > d {
			d = e
		}
		return true
	})
	return d
}

// GetMono returns the monomial view whose power product is r, if present.
func (b *Buffer) GetMono(r *pprod.PProd) (Mono, bool) {
	i := b.FindNode(r)
	if i == nullNode {
		return Mono{}, false
	}
	return Mono{Prod: b.mono[i].prod, Coeff: &b.mono[i].coeff}, true
}

// ConstantMono returns the buffer's constant monomial, if present.
func (b *Buffer) ConstantMono() (Mono, bool) {
	return b.GetMono(pprod.Empty)
}

// IsEquality reports whether the buffer has the shape a·X − a·Y for a
// nonzero rational a and distinct products X and Y. The side carrying the
// positive coefficient is returned first.
func (b *Buffer) IsEquality() (x, y *pprod.PProd, ok bool) {
	if b.nterms != 2 {
		return nil, nil, false
	}
	i := b.root
	j := b.child[i][0]
	if j == nullNode {
		j = b.child[i][1]
	}
	ci, cj := &b.mono[i].coeff, &b.mono[j].coeff
	var t big.Rat
	t.Neg(cj)
	if ci.Cmp(&t) != 0 {
		return nil, nil, false
	}
	if ci.Sign() > 0 {
		return b.mono[i].prod, b.mono[j].prod, true
	}
	return b.mono[j].prod, b.mono[i].prod, true
}

// IsProduct reports whether the buffer has the shape 1·X for a non-empty
// power product X, and returns X.
func (b *Buffer) IsProduct() (*pprod.PProd, bool) {
	if b.nterms != 1 {
		return nil, false
	}
	m := &b.mono[b.root]
	if m.prod.IsEmpty() || m.coeff.Cmp(ratOne) != 0 {
		return nil, false
	}
	return m.prod, true
}

// Equal reports whether two buffers hold the same polynomial. Both buffers
// must be attached to the same power-product table. Trees with different
// shapes from different construction histories compare equal monomial by
// monomial, since the in-order traversal of both is the canonical graded-lex
// sequence.
func (b *Buffer) Equal(b1 *Buffer) bool {
	if b == b1 {
		return true
	}
	assert(b.tbl == b1.tbl, "arithbuf: compared buffers must share one power-product table")
	if b.nterms != b1.nterms {
		return false
	}
	next, stop := iter.Pull2(b1.Range())
	defer stop()
	return b.each(b.root, func(i uint32) bool {
		r1, c1, ok := next()
		if !ok {
			return false
		}
		return r1 == b.mono[i].prod && c1.Cmp(&b.mono[i].coeff) == 0
	})
}
