package pprod

import (
	"fmt"
	"strings"
)

// VarExp is one entry of a sparse exponent vector: variable Var raised to Exp.
type VarExp struct {
	Var int32
	Exp uint32
}

// PProd is an interned power product.
//
// The exponent vector is sorted by ascending variable index, holds no zero
// exponents, and is never mutated after interning. Products obtained from the
// same Table may be compared with ==.
type PProd struct {
	terms  []VarExp
	degree uint32
}

// Empty is the empty power product (the constant term's key). It is shared by
// all tables and is the minimum of the graded-lex order.
var Empty = &PProd{}

// Degree returns the total degree, the sum of all exponents.
func (p *PProd) Degree() uint32 {
	return p.degree
}

// IsEmpty reports whether p is the empty product.
func (p *PProd) IsEmpty() bool {
	return len(p.terms) == 0
}

// Len returns the number of distinct variables in p.
func (p *PProd) Len() int {
	return len(p.terms)
}

// Terms exposes the sparse exponent vector. Callers must not modify it.
func (p *PProd) Terms() []VarExp {
	return p.terms
}

// ExpOf returns the exponent of variable x in p, or 0 if x does not occur.
func (p *PProd) ExpOf(x int32) uint32 {
	lo, hi := 0, len(p.terms)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case p.terms[mid].Var < x:
			lo = mid + 1
		case p.terms[mid].Var > x:
			hi = mid
		default:
			return p.terms[mid].Exp
		}
	}
	return 0
}

// Var returns the variable index of a single-variable product of degree 1.
// For any other product it returns -1.
func (p *PProd) Var() int32 {
	if len(p.terms) == 1 && p.terms[0].Exp == 1 {
		return p.terms[0].Var
	}
	return -1
}

func (p *PProd) String() string {
	if len(p.terms) == 0 {
		return "1"
	}
	var sb strings.Builder
	for k, t := range p.terms {
		if k > 0 {
			sb.WriteByte('*')
		}
		if t.Exp == 1 {
			fmt.Fprintf(&sb, "x%d", t.Var)
		} else {
			fmt.Fprintf(&sb, "x%d^%d", t.Var, t.Exp)
		}
	}
	return sb.String()
}

// Compare orders two power products in the graded lexicographic order:
// lower total degree orders first; among equal degrees the exponent vectors
// are compared from the highest variable index downward, where a higher
// variable index, then a higher exponent on the shared variable, orders
// greater. Returns a negative value, zero, or a positive value.
func Compare(a, b *PProd) int {
	if a == b {
		return 0
	}
	if a.degree != b.degree {
		if a.degree < b.degree {
			return -1
		}
		return 1
	}
	i, j := len(a.terms)-1, len(b.terms)-1
	for i >= 0 && j >= 0 {
		ta, tb := a.terms[i], b.terms[j]
		if ta.Var != tb.Var {
			if ta.Var < tb.Var {
				return -1
			}
			return 1
		}
		if ta.Exp != tb.Exp {
			if ta.Exp < tb.Exp {
				return -1
			}
			return 1
		}
		i--
		j--
	}
	// Equal degrees with one vector a prefix of the other cannot happen
	// unless the vectors are identical.
	return len(a.terms) - len(b.terms)
}
