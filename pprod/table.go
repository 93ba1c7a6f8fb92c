package pprod

import (
	"encoding/binary"
	"math"
	"sort"
)

// MaxDegree is the largest representable total degree of a product.
const MaxDegree = math.MaxUint32 / 2

// Table interns power products.
//
// All products held by a polynomial buffer must come from the buffer's table,
// so that comparing products for identity is a pointer comparison. A table is
// not safe for concurrent mutation; callers must serialize access.
type Table struct {
	prods map[string]*PProd
}

// NewTable creates an empty interning table.
func NewTable() *Table {
	return &Table{prods: make(map[string]*PProd)}
}

// Len returns the number of interned non-trivial products.
func (tbl *Table) Len() int {
	return len(tbl.prods)
}

// Intern returns the canonical product for the given exponent vector.
//
// The input need not be normalized: entries may be unsorted or repeated, and
// zero exponents are dropped. The input slice is not retained.
func (tbl *Table) Intern(terms []VarExp) *PProd {
	norm := normalize(terms)
	if len(norm) == 0 {
		return Empty
	}
	return tbl.intern(norm)
}

// VarProd returns the canonical product for a single variable x (i.e. x^1).
func (tbl *Table) VarProd(x int32) *PProd {
	if x < 0 {
		panic(ErrInvalidVariable)
	}
	return tbl.intern([]VarExp{{Var: x, Exp: 1}})
}

// Mul returns the canonical product a*b.
func (tbl *Table) Mul(a, b *PProd) *PProd {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	merged := make([]VarExp, 0, len(a.terms)+len(b.terms))
	i, j := 0, 0
	for i < len(a.terms) && j < len(b.terms) {
		ta, tb := a.terms[i], b.terms[j]
		switch {
		case ta.Var < tb.Var:
			merged = append(merged, ta)
			i++
		case ta.Var > tb.Var:
			merged = append(merged, tb)
			j++
		default:
			if uint64(ta.Exp)+uint64(tb.Exp) > MaxDegree {
				panic(ErrDegreeOverflow)
			}
			merged = append(merged, VarExp{Var: ta.Var, Exp: ta.Exp + tb.Exp})
			i++
			j++
		}
	}
	merged = append(merged, a.terms[i:]...)
	merged = append(merged, b.terms[j:]...)
	return tbl.intern(merged)
}

// intern looks up or stores a normalized exponent vector.
func (tbl *Table) intern(norm []VarExp) *PProd {
	k := key(norm)
	if p, ok := tbl.prods[k]; ok {
		return p
	}
	var deg uint64
	for _, t := range norm {
		deg += uint64(t.Exp)
	}
	if deg > MaxDegree {
		panic(ErrDegreeOverflow)
	}
	p := &PProd{terms: norm, degree: uint32(deg)}
	tbl.prods[k] = p
	return p
}

// normalize sorts by variable, merges repeated variables and drops zero
// exponents. Returns a fresh slice.
func normalize(terms []VarExp) []VarExp {
	norm := make([]VarExp, 0, len(terms))
	for _, t := range terms {
		if t.Var < 0 {
			panic(ErrInvalidVariable)
		}
		if t.Exp != 0 {
			norm = append(norm, t)
		}
	}
	sort.Slice(norm, func(i, j int) bool { return norm[i].Var < norm[j].Var })
	out := norm[:0]
	for _, t := range norm {
		if n := len(out); n > 0 && out[n-1].Var == t.Var {
			out[n-1].Exp += t.Exp
		} else {
			out = append(out, t)
		}
	}
	return out
}

// key encodes a normalized exponent vector as a map key.
func key(norm []VarExp) string {
	buf := make([]byte, 0, 8*len(norm))
	for _, t := range norm {
		buf = binary.AppendUvarint(buf, uint64(t.Var))
		buf = binary.AppendUvarint(buf, uint64(t.Exp))
	}
	return string(buf)
}
