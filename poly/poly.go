package poly

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

const (
	// ConstIdx is the variable index of a constant monomial.
	ConstIdx int32 = 0
	// MaxIdx is the end marker terminating monomial arrays.
	MaxIdx int32 = math.MaxInt32
)

// Monomial pairs a variable index with an exact rational coefficient.
//
// Monomial arrays passed between subsystems are terminated by an entry with
// Var == MaxIdx; the terminator's coefficient is ignored.
type Monomial struct {
	Var   int32
	Coeff *big.Rat
}

// Polynomial is an immutable canonical polynomial: monomials sorted by
// strictly ascending variable index, none with a zero coefficient. The
// coefficient storage is owned by the polynomial and must not be mutated.
type Polynomial struct {
	monos []Monomial
}

// New builds a polynomial from an already canonical monomial sequence.
// The slice is retained; ownership transfers to the polynomial.
func New(monos []Monomial) *Polynomial {
	for k, m := range monos {
		assert(m.Coeff != nil && m.Coeff.Sign() != 0, "poly: zero coefficient in canonical polynomial")
		assert(m.Var >= 0 && m.Var < MaxIdx, "poly: variable index out of range")
		assert(k == 0 || monos[k-1].Var < m.Var, "poly: monomials must be sorted by variable index")
	}
	return &Polynomial{monos: monos}
}

// Len returns the number of monomials.
func (p *Polynomial) Len() int {
	return len(p.monos)
}

// IsZero reports whether p has no monomials.
func (p *Polynomial) IsZero() bool {
	return len(p.monos) == 0
}

// Mono returns the k-th monomial in ascending variable-index order.
func (p *Polynomial) Mono(k int) Monomial {
	return p.monos[k]
}

// Terminated returns the monomial sequence followed by the MaxIdx end marker.
// The returned slice is fresh; the coefficients are shared and read-only.
func (p *Polynomial) Terminated() []Monomial {
	out := make([]Monomial, 0, len(p.monos)+1)
	out = append(out, p.monos...)
	return append(out, Monomial{Var: MaxIdx})
}

// Equal reports whether p and q hold identical monomial sequences.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.monos) != len(q.monos) {
		return false
	}
	for k, m := range p.monos {
		if m.Var != q.monos[k].Var || m.Coeff.Cmp(q.monos[k].Coeff) != 0 {
			return false
		}
	}
	return true
}

// Hash returns the canonical hash of p. Equal polynomials hash identically,
// and a buffer traversal hashing the same sequence through a Hasher produces
// the same value.
func (p *Polynomial) Hash() uint32 {
	hs := NewHasher()
	for _, m := range p.monos {
		hs.WriteMono(m.Coeff, m.Var)
	}
	return hs.Sum32()
}

func (p *Polynomial) String() string {
	if len(p.monos) == 0 {
		return "0"
	}
	var sb strings.Builder
	for k, m := range p.monos {
		if k > 0 {
			sb.WriteString(" + ")
		}
		if m.Var == ConstIdx {
			sb.WriteString(m.Coeff.RatString())
		} else {
			fmt.Fprintf(&sb, "%s*i%d", m.Coeff.RatString(), m.Var)
		}
	}
	return sb.String()
}
