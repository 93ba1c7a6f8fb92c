package poly

import (
	"math/big"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func q(num, den int64) *big.Rat {
	return big.NewRat(num, den)
}

func TestNewValidates(t *testing.T) {
	tassert.Panics(t, func() {
		New([]Monomial{{Var: 1, Coeff: q(0, 1)}})
	}, "zero coefficients are not canonical")
	tassert.Panics(t, func() {
		New([]Monomial{{Var: 3, Coeff: q(1, 1)}, {Var: 1, Coeff: q(1, 1)}})
	}, "unsorted monomials are not canonical")
	tassert.Panics(t, func() {
		New([]Monomial{{Var: MaxIdx, Coeff: q(1, 1)}})
	}, "the end marker is not a monomial")
	tassert.NotPanics(t, func() {
		New(nil)
	})
}

func TestAccessors(t *testing.T) {
	p := New([]Monomial{{Var: ConstIdx, Coeff: q(3, 2)}, {Var: 7, Coeff: q(-1, 1)}})
	require.Equal(t, 2, p.Len())
	tassert.False(t, p.IsZero())
	tassert.Equal(t, int32(7), p.Mono(1).Var)
	tassert.Equal(t, 0, p.Mono(0).Coeff.Cmp(q(3, 2)))

	z := New(nil)
	tassert.True(t, z.IsZero())
	tassert.Equal(t, "0", z.String())
}

func TestTerminated(t *testing.T) {
	p := New([]Monomial{{Var: 2, Coeff: q(5, 1)}})
	mons := p.Terminated()
	require.Len(t, mons, 2)
	tassert.Equal(t, int32(2), mons[0].Var)
	tassert.Equal(t, MaxIdx, mons[1].Var)
}

func TestEqual(t *testing.T) {
	p := New([]Monomial{{Var: 0, Coeff: q(1, 3)}, {Var: 4, Coeff: q(2, 1)}})
	r := New([]Monomial{{Var: 0, Coeff: q(2, 6)}, {Var: 4, Coeff: q(2, 1)}})
	tassert.True(t, p.Equal(r), "coefficients compare by value")
	s := New([]Monomial{{Var: 0, Coeff: q(1, 3)}, {Var: 5, Coeff: q(2, 1)}})
	tassert.False(t, p.Equal(s))
	tassert.False(t, p.Equal(New(nil)))
}

func TestHashEqualPolynomials(t *testing.T) {
	p := New([]Monomial{{Var: 1, Coeff: q(-7, 2)}, {Var: 9, Coeff: q(4, 1)}})
	r := New([]Monomial{{Var: 1, Coeff: q(-14, 4)}, {Var: 9, Coeff: q(4, 1)}})
	tassert.Equal(t, p.Hash(), r.Hash(), "equal polynomials hash identically")
}

func TestHashDistinguishes(t *testing.T) {
	p := New([]Monomial{{Var: 1, Coeff: q(2, 1)}})
	tests := []*Polynomial{
		New([]Monomial{{Var: 1, Coeff: q(-2, 1)}}),
		New([]Monomial{{Var: 2, Coeff: q(2, 1)}}),
		New([]Monomial{{Var: 1, Coeff: q(2, 3)}}),
		New(nil),
	}
	for _, r := range tests {
		tassert.NotEqual(t, p.Hash(), r.Hash(), "%s vs %s", p, r)
	}
}

func TestHasherMatchesPolynomialHash(t *testing.T) {
	p := New([]Monomial{{Var: 0, Coeff: q(1, 2)}, {Var: 3, Coeff: q(-5, 1)}, {Var: 6, Coeff: q(11, 7)}})
	hs := NewHasher()
	for k := 0; k < p.Len(); k++ {
		m := p.Mono(k)
		hs.WriteMono(m.Coeff, m.Var)
	}
	tassert.Equal(t, p.Hash(), hs.Sum32())
}
