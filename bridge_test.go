package arithbuf

import (
	"testing"

	"github.com/npillmayer/arithbuf/poly"
	"github.com/npillmayer/arithbuf/pprod"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPolyDrains(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	b.AddConst(q(3, 1))
	b.AddVarMono(q(2, 1), 0)
	//
	// caller-side mapping: the constant to ConstIdx, x0 to index 5
	v := []int32{poly.ConstIdx, 5, poly.MaxIdx}
	p := b.BuildPoly(v)
	//
	tassert.True(t, b.IsZero(), "building drains the buffer")
	tassert.NoError(t, b.Check())
	require.Equal(t, 2, p.Len())
	tassert.Equal(t, poly.ConstIdx, p.Mono(0).Var)
	tassert.Equal(t, 0, p.Mono(0).Coeff.Cmp(q(3, 1)))
	tassert.Equal(t, int32(5), p.Mono(1).Var)
	tassert.Equal(t, 0, p.Mono(1).Coeff.Cmp(q(2, 1)))
}

func TestBuildPolyEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	p := b.BuildPoly([]int32{poly.MaxIdx})
	tassert.True(t, p.IsZero())
}

func TestHashMatchesPolynomial(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	b.AddVarMono(q(-7, 3), 0)
	b.AddMono(q(1, 1), tbl.Mul(tbl.VarProd(0), tbl.VarProd(1)))
	//
	v := []int32{2, 9, poly.MaxIdx}
	h := b.Hash(v)
	p := b.BuildPoly(v)
	tassert.Equal(t, p.Hash(), h, "buffer hash must match the built polynomial's hash")
}

func TestEqualPoly(t *testing.T) {
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	b.AddConst(q(1, 2))
	b.AddVarMono(q(4, 1), 1)
	v := []int32{poly.ConstIdx, 3, poly.MaxIdx}
	//
	p := poly.New([]poly.Monomial{
		{Var: poly.ConstIdx, Coeff: q(1, 2)},
		{Var: 3, Coeff: q(4, 1)},
	})
	tassert.True(t, b.EqualPoly(v, p))
	//
	wrongVar := poly.New([]poly.Monomial{
		{Var: poly.ConstIdx, Coeff: q(1, 2)},
		{Var: 4, Coeff: q(4, 1)},
	})
	tassert.False(t, b.EqualPoly(v, wrongVar))
	wrongCoeff := poly.New([]poly.Monomial{
		{Var: poly.ConstIdx, Coeff: q(1, 2)},
		{Var: 3, Coeff: q(4, 3)},
	})
	tassert.False(t, b.EqualPoly(v, wrongCoeff))
	tassert.False(t, b.EqualPoly(v, poly.New(nil)))
}

// TestRoundTrip drains a buffer into a polynomial and reinserts the monomial
// array; the result must equal the original content.
func TestRoundTrip(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	x := tbl.VarProd(0)
	y := tbl.VarProd(1)
	//
	b := NewBuffer(tbl)
	b.AddConst(q(5, 3))
	b.AddPP(x)
	b.AddMono(q(-2, 1), tbl.Mul(x, y))
	orig := NewBuffer(tbl)
	orig.AddBuffer(b)
	//
	// buffer order is 1 < x0 < x0*x1; assign ascending indices
	v := []int32{poly.ConstIdx, 1, 2, poly.MaxIdx}
	pp := []*pprod.PProd{pprod.Empty, x, tbl.Mul(x, y)}
	p := b.BuildPoly(v)
	require.True(t, b.IsZero())
	//
	b.AddMonarray(p.Terminated(), pp)
	tassert.True(t, b.Equal(orig))
	tassert.True(t, b.EqualPoly(v, p))
	tassert.NoError(t, b.Check())
}

func TestIndexMapValidation(t *testing.T) {
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	b.AddVar(0)
	tassert.Panics(t, func() {
		b.Hash([]int32{1}) // too short, no end marker
	})
	tassert.Panics(t, func() {
		b.Hash([]int32{1, 2}) // end marker missing
	})
}
