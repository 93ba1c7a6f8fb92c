package arithbuf

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/npillmayer/arithbuf/pprod"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGetNodeFindNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	x := tbl.VarProd(0)
	y := tbl.VarProd(1)
	//
	if b.FindNode(x) != nullNode {
		t.Errorf("found a node in the empty buffer")
	}
	i, isNew := b.GetNode(x)
	if !isNew || i == nullNode {
		t.Fatalf("expected a fresh node for x0")
	}
	b.mono[i].coeff.SetInt64(1)
	j, isNew := b.GetNode(x)
	if isNew || j != i {
		t.Errorf("second lookup should return the same node")
	}
	if b.FindNode(y) != nullNode {
		t.Errorf("found x1 without inserting it")
	}
	if b.FindNode(x) != i {
		t.Errorf("FindNode disagrees with GetNode")
	}
	if b.NumTerms() != 1 {
		t.Errorf("expected 1 term, have %d", b.NumTerms())
	}
}

func TestDeleteNodeAfterLookup(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	for x := int32(0); x < 7; x++ {
		b.AddVar(x)
	}
	// delete an inner node the way the arithmetic layer does: look it up,
	// zero its coefficient, then drop it reusing the recorded search path
	r := tbl.VarProd(3)
	i, isNew := b.GetNode(r)
	if isNew {
		t.Fatalf("x3 should be present")
	}
	b.mono[i].coeff.SetInt64(0)
	b.DeleteNode(i)
	if b.NumTerms() != 6 {
		t.Errorf("expected 6 terms after delete, have %d", b.NumTerms())
	}
	if b.FindNode(r) != nullNode {
		t.Errorf("x3 still found after delete")
	}
	if err := b.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestDeleteRoot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	b.AddVar(0)
	i, _ := b.GetNode(tbl.VarProd(0))
	b.mono[i].coeff.SetInt64(0)
	b.DeleteNode(i)
	if !b.IsZero() || b.root != nullNode {
		t.Errorf("buffer should be empty after deleting the only node")
	}
	if err := b.Check(); err != nil {
		t.Errorf("invariant check failed: %v", err)
	}
}

func TestInsertAscendingDescending(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tbl := pprod.NewTable()
	up := NewBuffer(tbl)
	down := NewBuffer(tbl)
	for x := int32(0); x < 64; x++ {
		up.AddVar(x)
		down.AddVar(63 - x)
		if err := up.Check(); err != nil {
			t.Fatalf("ascending insert %d: %v", x, err)
		}
		if err := down.Check(); err != nil {
			t.Fatalf("descending insert %d: %v", x, err)
		}
	}
	if !up.Equal(down) {
		t.Errorf("insertion order must not affect buffer content")
	}
}

// randProd draws a small random power product over 4 variables.
func randProd(rng *rand.Rand, tbl *pprod.Table) *pprod.PProd {
	n := 1 + rng.Intn(3)
	ve := make([]pprod.VarExp, 0, n)
	for k := 0; k < n; k++ {
		ve = append(ve, pprod.VarExp{
			Var: int32(rng.Intn(4)),
			Exp: uint32(rng.Intn(3)),
		})
	}
	return tbl.Intern(ve)
}

func randCoeff(rng *rand.Rand) *big.Rat {
	num := int64(rng.Intn(9) - 4)
	if num == 0 {
		num = 5
	}
	return big.NewRat(num, int64(1+rng.Intn(4)))
}

func TestRandomizedInvariants(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	rng := rand.New(rand.NewSource(0x5eed))
	tbl := pprod.NewTable()
	b := NewBuffer(tbl)
	model := make(map[*pprod.PProd]*big.Rat)
	//
	touch := func(r *pprod.PProd, delta *big.Rat) {
		c, ok := model[r]
		if !ok {
			c = new(big.Rat)
			model[r] = c
		}
		c.Add(c, delta)
		if c.Sign() == 0 {
			delete(model, r)
		}
	}
	//
	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 4:
			r, a := randProd(rng, tbl), randCoeff(rng)
			b.AddMono(a, r)
			touch(r, a)
		case op < 8:
			r, a := randProd(rng, tbl), randCoeff(rng)
			b.SubMono(a, r)
			touch(r, new(big.Rat).Neg(a))
		case op < 9:
			b.Negate()
			for _, c := range model {
				c.Neg(c)
			}
		default:
			r := tbl.VarProd(int32(rng.Intn(4)))
			b.MulPP(r)
			next := make(map[*pprod.PProd]*big.Rat, len(model))
			for k, c := range model {
				next[tbl.Mul(k, r)] = c
			}
			model = next
		}
		if err := b.Check(); err != nil {
			t.Fatalf("step %d: invariant violated: %v", step, err)
		}
		if int(b.NumTerms()) != len(model) {
			t.Fatalf("step %d: buffer has %d terms, model %d", step, b.NumTerms(), len(model))
		}
	}
	//
	for r, c := range b.Range() {
		want, ok := model[r]
		if !ok {
			t.Errorf("buffer holds unexpected monomial %s", r)
			continue
		}
		if c.Cmp(want) != 0 {
			t.Errorf("coefficient of %s is %s, want %s", r, c.RatString(), want.RatString())
		}
	}
}
