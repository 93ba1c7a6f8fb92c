package arithbuf

import (
	"fmt"
	"iter"
	"math"
	"math/big"
	"strings"

	"github.com/npillmayer/arithbuf/pprod"
)

const (
	// nullNode is the permanent sentinel index: absent child, empty root,
	// end of the free list. It is always black and never holds a monomial.
	nullNode uint32 = 0

	// DefaultCapacity is the initial arena capacity used when a Config does
	// not request one.
	DefaultCapacity uint32 = 64

	// maxNodes is the hard bound on arena slots. Exceeding it is fatal.
	maxNodes = math.MaxUint32 / 16
)

// mono is one arena slot: a power product and its exact coefficient.
//
// The coefficient value lives inline in the arena so that slots recycled
// through the free list reuse their rational storage. A slot that is not in
// the tree always holds a zero coefficient.
type mono struct {
	prod  *pprod.PProd
	coeff big.Rat
}

// Mono is a monomial view into a buffer. The coefficient points at live
// buffer storage: it is read-only and valid only until the next mutating
// operation on the buffer.
type Mono struct {
	Prod  *pprod.PProd
	Coeff *big.Rat
}

// Buffer is a mutable polynomial: a red-black tree of monomials ordered by
// pprod.Compare, stored in a growable node arena addressed by small integer
// indices. Index 0 is the null sentinel.
//
// The zero Buffer is not usable; create buffers with New or NewBuffer.
type Buffer struct {
	mono  []mono      // arena: monomial per slot; len() = allocated slots
	child [][2]uint32 // arena: left/right child per slot
	isred []bool      // arena: color bit per slot
	tbl   *pprod.Table
	stack []uint32 // scratch: root-to-node path for insert/delete fixups

	nterms uint32 // live monomials in the tree
	root   uint32 // tree root, or nullNode for the zero polynomial
	free   uint32 // free-list head, threaded through left-child slots
}

// Config configures a polynomial buffer.
type Config struct {
	// Table interns the power products the buffer will hold. Required.
	Table *pprod.Table
	// Capacity is the initial arena capacity in nodes. Zero selects
	// DefaultCapacity.
	Capacity uint32
}

func (cfg Config) normalized() Config {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Table == nil {
		return fmt.Errorf("%w: power-product table is required", ErrInvalidConfig)
	}
	if cfg.Capacity > maxNodes {
		return fmt.Errorf("%w: capacity %d exceeds arena bound", ErrInvalidConfig, cfg.Capacity)
	}
	return nil
}

// New creates an empty buffer (the zero polynomial) attached to the
// configured power-product table.
func New(cfg Config) (*Buffer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	b := &Buffer{
		mono:  make([]mono, 1, cfg.Capacity),
		child: make([][2]uint32, 1, cfg.Capacity),
		isred: make([]bool, 1, cfg.Capacity),
		tbl:   cfg.Table,
		stack: make([]uint32, 0, 32),
	}
	return b, nil
}

// NewBuffer creates an empty buffer on tbl with default capacity.
func NewBuffer(tbl *pprod.Table) *Buffer {
	b, err := New(Config{Table: tbl})
	assert(err == nil, "arithbuf: cannot create buffer")
	return b
}

// Table returns the power-product table the buffer is attached to.
func (b *Buffer) Table() *pprod.Table {
	return b.tbl
}

// NumTerms returns the number of monomials in the buffer.
func (b *Buffer) NumTerms() uint32 {
	return b.nterms
}

// Reset empties the buffer to the zero polynomial. The arena's backing
// storage is retained for reuse.
func (b *Buffer) Reset() {
	b.mono = b.mono[:1]
	b.child = b.child[:1]
	b.isred = b.isred[:1]
	b.stack = b.stack[:0]
	b.nterms = 0
	b.root = nullNode
	b.free = nullNode
}

// alloc returns a free arena slot with null children and a zero coefficient,
// recycling the free list before growing the arena.
func (b *Buffer) alloc() uint32 {
	if b.free != nullNode {
		i := b.free
		b.free = b.child[i][0]
		b.child[i][0] = nullNode
		return i
	}
	if uint32(len(b.mono)) >= maxNodes {
		panic(ErrCapacity)
	}
	if len(b.mono) == cap(b.mono) {
		T().Debugf("arith buffer: growing arena beyond %d nodes", cap(b.mono))
	}
	b.mono = append(b.mono, mono{})
	b.child = append(b.child, [2]uint32{nullNode, nullNode})
	b.isred = append(b.isred, false)
	return uint32(len(b.mono) - 1)
}

// release pushes slot i onto the free list. The slot's coefficient must
// already be zero.
func (b *Buffer) release(i uint32) {
	assert(i != nullNode, "arithbuf: cannot release the null sentinel")
	assert(b.mono[i].coeff.Sign() == 0, "arithbuf: released node must have a zero coefficient")
	b.child[i][0] = b.free
	b.child[i][1] = nullNode
	b.free = i
}

// each runs an in-order traversal below node i, calling f with each node
// index. f returning false stops the traversal.
func (b *Buffer) each(i uint32, f func(i uint32) bool) bool {
	if i == nullNode {
		return true
	}
	return b.each(b.child[i][0], f) && f(i) && b.each(b.child[i][1], f)
}

// Range returns an iterator over the buffer's monomials in ascending
// graded-lex order. Coefficients are live buffer storage: they are read-only
// and the buffer must not be mutated during iteration.
func (b *Buffer) Range() iter.Seq2[*pprod.PProd, *big.Rat] {
	return func(yield func(*pprod.PProd, *big.Rat) bool) {
		b.each(b.root, func(i uint32) bool {
			return yield(b.mono[i].prod, &b.mono[i].coeff)
		})
	}
}

// snapshot copies the buffer's monomials, in order, into a fresh slice with
// independent coefficient storage. Used to stabilize an operand before
// mutating the destination of a product.
func (b *Buffer) snapshot() []Mono {
	out := make([]Mono, 0, b.nterms)
	b.each(b.root, func(i uint32) bool {
		out = append(out, Mono{
			Prod:  b.mono[i].prod,
			Coeff: new(big.Rat).Set(&b.mono[i].coeff),
		})
		return true
	})
	return out
}

func (b *Buffer) String() string {
	if b.nterms == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for r, c := range b.Range() {
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		switch {
		case r.IsEmpty():
			sb.WriteString(c.RatString())
		case c.Cmp(ratOne) == 0:
			sb.WriteString(r.String())
		default:
			fmt.Fprintf(&sb, "%s*%s", c.RatString(), r.String())
		}
	}
	return sb.String()
}
