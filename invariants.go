package arithbuf

import (
	"fmt"

	"github.com/npillmayer/arithbuf/pprod"
)

// Check validates the buffer's structural invariants: search-tree order
// under the graded-lex comparator, red-black coloring with uniform black
// height, absence of zero coefficients, and term-count accounting against
// the arena and the free list.
//
// This checker is intentionally strict and meant for tests; it walks the
// whole arena.
func (b *Buffer) Check() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvariant)
	}
	if len(b.mono) == 0 || b.isred[nullNode] {
		return fmt.Errorf("%w: null sentinel missing or not black", ErrInvariant)
	}
	if b.root != nullNode && b.isred[b.root] {
		return fmt.Errorf("%w: root is red", ErrInvariant)
	}
	count, _, err := b.checkNode(b.root)
	if err != nil {
		return err
	}
	if count != b.nterms {
		return fmt.Errorf("%w: term count %d does not match %d reachable nodes",
			ErrInvariant, b.nterms, count)
	}
	if err := b.checkOrder(); err != nil {
		return err
	}
	freeLen, err := b.checkFreeList()
	if err != nil {
		return err
	}
	if allocated := uint32(len(b.mono)); count != allocated-freeLen-1 {
		return fmt.Errorf("%w: %d tree nodes, but arena holds %d slots with %d free",
			ErrInvariant, count, allocated, freeLen)
	}
	return nil
}

// checkNode validates one subtree and returns its node count and black
// height.
func (b *Buffer) checkNode(i uint32) (count uint32, blackHeight int, err error) {
	if i == nullNode {
		return 0, 1, nil
	}
	if i >= uint32(len(b.mono)) {
		return 0, 0, fmt.Errorf("%w: node index %d out of arena bounds", ErrInvariant, i)
	}
	m := &b.mono[i]
	if m.prod == nil {
		return 0, 0, fmt.Errorf("%w: node %d has no power product", ErrInvariant, i)
	}
	if m.coeff.Sign() == 0 {
		return 0, 0, fmt.Errorf("%w: node %d holds a zero coefficient", ErrInvariant, i)
	}
	l, r := b.child[i][0], b.child[i][1]
	if b.isred[i] && (b.red(l) || b.red(r)) {
		return 0, 0, fmt.Errorf("%w: red node %d has a red child", ErrInvariant, i)
	}
	lc, lbh, err := b.checkNode(l)
	if err != nil {
		return 0, 0, err
	}
	rc, rbh, err := b.checkNode(r)
	if err != nil {
		return 0, 0, err
	}
	if lbh != rbh {
		return 0, 0, fmt.Errorf("%w: black height mismatch below node %d (%d != %d)",
			ErrInvariant, i, lbh, rbh)
	}
	if !b.isred[i] {
		lbh++
	}
	return lc + rc + 1, lbh, nil
}

// checkOrder verifies that the in-order traversal is strictly increasing.
func (b *Buffer) checkOrder() error {
	var prev *pprod.PProd
	ok := b.each(b.root, func(i uint32) bool {
		if prev != nil && pprod.Compare(prev, b.mono[i].prod) >= 0 {
			return false
		}
		prev = b.mono[i].prod
		return true
	})
	if !ok {
		return fmt.Errorf("%w: traversal is not strictly increasing", ErrInvariant)
	}
	return nil
}

// checkFreeList verifies the free list and returns its length.
func (b *Buffer) checkFreeList() (uint32, error) {
	var n uint32
	for i := b.free; i != nullNode; i = b.child[i][0] {
		if i >= uint32(len(b.mono)) {
			return 0, fmt.Errorf("%w: free-list index %d out of arena bounds", ErrInvariant, i)
		}
		if b.mono[i].coeff.Sign() != 0 {
			return 0, fmt.Errorf("%w: free slot %d holds a nonzero coefficient", ErrInvariant, i)
		}
		if n++; n >= uint32(len(b.mono)) {
			return 0, fmt.Errorf("%w: free list contains a cycle", ErrInvariant)
		}
	}
	return n, nil
}
