package arithbuf

import "github.com/npillmayer/arithbuf/pprod"

// Low-level tree operations, exported for testing. Arithmetic entry points
// are thin wrappers over FindNode, GetNode and DeleteNode.
//
// The tree has no parent links. Instead, GetNode records the descent path on
// the buffer's scratch stack in the form [nullNode, root, …, parent], and the
// insert/delete fixups walk that stack upward. DeleteNode relies on the stack
// left behind by the immediately preceding GetNode, so a combine-then-drop
// update never searches twice.

// FindNode returns the node holding power product r, or nullNode if r does
// not occur in the buffer. It leaves the path stack untouched.
func (b *Buffer) FindNode(r *pprod.PProd) uint32 {
	i := b.root
	for i != nullNode {
		c := pprod.Compare(r, b.mono[i].prod)
		if c == 0 {
			return i
		}
		if c < 0 {
			i = b.child[i][0]
		} else {
			i = b.child[i][1]
		}
	}
	return nullNode
}

// GetNode returns the node holding r, creating it with a zero coefficient if
// absent, and reports whether it was created. On return the path stack holds
// [nullNode, root, …, parent-of-result], which a following DeleteNode reuses.
// Creation increments the term count; the caller must store a nonzero
// coefficient (or delete the node) before the next tree operation.
func (b *Buffer) GetNode(r *pprod.PProd) (uint32, bool) {
	b.stack = append(b.stack[:0], nullNode)
	i := b.root
	p := nullNode
	s := 0
	for i != nullNode {
		c := pprod.Compare(r, b.mono[i].prod)
		if c == 0 {
			return i, false
		}
		b.stack = append(b.stack, i)
		if c < 0 {
			s = 0
		} else {
			s = 1
		}
		p = i
		i = b.child[i][s]
	}
	n := b.alloc()
	b.mono[n].prod = r
	b.nterms++
	if p == nullNode {
		b.isred[n] = false
		b.root = n
		return n, true
	}
	b.isred[n] = true
	b.child[p][s] = n
	b.fixAfterInsert(n)
	return n, true
}

// DeleteNode removes node i from the tree and recycles its slot.
//
// Preconditions: i's coefficient is zero, and the path stack holds the
// ancestor chain down to i's parent, as left by the GetNode that found i.
func (b *Buffer) DeleteNode(i uint32) {
	assert(i != nullNode, "arithbuf: cannot delete the null sentinel")
	assert(b.mono[i].coeff.Sign() == 0, "arithbuf: deleted node must have a zero coefficient")
	assert(len(b.stack) > 0, "arithbuf: delete requires the search path of a preceding lookup")
	if p := b.stack[len(b.stack)-1]; p == nullNode {
		assert(b.root == i, "arithbuf: stale search path")
	} else {
		assert(b.child[p][0] == i || b.child[p][1] == i, "arithbuf: stale search path")
	}

	if b.child[i][0] != nullNode && b.child[i][1] != nullNode {
		b.spliceSuccessor(i)
	}
	p := b.stack[len(b.stack)-1]
	c := b.child[i][0]
	if c == nullNode {
		c = b.child[i][1]
	}
	b.replaceChild(p, i, c)
	if !b.isred[i] {
		if c != nullNode && b.isred[c] {
			b.isred[c] = false
		} else {
			b.fixAfterDelete(c)
		}
	}
	b.nterms--
	b.release(i)
}

// spliceSuccessor exchanges the tree positions of node i (which has two
// children) and its in-order successor, extending the path stack so that it
// again ends at i's parent. The exchange is structural: monomials stay in
// their slots, so the caller's node index remains valid.
func (b *Buffer) spliceSuccessor(i uint32) {
	p := b.stack[len(b.stack)-1]
	pos := len(b.stack)
	b.stack = append(b.stack, i) // placeholder, rewritten to the successor below
	right := b.child[i][1]
	j := right
	for b.child[j][0] != nullNode {
		b.stack = append(b.stack, j)
		j = b.child[j][0]
	}
	b.isred[i], b.isred[j] = b.isred[j], b.isred[i]
	b.replaceChild(p, i, j)
	b.child[j][0] = b.child[i][0]
	jr := b.child[j][1]
	if j == right {
		b.child[j][1] = i
	} else {
		b.child[j][1] = right
		q := b.stack[len(b.stack)-1] // the successor's old parent
		b.child[q][0] = i
	}
	b.child[i][0] = nullNode
	b.child[i][1] = jr
	b.stack[pos] = j
}

// red is a sentinel-safe color test: the null node is black.
func (b *Buffer) red(i uint32) bool {
	return i != nullNode && b.isred[i]
}

// side returns 0 if c is the left child of p, else 1.
func (b *Buffer) side(p, c uint32) int {
	if b.child[p][0] == c {
		return 0
	}
	return 1
}

// replaceChild relinks p's child slot holding old to repl. A null parent
// stands for the root slot.
func (b *Buffer) replaceChild(p, old, repl uint32) {
	if p == nullNode {
		b.root = repl
		return
	}
	if b.child[p][0] == old {
		b.child[p][0] = repl
	} else {
		b.child[p][1] = repl
	}
}

// rotateUp raises p's child on side s above p and returns it. The caller
// links the returned node into p's former parent.
func (b *Buffer) rotateUp(p uint32, s int) uint32 {
	c := b.child[p][s]
	b.child[p][s] = b.child[c][1-s]
	b.child[c][1-s] = p
	return c
}

// fixAfterInsert restores the red-black invariants after linking the fresh
// red node x below the node on top of the path stack. It walks the recorded
// ancestor chain, recoloring past red uncles and terminating with at most
// one single or double rotation.
func (b *Buffer) fixAfterInsert(x uint32) {
	k := len(b.stack) - 1
	for {
		p := b.stack[k]
		if p == nullNode || !b.isred[p] {
			break
		}
		// p is red, hence not the root: a black grandparent exists.
		g := b.stack[k-1]
		ps := b.side(g, p)
		u := b.child[g][1-ps]
		if b.red(u) {
			b.isred[p] = false
			b.isred[u] = false
			b.isred[g] = true
			x = g
			k -= 2
			continue
		}
		if b.side(p, x) != ps {
			// zig-zag: rotate x over p first
			p = b.rotateUp(p, 1-ps)
			b.child[g][ps] = p
		}
		n := b.rotateUp(g, ps)
		b.isred[n] = false
		b.isred[g] = true
		b.replaceChild(b.stack[k-2], g, n)
		break
	}
	b.isred[b.root] = false
}

// fixAfterDelete restores uniform black height after unlinking a black node.
// x is the node that moved into the vacated position (possibly the null
// sentinel); the path stack above x locates its ancestors. The double-black
// token is resolved by the usual sibling case analysis, propagating upward
// only while sibling and nephews are all black.
func (b *Buffer) fixAfterDelete(x uint32) {
	k := len(b.stack) - 1
	for {
		if b.red(x) {
			b.isred[x] = false
			return
		}
		p := b.stack[k]
		if p == nullNode {
			return // x is the root; the tree as a whole lost one black level
		}
		xs := 0
		if b.child[p][0] != x {
			xs = 1
		}
		pp := b.stack[k-1]
		w := b.child[p][1-xs] // sibling; never null while x is double-black
		if b.isred[w] {
			// red sibling: rotate it above p, then retry against the new
			// black sibling
			b.isred[w] = false
			b.isred[p] = true
			n := b.rotateUp(p, 1-xs)
			b.replaceChild(pp, p, n)
			pp = n
			w = b.child[p][1-xs]
		}
		wn := b.child[w][xs]   // near nephew
		wf := b.child[w][1-xs] // far nephew
		if !b.red(wn) && !b.red(wf) {
			// both nephews black: push the deficit up
			b.isred[w] = true
			x = p
			k--
			continue
		}
		if !b.red(wf) {
			// near nephew red: rotate it over the sibling
			b.isred[wn] = false
			b.isred[w] = true
			b.child[p][1-xs] = b.rotateUp(w, xs)
			w = b.child[p][1-xs]
			wf = b.child[w][1-xs]
		}
		b.isred[w] = b.isred[p]
		b.isred[p] = false
		b.isred[wf] = false
		n := b.rotateUp(p, 1-xs)
		b.replaceChild(pp, p, n)
		return
	}
}
