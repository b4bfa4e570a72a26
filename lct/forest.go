package lct

import "fmt"

// New allocates a forest of n isolated vertices 0..n-1.
//
// Returns ErrNegativeSize if n < 0. A zero-sized forest is valid but every
// vertex-taking method on it reports ErrVertexOutOfRange.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) (*Forest, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Forest{
		nodes: make([]node, n),
		opts:  o,
	}
	f.Reset()

	return f, nil
}

// Len returns the number of vertices.
func (f *Forest) Len() int {
	return len(f.nodes)
}

// Reset removes every edge, leaving n isolated vertices. The arena is reused.
func (f *Forest) Reset() {
	for i := range f.nodes {
		f.nodes[i].reset()
	}
}

// check verifies that every index is a vertex of f.
func (f *Forest) check(ids ...int) error {
	for _, id := range ids {
		if id < 0 || id >= len(f.nodes) {
			return fmt.Errorf("%w: vertex %d (n=%d)", ErrVertexOutOfRange, id, len(f.nodes))
		}
	}

	return nil
}

// Access exposes the path from the root of u's tree down to u as a single
// preferred path and returns the vertex at the root of its splay tree.
//
// Steps:
//  1. Splay u inside its own splay tree.
//  2. While the current splay root x has a path-parent p:
//     splay p; demote p's right child to its own path hanging beneath p;
//     attach x as p's right child; continue from p.
//  3. Return the last splay root reached.
//
// Complexity: amortized O(log n).
func (f *Forest) Access(u int) (int, error) {
	if err := f.check(u); err != nil {
		return none, err
	}

	return f.access(u), nil
}

func (f *Forest) access(u int) int {
	x := u
	f.splay(x)
	for f.nodes[x].pathParent != none {
		p := f.nodes[x].pathParent
		f.splay(p)

		if r := f.nodes[p].right; r != none {
			f.nodes[r].parent = none
			f.nodes[r].pathParent = p // old continuation becomes its own path
		}
		f.nodes[x].pathParent = none
		f.setChild(p, sideRight, x)
		x = p
	}

	return x
}

// MakeRoot re-roots u's tree at u. Connectivity is unchanged.
//
// After Access(u) and splaying u, the vertices above u form u's left subtree.
// That subtree is detached into its own path hanging beneath u and flipped, so
// its order reads from u's former parent upwards.
//
// Complexity: amortized O(log n).
func (f *Forest) MakeRoot(u int) error {
	if err := f.check(u); err != nil {
		return err
	}
	f.makeRoot(u)

	return nil
}

func (f *Forest) makeRoot(u int) {
	f.access(u)
	f.splay(u)

	l := f.nodes[u].left
	if l == none {
		return // u already tops its path
	}
	f.nodes[l].parent = none
	f.nodes[l].flip = !f.nodes[l].flip
	f.nodes[l].pathParent = u
	f.nodes[u].left = none
}

// Link adds the edge (u, v), hanging u's tree beneath v.
//
// Precondition: u and v are in different trees. In checked mode (default) a
// violation returns ErrAlreadyConnected and leaves the forest unchanged; with
// WithUnchecked the precondition is the caller's responsibility.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrAlreadyConnected.
// Complexity: amortized O(log n).
func (f *Forest) Link(u, v int) error {
	if err := f.check(u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: link %d-%d", ErrSelfLoop, u, v)
	}
	if !f.opts.Unchecked && f.connected(u, v) {
		return fmt.Errorf("%w: link %d-%d", ErrAlreadyConnected, u, v)
	}

	f.makeRoot(u)
	f.nodes[u].pathParent = v

	return nil
}

// Cut removes the tree edge (u, v), splitting one tree into two.
//
// After re-rooting at v and splaying u, the edge is either u's path-parent
// pointer (u tops a path hanging beneath v) or the splay link between u and
// its left child v.
//
// Precondition: (u, v) is a current tree edge. In checked mode (default) a
// violation returns ErrNotAnEdge; with WithUnchecked it is not verified.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrNotAnEdge.
// Complexity: amortized O(log n).
func (f *Forest) Cut(u, v int) error {
	if err := f.check(u, v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: cut %d-%d", ErrSelfLoop, u, v)
	}
	if !f.opts.Unchecked && !f.hasEdge(u, v) {
		return fmt.Errorf("%w: cut %d-%d", ErrNotAnEdge, u, v)
	}

	f.makeRoot(v)
	f.splay(u)
	if f.nodes[u].pathParent != none {
		f.nodes[u].pathParent = none
		return nil
	}
	f.nodes[u].left = none
	f.nodes[v].parent = none

	return nil
}

// Connected reports whether u and v are in the same tree.
//
// Both vertices are accessed and their tree roots compared, so the call
// restructures splay trees even though connectivity is not changed.
//
// Complexity: amortized O(log n).
func (f *Forest) Connected(u, v int) (bool, error) {
	if err := f.check(u, v); err != nil {
		return false, err
	}

	return f.connected(u, v), nil
}

func (f *Forest) connected(u, v int) bool {
	ru := f.first(f.access(u))
	rv := f.first(f.access(v))

	return ru == rv
}

// FindRoot returns the current root of u's tree: u itself after MakeRoot(u),
// otherwise whichever vertex the latest re-rooting or linking left on top.
//
// Complexity: amortized O(log n).
func (f *Forest) FindRoot(u int) (int, error) {
	if err := f.check(u); err != nil {
		return none, err
	}

	return f.first(f.access(u)), nil
}

// HasEdge reports whether (u, v) is a current tree edge.
// It re-roots u's tree at v as a side effect.
//
// Complexity: amortized O(log n).
func (f *Forest) HasEdge(u, v int) (bool, error) {
	if err := f.check(u, v); err != nil {
		return false, err
	}
	if u == v {
		return false, nil
	}

	return f.hasEdge(u, v), nil
}

// hasEdge re-roots at v and exposes u: the edge exists exactly when the path
// from v to u is v followed by u, i.e. u's left subtree is the single node v.
func (f *Forest) hasEdge(u, v int) bool {
	f.makeRoot(v)
	f.access(u)
	f.splay(u)
	if f.nodes[u].left != v {
		return false
	}
	f.pushFlip(v)

	return f.nodes[v].left == none && f.nodes[v].right == none
}
