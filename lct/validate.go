package lct

import "fmt"

// Validate checks the structural invariants of the forest:
//
//   - every stored index is none or a vertex of the arena;
//   - child and parent links agree (c is a child of p iff parent(c) == p);
//   - a path-parent is only set on splay roots and never points at itself;
//   - following splay parents, and then path-parents, always terminates
//     (no cycle in the back-reference graph).
//
// Validate does not push flips or splay, so it never changes the forest.
// It returns nil or an error wrapping ErrCorrupted.
//
// Complexity: O(n) time, O(n) memory.
func (f *Forest) Validate() error {
	n := len(f.nodes)
	inRange := func(i int) bool { return i == none || (i >= 0 && i < n) }

	for i := range f.nodes {
		nd := &f.nodes[i]
		if !inRange(nd.left) || !inRange(nd.right) || !inRange(nd.parent) || !inRange(nd.pathParent) {
			return fmt.Errorf("%w: vertex %d holds an index outside 0..%d", ErrCorrupted, i, n-1)
		}
		if nd.left != none && nd.left == nd.right {
			return fmt.Errorf("%w: vertex %d has the same left and right child", ErrCorrupted, i)
		}
		for _, c := range [2]int{nd.left, nd.right} {
			if c != none && f.nodes[c].parent != i {
				return fmt.Errorf("%w: child %d of %d points at parent %d", ErrCorrupted, c, i, f.nodes[c].parent)
			}
		}
		if p := nd.parent; p != none && f.nodes[p].left != i && f.nodes[p].right != i {
			return fmt.Errorf("%w: vertex %d is not a child of its parent %d", ErrCorrupted, i, p)
		}
		if nd.pathParent != none && nd.parent != none {
			return fmt.Errorf("%w: non-root vertex %d carries path-parent %d", ErrCorrupted, i, nd.pathParent)
		}
		if nd.pathParent == i {
			return fmt.Errorf("%w: vertex %d is its own path-parent", ErrCorrupted, i)
		}
	}

	// Walk every vertex up to its represented tree's top path. Each vertex is
	// resolved once: state 1 = on the current walk, 2 = known to terminate.
	state := make([]uint8, n)
	for start := range f.nodes {
		var walk []int
		x := start
		for x != none && state[x] == 0 {
			state[x] = 1
			walk = append(walk, x)
			if p := f.nodes[x].parent; p != none {
				x = p
			} else {
				x = f.nodes[x].pathParent
			}
		}
		if x != none && state[x] == 1 {
			return fmt.Errorf("%w: back-reference cycle through vertex %d", ErrCorrupted, x)
		}
		for _, w := range walk {
			state[w] = 2
		}
	}

	return nil
}
