package lct

// This file holds the splay-tree mechanics over the node arena. All helpers take
// arena indices and assume they are in range; the exported operations validate
// indices before reaching here.

// direction reports whether x is the left or right child of its splay parent,
// or sideRoot when x has none.
func (f *Forest) direction(x int) side {
	p := f.nodes[x].parent
	if p == none {
		return sideRoot
	}
	if f.nodes[p].right == x {
		return sideRight
	}

	return sideLeft
}

// pushFlip applies a pending flip of x: its children are swapped and the flag
// is handed down to each of them.
func (f *Forest) pushFlip(x int) {
	n := &f.nodes[x]
	if !n.flip {
		return
	}
	n.flip = false
	n.left, n.right = n.right, n.left
	if n.left != none {
		f.nodes[n.left].flip = !f.nodes[n.left].flip
	}
	if n.right != none {
		f.nodes[n.right].flip = !f.nodes[n.right].flip
	}
}

// setChild stores c as the d-side child of p and points c back at p.
func (f *Forest) setChild(p int, d side, c int) {
	if d == sideLeft {
		f.nodes[p].left = c
	} else {
		f.nodes[p].right = c
	}
	if c != none {
		f.nodes[c].parent = p
	}
}

// rotate lifts x one level above its splay parent p, keeping in-order intact.
// x must have a splay parent.
//
//	      p                x
//	     / \              / \
//	    x   c    ==>     a   p
//	   / \                  / \
//	  a   b                b   c
//
// The path-parent belongs to whoever is the local root, so it moves from p to x.
func (f *Forest) rotate(x int) {
	p := f.nodes[x].parent
	g := f.nodes[p].parent
	f.pushFlip(p)
	f.pushFlip(x)
	d := f.direction(x)
	pd := f.direction(p)

	if d == sideLeft {
		f.setChild(p, sideLeft, f.nodes[x].right) // b moves under p
		f.setChild(x, sideRight, p)
	} else {
		f.setChild(p, sideRight, f.nodes[x].left)
		f.setChild(x, sideLeft, p)
	}

	if pd == sideRoot {
		f.nodes[x].parent = none
	} else {
		f.setChild(g, pd, x)
	}

	f.nodes[x].pathParent = f.nodes[p].pathParent
	f.nodes[p].pathParent = none
}

// splay moves x to the root of its splay tree.
//
// Flips are pushed top-down (grandparent, parent, x) before each step reads any
// orientation. The zig / zig-zig / zig-zag split below is the one the amortized
// O(log k) bound is proven for; the parent rotates first only in the zig-zig case.
func (f *Forest) splay(x int) {
	f.pushFlip(x)
	for f.nodes[x].parent != none {
		p := f.nodes[x].parent
		g := f.nodes[p].parent
		if g != none {
			f.pushFlip(g)
		}
		f.pushFlip(p)
		f.pushFlip(x)

		switch {
		case g == none: // zig
			f.rotate(x)
		case f.direction(x) == f.direction(p): // zig-zig
			f.rotate(p)
			f.rotate(x)
		default: // zig-zag
			f.rotate(x)
			f.rotate(x)
		}
	}
}

// first returns the leftmost vertex of x's splay tree after splaying it to the
// root. Called on an accessed vertex it yields the root of the whole tree.
func (f *Forest) first(x int) int {
	f.pushFlip(x)
	for f.nodes[x].left != none {
		x = f.nodes[x].left
		f.pushFlip(x)
	}
	f.splay(x)

	return x
}
