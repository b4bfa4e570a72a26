// Package lct defines the arena node, the Forest type, functional options and
// sentinel errors for the link-cut forest.
package lct

import "errors"

// Sentinel errors for lct operations.
var (
	// ErrNegativeSize is returned by New when the requested vertex count is negative.
	ErrNegativeSize = errors.New("lct: negative forest size")

	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("lct: vertex index out of range")

	// ErrSelfLoop indicates Link or Cut was called with u == v.
	// A self link would close a cycle through a single vertex.
	ErrSelfLoop = errors.New("lct: self-loop not allowed")

	// ErrAlreadyConnected indicates Link was called on two vertices of the same tree.
	// Only reported in checked mode (the default).
	ErrAlreadyConnected = errors.New("lct: vertices already connected")

	// ErrNotAnEdge indicates Cut was called on a pair that is not a current tree edge.
	// Only reported in checked mode (the default).
	ErrNotAnEdge = errors.New("lct: not a tree edge")

	// ErrCorrupted is returned by Validate when a structural invariant does not hold.
	ErrCorrupted = errors.New("lct: forest structure corrupted")
)

// none marks an absent child, parent or path-parent index.
const none = -1

// side is the position of a node relative to its splay parent.
type side int8

const (
	sideRoot  side = -1 // no splay parent
	sideLeft  side = 0  // left child of its splay parent
	sideRight side = 1  // right child of its splay parent
)

// node is one vertex's slot in the arena.
//
// left/right are owned children inside the splay tree of the vertex's current
// preferred path. parent and pathParent are weak back-references: parent is the
// splay parent, pathParent is set only on splay roots and names the vertex the
// whole preferred path hangs beneath (a real tree edge between two paths).
type node struct {
	left, right int  // splay children, none if absent
	parent      int  // splay parent, none on splay roots
	pathParent  int  // path-parent, meaningful on splay roots only
	flip        bool // children (and their subtrees) must be swapped before reading
}

// reset puts n back into the isolated state.
func (n *node) reset() {
	n.left, n.right = none, none
	n.parent, n.pathParent = none, none
	n.flip = false
}

// Options configures a Forest at construction time.
type Options struct {
	// Unchecked disables verification of the graph-theoretic preconditions of
	// Link (endpoints in different trees) and Cut (pair is a tree edge).
	// Index bounds and self-loops are always checked.
	Unchecked bool
}

// Option configures optional behavior of New / NewSync.
type Option func(*Options)

// DefaultOptions returns Options with all precondition checks enabled.
func DefaultOptions() Options {
	return Options{
		Unchecked: false,
	}
}

// WithUnchecked returns an Option that switches to the trusting contract:
// Link and Cut trust the caller and skip the extra access needed to verify
// their preconditions. Violations corrupt the forest instead of returning errors.
func WithUnchecked() Option {
	return func(o *Options) {
		o.Unchecked = true
	}
}

// Forest is a dynamic forest over the vertices 0..n-1.
//
// The node arena is allocated once in New and never resized; Link and Cut only
// rewrite indices. A Forest is not safe for concurrent use.
type Forest struct {
	nodes []node
	opts  Options
}
