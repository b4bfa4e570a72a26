package dsu

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeSize is returned by New when the element count is negative.
	ErrNegativeSize = errors.New("dsu: negative size")

	// ErrBadSnapshot indicates a Rollback mark that does not name an earlier state.
	ErrBadSnapshot = errors.New("dsu: snapshot mark out of range")
)

// record is one entry of the union history. child == -1 marks a Union call
// that found both elements already joined and changed nothing.
type record struct {
	child, root int
}

// DSU is a union-find over 0..n-1 that can undo its unions.
type DSU struct {
	parent  []int // parent[x] == x for roots
	size    []int // set size, meaningful on roots only
	count   int   // number of disjoint sets
	history []record
}

// New creates n singleton sets.
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrNegativeSize, n)
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements.
func (d *DSU) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets.
func (d *DSU) Count() int {
	return d.count
}

// Find returns the representative of x's set. Paths are not compressed so
// that Undo can restore the exact previous parent array.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y, attaching the smaller under the larger.
// It returns false if they were already in the same set. Either way one
// history record is pushed, so Snapshot marks count Union calls.
func (d *DSU) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		d.history = append(d.history, record{child: -1, root: rx})
		return false
	}
	if d.size[rx] < d.size[ry] {
		rx, ry = ry, rx
	}
	d.parent[ry] = rx
	d.size[rx] += d.size[ry]
	d.count--
	d.history = append(d.history, record{child: ry, root: rx})

	return true
}

// Connected reports whether x and y are in the same set.
func (d *DSU) Connected(x, y int) bool {
	return d.Find(x) == d.Find(y)
}

// Size returns the number of elements in x's set.
func (d *DSU) Size(x int) int {
	return d.size[d.Find(x)]
}

// Snapshot returns a mark for the current state, to be passed to Rollback.
func (d *DSU) Snapshot() int {
	return len(d.history)
}

// Undo reverts the most recent Union call. It returns false when the history is empty.
func (d *DSU) Undo() bool {
	last := len(d.history) - 1
	if last < 0 {
		return false
	}
	r := d.history[last]
	d.history = d.history[:last]
	if r.child == -1 {
		return true // no-op union
	}
	d.parent[r.child] = r.child
	d.size[r.root] -= d.size[r.child]
	d.count++

	return true
}

// Rollback reverts every Union made after mark was taken.
func (d *DSU) Rollback(mark int) error {
	if mark < 0 || mark > len(d.history) {
		return fmt.Errorf("%w: mark %d, history %d", ErrBadSnapshot, mark, len(d.history))
	}
	for len(d.history) > mark {
		d.Undo()
	}

	return nil
}
