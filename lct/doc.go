// Package lct implements a dynamic forest (link-cut tree) over a fixed set of
// integer vertices, supporting online edge insertion, edge removal and
// connectivity queries in amortized O(log n) time.
//
// What:
//
//   - Forest: n vertices 0..n-1, initially isolated, stored in a fixed arena.
//   - Link(u, v): join two different trees with the edge (u, v).
//   - Cut(u, v): remove the existing tree edge (u, v).
//   - Connected(u, v): report whether u and v belong to the same tree.
//   - MakeRoot(u) / Access(u): the re-rooting and path-exposure primitives the
//     other operations are built from, exported for callers composing their own
//     dynamic-tree algorithms.
//   - FindRoot, HasEdge, Reset, Validate: helpers on top of the same primitives.
//   - SyncForest: a mutex-guarded wrapper for callers sharing one forest across
//     goroutines.
//
// How:
//
// Every tree of the forest is partitioned into vertex-disjoint preferred paths.
// Each preferred path is kept in a splay tree keyed implicitly by depth: an
// in-order walk of the splay tree lists the path from its top vertex downwards.
// The splay root of a path stores a path-parent index pointing at the vertex the
// path hangs beneath. Re-rooting reverses a whole path lazily through a flip
// flag that is pushed to the children before they are read.
//
//	tree           preferred paths         splay trees
//	  0              0─1─3   (top path)          1
//	 / \             2       (pp = 0)           / \
//	1   2                                      0   3     2 [pp=0]
//	|
//	3
//
// Why:
//
//   - Dynamic connectivity for forests (network topologies under churn,
//     incremental spanning-forest maintenance, offline graph algorithms).
//   - Building block for dynamic-tree algorithms that need Access/MakeRoot.
//
// Complexity:
//
//   - New:                     O(n) time, O(n) memory (the only allocation).
//   - Access, MakeRoot:        amortized O(log n).
//   - Link, Cut, Connected:    amortized O(log n).
//   - FindRoot, HasEdge:       amortized O(log n).
//   - Validate:                O(n).
//
// Errors:
//
//   - ErrNegativeSize      New called with n < 0.
//   - ErrVertexOutOfRange  vertex index outside 0..n-1.
//   - ErrSelfLoop          Link/Cut with u == v.
//   - ErrAlreadyConnected  Link on vertices of the same tree (checked mode).
//   - ErrNotAnEdge         Cut on a pair that is not a tree edge (checked mode).
//   - ErrCorrupted         Validate found a broken structural invariant.
//
// By default Link and Cut verify their graph-theoretic preconditions. With
// WithUnchecked they skip the verification, which saves one extra access per
// call; violating a precondition then corrupts the forest silently.
//
// A Forest is not safe for concurrent use: every operation, Connected
// included, restructures splay trees. Use SyncForest or serialize calls.
package lct
