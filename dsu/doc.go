// Package dsu implements a disjoint-set union (union-find) over the integers
// 0..n-1 with rollback.
//
// What:
//
//   - Union by size, no path compression, so every Union can be undone exactly.
//   - Snapshot / Rollback / Undo restore earlier states in LIFO order.
//   - Count and Size report the partition shape.
//
// Why:
//
//   - Offline dynamic connectivity (divide and conquer over time, where edges
//     are added on the way down and removed by rolling back on the way up).
//   - A reference oracle for dynamic-forest structures: replaying edges after a
//     rollback reproduces connectivity after an arbitrary edge removal.
//
// Complexity:
//
//   - New:                O(n) time and memory.
//   - Find, Connected:    O(log n) (union by size bounds tree height).
//   - Union:              O(log n), plus one history record.
//   - Undo:               O(1); Rollback(mark): O(k) for k undone unions.
//
// Errors:
//
//   - ErrNegativeSize  New called with n < 0.
//   - ErrBadSnapshot   Rollback mark is negative or ahead of the history.
//
// Element indices are not validated on the hot path: an index outside 0..n-1
// panics like a slice index would.
package dsu
