// Package unionfind provides a fixed-size disjoint-set (union-find) structure
// over the integer elements 0..n-1.
//
// What:
//
//   - UnionFind tracks a partition of n elements into equivalence classes.
//   - Find returns the canonical root of an element's class.
//   - Union merges two classes; Connected tests class equality.
//
// Why:
//
//   - Incremental connectivity: percolation grids, Kruskal MST, island merging.
//
// Complexity:
//
//   - New:             O(n) time, O(n) memory.
//   - Find/Union:      amortized O(α(n)) (union by size + path halving).
//   - Count/Len:       O(1).
//
// Errors:
//
//   - ErrInvalidSize: New called with n ≤ 0.
//   - ErrOutOfRange:  element id outside [0, n).
//
// Concurrency:
//
//   - A UnionFind is NOT safe for concurrent use; Find mutates the parent
//     slice through path compression.
package unionfind
