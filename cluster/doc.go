// Package cluster labels the connected clusters of open sites on a square
// percolation grid.
//
// What:
//
//   - Label scans an n×n open/blocked map and returns every 4-connected
//     cluster of open sites, with flags for touching the top and bottom rows.
//   - Spanning reports whether any cluster connects top to bottom.
//   - Largest returns the size of the biggest cluster.
//
// Why:
//
//   - Independent BFS oracle for the incremental union-find percolation check.
//   - Cluster-size reports for a finished trial.
//
// Complexity:
//
//   - Label:    O(n²) time, O(n²) memory.
//   - Spanning: O(k) for k clusters.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonSquare: some row length differs from the row count.
package cluster
