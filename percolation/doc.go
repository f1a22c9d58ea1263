// Package percolation models site percolation on an n×n grid.
//
// What:
//
//   - Grid holds the open/blocked state of n×n sites, 1-indexed by (row, col).
//   - Open marks a site open and joins it with its open orthogonal neighbours
//     in a weighted union-find augmented with a virtual top and bottom node.
//   - IsFull reports whether a site is connected to the top row.
//   - Percolates reports whether the top row is connected to the bottom row.
//
// Why:
//
//   - Monte Carlo estimation of the percolation threshold p* ≈ 0.5927.
//   - Toy model for porous media, conductivity and network reliability.
//
// Complexity:
//
//   - New:                 O(n²) time and memory.
//   - Open:                amortized O(α(n²)), at most five unions.
//   - IsFull, Percolates:  amortized O(α(n²)).
//   - NumberOfOpenSites:   O(1).
//   - Clusters:            O(n²) (BFS over a snapshot).
//
// Errors:
//
//   - ErrInvalidArgument: non-positive size or a coordinate outside [1, n].
//     Validation happens before any mutation, so a rejected call leaves the
//     grid unchanged.
//
// Concurrency:
//
//   - A Grid is single-use and NOT safe for concurrent use.
//
// Example:
//
//	g, _ := percolation.New(3)
//	_ = g.Open(1, 2)
//	_ = g.Open(2, 2)
//	_ = g.Open(3, 2)
//	g.Percolates() // true
package percolation
