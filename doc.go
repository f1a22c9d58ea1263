// Package percolate estimates the site-percolation threshold of square grids.
//
// What is inside?
//
//	• unionfind/    fixed-size disjoint-set, union by size + path halving
//	• percolation/  n×n Grid with virtual top/bottom nodes: Open, IsFull, Percolates
//	• cluster/      BFS labelling of open clusters (independent oracle)
//	• montecarlo/   sequential and parallel trial runners, Stats (mean, stddev, 95% CI)
//	• config/       YAML run settings for the CLI
//	• cmd/percolation   command-line entry point
//
// Quick ASCII example (3×3, '#' open):
//
//	. # .
//	. # .      top ──► (1,2) ──► (2,2) ──► (3,2) ──► bottom
//	. # .
//
// percolates, and a 20×20 grid does so at an open fraction near 0.593.
//
//	go run github.com/katalvlaran/percolate/cmd/percolation 200 100
package percolate
