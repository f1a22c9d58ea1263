package cluster

import "errors"

var (
	// ErrEmptyGrid indicates the input map has no rows or no columns.
	ErrEmptyGrid = errors.New("cluster: grid must have at least one row and one column")
	// ErrNonSquare indicates a row whose length differs from the row count.
	ErrNonSquare = errors.New("cluster: grid must be square")
)

// Cluster is one 4-connected region of open sites.
// Cells holds row-major indices (row-1)*n + (col-1) in BFS discovery order.
type Cluster struct {
	Cells         []int
	TouchesTop    bool
	TouchesBottom bool
}

// Size returns the number of sites in the cluster.
func (c Cluster) Size() int {
	return len(c.Cells)
}

// Spans reports whether the cluster reaches both the top and bottom rows.
func (c Cluster) Spans() bool {
	return c.TouchesTop && c.TouchesBottom
}

// offsets lists the orthogonal neighbours as {dRow, dCol}: N, E, S, W.
var offsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
