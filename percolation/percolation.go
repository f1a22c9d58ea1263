package percolation

import (
	"fmt"

	"github.com/katalvlaran/percolate/cluster"
	"github.com/katalvlaran/percolate/unionfind"
)

// Grid is an n×n percolation system.
//
// Union-find node ids: site (row, col) ↦ (row-1)*n + col, top ↦ 0,
// bottom ↦ n*n+1. open is row-major with index id-1.
type Grid struct {
	n         int
	open      []bool
	openSites int
	uf        *unionfind.UnionFind
	top       int
	bottom    int
}

// New creates an n×n grid with every site blocked.
// Returns ErrInvalidArgument if n ≤ 0.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: grid size must be > 0, got %d", ErrInvalidArgument, n)
	}
	uf, err := unionfind.New(n*n + 2)
	if err != nil {
		return nil, fmt.Errorf("percolation: %w", err)
	}

	return &Grid{
		n:      n,
		open:   make([]bool, n*n),
		uf:     uf,
		top:    0,
		bottom: n*n + 1,
	}, nil
}

// Size returns n.
func (g *Grid) Size() int {
	return g.n
}

// Open opens site (row, col) if it is not open already. Opening an open site
// is a no-op. On first open the site is joined with the virtual top (row 1),
// the virtual bottom (row n) and every open orthogonal neighbour; for n == 1
// the single site joins both virtual nodes.
// Returns ErrInvalidArgument if row or col is outside [1, n].
func (g *Grid) Open(row, col int) error {
	if err := g.validate(row, col); err != nil {
		return err
	}
	id := g.id(row, col)
	if g.open[id-1] {
		return nil
	}
	g.open[id-1] = true
	g.openSites++

	if row == 1 {
		g.union(id, g.top)
	}
	if row == g.n {
		g.union(id, g.bottom)
	}
	for _, d := range neighbours {
		r, c := row+d[0], col+d[1]
		if !g.inBounds(r, c) {
			continue
		}
		if nid := g.id(r, c); g.open[nid-1] {
			g.union(nid, id)
		}
	}

	return nil
}

// IsOpen reports whether site (row, col) is open.
// Returns ErrInvalidArgument if row or col is outside [1, n].
func (g *Grid) IsOpen(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.open[g.id(row, col)-1], nil
}

// IsFull reports whether site (row, col) is in the same class as the virtual
// top node. A blocked site is never unioned, so it reports false rather than
// an error.
// Returns ErrInvalidArgument if row or col is outside [1, n].
func (g *Grid) IsFull(row, col int) (bool, error) {
	if err := g.validate(row, col); err != nil {
		return false, err
	}

	return g.connected(g.id(row, col), g.top), nil
}

// NumberOfOpenSites returns the number of open sites.
// Complexity: O(1).
func (g *Grid) NumberOfOpenSites() int {
	return g.openSites
}

// Percolates reports whether the virtual top and bottom nodes are connected.
func (g *Grid) Percolates() bool {
	return g.connected(g.top, g.bottom)
}

// Snapshot returns a deep copy of the open flags; element [r][c] is the state
// of site (r+1, c+1).
// Complexity: O(n²).
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = make([]bool, g.n)
		copy(out[r], g.open[r*g.n:(r+1)*g.n])
	}

	return out
}

// Clusters labels the 4-connected clusters of open sites by BFS over a
// snapshot, independently of the union-find state.
// Complexity: O(n²).
func (g *Grid) Clusters() []cluster.Cluster {
	// Snapshot is always non-empty and square.
	clusters, _ := cluster.Label(g.Snapshot())

	return clusters
}

// neighbours lists the orthogonal offsets {dRow, dCol}: left, right, up, down.
var neighbours = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// validate is the single bounds check shared by every coordinate operation.
func (g *Grid) validate(row, col int) error {
	if !g.inBounds(row, col) {
		return fmt.Errorf("%w: site (%d,%d) outside [1,%d]", ErrInvalidArgument, row, col, g.n)
	}

	return nil
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 1 && row <= g.n && col >= 1 && col <= g.n
}

// id maps a validated (row, col) to its union-find node.
func (g *Grid) id(row, col int) int {
	return (row-1)*g.n + col
}

// union and connected operate on ids in [0, n*n+1], which are valid for uf
// by construction.
func (g *Grid) union(p, q int) {
	_ = g.uf.Union(p, q)
}

func (g *Grid) connected(p, q int) bool {
	ok, _ := g.uf.Connected(p, q)

	return ok
}
