package unionfind

import "fmt"

// UnionFind is a weighted quick-union structure with path compression.
// parent[i] == i marks a root; size[r] is the element count of root r's tree.
type UnionFind struct {
	parent []int
	size   []int
	count  int
}

// New returns a UnionFind of n singleton classes {0}, {1}, ..., {n-1}.
// Returns ErrInvalidSize if n ≤ 0.
// Complexity: O(n) time and memory.
func New(n int) (*UnionFind, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	uf := &UnionFind{
		parent: make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = i
		uf.size[i] = 1
	}

	return uf, nil
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int {
	return len(uf.parent)
}

// Count returns the current number of classes.
func (uf *UnionFind) Count() int {
	return uf.count
}

// Find returns the root of p's class.
// Returns ErrOutOfRange if p ∉ [0, Len()).
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Find(p int) (int, error) {
	if err := uf.validate(p); err != nil {
		return 0, err
	}

	return uf.root(p), nil
}

// Connected reports whether p and q belong to the same class.
func (uf *UnionFind) Connected(p, q int) (bool, error) {
	if err := uf.validate(p); err != nil {
		return false, err
	}
	if err := uf.validate(q); err != nil {
		return false, err
	}

	return uf.root(p) == uf.root(q), nil
}

// Union merges the classes containing p and q. The smaller tree is attached
// under the larger one's root. Both ids are validated before any mutation.
// Complexity: amortized O(α(n)).
func (uf *UnionFind) Union(p, q int) error {
	if err := uf.validate(p); err != nil {
		return err
	}
	if err := uf.validate(q); err != nil {
		return err
	}
	rootP, rootQ := uf.root(p), uf.root(q)
	if rootP == rootQ {
		return nil
	}
	if uf.size[rootP] < uf.size[rootQ] {
		rootP, rootQ = rootQ, rootP
	}
	uf.parent[rootQ] = rootP
	uf.size[rootP] += uf.size[rootQ]
	uf.count--

	return nil
}

// root walks to p's root, pointing every visited node at its grandparent.
// p must already be validated.
func (uf *UnionFind) root(p int) int {
	for uf.parent[p] != p {
		uf.parent[p] = uf.parent[uf.parent[p]]
		p = uf.parent[p]
	}

	return p
}

func (uf *UnionFind) validate(p int) error {
	if p < 0 || p >= len(uf.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, p, len(uf.parent))
	}

	return nil
}
