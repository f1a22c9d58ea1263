package cluster

// Label finds all 4-connected clusters of open sites in a square map.
// open[r][c] is the state of grid site (r+1, c+1). Clusters are returned in
// row-major order of their first cell; an all-blocked map yields nil.
//
// Returns ErrEmptyGrid or ErrNonSquare on malformed input.
// Time: O(n²). Memory: O(n²) for visited flags and output.
func Label(open [][]bool) ([]Cluster, error) {
	n := len(open)
	if n == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range open {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	seen := make([]bool, n*n)
	var clusters []Cluster
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !open[r][c] {
				continue // blocked
			}
			i0 := r*n + c
			if seen[i0] {
				continue
			}
			// BFS to collect the cluster
			queue := []int{i0}
			seen[i0] = true
			var cl Cluster

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				cl.Cells = append(cl.Cells, u)
				ur, uc := u/n, u%n
				if ur == 0 {
					cl.TouchesTop = true
				}
				if ur == n-1 {
					cl.TouchesBottom = true
				}
				for _, d := range offsets {
					vr, vc := ur+d[0], uc+d[1]
					if vr < 0 || vr >= n || vc < 0 || vc >= n || !open[vr][vc] {
						continue
					}
					vi := vr*n + vc
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			clusters = append(clusters, cl)
		}
	}

	return clusters, nil
}

// Spanning reports whether any cluster touches both the top and bottom rows.
func Spanning(clusters []Cluster) bool {
	for _, cl := range clusters {
		if cl.Spans() {
			return true
		}
	}

	return false
}

// Largest returns the size of the biggest cluster, or 0 for none.
func Largest(clusters []Cluster) int {
	best := 0
	for _, cl := range clusters {
		if cl.Size() > best {
			best = cl.Size()
		}
	}

	return best
}

// Coordinate converts a row-major cell index on an n×n grid back to
// 1-based (row, col).
// Complexity: O(1).
func Coordinate(n, idx int) (row, col int) {
	return idx/n + 1, idx%n + 1
}
