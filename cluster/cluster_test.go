package cluster_test

import (
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/percolate/cluster"
)

// grid parses rows of '#' (open) and '.' (blocked) into an open map.
func grid(rows ...string) [][]bool {
	out := make([][]bool, len(rows))
	for r, s := range rows {
		out[r] = make([]bool, len(s))
		for c, ch := range s {
			out[r][c] = ch == '#'
		}
	}
	return out
}

// TestLabel_Errors verifies that Label rejects empty or non-square inputs.
func TestLabel_Errors(t *testing.T) {
	cases := []struct {
		name string
		open [][]bool
		err  error
	}{
		{"NilRows", nil, cluster.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, cluster.ErrEmptyGrid},
		{"Ragged", [][]bool{{true, false}, {true}}, cluster.ErrNonSquare},
		{"Rectangular", [][]bool{{true, false, true}, {true, true, true}}, cluster.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cluster.Label(tc.open)
			if !errors.Is(err, tc.err) {
				t.Errorf("Label(%v) error = %v; want %v", tc.open, err, tc.err)
			}
		})
	}
}

// TestLabel_Simple labels a 4×4 map with three clusters.
//
//	# # . .
//	. # . #
//	. . . #
//	# . # #
//
// Expected sizes 3, 4, 1; the right-hand cluster touches only the bottom.
func TestLabel_Simple(t *testing.T) {
	clusters, err := cluster.Label(grid(
		"##..",
		".#.#",
		"...#",
		"#.##",
	))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if len(clusters) != 3 {
		t.Fatalf("got %d clusters; want 3", len(clusters))
	}
	sizes := []int{clusters[0].Size(), clusters[1].Size(), clusters[2].Size()}
	sort.Ints(sizes)
	if want := []int{1, 3, 4}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("cluster sizes = %v; want %v", sizes, want)
	}
	if cluster.Spanning(clusters) {
		t.Error("Spanning = true; want false")
	}
	if got := cluster.Largest(clusters); got != 4 {
		t.Errorf("Largest = %d; want 4", got)
	}
	// First cluster in scan order starts at (1,1) and touches the top only.
	if !clusters[0].TouchesTop || clusters[0].TouchesBottom {
		t.Errorf("cluster 0 top/bottom = %v/%v; want true/false",
			clusters[0].TouchesTop, clusters[0].TouchesBottom)
	}
}

// TestLabel_SpanningColumn checks that a full middle column spans.
func TestLabel_SpanningColumn(t *testing.T) {
	clusters, err := cluster.Label(grid(
		".#.",
		".#.",
		".#.",
	))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if len(clusters) != 1 || !clusters[0].Spans() {
		t.Fatalf("clusters = %+v; want one spanning cluster", clusters)
	}
	if !cluster.Spanning(clusters) {
		t.Error("Spanning = false; want true")
	}
}

// TestLabel_DiagonalDoesNotConnect ensures diagonal contact is not adjacency.
func TestLabel_DiagonalDoesNotConnect(t *testing.T) {
	clusters, err := cluster.Label(grid(
		"#.",
		".#",
	))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if len(clusters) != 2 {
		t.Fatalf("got %d clusters; want 2", len(clusters))
	}
	if cluster.Spanning(clusters) {
		t.Error("Spanning = true for diagonal pair; want false")
	}
}

// TestLabel_AllBlockedAndSingle covers the degenerate cases.
func TestLabel_AllBlockedAndSingle(t *testing.T) {
	clusters, err := cluster.Label(grid("..", ".."))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if len(clusters) != 0 || cluster.Largest(clusters) != 0 {
		t.Errorf("all blocked: got %d clusters; want 0", len(clusters))
	}

	clusters, err = cluster.Label(grid("#"))
	if err != nil {
		t.Fatalf("Label error: %v", err)
	}
	if len(clusters) != 1 || !clusters[0].Spans() {
		t.Errorf("1×1 open: clusters = %+v; want one spanning cluster", clusters)
	}
}

// TestCoordinate checks the index → (row, col) conversion.
func TestCoordinate(t *testing.T) {
	cases := []struct{ n, idx, row, col int }{
		{3, 0, 1, 1},
		{3, 2, 1, 3},
		{3, 3, 2, 1},
		{3, 8, 3, 3},
		{1, 0, 1, 1},
	}
	for _, tc := range cases {
		r, c := cluster.Coordinate(tc.n, tc.idx)
		if r != tc.row || c != tc.col {
			t.Errorf("Coordinate(%d,%d) = (%d,%d); want (%d,%d)", tc.n, tc.idx, r, c, tc.row, tc.col)
		}
	}
}
