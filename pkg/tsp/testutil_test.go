package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zwilder/tsp/pkg/tsp"
)

// mustMatrix builds a matrix or fails the test.
func mustMatrix(t *testing.T, rows [][]int) *tsp.Matrix {
	t.Helper()
	m, err := tsp.NewMatrix(rows)
	require.NoError(t, err)
	return m
}

// lineMatrix places nodes at the given 1-D positions and sets
// cost[i][j] = |pos[i]-pos[j]|.
func lineMatrix(t *testing.T, pos []int) *tsp.Matrix {
	t.Helper()
	n := len(pos)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			d := pos[i] - pos[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	return mustMatrix(t, rows)
}

// requirePermutation asserts that path visits every node in 0..n-1 exactly
// once and begins at start.
func requirePermutation(t *testing.T, path []int, n, start int) {
	t.Helper()
	require.Len(t, path, n)
	require.Equal(t, start, path[0])
	seen := make([]bool, n)
	for _, v := range path {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "node %d visited twice", v)
		seen[v] = true
	}
}

// requireSameCycle asserts that got traces the same closed cycle as want,
// in either direction. Both share the fixed start at position 0, so only
// the orientation of the interior may differ.
func requireSameCycle(t *testing.T, want, got []int) {
	t.Helper()
	require.Len(t, got, len(want))
	reversed := make([]int, len(want))
	reversed[0] = want[0]
	for i := 1; i < len(want); i++ {
		reversed[i] = want[len(want)-i]
	}
	if !equalInts(want, got) && !equalInts(reversed, got) {
		t.Fatalf("path %v is neither %v nor its reversal %v", got, want, reversed)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// bruteForceCost exhaustively minimizes over all Hamiltonian cycles from
// start. Only usable for tiny n.
func bruteForceCost(m *tsp.Matrix, start int) int {
	n := m.Size()
	rest := make([]int, 0, n-1)
	for i := 0; i < n; i++ {
		if i != start {
			rest = append(rest, i)
		}
	}
	best := -1
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			cost := m.At(start, firstOr(rest, start))
			for i := 0; i+1 < len(rest); i++ {
				cost += m.At(rest[i], rest[i+1])
			}
			if len(rest) > 0 {
				cost += m.At(rest[len(rest)-1], start)
			}
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)
	return best
}

func firstOr(s []int, fallback int) int {
	if len(s) == 0 {
		return fallback
	}
	return s[0]
}
