package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zwilder/tsp/pkg/tsp"
)

func TestSolveHeldKarp_SingleNode(t *testing.T) {
	m := mustMatrix(t, [][]int{{0}})
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, tour.Path)
	require.Equal(t, 0, tour.Cost)
}

func TestSolveHeldKarp_TwoNodes(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 5},
		{5, 0},
	})
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, tour.Path)
	require.Equal(t, 10, tour.Cost)
}

func TestSolveHeldKarp_FourNodes(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	requireSameCycle(t, []int{0, 1, 3, 2}, tour.Path)
	require.Equal(t, 80, tour.Cost)
}

func TestSolveHeldKarp_LineInstance(t *testing.T) {
	// Nodes on a line: the optimal cycle walks out and comes straight back,
	// costing twice the span.
	m := lineMatrix(t, []int{0, 1, 2, 3, 10})
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	requireSameCycle(t, []int{0, 1, 2, 3, 4}, tour.Path)
	require.Equal(t, 20, tour.Cost)
}

func TestSolveHeldKarp_CostMatchesPath(t *testing.T) {
	m, err := tsp.RandomMatrix(9, 100, 42)
	require.NoError(t, err)
	for start := 0; start < m.Size(); start++ {
		tour, err := tsp.SolveHeldKarp(m, start)
		require.NoError(t, err)
		requirePermutation(t, tour.Path, m.Size(), start)
		require.Equal(t, tsp.CostOf(m, tour.Path), tour.Cost)
	}
}

func TestSolveHeldKarp_MatchesBruteForce(t *testing.T) {
	for _, seed := range []int64{1, 7, 99} {
		for n := 2; n <= 8; n++ {
			m, err := tsp.RandomMatrix(n, 50, seed)
			require.NoError(t, err)
			tour, err := tsp.SolveHeldKarp(m, 0)
			require.NoError(t, err)
			require.Equal(t, bruteForceCost(m, 0), tour.Cost,
				"n=%d seed=%d", n, seed)
		}
	}
}

func TestSolveHeldKarp_CostInvariantToStart(t *testing.T) {
	// The optimal cycle cost does not depend on where the cycle is cut
	// open, even for asymmetric matrices.
	m := mustMatrix(t, [][]int{
		{0, 2, 9, 10},
		{1, 0, 6, 4},
		{15, 7, 0, 8},
		{6, 3, 12, 0},
	})
	ref, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	for start := 1; start < m.Size(); start++ {
		tour, err := tsp.SolveHeldKarp(m, start)
		require.NoError(t, err)
		require.Equal(t, ref.Cost, tour.Cost, "start=%d", start)
	}
}

func TestSolveHeldKarp_NeverWorseThanNearestNeighbor(t *testing.T) {
	for _, seed := range []int64{3, 11, 2024} {
		m, err := tsp.RandomMatrix(10, 200, seed)
		require.NoError(t, err)
		for start := 0; start < m.Size(); start++ {
			exact, err := tsp.SolveHeldKarp(m, start)
			require.NoError(t, err)
			greedy, err := tsp.SolveNearestNeighbor(m, start)
			require.NoError(t, err)
			require.LessOrEqual(t, exact.Cost, greedy.Cost)
		}
	}
}

func TestSolveHeldKarp_StartOutOfRange(t *testing.T) {
	m := mustMatrix(t, [][]int{{0, 1}, {1, 0}})
	_, err := tsp.SolveHeldKarp(m, 2)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
	_, err = tsp.SolveHeldKarp(m, -1)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}

func TestSolveHeldKarp_NilMatrix(t *testing.T) {
	_, err := tsp.SolveHeldKarp(nil, 0)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)
}

func TestSolveHeldKarp_MaskWidthCeiling(t *testing.T) {
	// n=31 cannot fit the 32-bit subset mask: the call must fail before
	// attempting the exponential allocation, so raising the node ceiling
	// makes no difference.
	m, err := tsp.RandomMatrix(31, 10, 1)
	require.NoError(t, err)
	_, err = tsp.SolveHeldKarp(m, 0, tsp.WithMaxNodes(64))
	require.ErrorIs(t, err, tsp.ErrTooManyNodes)
}

func TestSolveHeldKarp_NodeCeiling(t *testing.T) {
	m, err := tsp.RandomMatrix(12, 10, 1)
	require.NoError(t, err)
	_, err = tsp.SolveHeldKarp(m, 0, tsp.WithMaxNodes(10))
	require.ErrorIs(t, err, tsp.ErrTooManyNodes)
}

func TestSolveHeldKarp_MemoryBudget(t *testing.T) {
	m, err := tsp.RandomMatrix(16, 10, 1)
	require.NoError(t, err)

	// A 1 KiB budget cannot hold 2^16 x 16 table entries.
	_, err = tsp.SolveHeldKarp(m, 0, tsp.WithMemoryLimit(1<<10))
	require.ErrorIs(t, err, tsp.ErrTableTooLarge)

	// The same instance solves fine once the budget allows the tables.
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)
	requirePermutation(t, tour.Path, 16, 0)
}
