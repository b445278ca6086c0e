package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zwilder/tsp/pkg/tsp"
)

func TestSolveNearestNeighbor_SingleNode(t *testing.T) {
	m := mustMatrix(t, [][]int{{0}})
	tour, err := tsp.SolveNearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, tour.Path)
	require.Equal(t, 0, tour.Cost)
}

func TestSolveNearestNeighbor_TwoNodes(t *testing.T) {
	m := mustMatrix(t, [][]int{
		{0, 5},
		{5, 0},
	})
	tour, err := tsp.SolveNearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, tour.Path)
	require.Equal(t, 10, tour.Cost)
}

func TestSolveNearestNeighbor_FourNodes(t *testing.T) {
	// The greedy choice happens to coincide with the optimum here.
	m := mustMatrix(t, [][]int{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
	tour, err := tsp.SolveNearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2}, tour.Path)
	require.Equal(t, 80, tour.Cost)
}

func TestSolveNearestNeighbor_LineInstance(t *testing.T) {
	m := lineMatrix(t, []int{0, 1, 2, 3, 10})
	tour, err := tsp.SolveNearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, tour.Path)
	require.Equal(t, 20, tour.Cost)
}

func TestSolveNearestNeighbor_TiesPickLowestIndex(t *testing.T) {
	// Nodes 1 and 2 are equally near from 0; the forward scan with a
	// strict comparison must keep node 1.
	m := mustMatrix(t, [][]int{
		{0, 7, 7, 9},
		{7, 0, 3, 9},
		{7, 3, 0, 2},
		{9, 9, 2, 0},
	})
	tour, err := tsp.SolveNearestNeighbor(m, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tour.Path)
	require.Equal(t, 7+3+2+9, tour.Cost)
}

func TestSolveNearestNeighbor_PermutationAndCost(t *testing.T) {
	m, err := tsp.RandomMatrix(12, 500, 7)
	require.NoError(t, err)
	for start := 0; start < m.Size(); start++ {
		tour, err := tsp.SolveNearestNeighbor(m, start)
		require.NoError(t, err)
		requirePermutation(t, tour.Path, m.Size(), start)
		require.Equal(t, tsp.CostOf(m, tour.Path), tour.Cost)
	}
}

func TestSolveNearestNeighbor_InputValidation(t *testing.T) {
	_, err := tsp.SolveNearestNeighbor(nil, 0)
	require.ErrorIs(t, err, tsp.ErrNilMatrix)

	m := mustMatrix(t, [][]int{{0, 1}, {1, 0}})
	_, err = tsp.SolveNearestNeighbor(m, 2)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)
}
