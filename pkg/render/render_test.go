package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zwilder/tsp/pkg/render"
	"github.com/zwilder/tsp/pkg/tsp"
)

func TestNodeLabel(t *testing.T) {
	require.Equal(t, "A", render.NodeLabel(0))
	require.Equal(t, "D", render.NodeLabel(3))
	require.Equal(t, "Z", render.NodeLabel(25))
	require.Equal(t, "A2", render.NodeLabel(26))
	require.Equal(t, "B2", render.NodeLabel(27))
}

func TestPathString(t *testing.T) {
	require.Equal(t, "A->B->D->C->A", render.PathString([]int{0, 1, 3, 2}))
	require.Equal(t, "A->A", render.PathString([]int{0}))
	require.Equal(t, "", render.PathString(nil))
}

func TestToDOT(t *testing.T) {
	m, err := tsp.NewMatrix([][]int{
		{0, 10, 15},
		{10, 0, 35},
		{15, 35, 0},
	})
	require.NoError(t, err)
	tour, err := tsp.SolveHeldKarp(m, 0)
	require.NoError(t, err)

	dot := render.ToDOT(m, tour)
	require.Contains(t, dot, "digraph tour")
	require.Contains(t, dot, `0 [label="A"];`)
	require.Contains(t, dot, `2 [label="C"];`)
	// One edge per node, cycle closed.
	require.Equal(t, 3, strings.Count(dot, "->"))
}
