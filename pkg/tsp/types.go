package tsp

import "errors"

// Sentinel errors returned by matrix construction and the solvers.
var (
	// ErrNilMatrix is returned when a solver receives a nil matrix.
	ErrNilMatrix = errors.New("tsp: nil matrix")

	// ErrNonSquare is returned when the input rows do not form an n×n table.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrNegativeCost is returned when any entry is negative.
	ErrNegativeCost = errors.New("tsp: negative edge cost")

	// ErrCostTooLarge is returned when an entry exceeds MaxEdgeCost.
	ErrCostTooLarge = errors.New("tsp: edge cost exceeds MaxEdgeCost")

	// ErrNonZeroDiagonal is returned when cost[i][i] != 0 for some i.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero diagonal entry")

	// ErrStartOutOfRange is returned when the start node is not in [0, n).
	ErrStartOutOfRange = errors.New("tsp: start node out of range")

	// ErrTooManyNodes is a configuration error: the instance does not fit
	// the subset bitmask width or exceeds the configured node ceiling.
	// It is reported before any table allocation.
	ErrTooManyNodes = errors.New("tsp: too many nodes for held-karp")

	// ErrTableTooLarge is a resource-exhaustion error: the dp/prev tables
	// would exceed the configured memory budget. The call aborts without
	// allocating them.
	ErrTableTooLarge = errors.New("tsp: held-karp tables exceed memory budget")
)

// Tour is a solved Hamiltonian cycle. Path holds each node identifier
// exactly once with Path[0] equal to the requested start node; the cycle is
// implicitly closed by an edge from the last element back to Path[0].
// Cost is the sum of all n edges of that closed cycle.
//
// A Tour is owned by the caller and never aliased by the solver.
type Tour struct {
	Path []int
	Cost int
}
