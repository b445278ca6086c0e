// Package tsp solves the Traveling Salesperson Problem on small,
// fully-connected, non-negative integer cost matrices.
//
// Two solvers are provided:
//
//   - SolveNearestNeighbor — greedy heuristic, O(n²) time. Always succeeds
//     on valid input but offers no optimality guarantee (typically within
//     ~25% of the optimum, unbounded in the worst case).
//   - SolveHeldKarp — exact dynamic programming over subset bitmasks,
//     O(n²·2ⁿ) time and O(n·2ⁿ) space. The exponential tables make it
//     practical only for small n; the solver rejects instances that exceed
//     the subset-mask width or the configured memory budget before it
//     allocates anything.
//
// Both solvers are pure functions: they never mutate or retain the input
// matrix, keep no state between calls, and are safe to run concurrently
// with independent matrices.
package tsp
