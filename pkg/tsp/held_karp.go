package tsp

import "math"

const (
	// maskBits is the width of the subset bitmask. Subsets are indexed by
	// a 32-bit pattern, so n must stay at or below maskBits-2 to keep
	// 1<<n (and the full-subset index) representable.
	maskBits = 32

	// infCost marks (subset, node) states not yet reached. The
	// reachability check in the transition guards every addition against
	// overflowing past this sentinel.
	infCost = math.MaxInt32

	// DefaultMaxNodes is the default ceiling on instance size. Runtime
	// cost at n=24 is already on the order of 10¹¹ transitions; anything
	// larger is a deliberate deployment decision via WithMaxNodes.
	DefaultMaxNodes = 24

	// DefaultMemoryLimit bounds the dp/prev table footprint (4 GiB).
	DefaultMemoryLimit = 4 << 30
)

// Option adjusts Held-Karp resource limits.
type Option func(*solveConfig)

type solveConfig struct {
	maxNodes    int
	memoryLimit int64
}

// WithMaxNodes overrides the node-count ceiling. The subset-mask width
// still imposes a hard upper bound of maskBits-2 nodes regardless of the
// value given here.
func WithMaxNodes(n int) Option {
	return func(c *solveConfig) { c.maxNodes = n }
}

// WithMemoryLimit overrides the byte budget for the dp/prev tables.
func WithMemoryLimit(bytes int64) Option {
	return func(c *solveConfig) { c.memoryLimit = bytes }
}

// SolveHeldKarp produces the minimum-cost Hamiltonian cycle starting and
// ending at start, using the Held-Karp dynamic program over subset
// bitmasks.
//
// dp[subset*n+last] is the minimum cost to reach last having visited
// exactly the nodes in subset (which always contains start and last);
// prev[subset*n+last] records the predecessor that achieved it, for path
// reconstruction. Subsets are processed in increasing numeric order, which
// finalizes every strict subset before its supersets.
//
// Time O(n²·2ⁿ), space O(n·2ⁿ). Instances that do not fit the subset mask
// or the configured node ceiling fail with ErrTooManyNodes, and table
// budgets past the memory limit fail with ErrTableTooLarge — both before
// any allocation.
func SolveHeldKarp(m *Matrix, start int, opts ...Option) (Tour, error) {
	if err := validateSolveInput(m, start); err != nil {
		return Tour{}, err
	}

	cfg := solveConfig{maxNodes: DefaultMaxNodes, memoryLimit: DefaultMemoryLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := m.Size()
	if n > maskBits-2 || n > cfg.maxNodes {
		return Tour{}, ErrTooManyNodes
	}
	// dp is int32, prev is int16: 6 bytes per (subset, node) state.
	if need := int64(1<<uint(n)) * int64(n) * 6; need > cfg.memoryLimit {
		return Tour{}, ErrTableTooLarge
	}

	if n == 1 {
		return Tour{Path: []int{start}, Cost: 0}, nil
	}

	full := (1 << uint(n)) - 1
	dp := make([]int32, (full+1)*n)
	prev := make([]int16, (full+1)*n)
	for i := range dp {
		dp[i] = infCost
		prev[i] = -1
	}
	dp[(1<<uint(start))*n+start] = 0

	for subset := 0; subset <= full; subset++ {
		if subset&(1<<uint(start)) == 0 {
			continue // every reachable state includes the start node
		}
		for last := 0; last < n; last++ {
			if subset&(1<<uint(last)) == 0 {
				continue
			}
			without := subset ^ (1 << uint(last))
			for i := 0; i < n; i++ {
				if i == last || subset&(1<<uint(i)) == 0 {
					continue
				}
				// Unreachable predecessor: adding an edge cost to the
				// sentinel would overflow, so skip before the add.
				if dp[without*n+i] == infCost {
					continue
				}
				cand := dp[without*n+i] + int32(m.At(i, last))
				if cand < dp[subset*n+last] {
					dp[subset*n+last] = cand
					prev[subset*n+last] = int16(i)
				}
			}
		}
	}

	// Close the tour: pick the final interior node minimizing the total
	// with the return edge. First minimum wins, consistent with strict <.
	best := int32(infCost)
	end := -1
	for last := 0; last < n; last++ {
		if last == start || dp[full*n+last] == infCost {
			continue
		}
		total := dp[full*n+last] + int32(m.At(last, start))
		if total < best {
			best = total
			end = last
		}
	}

	// Walk the backpointers from (full, end), filling the path from the
	// last interior position toward position 1.
	path := make([]int, n)
	subset := full
	for i := n - 1; i > 0; i-- {
		path[i] = end
		next := subset ^ (1 << uint(end))
		end = int(prev[subset*n+end])
		subset = next
	}
	path[0] = start

	return Tour{Path: path, Cost: int(best)}, nil
}
