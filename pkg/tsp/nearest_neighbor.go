package tsp

// SolveNearestNeighbor produces a tour with the greedy nearest-neighbor
// heuristic: starting at start, repeatedly move to the cheapest unvisited
// node, then close the cycle back to start.
//
// Ties are broken by the first minimum encountered in a forward scan, so
// the lowest index wins. The heuristic always succeeds on valid input and
// runs in O(n²) time with O(n) extra space.
func SolveNearestNeighbor(m *Matrix, start int) (Tour, error) {
	if err := validateSolveInput(m, start); err != nil {
		return Tour{}, err
	}

	n := m.Size()
	visited := make([]bool, n)
	path := make([]int, n)
	path[0] = start
	visited[start] = true

	cur := start
	cost := 0
	for i := 1; i < n; i++ {
		next := nearestUnvisited(m, cur, visited)
		path[i] = next
		cost += m.At(cur, next)
		cur = next
		visited[cur] = true
	}
	cost += m.At(cur, start) // closing edge

	return Tour{Path: path, Cost: cost}, nil
}

// nearestUnvisited returns the unvisited node with the strictly smallest
// cost from cur. With n >= 2 and at least one unvisited node this always
// finds a candidate.
func nearestUnvisited(m *Matrix, cur int, visited []bool) int {
	best := -1
	bestCost := 0
	for i := 0; i < m.Size(); i++ {
		if i == cur || visited[i] {
			continue
		}
		if c := m.At(cur, i); best < 0 || c < bestCost {
			best = i
			bestCost = c
		}
	}
	return best
}
