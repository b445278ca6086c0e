package tsp

import (
	"math"
	"math/rand"
)

// MaxEdgeCost bounds individual entries so that any tour cost (at most
// 31 edges with the 32-bit subset mask) stays below the int32 sentinel
// used by the Held-Karp tables.
const MaxEdgeCost = math.MaxInt32 / 64

// Matrix is an immutable n×n table of non-negative travel costs indexed by
// node identifiers 0..n-1. Entries are stored row-major in a single slice.
// The diagonal is always zero; the matrix need not be symmetric.
type Matrix struct {
	n     int
	cells []int
}

// NewMatrix validates rows and copies them into a Matrix.
// Requirements: square shape, non-negative entries no larger than
// MaxEdgeCost, and a zero diagonal.
func NewMatrix(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrNonSquare
	}
	m := &Matrix{n: n, cells: make([]int, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		for j, c := range row {
			switch {
			case c < 0:
				return nil, ErrNegativeCost
			case c > MaxEdgeCost:
				return nil, ErrCostTooLarge
			case i == j && c != 0:
				return nil, ErrNonZeroDiagonal
			}
			m.cells[i*n+j] = c
		}
	}
	return m, nil
}

// RandomMatrix builds a symmetric instance with off-diagonal costs drawn
// uniformly from [1, maxCost]. The same seed always produces the same
// matrix, which keeps generated examples reproducible.
func RandomMatrix(n, maxCost int, seed int64) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrNonSquare
	}
	if maxCost <= 0 || maxCost > MaxEdgeCost {
		return nil, ErrCostTooLarge
	}
	rng := rand.New(rand.NewSource(seed))
	m := &Matrix{n: n, cells: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := 1 + rng.Intn(maxCost)
			m.cells[i*n+j] = c
			m.cells[j*n+i] = c
		}
	}
	return m, nil
}

// Size returns the number of nodes n.
func (m *Matrix) Size() int { return m.n }

// At returns the cost of travelling from node i to node j.
// Indices are the caller's responsibility; out-of-range access panics as
// with any slice.
func (m *Matrix) At(i, j int) int { return m.cells[i*m.n+j] }

// Rows returns a defensive copy of the matrix as nested slices, suitable
// for serialization or display.
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]int, m.n)
		copy(rows[i], m.cells[i*m.n:(i+1)*m.n])
	}
	return rows
}

// Bytes returns a canonical byte encoding of the matrix, used for cache
// keys. Two matrices encode equal iff they have the same size and cells.
func (m *Matrix) Bytes() []byte {
	buf := make([]byte, 0, (m.n*m.n+1)*8)
	buf = appendInt(buf, m.n)
	for _, c := range m.cells {
		buf = appendInt(buf, c)
	}
	return buf
}

func appendInt(buf []byte, v int) []byte {
	u := uint64(v)
	return append(buf,
		byte(u>>56), byte(u>>48), byte(u>>40), byte(u>>32),
		byte(u>>24), byte(u>>16), byte(u>>8), byte(u))
}

// CostOf recomputes the total cost of the closed cycle implied by path,
// including the closing edge back to path[0]. It does not check that path
// is a permutation; use it on solver output or validated input.
func CostOf(m *Matrix, path []int) int {
	total := 0
	for i := 0; i < len(path); i++ {
		from := path[i]
		to := path[(i+1)%len(path)]
		total += m.At(from, to)
	}
	return total
}

// validateSolveInput covers the checks shared by both solvers.
func validateSolveInput(m *Matrix, start int) error {
	if m == nil {
		return ErrNilMatrix
	}
	if start < 0 || start >= m.n {
		return ErrStartOutOfRange
	}
	return nil
}
