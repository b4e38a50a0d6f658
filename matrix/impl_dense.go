// SPDX-License-Identifier: MIT

// Package matrix - Dense square storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a flat row-major buffer of n*n float64 values with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep exclusive ownership: constructors copy caller data, accessors hand out copies.
//
// Complexity quicksheet:
//   - New: O(n²) copy; At/Set: O(1); Row: O(n); Values/Clone: O(n²); NumberOfBlocks: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TileSize is the fixed tile edge used by the blocked, reordered and parallel
// strategies. Their operands must have n % TileSize == 0.
const TileSize = 64

// MaxDimension is the largest accepted n. n*n float64 values must stay
// addressable, so on 32-bit platforms the effective limit is lower (see
// checkDimension).
const MaxDimension = 1 << 22

// maxElements bounds n*n so that the byte size n*n*8 fits in an int.
const maxElements = math.MaxInt / 8

// ---------- error context tags ----------

const (
	ctxNew    = "New"            // ctor tag used in error wrappers
	ctxAt     = "At"             // method tag used in error wrappers
	ctxSet    = "Set"            // method tag used in error wrappers
	ctxRow    = "Row"            // method tag used in error wrappers
	ctxBlocks = "NumberOfBlocks" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// checkDimension reports ErrInvalidDimensions unless 1 <= n <= MaxDimension
// and n*n elements fit in memory addressable by an int. The division form never
// overflows, so n*n is safe to compute afterwards.
func checkDimension(n int) error {
	if n <= 0 || n > MaxDimension || n > maxElements/n {
		return ErrInvalidDimensions
	}

	return nil
}

// Dense is a square, dense, row-major matrix of float64 values.
//   - n is the dimension (rows == cols == n, n > 0).
//   - data is a flat buffer of length n*n; element (i,j) lives at offset i*n + j.
//
// The dimension is fixed after construction; element values are mutable via Set.
// A Dense exclusively owns its buffer: no two Dense values share storage.
type Dense struct {
	n    int       // dimension (> 0)
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// New builds an n×n Dense from a flat row-major value sequence.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation and ownership transfer by copy.
//
// Implementation:
//   - Stage 1: validate 1 <= n <= MaxDimension; else ErrInvalidDimensions.
//   - Stage 2: validate len(values)==n*n; else ErrDimensionMismatch.
//   - Stage 3: copy values into a freshly allocated buffer.
//
// Behavior highlights:
//   - Later mutations of values by the caller never leak into the Dense.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch (wrapped with "New(n=...)").
//
// Complexity:
//   - Time O(n²), Space O(n²).
func New(n int, values []float64) (*Dense, error) {
	if err := checkDimension(n); err != nil {
		return nil, fmt.Errorf("%s(n=%d): %w", ctxNew, n, err)
	}
	if len(values) != n*n {
		return nil, fmt.Errorf("%s(n=%d): got %d values, want %d: %w",
			ctxNew, n, len(values), n*n, ErrDimensionMismatch)
	}
	buf := make([]float64, n*n)
	copy(buf, values) // take ownership by copy

	return &Dense{n: n, data: buf}, nil
}

// newDense allocates a zero-filled n×n Dense; n is validated by the caller.
func newDense(n int) *Dense {
	return &Dense{n: n, data: make([]float64, n*n)}
}

// N returns the dimension n. Complexity: O(1).
func (m *Dense) N() int { return m.n }

// Len returns the element count n*n. Complexity: O(1).
func (m *Dense) Len() int { return len(m.data) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap it with method and coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.n {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*n + j.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on invalid indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including NaN and ±Inf: the kernels follow IEEE-754
// and must not filter operands. Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i. Complexity: O(n).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.n {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Values returns a copy of the row-major buffer (len == n*n).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// NumberOfBlocks returns n / TileSize, the tile count along each axis.
// MAIN DESCRIPTION:
//   - Gatekeeper for every tiled strategy: alignment is validated here only.
//
// Errors:
//   - ErrUnalignedSize when n % TileSize != 0.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) NumberOfBlocks() (int, error) {
	if m.n%TileSize != 0 {
		return 0, fmt.Errorf("Dense.%s(n=%d, tile=%d): %w", ctxBlocks, m.n, TileSize, ErrUnalignedSize)
	}

	return m.n / TileSize, nil
}

// Clone returns a deep copy; mutations on the clone never affect m.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{n: m.n, data: cp}
}

// Equal reports whether m and o have the same dimension and every element
// compares equal under ==, with no tolerance. NaN never equals NaN.
// Two nil matrices are equal; nil never equals non-nil.
// Complexity: O(n²) worst case, early exit on first difference.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b]\n" lines with %g values, for diagnostics.
// Not for hot paths; see Table for the fixed-width layout.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.n; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.n
		for j = 0; j < m.n; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.n {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
