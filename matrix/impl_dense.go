// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major, complex128) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Expose the flat buffer to sibling kernels (sparse, operator) through RawData.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and preserves the
// sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int          // row and column counts (> 0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// Implementation:
//   - Stage 1: validate shape and len(data) == rows*cols.
//   - Stage 2: copy data into a fresh buffer; the caller keeps ownership of data.
//
// Errors:
//   - ErrInvalidDimensions, ErrDataLength.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []complex128) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n²) for zero-init, O(n) for the diagonal.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Dims returns (rows, cols).
func (m *Dense) Dims() (int, int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// RawData exposes the row-major backing slice (len == Rows*Cols).
// Mutations through the returned slice are visible in m; kernels in sibling
// packages use it to avoid per-element bounds checks.
func (m *Dense) RawData() []complex128 { return m.data }

// Zero resets every entry to 0 in place.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ { // iterate over rows
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(fmt.Sprintf("%g", m.data[i*m.c+j]))
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
