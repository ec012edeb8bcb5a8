// SPDX-License-Identifier: MIT

// Package sparse - compressed-sparse-column (CSC) storage.
//
// Purpose:
//   - Hold a complex sparse matrix as (colPtr, rowIdx, values) arrays.
//   - Validate raw arrays once at construction so kernels can scan them unchecked.
//
// Layout:
//   - colPtr has cols+1 non-decreasing entries, colPtr[0] == 0, colPtr[cols] == nnz.
//   - the non-zeros of column j live at positions colPtr[j] .. colPtr[j+1]-1.
//   - row indices inside a column are NOT required to be sorted.
//
// Complexity quicksheet:
//   - NewCSC: O(cols + nnz); FromTriplets: O(nnz + cols); At: O(nnz in column).
package sparse

import (
	"fmt"

	"github.com/katalvlaran/qcluster/matrix"
)

// CSC is an immutable complex sparse matrix in compressed-column layout.
type CSC struct {
	rows, cols int
	colPtr     []int        // len cols+1
	rowIdx     []int        // len nnz
	values     []complex128 // len nnz
}

// NewCSC builds a CSC from raw arrays, copying them.
//
// Implementation:
//   - Stage 1: validate rows, cols > 0 and the array lengths.
//   - Stage 2: validate colPtr is non-decreasing and bounded by nnz.
//   - Stage 3: validate every row index lies in [0, rows).
//
// Errors:
//   - matrix.ErrInvalidDimensions, ErrMalformed, matrix.ErrOutOfRange.
//
// Complexity:
//   - Time O(cols + nnz), Space O(cols + nnz).
func NewCSC(rows, cols int, colPtr, rowIdx []int, values []complex128) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNew, matrix.ErrInvalidDimensions)
	}
	if len(colPtr) != cols+1 || len(rowIdx) != len(values) {
		return nil, sparseErrorf(opNew, ErrMalformed)
	}
	if colPtr[0] != 0 || colPtr[cols] != len(values) {
		return nil, sparseErrorf(opNew, ErrMalformed)
	}
	for j := 0; j < cols; j++ {
		if colPtr[j] > colPtr[j+1] {
			return nil, sparseErrorf(opNew, ErrMalformed)
		}
	}
	for _, r := range rowIdx {
		if r < 0 || r >= rows {
			return nil, sparseErrorf(opNew, matrix.ErrOutOfRange)
		}
	}

	return &CSC{
		rows:   rows,
		cols:   cols,
		colPtr: append([]int(nil), colPtr...),
		rowIdx: append([]int(nil), rowIdx...),
		values: append([]complex128(nil), values...),
	}, nil
}

// FromTriplets assembles a CSC from (row, col, value) triplets.
// Duplicate coordinates are summed; entries keep their input order within a column.
//
// Implementation:
//   - Stage 1: validate lengths and bounds.
//   - Stage 2: count entries per column, prefix-sum into colPtr.
//   - Stage 3: scatter, then merge duplicates per column.
//
// Complexity:
//   - Time O(nnz + cols) plus O(nnz_j²) per column for duplicate merging.
func FromTriplets(rows, cols int, ri, ci []int, v []complex128) (*CSC, error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opTriplets, matrix.ErrInvalidDimensions)
	}
	if len(ri) != len(v) || len(ci) != len(v) {
		return nil, sparseErrorf(opTriplets, ErrMalformed)
	}
	for k := range v {
		if ri[k] < 0 || ri[k] >= rows || ci[k] < 0 || ci[k] >= cols {
			return nil, sparseErrorf(opTriplets, fmt.Errorf("(%d,%d): %w", ri[k], ci[k], matrix.ErrOutOfRange))
		}
	}

	counts := make([]int, cols+1)
	for _, c := range ci {
		counts[c+1]++
	}
	for j := 0; j < cols; j++ {
		counts[j+1] += counts[j]
	}
	next := append([]int(nil), counts[:cols]...)
	rowIdx := make([]int, len(v))
	values := make([]complex128, len(v))
	for k, c := range ci {
		rowIdx[next[c]] = ri[k]
		values[next[c]] = v[k]
		next[c]++
	}

	// Merge duplicates column by column, compacting in place.
	colPtr := make([]int, cols+1)
	w := 0
	for j := 0; j < cols; j++ {
		start := w
		for p := counts[j]; p < counts[j+1]; p++ {
			merged := false
			for q := start; q < w; q++ {
				if rowIdx[q] == rowIdx[p] {
					values[q] += values[p]
					merged = true
					break
				}
			}
			if !merged {
				rowIdx[w] = rowIdx[p]
				values[w] = values[p]
				w++
			}
		}
		colPtr[j+1] = w
	}

	return &CSC{rows: rows, cols: cols, colPtr: colPtr, rowIdx: rowIdx[:w], values: values[:w]}, nil
}

// FromDense converts a dense matrix, dropping exact zeros.
// Row indices within each column come out sorted ascending.
// Complexity: O(r*c).
func FromDense(d *matrix.Dense) (*CSC, error) {
	if err := matrix.ValidateNotNil(d); err != nil {
		return nil, sparseErrorf(opFromDense, err)
	}
	rows, cols := d.Dims()
	raw := d.RawData()
	s := &CSC{rows: rows, cols: cols, colPtr: make([]int, cols+1)}
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			if v := raw[i*cols+j]; v != 0 {
				s.rowIdx = append(s.rowIdx, i)
				s.values = append(s.values, v)
			}
		}
		s.colPtr[j+1] = len(s.values)
	}

	return s, nil
}

// Dims returns (rows, cols).
func (s *CSC) Dims() (int, int) { return s.rows, s.cols }

// NNZ returns the number of stored entries.
func (s *CSC) NNZ() int { return len(s.values) }

// At returns the entry at (i, j); absent entries read as zero.
func (s *CSC) At(i, j int) (complex128, error) {
	if i < 0 || i >= s.rows || j < 0 || j >= s.cols {
		return 0, sparseErrorf(opAt, matrix.ErrOutOfRange)
	}
	var sum complex128
	for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
		if s.rowIdx[p] == i {
			sum += s.values[p]
		}
	}

	return sum, nil
}

// ToDense expands the matrix into a fresh row-major Dense.
// Complexity: O(r*c + nnz).
func (s *CSC) ToDense() *matrix.Dense {
	d, _ := matrix.NewDense(s.rows, s.cols) // shape validated at construction
	raw := d.RawData()
	for j := 0; j < s.cols; j++ {
		for p := s.colPtr[j]; p < s.colPtr[j+1]; p++ {
			raw[s.rowIdx[p]*s.cols+j] += s.values[p]
		}
	}

	return d
}
