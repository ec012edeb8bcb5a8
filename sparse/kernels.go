// SPDX-License-Identifier: MIT

// Package sparse - scaled sparse×dense kernels with accumulation.
//
// Purpose:
//   - Provide the BLAS-style products the operator layer needs when one
//     operand is sparse:  C := α·M·B + β·C,  C := α·B·M + β·C,
//     r := α·M·v + β·r,   r := α·vᵀ·M + β·r.
//
// Contract:
//   - Shapes are validated BEFORE any write to the result buffer.
//   - β is applied to every result entry unconditionally, following IEEE
//     semantics (0·NaN = NaN, 0·Inf = NaN); there is no β == 0 shortcut.
//   - Only non-zero entries of M are scanned; unsorted rows within a column
//     are fine.
//   - Kernels are stateless and reentrant; the result is the only mutated
//     argument. Result buffers must not alias B or v.
//
// Complexity quicksheet (M is m×n with nnz entries):
//   - Gemm: O(m*k + nnz*k); GemmDS: O(j*n + nnz*j); Gemv: O(m + nnz); Gevm: O(n + nnz).
package sparse

import (
	"github.com/katalvlaran/qcluster/matrix"
)

// scaleInPlace multiplies every entry of x by beta.
func scaleInPlace(beta complex128, x []complex128) {
	for i := range x {
		x[i] *= beta
	}
}

// Gemm computes C := alpha·M·B + beta·C in place.
// M is m×n (sparse), B is n×k and C is m×k (dense, row-major).
//
// Implementation:
//   - Stage 1: validate non-nil operands and conforming shapes.
//   - Stage 2: scale C by beta.
//   - Stage 3: for each stored M_ij, add alpha·M_ij·B[j,:] to C[i,:]
//     (contiguous row slices in row-major layout).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (C untouched on error).
func Gemm(alpha complex128, m *CSC, b *matrix.Dense, beta complex128, c *matrix.Dense) error {
	if m == nil {
		return sparseErrorf(opGemm, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return sparseErrorf(opGemm, err)
	}
	if err := matrix.ValidateNotNil(c); err != nil {
		return sparseErrorf(opGemm, err)
	}
	if b.Rows() != m.cols || c.Rows() != m.rows || c.Cols() != b.Cols() {
		return sparseErrorf(opGemm, matrix.ErrDimensionMismatch)
	}

	k := b.Cols()
	bd, cd := b.RawData(), c.RawData()
	scaleInPlace(beta, cd)

	var j, p, q int
	var av complex128
	for j = 0; j < m.cols; j++ {
		brow := bd[j*k : (j+1)*k]
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			av = alpha * m.values[p]
			crow := cd[m.rowIdx[p]*k : (m.rowIdx[p]+1)*k]
			for q = range brow {
				crow[q] += av * brow[q]
			}
		}
	}

	return nil
}

// GemmDS computes C := alpha·B·M + beta·C in place (dense left, sparse right).
// B is j×m, M is m×n and C is j×n.
//
// Implementation:
//   - Stage 1: validate non-nil operands and conforming shapes.
//   - Stage 2: scale C by beta.
//   - Stage 3: for each stored M_rc, add alpha·M_rc·B[:,r] to C[:,c].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (C untouched on error).
func GemmDS(alpha complex128, b *matrix.Dense, m *CSC, beta complex128, c *matrix.Dense) error {
	if m == nil {
		return sparseErrorf(opGemmDS, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return sparseErrorf(opGemmDS, err)
	}
	if err := matrix.ValidateNotNil(c); err != nil {
		return sparseErrorf(opGemmDS, err)
	}
	if b.Cols() != m.rows || c.Rows() != b.Rows() || c.Cols() != m.cols {
		return sparseErrorf(opGemmDS, matrix.ErrDimensionMismatch)
	}

	jRows, bStride, cStride := b.Rows(), b.Cols(), c.Cols()
	bd, cd := b.RawData(), c.RawData()
	scaleInPlace(beta, cd)

	var col, p, q, r int
	var av complex128
	for col = 0; col < m.cols; col++ {
		for p = m.colPtr[col]; p < m.colPtr[col+1]; p++ {
			r = m.rowIdx[p]
			av = alpha * m.values[p]
			for q = 0; q < jRows; q++ {
				cd[q*cStride+col] += bd[q*bStride+r] * av
			}
		}
	}

	return nil
}

// Gemv computes r := alpha·M·v + beta·r in place.
// M is m×n, v has length n and r has length m.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (r untouched on error).
func Gemv(alpha complex128, m *CSC, v []complex128, beta complex128, r []complex128) error {
	if m == nil {
		return sparseErrorf(opGemv, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(v, m.cols); err != nil {
		return sparseErrorf(opGemv, err)
	}
	if err := matrix.ValidateVecLen(r, m.rows); err != nil {
		return sparseErrorf(opGemv, err)
	}

	scaleInPlace(beta, r)
	var j, p int
	var av complex128
	for j = 0; j < m.cols; j++ {
		av = alpha * v[j]
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			r[m.rowIdx[p]] += m.values[p] * av
		}
	}

	return nil
}

// Gevm computes r := alpha·vᵀ·M + beta·r in place, treating v as a row vector.
// M is m×n, v has length m and r has length n. Column j of the result is the
// dot product of v with column j of M, so each column is reduced independently.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (r untouched on error).
func Gevm(alpha complex128, v []complex128, m *CSC, beta complex128, r []complex128) error {
	if m == nil {
		return sparseErrorf(opGevm, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateVecLen(v, m.rows); err != nil {
		return sparseErrorf(opGevm, err)
	}
	if err := matrix.ValidateVecLen(r, m.cols); err != nil {
		return sparseErrorf(opGevm, err)
	}

	var j, p int
	var acc complex128
	for j = 0; j < m.cols; j++ {
		acc = 0
		for p = m.colPtr[j]; p < m.colPtr[j+1]; p++ {
			acc += v[m.rowIdx[p]] * m.values[p]
		}
		r[j] = beta*r[j] + alpha*acc
	}

	return nil
}
