// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on Dense complex matrices,
// including element-wise addition, subtraction, scalar scaling, matrix
// multiplication, adjoint, Kronecker product and trace. All functions perform
// strict fail-fast validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Canonical dense kernels used by the operator layer.
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel allocates a fresh result; operands are never mutated.
//   - Mul delegates to gonum's complex BLAS (Zgemm) over the flat buffers.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opScale    = "Scale"
	opAdjoint  = "Adjoint"
	opKron     = "Kron"
	opTrace    = "Trace"
	opAllClose = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over the backing slices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for idx := range a.data { // deterministic 0..n-1
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Add").
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Sub").
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m.
// Complexity: O(r*c).
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for idx, v := range m.data {
		res.data[idx] = alpha * v
	}

	return res, nil
}

// general views a Dense as a cblas128 row-major general matrix (no copy).
func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: m.c, Data: m.data}
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: allocate an a.Rows×b.Cols result and run Zgemm(1, a, b, 0, res).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.general(), b.general(), 0, res.general())

	return res, nil
}

// Adjoint returns the conjugate transpose m†.
// Complexity: O(r*c).
func Adjoint(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}
	res := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[base+j])
		}
	}

	return res, nil
}

// Kron returns the Kronecker product a ⊗ b.
// The row index of the result is ia*rb + ib and the column index ja*cb + jb,
// so the factor a owns the most significant digit of the composite index.
//
// Implementation:
//   - Stage 1: validate operands non-nil.
//   - Stage 2: for each non-zero a_ij, write the scaled block a_ij*b.
//
// Complexity:
//   - Time O(ra*ca*rb*cb), Space the same.
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opKron, err)
	}
	rows, cols := a.r*b.r, a.c*b.c
	res := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
	var ia, ja, ib, jb, rowOff int
	var av complex128
	for ia = 0; ia < a.r; ia++ {
		for ja = 0; ja < a.c; ja++ {
			av = a.data[ia*a.c+ja]
			if av == 0 {
				continue // block stays zero
			}
			for ib = 0; ib < b.r; ib++ {
				rowOff = (ia*b.r+ib)*cols + ja*b.c
				for jb = 0; jb < b.c; jb++ {
					res.data[rowOff+jb] = av * b.data[ib*b.c+jb]
				}
			}
		}
	}

	return res, nil
}

// Trace returns Σ m_ii for a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with "Trace").
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < m.r; i++ {
		sum += m.data[i*m.c+i]
	}

	return sum, nil
}

// MaxAbsDiff returns max_ij |a_ij - b_ij|.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}
	var worst float64
	for idx := range a.data {
		worst = math.Max(worst, cmplx.Abs(a.data[idx]-b.data[idx]))
	}

	return worst, nil
}

// SumAbsDiff returns Σ_ij |a_ij - b_ij|.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func SumAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opAllClose, err)
	}
	var sum float64
	for idx := range a.data {
		sum += cmplx.Abs(a.data[idx] - b.data[idx])
	}

	return sum, nil
}

// AllClose reports whether a and b have the same shape and every entry
// differs by at most eps in modulus (DefaultEpsilon unless WithEpsilon is given).
// Shape mismatches and nil operands yield false.
func AllClose(a, b *Dense, opts ...Option) bool {
	o := gatherOptions(opts...)
	worst, err := MaxAbsDiff(a, b)
	if err != nil {
		return false
	}

	return worst <= o.eps
}
