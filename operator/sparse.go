// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/matrix"
	"github.com/katalvlaran/qcluster/sparse"
)

// SparseOperator is an operator stored in compressed-column form. Products
// against dense operators and vectors run through the sparse kernels, so the
// cost scales with the number of stored entries.
type SparseOperator struct {
	left, right basis.Basis
	data        *sparse.CSC
}

// NewSparse pairs a CSC matrix with its bases.
//
// Errors:
//   - ErrNilOperand, matrix.ErrDimensionMismatch.
func NewSparse(left, right basis.Basis, data *sparse.CSC) (*SparseOperator, error) {
	if left == nil || right == nil || data == nil {
		return nil, operatorErrorf(opSparse, ErrNilOperand)
	}
	if r, c := data.Dims(); r != left.Dim() || c != right.Dim() {
		return nil, operatorErrorf(opSparse, matrix.ErrDimensionMismatch)
	}

	return &SparseOperator{left: left, right: right, data: data}, nil
}

// SparseFromOperator converts a dense operator, dropping exact zeros.
func SparseFromOperator(o *Operator) (*SparseOperator, error) {
	if o == nil {
		return nil, operatorErrorf(opSparse, ErrNilOperand)
	}
	s, err := sparse.FromDense(o.data)
	if err != nil {
		return nil, operatorErrorf(opSparse, err)
	}

	return &SparseOperator{left: o.left, right: o.right, data: s}, nil
}

// Left returns the row basis.
func (s *SparseOperator) Left() basis.Basis { return s.left }

// Right returns the column basis.
func (s *SparseOperator) Right() basis.Basis { return s.right }

// NNZ returns the number of stored entries.
func (s *SparseOperator) NNZ() int { return s.data.NNZ() }

// Dense expands s into a dense operator.
func (s *SparseOperator) Dense() *Operator {
	return wrap(s.left, s.right, s.data.ToDense())
}

// Mul returns s·b (sparse left, dense right).
func (s *SparseOperator) Mul(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, operatorErrorf(opMul, ErrNilOperand)
	}
	if !s.right.Equal(b.left) {
		return nil, operatorErrorf(opMul, ErrBasisMismatch)
	}
	out, err := matrix.NewDense(s.left.Dim(), b.right.Dim())
	if err != nil {
		return nil, operatorErrorf(opMul, err)
	}
	if err = sparse.Gemm(1, s.data, b.data, 0, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return wrap(s.left, b.right, out), nil
}

// MulLeft returns b·s (dense left, sparse right).
func (s *SparseOperator) MulLeft(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, operatorErrorf(opMul, ErrNilOperand)
	}
	if !b.right.Equal(s.left) {
		return nil, operatorErrorf(opMul, ErrBasisMismatch)
	}
	out, err := matrix.NewDense(b.left.Dim(), s.right.Dim())
	if err != nil {
		return nil, operatorErrorf(opMul, err)
	}
	if err = sparse.GemmDS(1, b.data, s.data, 0, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return wrap(b.left, s.right, out), nil
}

// Commutator returns [s, b] = s·b − b·s, computed with both sparse kernels
// accumulating into one buffer.
func (s *SparseOperator) Commutator(b *Operator) (*Operator, error) {
	if b == nil {
		return nil, operatorErrorf(opMul, ErrNilOperand)
	}
	if !s.left.Equal(s.right) || !b.left.Equal(s.left) || !b.right.Equal(s.left) {
		return nil, operatorErrorf(opMul, ErrBasisMismatch)
	}
	n := s.left.Dim()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, operatorErrorf(opMul, err)
	}
	if err = sparse.Gemm(1, s.data, b.data, 0, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}
	if err = sparse.GemmDS(-1, b.data, s.data, 1, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return wrap(s.left, s.right, out), nil
}

// Apply returns s|ψ⟩ for a ket given in the right basis.
func (s *SparseOperator) Apply(ket []complex128) ([]complex128, error) {
	out := make([]complex128, s.left.Dim())
	if err := sparse.Gemv(1, s.data, ket, 0, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return out, nil
}

// ApplyRow returns ⟨φ|s as a row vector for φ's coefficients in the left basis
// (no conjugation is applied to bra).
func (s *SparseOperator) ApplyRow(bra []complex128) ([]complex128, error) {
	out := make([]complex128, s.right.Dim())
	if err := sparse.Gevm(1, bra, s.data, 0, out); err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return out, nil
}
