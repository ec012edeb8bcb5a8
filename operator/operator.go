// SPDX-License-Identifier: MIT

// Package operator - dense linear maps between bases.
//
// Purpose:
//   - Pair a complex matrix with the left (row) and right (column) bases it maps between.
//   - Keep every operation value-semantic: results are fresh operators, inputs are
//     never mutated and never aliased by a result.
//
// Index convention:
//   - For a composite basis with factor dimensions d0, d1, ..., d(n-1), the flat index of
//     the multi-index (k0, ..., k(n-1)) is ((k0*d1 + k1)*d2 + k2)...; subsystem 0 is the
//     most significant digit, matching matrix.Kron.
package operator

import (
	"math/cmplx"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/matrix"
)

// Operator is a dense linear map from the right basis to the left basis.
type Operator struct {
	left, right basis.Basis
	data        *matrix.Dense
}

// New wraps a copy of data as an operator between left and right.
//
// Errors:
//   - ErrNilOperand when a basis or data is nil.
//   - matrix.ErrDimensionMismatch when data is not left.Dim()×right.Dim().
func New(left, right basis.Basis, data *matrix.Dense) (*Operator, error) {
	if left == nil || right == nil || data == nil {
		return nil, operatorErrorf(opNew, ErrNilOperand)
	}
	if data.Rows() != left.Dim() || data.Cols() != right.Dim() {
		return nil, operatorErrorf(opNew, matrix.ErrDimensionMismatch)
	}

	return &Operator{left: left, right: right, data: data.Clone()}, nil
}

// wrap adopts data without copying; callers guarantee exclusive ownership.
func wrap(left, right basis.Basis, data *matrix.Dense) *Operator {
	return &Operator{left: left, right: right, data: data}
}

// Zero returns the zero operator between left and right.
func Zero(left, right basis.Basis) (*Operator, error) {
	if left == nil || right == nil {
		return nil, operatorErrorf(opZero, ErrNilOperand)
	}
	d, err := matrix.NewDense(left.Dim(), right.Dim())
	if err != nil {
		return nil, operatorErrorf(opZero, err)
	}

	return wrap(left, right, d), nil
}

// Identity returns the identity operator on b.
func Identity(b basis.Basis) (*Operator, error) {
	if b == nil {
		return nil, operatorErrorf(opIdentity, ErrNilOperand)
	}
	d, err := matrix.NewIdentity(b.Dim())
	if err != nil {
		return nil, operatorErrorf(opIdentity, err)
	}

	return wrap(b, b, d), nil
}

// Projector returns |ψ⟩⟨ψ| for a ket ψ given in basis b (no normalization).
func Projector(b basis.Basis, ket []complex128) (*Operator, error) {
	if b == nil {
		return nil, operatorErrorf(opProjector, ErrNilOperand)
	}
	n := b.Dim()
	if err := matrix.ValidateVecLen(ket, n); err != nil {
		return nil, operatorErrorf(opProjector, err)
	}
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, operatorErrorf(opProjector, err)
	}
	raw := d.RawData()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			raw[i*n+j] = ket[i] * cmplx.Conj(ket[j])
		}
	}

	return wrap(b, b, d), nil
}

// Left returns the row basis.
func (o *Operator) Left() basis.Basis { return o.left }

// Right returns the column basis.
func (o *Operator) Right() basis.Basis { return o.right }

// Data returns a copy of the underlying matrix.
func (o *Operator) Data() *matrix.Dense { return o.data.Clone() }

// At returns the matrix element ⟨i|O|j⟩.
func (o *Operator) At(i, j int) (complex128, error) { return o.data.At(i, j) }

// Clone returns a deep copy.
func (o *Operator) Clone() *Operator {
	return wrap(o.left, o.right, o.data.Clone())
}

// IsZero reports whether every matrix element is exactly zero.
func (o *Operator) IsZero() bool {
	for _, v := range o.data.RawData() {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders the bases and the matrix.
func (o *Operator) String() string {
	return "Operator(" + o.left.String() + " ← " + o.right.String() + ")\n" + o.data.String()
}
