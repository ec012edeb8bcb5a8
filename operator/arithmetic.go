// SPDX-License-Identifier: MIT
package operator

import (
	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/matrix"
)

// sameBases checks that a and b act between structurally equal bases.
func sameBases(a, b *Operator) error {
	if a == nil || b == nil {
		return ErrNilOperand
	}
	if !a.left.Equal(b.left) || !a.right.Equal(b.right) {
		return ErrBasisMismatch
	}

	return nil
}

// Add returns a + b. Both operands must share left and right bases.
func Add(a, b *Operator) (*Operator, error) {
	if err := sameBases(a, b); err != nil {
		return nil, operatorErrorf(opAdd, err)
	}
	d, err := matrix.Add(a.data, b.data)
	if err != nil {
		return nil, operatorErrorf(opAdd, err)
	}

	return wrap(a.left, a.right, d), nil
}

// Sub returns a - b. Both operands must share left and right bases.
func Sub(a, b *Operator) (*Operator, error) {
	if err := sameBases(a, b); err != nil {
		return nil, operatorErrorf(opSub, err)
	}
	d, err := matrix.Sub(a.data, b.data)
	if err != nil {
		return nil, operatorErrorf(opSub, err)
	}

	return wrap(a.left, a.right, d), nil
}

// Scale returns alpha·a.
func Scale(a *Operator, alpha complex128) (*Operator, error) {
	if a == nil {
		return nil, operatorErrorf(opScale, ErrNilOperand)
	}
	d, err := matrix.Scale(a.data, alpha)
	if err != nil {
		return nil, operatorErrorf(opScale, err)
	}

	return wrap(a.left, a.right, d), nil
}

// Mul returns the composition a·b; a.Right() must equal b.Left().
func Mul(a, b *Operator) (*Operator, error) {
	if a == nil || b == nil {
		return nil, operatorErrorf(opMul, ErrNilOperand)
	}
	if !a.right.Equal(b.left) {
		return nil, operatorErrorf(opMul, ErrBasisMismatch)
	}
	d, err := matrix.Mul(a.data, b.data)
	if err != nil {
		return nil, operatorErrorf(opMul, err)
	}

	return wrap(a.left, b.right, d), nil
}

// Adjoint returns a†, swapping the left and right bases.
func Adjoint(a *Operator) (*Operator, error) {
	if a == nil {
		return nil, operatorErrorf(opAdjoint, ErrNilOperand)
	}
	d, err := matrix.Adjoint(a.data)
	if err != nil {
		return nil, operatorErrorf(opAdjoint, err)
	}

	return wrap(a.right, a.left, d), nil
}

// Trace returns Tr(a); a must map a basis onto itself.
func Trace(a *Operator) (complex128, error) {
	if a == nil {
		return 0, operatorErrorf(opTrace, ErrNilOperand)
	}
	if !a.left.Equal(a.right) {
		return 0, operatorErrorf(opTrace, ErrBasisMismatch)
	}
	tr, err := matrix.Trace(a.data)
	if err != nil {
		return 0, operatorErrorf(opTrace, err)
	}

	return tr, nil
}

// Expect returns Tr(op·rho), the expectation value of op in the state rho.
func Expect(op, rho *Operator) (complex128, error) {
	prod, err := Mul(op, rho)
	if err != nil {
		return 0, operatorErrorf(opExpect, err)
	}

	return Trace(prod)
}

// AllClose reports whether a and b share bases and agree elementwise within
// the matrix tolerance (matrix.DefaultEpsilon unless overridden).
func AllClose(a, b *Operator, opts ...matrix.Option) bool {
	if sameBases(a, b) != nil {
		return false
	}

	return matrix.AllClose(a.data, b.data, opts...)
}

// SumAbsDiff returns Σ|a_ij - b_ij| for operators sharing bases.
func SumAbsDiff(a, b *Operator) (float64, error) {
	if err := sameBases(a, b); err != nil {
		return 0, err
	}

	return matrix.SumAbsDiff(a.data, b.data)
}

// Subsystems returns the number of factors of both bases, or ErrBasisMismatch
// when left and right disagree on it.
func Subsystems(a *Operator) (int, error) {
	if a == nil {
		return 0, ErrNilOperand
	}
	nl, nr := len(basis.Factors(a.left)), len(basis.Factors(a.right))
	if nl != nr {
		return 0, ErrBasisMismatch
	}

	return nl, nil
}
