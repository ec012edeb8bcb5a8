// SPDX-License-Identifier: MIT
package operator

import (
	"errors"
	"fmt"
)

var (
	// ErrNilOperand is returned when an operator, basis or matrix argument is nil.
	ErrNilOperand = errors.New("operator: nil operand")

	// ErrBasisMismatch is returned when operands act on structurally different
	// bases (Add/Sub on different bases, Mul with right ≠ left, trace over
	// a subsystem whose left and right factors differ).
	ErrBasisMismatch = errors.New("operator: basis mismatch")

	// ErrInvalidSubsystem is returned for subsystem positions that are out of
	// range, duplicated, or that would trace out every subsystem.
	ErrInvalidSubsystem = errors.New("operator: invalid subsystem selection")

	// ErrInvalidPermutation is returned when a permutation is not a bijection
	// of the subsystem positions.
	ErrInvalidPermutation = errors.New("operator: invalid permutation")
)

// Operation tags.
const (
	opNew          = "New"
	opZero         = "Zero"
	opIdentity     = "Identity"
	opProjector    = "Projector"
	opAdd          = "Add"
	opSub          = "Sub"
	opScale        = "Scale"
	opMul          = "Mul"
	opAdjoint      = "Adjoint"
	opTrace        = "Trace"
	opExpect       = "Expect"
	opTensor       = "Tensor"
	opPartialTrace = "PartialTrace"
	opPermute      = "PermuteSystems"
	opEmbed        = "Embed"
	opSparse       = "SparseOperator"
)

func operatorErrorf(tag string, err error) error {
	return fmt.Errorf("operator.%s: %w", tag, err)
}
