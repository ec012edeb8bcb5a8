// SPDX-License-Identifier: MIT
package correlation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a system size lies outside the admissible
	// range: [1, MaxSubsystems] for masks, [0, MaxSubsystems] for enumeration.
	ErrInvalidLength = errors.New("correlation: invalid mask length")

	// ErrInvalidIndex is returned when a subsystem position lies outside [0, N).
	ErrInvalidIndex = errors.New("correlation: subsystem index out of range")

	// ErrLengthMismatch is returned when two masks range over different N.
	ErrLengthMismatch = errors.New("correlation: mask length mismatch")
)

const (
	opIndicesToMask      = "IndicesToMask"
	opFromBools          = "FromBools"
	opComplement         = "ComplementIndices"
	opSetDiff            = "SetDiff"
	opSubset             = "IsSubset"
	opCorrelationIndices = "CorrelationIndices"
	opCorrelationMasks   = "CorrelationMasks"
	opAllMasks           = "AllMasks"
)

func correlationErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
