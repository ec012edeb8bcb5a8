// SPDX-License-Identifier: MIT
package basis

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned for non-positive basis dimensions.
	ErrInvalidDimension = errors.New("basis: invalid dimension")

	// ErrEmpty is returned when a tensor product has no factors.
	ErrEmpty = errors.New("basis: empty tensor product")

	// ErrNilBasis is returned when a nil basis is supplied as a factor.
	ErrNilBasis = errors.New("basis: nil basis")

	// ErrInvalidSubsystem is returned for a subsystem position outside the basis.
	ErrInvalidSubsystem = errors.New("basis: subsystem index out of range")
)

func basisErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
