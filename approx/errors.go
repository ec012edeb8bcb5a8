// SPDX-License-Identifier: MIT
// Package approx: sentinel error set.
// Construction either returns a fully valid ApproximateOperator or one of
// these sentinels (wrapped with an operation tag); no partial object is
// ever exposed.

package approx

import (
	"errors"
	"fmt"
)

var (
	// ErrStructure reports a structural/dimension violation: subsystem-count
	// mismatch between bases, a mask of order < 2 where a correlation is
	// expected, or a mask whose length differs from N.
	ErrStructure = errors.New("approx: structural mismatch")

	// ErrNotStored is returned by Correlation/Get for a well-formed mask that
	// is not part of the retained support set.
	ErrNotStored = errors.New("approx: correlation not stored")

	// ErrNilInput is returned when a required basis or operator is nil.
	ErrNilInput = errors.New("approx: nil input")
)

const (
	opNew         = "New"
	opFromDensity = "FromDensity"
	opCorrelation = "CorrelationOperator"
	opFull        = "Full"
	opGet         = "Get"
	opValidate    = "Validate"
)

// approxErrorf wraps err with an operation tag, preserving it for errors.Is.
func approxErrorf(tag string, err error) error {
	return fmt.Errorf("approx.%s: %w", tag, err)
}
