// SPDX-License-Identifier: MIT

// Package approx - the ApproximateOperator value and its read surface.
//
// Purpose:
//   - Hold one reduced operator per subsystem plus a map from correlation mask
//     (order ≥ 2) to correlation operator.
//   - Stay immutable after construction: every getter hands out a clone.
//
// Invariants (checked by Validate, guaranteed by every constructor):
//   - N = number of factors of basisL = number of factors of basisR = len(operators).
//   - operators[i] maps factor i of basisR to factor i of basisL.
//   - Every correlation key has length N and order ≥ 2; its operator's bases are
//     the tensor products, in ascending subsystem order, of the selected factors.
package approx

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/operator"
)

// ApproximateOperator is the correlation-expansion representation of an
// operator on N subsystems.
type ApproximateOperator struct {
	basisL, basisR     basis.Basis
	factorsL, factorsR []basis.Basis
	operators          []*operator.Operator
	correlations       map[correlation.Mask]*operator.Operator
	masks              []correlation.Mask // keys of correlations, sorted by correlation.Compare
}

// N returns the number of subsystems.
func (a *ApproximateOperator) N() int { return len(a.operators) }

// BasisL returns the composite left basis.
func (a *ApproximateOperator) BasisL() basis.Basis { return a.basisL }

// BasisR returns the composite right basis.
func (a *ApproximateOperator) BasisR() basis.Basis { return a.basisR }

// Masks returns the retained correlation masks, sorted by order then index.
func (a *ApproximateOperator) Masks() []correlation.Mask { return slices.Clone(a.masks) }

// Has reports whether a correlation is stored for m.
func (a *ApproximateOperator) Has(m correlation.Mask) bool {
	_, ok := a.correlations[m]
	return ok
}

// Operator returns a copy of the reduced operator of subsystem i.
func (a *ApproximateOperator) Operator(i int) (*operator.Operator, error) {
	if i < 0 || i >= len(a.operators) {
		return nil, approxErrorf(opGet, fmt.Errorf("subsystem %d of %d: %w", i, len(a.operators), correlation.ErrInvalidIndex))
	}

	return a.operators[i].Clone(), nil
}

// Operators returns copies of all reduced operators in subsystem order.
func (a *ApproximateOperator) Operators() []*operator.Operator {
	out := make([]*operator.Operator, len(a.operators))
	for i, op := range a.operators {
		out[i] = op.Clone()
	}

	return out
}

// Correlation returns a copy of the correlation operator stored for m.
//
// Errors:
//   - ErrStructure when m has the wrong length or order < 2.
//   - ErrNotStored when m is well-formed but was not retained.
func (a *ApproximateOperator) Correlation(m correlation.Mask) (*operator.Operator, error) {
	if m.Len() != a.N() || m.Order() < 2 {
		return nil, approxErrorf(opGet, fmt.Errorf("mask %v: %w", m, ErrStructure))
	}
	op, ok := a.correlations[m]
	if !ok {
		return nil, approxErrorf(opGet, fmt.Errorf("mask %v: %w", m, ErrNotStored))
	}

	return op.Clone(), nil
}

// Get retrieves the operator for m: the reduced operator when m has order 1,
// the stored correlation when it has order ≥ 2.
func (a *ApproximateOperator) Get(m correlation.Mask) (*operator.Operator, error) {
	if m.Len() != a.N() || m.Order() == 0 {
		return nil, approxErrorf(opGet, fmt.Errorf("mask %v: %w", m, ErrStructure))
	}
	if m.Order() == 1 {
		return a.Operator(m.Indices()[0])
	}

	return a.Correlation(m)
}

// Truncate returns a new ApproximateOperator keeping only the correlations of
// order ≤ maxOrder. Lower orders never depend on higher ones, so the kept
// entries are exactly what an extraction with the smaller support would give.
func (a *ApproximateOperator) Truncate(maxOrder int) *ApproximateOperator {
	out := &ApproximateOperator{
		basisL:       a.basisL,
		basisR:       a.basisR,
		factorsL:     a.factorsL,
		factorsR:     a.factorsR,
		operators:    a.operators,
		correlations: make(map[correlation.Mask]*operator.Operator),
	}
	for _, m := range a.masks {
		if m.Order() <= maxOrder {
			out.masks = append(out.masks, m)
			out.correlations[m] = a.correlations[m]
		}
	}

	return out
}

// Validate checks every structural invariant of the representation.
//
// Errors:
//   - ErrStructure describing the first violated invariant.
func (a *ApproximateOperator) Validate() error {
	n := len(a.operators)
	if len(a.factorsL) != n || len(a.factorsR) != n {
		return approxErrorf(opValidate, ErrStructure)
	}
	for i, op := range a.operators {
		if !equalFactors(op.Left(), a.factorsL[i]) || !equalFactors(op.Right(), a.factorsR[i]) {
			return approxErrorf(opValidate, fmt.Errorf("subsystem %d: %w", i, ErrStructure))
		}
	}
	if len(a.masks) != len(a.correlations) {
		return approxErrorf(opValidate, ErrStructure)
	}
	for m, op := range a.correlations {
		if m.Len() != n || m.Order() < 2 {
			return approxErrorf(opValidate, fmt.Errorf("mask %v: %w", m, ErrStructure))
		}
		wantL, err := basis.Select(a.basisL, m.Indices())
		if err != nil {
			return approxErrorf(opValidate, err)
		}
		wantR, err := basis.Select(a.basisR, m.Indices())
		if err != nil {
			return approxErrorf(opValidate, err)
		}
		if !equalFactors(op.Left(), wantL) || !equalFactors(op.Right(), wantR) {
			return approxErrorf(opValidate, fmt.Errorf("mask %v basis: %w", m, ErrStructure))
		}
	}

	return nil
}

// resolveBases returns the subsystem factors of bl and br, which must agree on N.
func resolveBases(bl, br basis.Basis) ([]basis.Basis, []basis.Basis, error) {
	if bl == nil || br == nil {
		return nil, nil, ErrNilInput
	}
	fl, fr := basis.Factors(bl), basis.Factors(br)
	if len(fl) != len(fr) {
		return nil, nil, fmt.Errorf("left has %d subsystems, right %d: %w", len(fl), len(fr), ErrStructure)
	}
	if len(fl) > correlation.MaxSubsystems {
		return nil, nil, fmt.Errorf("%d subsystems: %w", len(fl), ErrStructure)
	}

	return fl, fr, nil
}

// checkSupport validates masks against N and returns them deduplicated and sorted.
func checkSupport(masks []correlation.Mask, n int) ([]correlation.Mask, error) {
	for _, m := range masks {
		if m.Len() != n {
			return nil, fmt.Errorf("mask %v has length %d, want %d: %w", m, m.Len(), n, ErrStructure)
		}
		if m.Order() < 2 {
			return nil, fmt.Errorf("mask %v has order %d: %w", m, m.Order(), ErrStructure)
		}
	}

	return correlation.Unique(masks), nil
}

// equalFactors compares bases subsystem by subsystem, so a one-factor
// Composite equals its factor.
func equalFactors(x, y basis.Basis) bool {
	fx, fy := basis.Factors(x), basis.Factors(y)
	if len(fx) != len(fy) {
		return false
	}
	for i := range fx {
		if !fx[i].Equal(fy[i]) {
			return false
		}
	}

	return true
}

// pick returns ops at the given positions, in that order.
func pick(ops []*operator.Operator, idx []int) []*operator.Operator {
	out := make([]*operator.Operator, len(idx))
	for k, i := range idx {
		out[k] = ops[i]
	}

	return out
}
