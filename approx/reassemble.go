// SPDX-License-Identifier: MIT
package approx

import (
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/operator"
)

// Full reassembles the dense operator the expansion represents:
//
//	ρ ≈ ⊗_i ρ_i + Σ_s P(C_s ⊗ ⊗_{i∉s} ρ_i)
//
// With every mask of order 2..N retained and the value built by FromDensity,
// the result equals the source operator up to rounding.
//
// Complexity:
//   - Time O(|S| · dim_L · dim_R), Space O(dim_L · dim_R).
func (a *ApproximateOperator) Full() (*operator.Operator, error) {
	res, err := operator.Tensor(a.operators...)
	if err != nil {
		return nil, approxErrorf(opFull, err)
	}
	if len(a.masks) == 0 {
		return a.rebase(res)
	}

	all := make([]int, a.N())
	for i := range all {
		all[i] = i
	}
	everything, err := correlation.IndicesToMask(a.N(), all)
	if err != nil {
		return nil, approxErrorf(opFull, err)
	}
	for _, s := range a.masks {
		term, err := clusterTerm(everything, s, a.correlations[s], a.operators)
		if err != nil {
			return nil, approxErrorf(opFull, err)
		}
		if res, err = operator.Add(res, term); err != nil {
			return nil, approxErrorf(opFull, err)
		}
	}

	return a.rebase(res)
}

// rebase puts the reassembled data over basisL and basisR. The layout is the
// same, but a one-factor Composite is not structurally equal to its factor.
func (a *ApproximateOperator) rebase(res *operator.Operator) (*operator.Operator, error) {
	out, err := operator.New(a.basisL, a.basisR, res.Data())
	if err != nil {
		return nil, approxErrorf(opFull, err)
	}

	return out, nil
}
