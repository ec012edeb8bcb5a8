// SPDX-License-Identifier: MIT
package correlation

import (
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// CorrelationIndices returns every order-sized subset of {0..n-1} as an
// ascending index list, C(n, order) of them in lexicographic order.
// order 0 or order > n yields an empty result, including for n = 0.
//
// Errors:
//   - ErrInvalidLength when n ∉ [0, MaxSubsystems].
func CorrelationIndices(n, order int) ([][]int, error) {
	if n < 0 || n > MaxSubsystems {
		return nil, correlationErrorf(opCorrelationIndices, ErrInvalidLength)
	}
	if order <= 0 || order > n {
		return [][]int{}, nil
	}

	return combin.Combinations(n, order), nil
}

// CorrelationMasks returns the masks corresponding to CorrelationIndices(n, order).
//
// Errors:
//   - ErrInvalidLength when n ∉ [0, MaxSubsystems].
func CorrelationMasks(n, order int) ([]Mask, error) {
	sets, err := CorrelationIndices(n, order)
	if err != nil {
		return nil, correlationErrorf(opCorrelationMasks, err)
	}
	out := make([]Mask, len(sets))
	for k, idx := range sets {
		if out[k], err = IndicesToMask(n, idx); err != nil {
			return nil, correlationErrorf(opCorrelationMasks, err)
		}
	}

	return out, nil
}

// Count returns C(n, order), the number of masks CorrelationMasks(n, order)
// yields; 0 outside 1 ≤ order ≤ n.
func Count(n, order int) int {
	if n < 0 || order <= 0 || order > n {
		return 0
	}

	return combin.Binomial(n, order)
}

// FilterOrder keeps the masks of set whose order equals order, preserving
// their relative order. The input is not modified.
func FilterOrder(set []Mask, order int) []Mask {
	out := make([]Mask, 0, len(set))
	for _, m := range set {
		if m.Order() == order {
			out = append(out, m)
		}
	}

	return out
}

// AllMasks returns every mask over n subsystems with minOrder ≤ order ≤ maxOrder,
// sorted by Compare. Bounds are clamped to [1, n].
func AllMasks(n, minOrder, maxOrder int) ([]Mask, error) {
	if !validLength(n) {
		return nil, correlationErrorf(opAllMasks, ErrInvalidLength)
	}
	minOrder, maxOrder = max(minOrder, 1), min(maxOrder, n)
	var out []Mask
	for k := minOrder; k <= maxOrder; k++ {
		level, err := CorrelationMasks(n, k)
		if err != nil {
			return nil, correlationErrorf(opAllMasks, err)
		}
		out = append(out, level...)
	}

	return out, nil
}

// Sort orders masks in place by Compare.
func Sort(ms []Mask) { slices.SortFunc(ms, Compare) }

// Unique returns the distinct masks of ms, sorted by Compare.
func Unique(ms []Mask) []Mask {
	out := slices.Clone(ms)
	Sort(out)

	return slices.Compact(out)
}

// Subsets returns every mask t ⊆ m with minOrder ≤ t.Order() < m.Order(),
// sorted by Compare.
func Subsets(m Mask, minOrder int) []Mask {
	idx := m.Indices()
	var out []Mask
	for k := max(minOrder, 1); k < len(idx); k++ {
		for _, pick := range combin.Combinations(len(idx), k) {
			var b uint64
			for _, p := range pick {
				b |= uint64(1) << uint(idx[p])
			}
			out = append(out, Mask{bits: b, n: m.n})
		}
	}
	Sort(out)

	return out
}
