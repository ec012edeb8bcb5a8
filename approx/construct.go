// SPDX-License-Identifier: MIT

// Package approx - construction algorithms.
//
// New allocates the zero structure for a declared support set.
//
// FromDensity extracts correlations from a full density operator ρ by an
// order-by-order inclusion–exclusion (cluster expansion):
//
//	Stage 1: ρ_i = Tr_{¬i} ρ for every subsystem i (independent, run in parallel).
//	Stage 2: for k = 2..N, for every retained mask s of order k (parallel within k):
//	           σ  = Tr_{¬s} ρ
//	           σ -= ⊗_{i∈s} ρ_i
//	           σ -= P(C_t ⊗ ⊗_{i∈s\t} ρ_i)   for every stored t ⊊ s
//	           C_s = σ
//	         where P reorders subsystem axes into ascending global order.
//	         Order k is fully stored before order k+1 starts.
//
// Any error aborts the call; nothing partially built escapes.
package approx

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/correlation"
	"github.com/katalvlaran/qcluster/operator"
)

// New builds the structure-only representation for the support set masks:
// every reduced operator is the zero operator on its subsystem and every mask
// gets the tensor product of the selected zero operators.
//
// Errors:
//   - ErrNilInput for nil bases.
//   - ErrStructure when bl and br disagree on N, or a mask has length ≠ N or order < 2.
func New(bl, br basis.Basis, masks []correlation.Mask, opts ...Option) (a *ApproximateOperator, err error) {
	o := gatherOptions(opts...)
	start := time.Now()
	defer func() { o.metrics.observe(entryNew, start, err) }()

	fl, fr, err := resolveBases(bl, br)
	if err != nil {
		return nil, approxErrorf(opNew, err)
	}
	support, err := checkSupport(masks, len(fl))
	if err != nil {
		return nil, approxErrorf(opNew, err)
	}

	ops := make([]*operator.Operator, len(fl))
	for i := range fl {
		if ops[i], err = operator.Zero(fl[i], fr[i]); err != nil {
			return nil, approxErrorf(opNew, err)
		}
	}
	corr := make(map[correlation.Mask]*operator.Operator, len(support))
	for _, m := range support {
		c, err := operator.Tensor(pick(ops, m.Indices())...)
		if err != nil {
			return nil, approxErrorf(opNew, err)
		}
		corr[m] = c
	}
	o.logger.Debug("allocated approximate operator", "subsystems", len(fl), "correlations", len(support))

	return &ApproximateOperator{
		basisL:       bl,
		basisR:       br,
		factorsL:     fl,
		factorsR:     fr,
		operators:    ops,
		correlations: corr,
		masks:        support,
	}, nil
}

// FromDensity extracts the reduced operators and the correlations listed in
// masks from the full operator rho (see the package comment for the algorithm).
//
// Errors:
//   - ErrNilInput for a nil rho.
//   - ErrStructure when rho's left and right bases disagree on N, or a mask has
//     length ≠ N or order < 2.
//   - ErrStructure wrapping operator.ErrBasisMismatch when a traced subsystem has
//     different left and right bases.
func FromDensity(rho *operator.Operator, masks []correlation.Mask, opts ...Option) (a *ApproximateOperator, err error) {
	o := gatherOptions(opts...)
	start := time.Now()
	defer func() { o.metrics.observe(entryFromDensity, start, err) }()

	if rho == nil {
		return nil, approxErrorf(opFromDensity, ErrNilInput)
	}
	fl, fr, err := resolveBases(rho.Left(), rho.Right())
	if err != nil {
		return nil, approxErrorf(opFromDensity, err)
	}
	n := len(fl)
	support, err := checkSupport(masks, n)
	if err != nil {
		return nil, approxErrorf(opFromDensity, err)
	}

	ops, err := reducedOperators(rho, n, o)
	if err != nil {
		return nil, approxErrorf(opFromDensity, asStructure(err))
	}
	if n == 1 {
		if ops[0], err = operator.New(fl[0], fr[0], ops[0].Data()); err != nil {
			return nil, approxErrorf(opFromDensity, err)
		}
	}
	o.logger.Debug("reduced operators ready", "stage", "reduce", "subsystems", n)

	corr, err := extractCorrelations(rho, ops, support, n, o)
	if err != nil {
		return nil, approxErrorf(opFromDensity, asStructure(err))
	}

	return &ApproximateOperator{
		basisL:       rho.Left(),
		basisR:       rho.Right(),
		factorsL:     fl,
		factorsR:     fr,
		operators:    ops,
		correlations: corr,
		masks:        support,
	}, nil
}

// CorrelationOperator extracts the single correlation operator of mask from
// rho. Every lower-order subset of mask with order ≥ 2 is extracted on the way,
// which is exactly what the inclusion–exclusion for mask subtracts.
func CorrelationOperator(rho *operator.Operator, mask correlation.Mask, opts ...Option) (*operator.Operator, error) {
	if rho == nil {
		return nil, approxErrorf(opCorrelation, ErrNilInput)
	}
	n, err := operator.Subsystems(rho)
	if err != nil {
		return nil, approxErrorf(opCorrelation, fmt.Errorf("%w: %w", ErrStructure, err))
	}
	if mask.Len() != n || mask.Order() < 2 {
		return nil, approxErrorf(opCorrelation, fmt.Errorf("mask %v: %w", mask, ErrStructure))
	}
	support := append(correlation.Subsets(mask, 2), mask)
	a, err := FromDensity(rho, support, opts...)
	if err != nil {
		return nil, approxErrorf(opCorrelation, err)
	}

	return a.Correlation(mask)
}

// asStructure marks basis mismatches found while tracing ρ as ErrStructure,
// keeping the operator sentinel reachable.
func asStructure(err error) error {
	if errors.Is(err, operator.ErrBasisMismatch) {
		return fmt.Errorf("%w: %w", ErrStructure, err)
	}

	return err
}

// reducedOperators computes Tr_{¬i} ρ for every subsystem concurrently.
func reducedOperators(rho *operator.Operator, n int, o Options) ([]*operator.Operator, error) {
	ops := make([]*operator.Operator, n)
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			others, err := correlation.ComplementIndices(n, []int{i})
			if err != nil {
				return err
			}
			red, err := operator.PartialTrace(rho, others)
			if err != nil {
				return fmt.Errorf("subsystem %d: %w", i, err)
			}
			ops[i] = red

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ops, nil
}

// extractCorrelations runs Stage 2. Each order is a barrier: the goroutines of
// order k only read correlations of orders < k, which are all stored before
// order k starts, and write into their own slot of a per-order slice.
func extractCorrelations(rho *operator.Operator, ops []*operator.Operator, support []correlation.Mask, n int, o Options) (map[correlation.Mask]*operator.Operator, error) {
	stored := make(map[correlation.Mask]*operator.Operator, len(support))
	lower := make([]correlation.Mask, 0, len(support))

	for k := 2; k <= n; k++ {
		level := correlation.FilterOrder(support, k)
		if len(level) == 0 {
			continue
		}
		out := make([]*operator.Operator, len(level))
		var g errgroup.Group
		g.SetLimit(o.workers)
		for j, s := range level {
			g.Go(func() error {
				c, err := extractOne(rho, ops, stored, lower, s)
				if err != nil {
					return fmt.Errorf("mask %v: %w", s, err)
				}
				out[j] = c

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		for j, s := range level {
			stored[s] = out[j]
		}
		lower = append(lower, level...)
		o.logger.Debug("correlation order extracted", "stage", "extract", "order", k, "masks", len(level))
		o.metrics.extracted(k, len(level))
	}

	return stored, nil
}

// extractOne computes C_s from the marginal of s, the uncorrelated product and
// every stored lower-order correlation supported inside s.
func extractOne(rho *operator.Operator, ops []*operator.Operator, stored map[correlation.Mask]*operator.Operator, lower []correlation.Mask, s correlation.Mask) (*operator.Operator, error) {
	sigma, err := operator.PartialTrace(rho, s.Complement().Indices())
	if err != nil {
		return nil, err
	}
	product, err := operator.Tensor(pick(ops, s.Indices())...)
	if err != nil {
		return nil, err
	}
	if sigma, err = operator.Sub(sigma, product); err != nil {
		return nil, err
	}
	for _, t := range lower {
		if !t.SubsetOf(s) {
			continue
		}
		term, err := clusterTerm(s, t, stored[t], ops)
		if err != nil {
			return nil, err
		}
		if sigma, err = operator.Sub(sigma, term); err != nil {
			return nil, err
		}
	}

	return sigma, nil
}

// clusterTerm returns C_t ⊗ (⊗_{i∈s\t} ρ_i) with its subsystem axes permuted
// into the ascending global order of s. The plain concatenation lists t's
// subsystems first and s\t's after, which in general interleave globally, so
// the matrix elements must be moved, not just the bases relabeled.
func clusterTerm(s, t correlation.Mask, ct *operator.Operator, ops []*operator.Operator) (*operator.Operator, error) {
	rest, err := correlation.SetDiff(s, t)
	if err != nil {
		return nil, err
	}
	restIdx := rest.Indices()
	parts := append([]*operator.Operator{ct}, pick(ops, restIdx)...)
	x, err := operator.Tensor(parts...)
	if err != nil {
		return nil, err
	}

	return operator.SortSystems(x, append(t.Indices(), restIdx...))
}
