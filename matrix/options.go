// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric comparisons.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

// DefaultEpsilon defines the non-negative tolerance used by AllClose.
// It bounds the modulus of the elementwise difference |a_ij - b_ij|.
const DefaultEpsilon = 1e-9

// ---------- Internal panic messages (no magic strings) ----------

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps float64 // >= 0; DefaultEpsilon
}

// WithEpsilon sets the numeric tolerance eps used by AllClose.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// defaultOptions returns the zero-configuration snapshot.
func defaultOptions() Options {
	return Options{eps: DefaultEpsilon}
}

// gatherOptions folds opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
