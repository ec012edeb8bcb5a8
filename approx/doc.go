// Package approx implements the correlation-expansion representation of an
// operator on N subsystems:
//
//	ρ = ⊗_i ρ_i + Σ_{s ∈ S} C_s ⊗ (⊗_{i∉s} ρ_i)
//
// where ρ_i are the single-subsystem reduced operators, S is a support set of
// correlation masks of order ≥ 2 and C_s are the connected correlation
// operators. Keeping every mask of order 2..N reproduces ρ exactly; dropping
// high orders yields the approximation.
//
// Entry points:
//   - New builds the zero-valued structure for a declared support set.
//   - FromDensity extracts the expansion from a full operator.
//   - CorrelationOperator extracts a single C_s.
//   - (*ApproximateOperator).Full reassembles the dense operator.
//
// Indices are 0-based. Results are immutable: getters return copies.
// Construction can log per stage through log/slog (WithLogger), record
// prometheus metrics (WithMetrics) and bound its parallelism (WithWorkers).
package approx
