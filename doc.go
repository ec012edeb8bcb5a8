// Package qcluster is a pure-Go toolkit for the correlation (cluster)
// expansion of operators on composite quantum systems.
//
// An operator ρ on N subsystems is written as the product of its
// single-subsystem marginals plus connected correlations of increasing order:
//
//	ρ = ⊗_i ρ_i + Σ_{|s|≥2} C_s ⊗ (⊗_{i∉s} ρ_i)
//
// Keeping every order is exact; dropping high orders gives a compact
// approximation whose storage grows with the number of retained masks rather
// than with the full Hilbert space.
//
// Everything is organized under these subpackages:
//
//	matrix/      complex128 row-major Dense storage and dense algebra
//	sparse/      compressed-sparse-column storage and scaled gemm/gemv kernels
//	basis/       subsystem bases (Generic, Fock, NLevel, Spin) and Composite
//	operator/    dense and sparse operators, Tensor, PartialTrace, PermuteSystems
//	correlation/ bit-packed subsystem masks and their set algebra
//	approx/      ApproximateOperator: New, FromDensity, CorrelationOperator, Full
//
// Runnable scenarios live in examples/.
//
//	go get github.com/katalvlaran/qcluster
package qcluster
