// Package operator implements linear operators between bases: the dense
// Operator, its compressed-column counterpart SparseOperator, arithmetic,
// and the tensor-structure operations (Tensor, PartialTrace, PermuteSystems,
// SortSystems, Embed) that correlation expansions are built from.
//
// All functions return fresh operators; inputs are never mutated and results
// never alias inputs. Structural failures are reported with the sentinels in
// errors.go and matrix.ErrDimensionMismatch.
package operator
