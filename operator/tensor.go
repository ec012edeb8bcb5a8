// SPDX-License-Identifier: MIT

// Package operator - tensor structure: products, partial traces, subsystem permutations.
//
// Purpose:
//   - Build operators on composite spaces (Tensor, Embed).
//   - Reduce them onto subsets of subsystems (PartialTrace).
//   - Reorder subsystem axes (PermuteSystems, SortSystems) by moving matrix
//     elements, not by relabeling bases.
//
// Implementation notes:
//   - All index arithmetic goes through strides/offsets: offsets(dims, strides, sel)
//     enumerates the multi-indices of the selected subsystems in row-major order
//     (sel[0] most significant) and returns their flat offsets in the full space.
//   - Gather tables are precomputed once per call, so the inner loops are pure
//     slice reads.
package operator

import (
	"slices"

	"github.com/katalvlaran/qcluster/basis"
	"github.com/katalvlaran/qcluster/matrix"
)

// strides returns the row-major strides of a composite index with the given
// factor dimensions (subsystem 0 most significant).
func strides(dims []int) []int {
	s := make([]int, len(dims))
	acc := 1
	for i := len(dims) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= dims[i]
	}

	return s
}

// offsets enumerates every multi-index over the subsystems in sel, in
// row-major order with sel[0] most significant, and returns for each one the
// flat offset Σ k_j·strides[sel[j]] into the full space. An empty sel yields [0].
func offsets(dims, strides, sel []int) []int {
	total := 1
	for _, s := range sel {
		total *= dims[s]
	}
	out := make([]int, total)
	idx := make([]int, len(sel))
	var off, j int
	for n := 0; n < total; n++ {
		off = 0
		for j = range sel {
			off += idx[j] * strides[sel[j]]
		}
		out[n] = off
		for j = len(sel) - 1; j >= 0; j-- { // odometer, last digit fastest
			idx[j]++
			if idx[j] < dims[sel[j]] {
				break
			}
			idx[j] = 0
		}
	}

	return out
}

// validSelection checks sel holds distinct positions in [0, n).
func validSelection(sel []int, n int) bool {
	seen := make([]bool, n)
	for _, i := range sel {
		if i < 0 || i >= n || seen[i] {
			return false
		}
		seen[i] = true
	}

	return true
}

// Tensor returns ops[0] ⊗ ops[1] ⊗ ... ⊗ ops[k-1] for k ≥ 1.
// The result's bases are the flattened tensor products of the operands' bases,
// in argument order.
//
// Complexity:
//   - Time and space O(Π rows_i · Π cols_i).
func Tensor(ops ...*Operator) (*Operator, error) {
	if len(ops) == 0 {
		return nil, operatorErrorf(opTensor, basis.ErrEmpty)
	}
	lefts := make([]basis.Basis, len(ops))
	rights := make([]basis.Basis, len(ops))
	for i, o := range ops {
		if o == nil {
			return nil, operatorErrorf(opTensor, ErrNilOperand)
		}
		lefts[i], rights[i] = o.left, o.right
	}
	left, err := basis.Tensor(lefts...)
	if err != nil {
		return nil, operatorErrorf(opTensor, err)
	}
	right, err := basis.Tensor(rights...)
	if err != nil {
		return nil, operatorErrorf(opTensor, err)
	}

	acc := ops[0].data.Clone()
	for _, o := range ops[1:] {
		if acc, err = matrix.Kron(acc, o.data); err != nil {
			return nil, operatorErrorf(opTensor, err)
		}
	}

	return wrap(left, right, acc), nil
}

// PartialTrace traces out the subsystems at the given positions and returns
// an operator on the remaining subsystems, in their original relative order.
//
// Implementation:
//   - Stage 1: validate positions (distinct, in range, not all subsystems) and
//     that each traced factor is the same on the left and the right.
//   - Stage 2: build gather tables for kept rows/cols and traced offsets.
//   - Stage 3: out[r,c] = Σ_t in[rowBase[r]+trL[t], colBase[c]+trR[t]].
//
// Errors:
//   - ErrNilOperand, ErrBasisMismatch, ErrInvalidSubsystem.
//
// Complexity:
//   - Time O(dim_kept_l · dim_kept_r · dim_traced), Space O(output).
func PartialTrace(op *Operator, indices []int) (*Operator, error) {
	n, err := Subsystems(op)
	if err != nil {
		return nil, operatorErrorf(opPartialTrace, err)
	}
	if !validSelection(indices, n) || len(indices) == n {
		return nil, operatorErrorf(opPartialTrace, ErrInvalidSubsystem)
	}
	if len(indices) == 0 {
		return op.Clone(), nil
	}

	fl, fr := basis.Factors(op.left), basis.Factors(op.right)
	traced := slices.Sorted(slices.Values(indices))
	kept := make([]int, 0, n-len(traced))
	for i := 0; i < n; i++ {
		if _, found := slices.BinarySearch(traced, i); found {
			if !fl[i].Equal(fr[i]) {
				return nil, operatorErrorf(opPartialTrace, ErrBasisMismatch)
			}
			continue
		}
		kept = append(kept, i)
	}

	dl, dr := op.left.Dims(), op.right.Dims()
	sl, sr := strides(dl), strides(dr)
	rowBase, colBase := offsets(dl, sl, kept), offsets(dr, sr, kept)
	trL, trR := offsets(dl, sl, traced), offsets(dr, sr, traced)

	out, err := matrix.NewDense(len(rowBase), len(colBase))
	if err != nil {
		return nil, operatorErrorf(opPartialTrace, err)
	}
	in, inCols := op.data.RawData(), op.data.Cols()
	raw, outCols := out.RawData(), len(colBase)
	var sum complex128
	for r, rb := range rowBase {
		for c, cb := range colBase {
			sum = 0
			for t := range trL {
				sum += in[(rb+trL[t])*inCols+cb+trR[t]]
			}
			raw[r*outCols+c] = sum
		}
	}

	left, err := basis.Select(op.left, kept)
	if err != nil {
		return nil, operatorErrorf(opPartialTrace, err)
	}
	right, err := basis.Select(op.right, kept)
	if err != nil {
		return nil, operatorErrorf(opPartialTrace, err)
	}

	return wrap(left, right, out), nil
}

// PermuteSystems reorders subsystem axes: subsystem i of the result is
// subsystem perm[i] of op. Both the matrix elements and the bases move.
//
// Errors:
//   - ErrNilOperand, ErrBasisMismatch, ErrInvalidPermutation.
//
// Complexity:
//   - Time and space O(rows·cols).
func PermuteSystems(op *Operator, perm []int) (*Operator, error) {
	n, err := Subsystems(op)
	if err != nil {
		return nil, operatorErrorf(opPermute, err)
	}
	if len(perm) != n || !validSelection(perm, n) {
		return nil, operatorErrorf(opPermute, ErrInvalidPermutation)
	}

	dl, dr := op.left.Dims(), op.right.Dims()
	rowMap := offsets(dl, strides(dl), perm)
	colMap := offsets(dr, strides(dr), perm)

	rows, cols := op.data.Dims()
	out, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, operatorErrorf(opPermute, err)
	}
	in, raw := op.data.RawData(), out.RawData()
	for r, src := range rowMap {
		base := src * cols
		for c, sc := range colMap {
			raw[r*cols+c] = in[base+sc]
		}
	}

	left, err := basis.Select(op.left, perm)
	if err != nil {
		return nil, operatorErrorf(opPermute, err)
	}
	right, err := basis.Select(op.right, perm)
	if err != nil {
		return nil, operatorErrorf(opPermute, err)
	}

	return wrap(left, right, out), nil
}

// SortSystems reorders op, whose subsystem j belongs at global position
// positions[j], so that its subsystems appear in ascending position order.
// Positions need not be contiguous but must be distinct.
func SortSystems(op *Operator, positions []int) (*Operator, error) {
	perm := make([]int, len(positions))
	for i := range perm {
		perm[i] = i
	}
	slices.SortFunc(perm, func(a, b int) int { return positions[a] - positions[b] })
	for i := 1; i < len(perm); i++ {
		if positions[perm[i]] == positions[perm[i-1]] {
			return nil, operatorErrorf(opPermute, ErrInvalidPermutation)
		}
	}

	return PermuteSystems(op, perm)
}

// Embed lifts op, acting on the subsystems of full at the given positions
// (listed in op's own factor order), to an operator on all of full with the
// identity on every other subsystem.
//
// Errors:
//   - ErrNilOperand, ErrInvalidSubsystem, ErrBasisMismatch.
func Embed(full basis.Basis, indices []int, op *Operator) (*Operator, error) {
	if full == nil || op == nil {
		return nil, operatorErrorf(opEmbed, ErrNilOperand)
	}
	factors := basis.Factors(full)
	n := len(factors)
	if len(indices) == 0 || !validSelection(indices, n) {
		return nil, operatorErrorf(opEmbed, ErrInvalidSubsystem)
	}
	target, err := basis.Select(full, indices)
	if err != nil {
		return nil, operatorErrorf(opEmbed, err)
	}
	if !op.left.Equal(target) || !op.right.Equal(target) {
		return nil, operatorErrorf(opEmbed, ErrBasisMismatch)
	}

	parts := []*Operator{op}
	order := append([]int(nil), indices...)
	for i := 0; i < n; i++ {
		if slices.Contains(indices, i) {
			continue
		}
		id, err := Identity(factors[i])
		if err != nil {
			return nil, operatorErrorf(opEmbed, err)
		}
		parts = append(parts, id)
		order = append(order, i)
	}
	x, err := Tensor(parts...)
	if err != nil {
		return nil, operatorErrorf(opEmbed, err)
	}

	return SortSystems(x, order)
}
