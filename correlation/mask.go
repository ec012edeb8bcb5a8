// SPDX-License-Identifier: MIT

// Package correlation - subsystem masks and their algebra.
//
// Purpose:
//   - Identify the support of a correlation: which subsystems of an N-body
//     system take part in it.
//   - Provide the pure set algebra (complement, subset, difference) and the
//     enumeration of all masks of a given order.
//
// Representation:
//   - A Mask packs its N flags into a uint64 (bit i ⇔ subsystem i) and stores N
//     alongside, so masks are comparable values usable directly as map keys.
//     Equality is pointwise: same length and same bits.
//   - Subsystem positions are 0-based throughout the module.
package correlation

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxSubsystems is the largest system size a Mask can describe.
const MaxSubsystems = 64

// Mask selects a subset of the subsystems {0, ..., N-1}.
// The zero value is a mask of length 0 and is not valid input to any operation.
type Mask struct {
	bits uint64
	n    uint8
}

// full returns the bit pattern with the low n bits set.
func full(n int) uint64 {
	if n == MaxSubsystems {
		return ^uint64(0)
	}

	return (uint64(1) << uint(n)) - 1
}

// validLength reports whether n is an admissible system size.
func validLength(n int) bool { return n >= 1 && n <= MaxSubsystems }

// IndicesToMask returns the length-n mask that is true exactly at indices.
// Indices may be unsorted; duplicates have no extra effect.
//
// Errors:
//   - ErrInvalidLength when n ∉ [1, MaxSubsystems].
//   - ErrInvalidIndex when an index lies outside [0, n).
func IndicesToMask(n int, indices []int) (Mask, error) {
	if !validLength(n) {
		return Mask{}, correlationErrorf(opIndicesToMask, ErrInvalidLength)
	}
	var b uint64
	for _, i := range indices {
		if i < 0 || i >= n {
			return Mask{}, correlationErrorf(opIndicesToMask, fmt.Errorf("index %d of %d: %w", i, n, ErrInvalidIndex))
		}
		b |= uint64(1) << uint(i)
	}

	return Mask{bits: b, n: uint8(n)}, nil
}

// FromBools returns the mask whose entry i is flags[i].
func FromBools(flags []bool) (Mask, error) {
	if !validLength(len(flags)) {
		return Mask{}, correlationErrorf(opFromBools, ErrInvalidLength)
	}
	var b uint64
	for i, f := range flags {
		if f {
			b |= uint64(1) << uint(i)
		}
	}

	return Mask{bits: b, n: uint8(len(flags))}, nil
}

// Len returns N, the number of subsystems the mask ranges over.
func (m Mask) Len() int { return int(m.n) }

// Order returns the number of selected subsystems.
func (m Mask) Order() int { return bits.OnesCount64(m.bits) }

// Has reports whether subsystem i is selected; out-of-range i reads false.
func (m Mask) Has(i int) bool {
	return i >= 0 && i < int(m.n) && m.bits&(uint64(1)<<uint(i)) != 0
}

// Bits returns the packed representation (bit i ⇔ subsystem i).
func (m Mask) Bits() uint64 { return m.bits }

// Indices returns the selected positions in ascending order.
func (m Mask) Indices() []int {
	out := make([]int, 0, m.Order())
	for b := m.bits; b != 0; b &= b - 1 {
		out = append(out, bits.TrailingZeros64(b))
	}

	return out
}

// Bools expands the mask into N flags.
func (m Mask) Bools() []bool {
	out := make([]bool, m.n)
	for i := range out {
		out[i] = m.Has(i)
	}

	return out
}

// Complement flips every entry of the mask.
func (m Mask) Complement() Mask {
	return Mask{bits: ^m.bits & full(int(m.n)), n: m.n}
}

// SubsetOf reports whether every subsystem selected by m is selected by o.
// Masks of different lengths are never subsets of each other.
func (m Mask) SubsetOf(o Mask) bool {
	return m.n == o.n && m.bits&^o.bits == 0
}

// String renders the mask as a tuple of T/F flags, e.g. (T,F,T).
func (m Mask) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < int(m.n); i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		if m.Has(i) {
			sb.WriteByte('T')
		} else {
			sb.WriteByte('F')
		}
	}
	sb.WriteByte(')')

	return sb.String()
}

// MaskToIndices returns the positions selected by m in ascending order.
func MaskToIndices(m Mask) []int { return m.Indices() }

// ComplementIndices returns {0..n-1} \ indices in ascending order. It agrees
// with Mask.Complement: MaskToIndices(m.Complement()) == ComplementIndices(n, m.Indices()).
//
// Errors:
//   - ErrInvalidLength, ErrInvalidIndex (same rules as IndicesToMask).
func ComplementIndices(n int, indices []int) ([]int, error) {
	m, err := IndicesToMask(n, indices)
	if err != nil {
		return nil, correlationErrorf(opComplement, err)
	}

	return m.Complement().Indices(), nil
}

// SetDiff returns the pointwise x ∧ ¬y.
//
// Errors:
//   - ErrLengthMismatch when x and y range over different N.
func SetDiff(x, y Mask) (Mask, error) {
	if x.n != y.n {
		return Mask{}, correlationErrorf(opSetDiff, ErrLengthMismatch)
	}

	return Mask{bits: x.bits &^ y.bits, n: x.n}, nil
}

// IsSubset reports whether a ⊆ b.
//
// Errors:
//   - ErrLengthMismatch when a and b range over different N.
func IsSubset(a, b Mask) (bool, error) {
	if a.n != b.n {
		return false, correlationErrorf(opSubset, ErrLengthMismatch)
	}

	return a.SubsetOf(b), nil
}

// Compare orders masks by order first, then by their ascending index lists
// lexicographically. It returns -1, 0 or +1. Masks of equal order and bits but
// different length compare by length last.
func Compare(a, b Mask) int {
	if oa, ob := a.Order(), b.Order(); oa != ob {
		return sign(oa - ob)
	}
	ia, ib := a.Indices(), b.Indices()
	for k := range ia {
		if ia[k] != ib[k] {
			return sign(ia[k] - ib[k])
		}
	}

	return sign(int(a.n) - int(b.n))
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
