// SPDX-License-Identifier: MIT
// Package: matrix
//
// Tropical is a value-like wrapper over *Dense restricted to the min-plus
// walk-length semiring: every entry is a non-negative real or +Inf.
//
//	Add      (⊕) element-wise minimum           → shorter of two walks
//	Multiply (⊗) min over k of A[i,k] + B[k,j]  → walk composition
//	Power    A^n by repeated squaring           → shortest walk of ≤ n hops
//
// Power relies on the zero diagonal: a zero-length self-walk lets any walk
// shorter than n hops be padded to exactly n, so A^n[i,j] is finite iff j is
// reachable from i in at most n hops.
//
// Values are never mutated after construction; every operation returns a new
// Tropical.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Operation tags for Tropical error wrapping.
const (
	opNewTropical   = "NewTropical"
	opFromAdjacency = "FromAdjacency"
	opAdd           = "Tropical.Add"
	opMultiply      = "Tropical.Multiply"
	opPower         = "Tropical.Power"
	opShortestWalks = "ShortestWalks"
)

// hopWeight is the weight of one directed edge in an adjacency encoding.
const hopWeight = 1.0

// Tropical is a min-plus matrix. The zero value is not usable; build one
// with NewTropical, FromAdjacency or TropicalIdentity.
type Tropical struct {
	d *Dense
}

// NewTropical builds a rows×cols tropical matrix from row-major values.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//   - ErrDimensionMismatch when len(values) != rows*cols.
//   - ErrNaN / ErrNegativeWeight for entries outside [0, +Inf].
func NewTropical(rows, cols int, values []float64) (*Tropical, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewTropical, err)
	}
	if len(values) != rows*cols {
		return nil, fmt.Errorf("%s: %d values for %dx%d: %w", opNewTropical, len(values), rows, cols, ErrDimensionMismatch)
	}
	for i, v := range values {
		if err = checkWeight(v); err != nil {
			return nil, fmt.Errorf("%s: cell (%d,%d): %w", opNewTropical, i/cols, i%cols, err)
		}
	}
	copy(d.data, values)

	return &Tropical{d: d}, nil
}

// FromAdjacency encodes a square edge-indicator array as a tropical matrix:
// adj[i][j] → 1 (one hop), !adj[i][j] → +Inf, and the diagonal is forced to 0
// whether or not the source had a self-loop.
//
// Errors:
//   - ErrInvalidDimensions for an empty array.
//   - ErrNonSquare when any row length differs from len(adj).
//
// Complexity: O(n^2).
func FromAdjacency(adj [][]bool) (*Tropical, error) {
	n := len(adj)
	if n == 0 {
		return nil, matrixErrorf(opFromAdjacency, ErrInvalidDimensions)
	}
	for i, row := range adj {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", opFromAdjacency, i, len(row), n, ErrNonSquare)
		}
	}

	d, err := newDenseFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, matrixErrorf(opFromAdjacency, err)
	}
	for i, row := range adj {
		for j, edge := range row {
			switch {
			case i == j:
				d.data[i*n+j] = 0
			case edge:
				d.data[i*n+j] = hopWeight
			}
		}
	}

	return &Tropical{d: d}, nil
}

// TropicalIdentity returns the n×n multiplicative identity
// (0 on the diagonal, +Inf elsewhere).
func TropicalIdentity(n int) (*Tropical, error) {
	d, err := MinPlusIdentity(n)
	if err != nil {
		return nil, err
	}

	return &Tropical{d: d}, nil
}

// Rows returns the number of rows.
func (t *Tropical) Rows() int { return t.d.r }

// Cols returns the number of columns.
func (t *Tropical) Cols() int { return t.d.c }

// At returns the entry at (i, j) or ErrOutOfRange.
func (t *Tropical) At(i, j int) (float64, error) { return t.d.At(i, j) }

// Finite reports whether entry (i, j) exists and is not +Inf.
func (t *Tropical) Finite(i, j int) bool {
	v, err := t.d.At(i, j)

	return err == nil && !math.IsInf(v, 1)
}

// Dense returns a deep copy of the backing storage.
func (t *Tropical) Dense() *Dense { return t.d.Clone().(*Dense) }

// String renders the matrix row by row.
func (t *Tropical) String() string { return t.d.String() }

// Equal reports whether t and o have the same shape and identical entries.
// +Inf equals +Inf.
func (t *Tropical) Equal(o *Tropical) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.d.r != o.d.r || t.d.c != o.d.c {
		return false
	}
	equal := true
	t.d.Do(func(i, j int, v float64) bool {
		equal = v == o.d.data[i*o.d.c+j]
		return equal
	})

	return equal
}

// Add returns t ⊕ o, the element-wise minimum.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (t *Tropical) Add(o *Tropical) (*Tropical, error) {
	if err := checkOperands(t, o); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	d, err := MinPlusAdd(t.d, o.d)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &Tropical{d: d}, nil
}

// Multiply returns t ⊗ o, the min-plus matrix product.
// Errors: ErrNilMatrix, ErrDimensionMismatch (t.Cols() != o.Rows()).
// Complexity: O(r*n*c).
func (t *Tropical) Multiply(o *Tropical) (*Tropical, error) {
	if err := checkOperands(t, o); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}
	d, err := MinPlusMul(t.d, o.d)
	if err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	return &Tropical{d: d}, nil
}

// Power returns t^n under min-plus multiplication using exponentiation by
// squaring: the running square is doubled once per bit of n and multiplied
// into the result whenever that bit is set. n == 0 yields the identity.
//
// Errors:
//   - ErrNegativeExponent for n < 0.
//   - ErrNonSquare for a rectangular receiver.
//
// Complexity: O(n^3 · log k) for an n×n matrix and exponent k.
func (t *Tropical) Power(n int) (*Tropical, error) {
	if t == nil || t.d == nil {
		return nil, matrixErrorf(opPower, ErrNilMatrix)
	}
	if n < 0 {
		return nil, fmt.Errorf("%s(%d): %w", opPower, n, ErrNegativeExponent)
	}
	if _, err := CheckSquare(t.d); err != nil {
		return nil, matrixErrorf(opPower, err)
	}

	result, err := MinPlusIdentity(t.d.r)
	if err != nil {
		return nil, matrixErrorf(opPower, err)
	}
	square := t.d
	for n > 0 {
		if n&1 == 1 {
			if result, err = MinPlusMul(result, square); err != nil {
				return nil, matrixErrorf(opPower, err)
			}
		}
		n >>= 1
		if n == 0 {
			break // skip the final, unused squaring
		}
		if square, err = MinPlusMul(square, square); err != nil {
			return nil, matrixErrorf(opPower, err)
		}
	}

	return &Tropical{d: result}, nil
}

// PowerValue is Power for a dynamically typed exponent (see IntegerValue).
//
// Errors:
//   - ErrNonIntegerExponent for non-integral or non-numeric v.
//   - everything Power returns.
func (t *Tropical) PowerValue(v any) (*Tropical, error) {
	n, err := IntegerValue(v)
	if err != nil {
		if errors.Is(err, ErrBadType) {
			return nil, fmt.Errorf("%s(%v): %w", opPower, v, ErrNonIntegerExponent)
		}
		return nil, matrixErrorf(opPower, err)
	}

	return t.Power(n)
}

// ShortestWalks returns the min-plus closure of a square tropical matrix:
// entry (i,j) is the length of the shortest walk i → j of any number of hops,
// or +Inf when j is unreachable. The receiver is left untouched.
//
// Complexity: O(n^3).
func ShortestWalks(t *Tropical) (*Tropical, error) {
	if t == nil || t.d == nil {
		return nil, matrixErrorf(opShortestWalks, ErrNilMatrix)
	}
	d := t.Dense()
	// The closure needs a zero diagonal; a tropical value only guarantees >= 0.
	err := d.Apply(func(i, j int, v float64) float64 {
		if i == j {
			return 0
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf(opShortestWalks, err)
	}
	if err = FloydWarshall(d); err != nil {
		return nil, matrixErrorf(opShortestWalks, err)
	}

	return &Tropical{d: d}, nil
}

// checkWeight admits non-negative reals and +Inf.
func checkWeight(v float64) error {
	switch {
	case math.IsNaN(v):
		return ErrNaN
	case v < 0:
		return ErrNegativeWeight
	}

	return nil
}

// checkOperands rejects nil receivers and arguments.
func checkOperands(a, b *Tropical) error {
	if a == nil || a.d == nil || b == nil || b.d == nil {
		return ErrNilMatrix
	}

	return nil
}
