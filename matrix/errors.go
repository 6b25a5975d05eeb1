// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (possibly wrapped) and tests
// MUST check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON CATEGORIES
// ------------------
// Three category sentinels classify every failure of the package:
//
//	ErrBadType           - argument has the wrong kind (e.g. a non-integer exponent).
//	ErrBadValue          - argument has the right kind but an illegal value.
//	ErrDimensionMismatch - operand shapes are incompatible.
//
// Specific sentinels wrap exactly one category, so callers may match either
// the precise condition or the whole class with errors.Is.

var (
	// ErrBadType reports an argument of the wrong kind.
	ErrBadType = errors.New("matrix: bad argument type")

	// ErrBadValue reports an argument whose value violates a precondition.
	ErrBadValue = errors.New("matrix: bad argument value")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add on different shapes, or Multiply where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

var (
	// ErrNonIntegerExponent is returned by PowerValue for non-integral exponents.
	ErrNonIntegerExponent = fmt.Errorf("%w: exponent must be an integer", ErrBadType)

	// ErrNotInteger is returned by IntegerValue for non-integral arguments.
	ErrNotInteger = fmt.Errorf("%w: value is not an integer", ErrBadType)

	// ErrNegativeExponent is returned by Power for exponents below zero.
	ErrNegativeExponent = fmt.Errorf("%w: exponent must be non-negative", ErrBadValue)

	// ErrNegativeWeight rejects negative entries in a tropical matrix.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrBadValue)

	// ErrNaN rejects NaN entries; +Inf is legal and means "unreachable".
	ErrNaN = fmt.Errorf("%w: NaN encountered", ErrBadValue)

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrBadValue)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrBadValue)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrBadValue)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrDimensionMismatch)
)

// matrixErrorf tags err with the public operation that observed it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
