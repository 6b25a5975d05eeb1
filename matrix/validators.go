// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Shape is the size of a matrix.
type Shape struct {
	Rows, Cols int
}

// String renders the shape as "r×c".
func (s Shape) String() string { return fmt.Sprintf("%d×%d", s.Rows, s.Cols) }

// ShapeOf returns the shape of m, or ErrNilMatrix for a nil interface or a
// typed nil *Dense.
func ShapeOf(m Matrix) (Shape, error) {
	if m == nil {
		return Shape{}, ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return Shape{}, ErrNilMatrix
	}

	return Shape{Rows: m.Rows(), Cols: m.Cols()}, nil
}

// CheckSquare returns the shape of m if it is square.
// Errors: ErrNilMatrix, ErrNonSquare.
func CheckSquare(m Matrix) (Shape, error) {
	s, err := ShapeOf(m)
	if err != nil {
		return Shape{}, err
	}
	if s.Rows != s.Cols {
		return Shape{}, fmt.Errorf("%v: %w", s, ErrNonSquare)
	}

	return s, nil
}

// CheckSameShape returns the common shape of a and b, the operands of an
// element-wise operation.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func CheckSameShape(a, b Matrix) (Shape, error) {
	sa, sb, err := shapesOf(a, b)
	if err != nil {
		return Shape{}, err
	}
	if sa != sb {
		return Shape{}, fmt.Errorf("%v vs %v: %w", sa, sb, ErrDimensionMismatch)
	}

	return sa, nil
}

// CheckMulCompatible returns the shape of the product a ⊗ b.
// Errors: ErrNilMatrix, ErrDimensionMismatch when a.Cols != b.Rows.
func CheckMulCompatible(a, b Matrix) (Shape, error) {
	sa, sb, err := shapesOf(a, b)
	if err != nil {
		return Shape{}, err
	}
	if sa.Cols != sb.Rows {
		return Shape{}, fmt.Errorf("%v ⊗ %v: %w", sa, sb, ErrDimensionMismatch)
	}

	return Shape{Rows: sa.Rows, Cols: sb.Cols}, nil
}

func shapesOf(a, b Matrix) (Shape, Shape, error) {
	sa, err := ShapeOf(a)
	if err != nil {
		return Shape{}, Shape{}, fmt.Errorf("left operand: %w", err)
	}
	sb, err := ShapeOf(b)
	if err != nil {
		return Shape{}, Shape{}, fmt.Errorf("right operand: %w", err)
	}

	return sa, sb, nil
}
