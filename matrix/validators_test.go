// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flattice/matrix"
)

func TestShapeChecks(t *testing.T) {
	t.Parallel()

	sq := mustDense(t, 2, 2, make([]float64, 4))
	wide := mustDense(t, 2, 3, make([]float64, 6))
	tall := mustDense(t, 3, 2, make([]float64, 6))
	var nilDense *matrix.Dense

	cases := []struct {
		name  string
		run   func() (matrix.Shape, error)
		shape matrix.Shape
		want  error
	}{
		{"ShapeOf/ok", func() (matrix.Shape, error) { return matrix.ShapeOf(wide) }, matrix.Shape{Rows: 2, Cols: 3}, nil},
		{"ShapeOf/nil", func() (matrix.Shape, error) { return matrix.ShapeOf(nil) }, matrix.Shape{}, matrix.ErrNilMatrix},
		{"ShapeOf/typedNil", func() (matrix.Shape, error) { return matrix.ShapeOf(nilDense) }, matrix.Shape{}, matrix.ErrNilMatrix},
		{"Square/ok", func() (matrix.Shape, error) { return matrix.CheckSquare(sq) }, matrix.Shape{Rows: 2, Cols: 2}, nil},
		{"Square/wide", func() (matrix.Shape, error) { return matrix.CheckSquare(wide) }, matrix.Shape{}, matrix.ErrNonSquare},
		{"Square/nil", func() (matrix.Shape, error) { return matrix.CheckSquare(nil) }, matrix.Shape{}, matrix.ErrNilMatrix},
		{"Same/ok", func() (matrix.Shape, error) { return matrix.CheckSameShape(wide, wide.Clone()) }, matrix.Shape{Rows: 2, Cols: 3}, nil},
		{"Same/mismatch", func() (matrix.Shape, error) { return matrix.CheckSameShape(wide, sq) }, matrix.Shape{}, matrix.ErrDimensionMismatch},
		{"Same/nilB", func() (matrix.Shape, error) { return matrix.CheckSameShape(sq, nil) }, matrix.Shape{}, matrix.ErrNilMatrix},
		{"Mul/ok", func() (matrix.Shape, error) { return matrix.CheckMulCompatible(wide, tall) }, matrix.Shape{Rows: 2, Cols: 2}, nil},
		{"Mul/tallWide", func() (matrix.Shape, error) { return matrix.CheckMulCompatible(tall, wide) }, matrix.Shape{Rows: 3, Cols: 3}, nil},
		{"Mul/mismatch", func() (matrix.Shape, error) { return matrix.CheckMulCompatible(wide, wide) }, matrix.Shape{}, matrix.ErrDimensionMismatch},
		{"Mul/nilA", func() (matrix.Shape, error) { return matrix.CheckMulCompatible(nil, tall) }, matrix.Shape{}, matrix.ErrNilMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run()
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.shape, got)
		})
	}

	// ErrNonSquare is a dimension mismatch.
	_, err := matrix.CheckSquare(wide)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	assert.Contains(t, err.Error(), "2×3")
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4×1", matrix.Shape{Rows: 4, Cols: 1}.String())
}
