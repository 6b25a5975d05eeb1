// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flattice/matrix"
)

func TestMinPlusMul_FastPathEqualsFallback(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, []float64{
		0, 4, inf,
		inf, 0, 1,
		2, 7, 0,
	})
	b := mustDense(t, 3, 2, []float64{
		1, inf,
		inf, 0,
		3, 2,
	})

	fast, err := matrix.MinPlusMul(a, b)
	require.NoError(t, err)
	slowA, err := matrix.MinPlusMul(hide{a}, b)
	require.NoError(t, err)
	slowB, err := matrix.MinPlusMul(a, hide{b})
	require.NoError(t, err)

	assert.Equal(t, fast.String(), slowA.String())
	assert.Equal(t, fast.String(), slowB.String())

	// Hand-checked: row 0 = [min(1, inf, inf), min(inf, 4, inf)].
	v, _ := fast.At(0, 0)
	assert.Equal(t, 1.0, v)
	v, _ = fast.At(0, 1)
	assert.Equal(t, 4.0, v)
	// Row 1 reaches column 0 only through k=2: 1 + 3.
	v, _ = fast.At(1, 0)
	assert.Equal(t, 4.0, v)
}

func TestMinPlusAdd_FastPathEqualsFallback(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 2, []float64{0, inf, 5, 1})
	b := mustDense(t, 2, 2, []float64{3, 2, inf, 1})

	fast, err := matrix.MinPlusAdd(a, b)
	require.NoError(t, err)
	slow, err := matrix.MinPlusAdd(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, fast.String(), slow.String())
	assert.Equal(t, "[0, 2]\n[5, 1]\n", fast.String())
}

func TestMinPlus_Errors(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 2, 3, make([]float64, 6))
	b := mustDense(t, 2, 3, make([]float64, 6))

	_, err := matrix.MinPlusMul(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MinPlusAdd(a, mustDense(t, 3, 2, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.MinPlusAdd(nil, b)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	var nilDense *matrix.Dense
	_, err = matrix.MinPlusMul(a, nilDense)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMinPlusIdentity_IsNeutral(t *testing.T) {
	t.Parallel()

	a := mustDense(t, 3, 3, []float64{
		0, 4, inf,
		inf, 0, 1,
		2, 7, 0,
	})
	id, err := matrix.MinPlusIdentity(3)
	require.NoError(t, err)

	left, err := matrix.MinPlusMul(id, a)
	require.NoError(t, err)
	right, err := matrix.MinPlusMul(a, id)
	require.NoError(t, err)
	assert.Equal(t, a.String(), left.String())
	assert.Equal(t, a.String(), right.String())
}

func TestFloydWarshall_DirectedPath(t *testing.T) {
	t.Parallel()

	d := mustDense(t, 3, 3, []float64{
		0, 1, inf,
		inf, 0, 1,
		inf, inf, 0,
	})
	slow := d.Clone()

	require.NoError(t, matrix.FloydWarshall(d))
	require.NoError(t, matrix.FloydWarshall(hide{slow}))
	assert.Equal(t, "[0, 1, 2]\n[+Inf, 0, 1]\n[+Inf, +Inf, 0]\n", d.String())
	assert.Equal(t, d.String(), slow.(*matrix.Dense).String())

	err := matrix.FloydWarshall(mustDense(t, 2, 3, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
	assert.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
}

func TestDense_Accessors(t *testing.T) {
	t.Parallel()

	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	shape, err := matrix.ShapeOf(d)
	require.NoError(t, err)
	assert.Equal(t, matrix.Shape{Rows: 2, Cols: 3}, shape)

	require.NoError(t, d.Set(1, 2, inf))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	assert.ErrorIs(t, d.Set(0, 0, math.NaN()), matrix.ErrNaN)
	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, d.Set(0, -1, 1), matrix.ErrOutOfRange)

	_, err = matrix.NewDense(0, 1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	assert.ErrorIs(t, d.Fill([]float64{1}), matrix.ErrDimensionMismatch)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	d := mustDense(t, 1, 2, []float64{1, 2})
	cp := d.Clone()
	require.NoError(t, cp.Set(0, 0, 9))
	v, _ := d.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_DoAndApply(t *testing.T) {
	t.Parallel()

	d := mustDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, d.Apply(func(i, j int, v float64) float64 { return v * 10 }))

	var seen []float64
	d.Do(func(i, j int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	assert.Equal(t, []float64{10, 20, 30}, seen)

	err := d.Apply(func(i, j int, v float64) float64 { return math.NaN() })
	assert.ErrorIs(t, err, matrix.ErrNaN)
}
