// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the min-plus kernels.
//   • Force the generic (non-*Dense) paths via hide to compare with fast paths.

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/flattice/matrix"
)

// inf is the min-plus "no walk" element.
var inf = math.Inf(1)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback in code under test.
type hide struct{ matrix.Matrix }

// mustDense allocates an r×c *Dense filled from row-major data.
func mustDense(t testing.TB, r, c int, data []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	require.NoError(t, d.Fill(data))

	return d
}

// mustTropical builds a square n×n tropical matrix from row-major data.
func mustTropical(t testing.TB, n int, data []float64) *matrix.Tropical {
	t.Helper()
	m, err := matrix.NewTropical(n, n, data)
	require.NoError(t, err)

	return m
}

// cycleAdjacency returns the adjacency of the directed cycle 0→1→…→n-1→0.
func cycleAdjacency(n int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
		adj[i][(i+1)%n] = true
	}

	return adj
}

// pathAdjacency returns the adjacency of the directed path 0→1→…→n-1.
func pathAdjacency(n int) [][]bool {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
		if i+1 < n {
			adj[i][i+1] = true
		}
	}

	return adj
}

// naivePower multiplies a by itself n times starting from the identity.
func naivePower(t testing.TB, a *matrix.Tropical, n int) *matrix.Tropical {
	t.Helper()
	res, err := matrix.TropicalIdentity(a.Rows())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		res, err = res.Multiply(a)
		require.NoError(t, err)
	}

	return res
}

// samples are small square fixtures exercised by the algebraic tests.
func samples(t testing.TB) map[string]*matrix.Tropical {
	t.Helper()
	cyc, err := matrix.FromAdjacency(cycleAdjacency(5))
	require.NoError(t, err)
	path, err := matrix.FromAdjacency(pathAdjacency(4))
	require.NoError(t, err)

	return map[string]*matrix.Tropical{
		"cycle5": cyc,
		"path4":  path,
		"weighted3": mustTropical(t, 3, []float64{
			0, 4, inf,
			inf, 0, 1,
			2, 7, 0,
		}),
		"nonZeroDiag2": mustTropical(t, 2, []float64{
			3, 1,
			inf, 2,
		}),
	}
}
