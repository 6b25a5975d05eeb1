// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Min-plus (tropical) semiring kernels: ⊕ = min, ⊗ = +.
//   - +Inf is the additive identity ("no walk"); 0 is the multiplicative identity.
//
// Contract:
//   - Inputs are validated (nil, shape) before any allocation.
//   - Outputs are always fresh *Dense values; operands are never mutated.
//
// Determinism:
//   - Fixed loop orders (i → j for ⊕, i → k → j for ⊗) and strict-improvement
//     relaxation, identical to the Floyd–Warshall kernel in closure.go.

package matrix

import "math"

// Operation name constants for unified error wrapping.
const (
	opMinPlusAdd      = "MinPlusAdd"
	opMinPlusMul      = "MinPlusMul"
	opMinPlusIdentity = "MinPlusIdentity"
)

// MinPlusIdentity returns the n×n neutral element of min-plus multiplication:
// 0 on the diagonal, +Inf elsewhere.
// Complexity: O(n^2).
func MinPlusIdentity(n int) (*Dense, error) {
	out, err := newDenseFilled(n, n, math.Inf(1))
	if err != nil {
		return nil, matrixErrorf(opMinPlusIdentity, err)
	}
	for i := 0; i < n; i++ {
		out.data[i*n+i] = 0
	}

	return out, nil
}

// MinPlusAdd returns the element-wise minimum of a and b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (shapes differ).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func MinPlusAdd(a, b Matrix) (*Dense, error) {
	shape, err := CheckSameShape(a, b)
	if err != nil {
		return nil, matrixErrorf(opMinPlusAdd, err)
	}
	r, c := shape.Rows, shape.Cols

	// Fast-path: both dense, single flat loop.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			out := &Dense{r: r, c: c, data: make([]float64, r*c)}
			for i, v := range da.data {
				out.data[i] = math.Min(v, db.data[i])
			}

			return out, nil
		}
	}

	// Generic interface fallback.
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opMinPlusAdd, err)
	}
	var (
		i, j   int
		av, bv float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opMinPlusAdd, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opMinPlusAdd, err)
			}
			out.data[i*c+j] = math.Min(av, bv)
		}
	}

	return out, nil
}

// MinPlusMul returns the min-plus product C = A ⊗ B, where
//
//	C[i,j] = min_k ( A[i,k] + B[k,j] ).
//
// With A an adjacency-weight matrix, C[i,j] is the length of the shortest
// walk i → j made of one A-step followed by one B-step.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (A.Cols != B.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Rows of A holding +Inf are skipped early.
func MinPlusMul(a, b Matrix) (*Dense, error) {
	shape, err := CheckMulCompatible(a, b)
	if err != nil {
		return nil, matrixErrorf(opMinPlusMul, err)
	}
	r, n, c := shape.Rows, a.Cols(), shape.Cols

	out, err := newDenseFilled(r, c, math.Inf(1))
	if err != nil {
		return nil, matrixErrorf(opMinPlusMul, err)
	}

	// Fast-path: both dense; i → k → j keeps the B row and the C row hot.
	if da, ok := a.(*Dense); ok {
		if db, ok := b.(*Dense); ok {
			minPlusMulDense(out, da, db)

			return out, nil
		}
	}

	var (
		i, k, j    int
		aik, bkj   float64
		cand, prev float64
	)
	for i = 0; i < r; i++ {
		for k = 0; k < n; k++ {
			if aik, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMinPlusMul, err)
			}
			if math.IsInf(aik, 1) {
				continue
			}
			for j = 0; j < c; j++ {
				if bkj, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMinPlusMul, err)
				}
				if math.IsInf(bkj, 1) {
					continue
				}
				cand = aik + bkj
				prev = out.data[i*c+j]
				if cand < prev {
					out.data[i*c+j] = cand
				}
			}
		}
	}

	return out, nil
}

// minPlusMulDense is the allocation-free inner kernel for *Dense operands.
// out must be pre-filled with +Inf and shaped a.r × b.c.
func minPlusMulDense(out, a, b *Dense) {
	var (
		i, k, j          int
		baseA, baseB, bo int
		aik, bkj, cand   float64
	)
	n, c := a.c, b.c
	for i = 0; i < a.r; i++ {
		baseA = i * n
		bo = i * c
		for k = 0; k < n; k++ {
			aik = a.data[baseA+k]
			if math.IsInf(aik, 1) {
				continue // no walk i→k, nothing to relax
			}
			baseB = k * c
			for j = 0; j < c; j++ {
				bkj = b.data[baseB+j]
				if math.IsInf(bkj, 1) {
					continue
				}
				cand = aik + bkj
				if cand < out.data[bo+j] {
					out.data[bo+j] = cand
				}
			}
		}
	}
}
