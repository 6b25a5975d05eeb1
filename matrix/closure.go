// SPDX-License-Identifier: MIT

package matrix

import "math"

const opFloydWarshall = "FloydWarshall"

// relax lowers d[i][j] to d[i][k]+d[k][j] for every pair, pivoting on k in
// ascending order. Rows that cannot reach the pivot are skipped.
func relax(n int, get func(i, j int) float64, set func(i, j int, v float64)) {
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := get(i, k)
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				kj := get(k, j)
				if math.IsInf(kj, 1) {
					continue
				}
				if ik+kj < get(i, j) {
					set(i, j, ik+kj)
				}
			}
		}
	}
}

// FloydWarshall replaces every cell of the square matrix m with the length
// of the shortest walk between its row and column, i.e. the min-plus closure
// I ⊕ A ⊕ A² ⊕ …. The diagonal must already hold 0.
func FloydWarshall(m Matrix) error {
	s, err := CheckSquare(m)
	if err != nil {
		return matrixErrorf(opFloydWarshall, err)
	}

	if d, ok := m.(*Dense); ok {
		n := d.c
		relax(s.Rows,
			func(i, j int) float64 { return d.data[i*n+j] },
			func(i, j int, v float64) { d.data[i*n+j] = v })

		return nil
	}

	// Only the first At/Set failure is reported.
	var first error
	relax(s.Rows,
		func(i, j int) float64 {
			v, err := m.At(i, j)
			if err != nil && first == nil {
				first = err
			}
			return v
		},
		func(i, j int, v float64) {
			if err := m.Set(i, j, v); err != nil && first == nil {
				first = err
			}
		})
	if first != nil {
		return matrixErrorf(opFloydWarshall, first)
	}

	return nil
}
