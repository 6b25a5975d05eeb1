// SPDX-License-Identifier: MIT

package matrix

// Matrix is a mutable rows×cols grid of float64 cells. Accessors report
// ErrOutOfRange instead of panicking.
//
// The min-plus kernels accept any Matrix and switch to a flat loop when
// both operands are *Dense.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns cell (i, j).
	At(i, j int) (float64, error)

	// Set writes cell (i, j).
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
