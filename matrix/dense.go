// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dense is a row-major float64 matrix. Cell (i, j) lives at data[i*c+j].
// +Inf is a legal value; NaN is rejected on every write path.
type Dense struct {
	r, c int
	data []float64
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// cellError reports a failed access to cell (row, col) of a Dense.
type cellError struct {
	op       string
	row, col int
	err      error
}

func (e *cellError) Error() string {
	return fmt.Sprintf("Dense.%s(%d,%d): %v", e.op, e.row, e.col, e.err)
}

func (e *cellError) Unwrap() error { return e.err }

// NewDense returns a zero rows×cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%d×%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseFilled returns a rows×cols matrix with every cell set to v.
func newDenseFilled(rows, cols int, v float64) (*Dense, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range d.data {
		d.data[i] = v
	}

	return d, nil
}

// Fill replaces the contents from a row-major slice of length Rows*Cols.
// Nothing is written when data holds a NaN.
func (m *Dense) Fill(data []float64) error {
	if len(data) != len(m.data) {
		return fmt.Errorf("Dense.Fill: got %d values for %v: %w",
			len(data), Shape{m.r, m.c}, ErrDimensionMismatch)
	}
	for off, v := range data {
		if math.IsNaN(v) {
			return &cellError{op: "Fill", row: off / m.c, col: off % m.c, err: ErrNaN}
		}
	}
	copy(m.data, data)

	return nil
}

func (m *Dense) Rows() int { return m.r }

func (m *Dense) Cols() int { return m.c }

func (m *Dense) offset(op string, row, col int) (int, error) {
	if uint(row) >= uint(m.r) || uint(col) >= uint(m.c) {
		return 0, &cellError{op: op, row: row, col: col, err: ErrOutOfRange}
	}

	return row*m.c + col, nil
}

// At returns cell (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[off], nil
}

// Set writes v into cell (row, col). Errors: ErrOutOfRange, ErrNaN.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) {
		return &cellError{op: "Set", row: row, col: col, err: ErrNaN}
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// String prints one bracketed row per line, e.g. "[0, +Inf]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for off, v := range m.data {
		if !f(off/m.c, off%m.c, v) {
			return
		}
	}
}

// Apply replaces every cell with f(i, j, v) in row-major order. A NaN result
// stops the walk with ErrNaN; cells already visited keep their new values.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	for off, v := range m.data {
		i, j := off/m.c, off%m.c
		nv := f(i, j, v)
		if math.IsNaN(nv) {
			return &cellError{op: "Apply", row: i, col: j, err: ErrNaN}
		}
		m.data[off] = nv
	}

	return nil
}
