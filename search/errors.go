package search

import (
	"fmt"

	"github.com/katalvlaran/flattice/matrix"
)

// ErrNegativeMaxSubset indicates Options.MaxSubset < 0. A nil graph is
// reported as lattice.ErrNilGraph.
var ErrNegativeMaxSubset = fmt.Errorf("search: max subset must be non-negative: %w", matrix.ErrBadValue)
