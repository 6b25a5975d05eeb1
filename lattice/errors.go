package lattice

import (
	"fmt"

	"github.com/katalvlaran/flattice/matrix"
)

// Sentinel errors for lattice operations. Each wraps one of the matrix
// categories, so errors.Is(err, matrix.ErrBadValue) classifies any of them.
var (
	// ErrNonIntegerRadius indicates a lattice radius that is not an integer.
	ErrNonIntegerRadius = fmt.Errorf("lattice: radius must be an integer: %w", matrix.ErrBadType)
	// ErrNegativeRadius indicates a lattice radius below zero.
	ErrNegativeRadius = fmt.Errorf("lattice: radius must be non-negative: %w", matrix.ErrBadValue)
	// ErrNonIntegerBallRadius indicates a Hamming-ball radius that is not an integer.
	ErrNonIntegerBallRadius = fmt.Errorf("lattice: ball radius must be an integer: %w", matrix.ErrBadType)
	// ErrNegativeBallRadius indicates a Hamming-ball radius below zero.
	ErrNegativeBallRadius = fmt.Errorf("lattice: ball radius must be non-negative: %w", matrix.ErrBadValue)
	// ErrBallRadiusTooLarge indicates a Hamming-ball radius above 2*radius+1,
	// beyond which the truncated boundary makes the answer unreliable.
	ErrBallRadiusTooLarge = fmt.Errorf("lattice: ball radius exceeds 2*radius+1: %w", matrix.ErrBadValue)
	// ErrNilGraph indicates a nil *Graph handed to a consumer of the lattice.
	ErrNilGraph = fmt.Errorf("lattice: nil graph: %w", matrix.ErrBadValue)
	// ErrBadVertex indicates a vertex literal that cannot be parsed.
	ErrBadVertex = fmt.Errorf("lattice: malformed vertex: %w", matrix.ErrBadValue)
)
