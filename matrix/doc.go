// Package matrix provides dense row-major matrices and min-plus (tropical)
// semiring kernels for bounded-hop reachability.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 buffer with bounds-checked At/Set.
//   - MinPlusAdd, MinPlusMul, MinPlusIdentity: semiring kernels on the Matrix
//     interface with a *Dense fast path.
//   - FloydWarshall: in-place all-pairs min-plus closure.
//   - Tropical: an immutable value type whose Add is element-wise minimum,
//     Multiply is the min-plus product and Power is exponentiation by squaring.
//
// Encoding: +Inf means "no walk", 0 on the diagonal is the zero-length
// self-walk, and a directed edge weighs 1 (see FromAdjacency). With that
// encoding A^k[i,j] is the length of the shortest walk i → j using at most k
// hops, and is +Inf exactly when j is farther than k hops from i.
//
// Errors are package sentinels grouped into three categories (ErrBadType,
// ErrBadValue, ErrDimensionMismatch); match them with errors.Is.
//
// Complexity: MinPlusMul on n×n operands is O(n^3); Power(k) performs
// O(log k) products.
package matrix
