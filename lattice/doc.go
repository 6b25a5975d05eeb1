// Package lattice builds the F-lattice, a bounded directed grid graph with a
// parity-dependent edge rule, and answers neighborhood and Hamming-ball
// queries over it.
//
// What:
//
//   - New(radius) emits edges from the generating points 0 <= x,y <= radius,
//     mirrored into all four quadrants. Points with x+y even connect
//     horizontally (x±1), odd points vertically (y±1).
//   - ValidNodes lists the vertices with max(|x|,|y|) <= radius.
//   - ClosedOutNeighborhood / OpenOutNeighborhood compute N[S] and N(S).
//   - HammingBall(k) returns the vertices within k directed hops of (0,0),
//     via the k-th min-plus power of the adjacency matrix.
//   - HopDistances returns exact hop counts from (0,0) via the min-plus closure.
//
// Boundary:
//
//	Vertices on max(|x|,|y|) == radius may miss outward successors, and the
//	raw graph contains successor-less vertices one step outside the radius.
//	HammingBall therefore refuses k > 2*radius+1.
//
// Complexity:
//
//   - New:           O(radius²) time and memory.
//   - Neighborhoods: O(Σ out-degree of the input).
//   - HammingBall:   O(V³ log k), V ≈ (2*radius+3)².
//
// Errors:
//
//   - ErrNegativeRadius, ErrNonIntegerRadius: bad construction radius.
//   - ErrNegativeBallRadius, ErrBallRadiusTooLarge, ErrNonIntegerBallRadius:
//     bad Hamming-ball radius.
//   - ErrBadVertex: ParseVertex input is not "x,y".
//
// All sentinels wrap matrix.ErrBadType or matrix.ErrBadValue.
package lattice
