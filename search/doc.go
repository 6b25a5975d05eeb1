// Package search runs brute-force experiments over an F-lattice.
//
// What:
//
//   - MinimumClosedNeighborhoods finds, for every subset size k, a k-subset
//     of the valid vertices whose closed out-neighborhood is smallest.
//   - CheckBallConjecture asks whether Hamming balls are such minimizers:
//     for each ball radius it compares the closed out-neighborhood of the
//     ball with the best subset of the same size.
//
// Determinism:
//
//   - Subsets are enumerated in lexicographic order of their positions in
//     Graph.ValidNodes(); ties keep the first subset seen, so results do not
//     depend on the worker count.
//
// Complexity:
//
//   - Σₖ C(n,k)·k = n·2ⁿ⁻¹ neighborhood evaluations for n valid vertices.
//     Only radius 0 and 1 finish quickly when every size is searched; use
//     Options.MaxSubset to cap k for larger radii.
//
// Concurrency:
//
//   - One goroutine per subset size, bounded by Options.Workers. Progress
//     is logged through the zerolog logger carried by the context.
//     Cancelling the context stops every worker at its next check.
package search
