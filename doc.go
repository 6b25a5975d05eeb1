// Package flattice explores the F-lattice: a directed graph on the integer
// grid whose edges run horizontally from even points (x+y even) and
// vertically from odd points.
//
// What is in the module?
//
//	matrix/           tropical (min-plus) matrices: Add, Multiply, Power,
//	                  Floyd–Warshall closure, integer argument coercion
//	lattice/          lattice construction, valid vertices, closed/open
//	                  out-neighborhoods, Hamming balls, hop distances
//	search/           brute-force minimum neighborhoods per subset size and
//	                  the ball-minimizes-neighborhood check
//	export/           JSON and Graphviz DOT output
//	internal/config   TOML settings
//	internal/logging  zerolog console logger
//	cmd/flattice      command-line front end
//	examples/         runnable scenario
//
// Quick start:
//
//	g, _ := lattice.New(2)
//	ball, _ := g.HammingBall(3)
//	fmt.Println(ball.Sorted())
//	fmt.Println(g.ClosedOutNeighborhood(ball.Sorted()).Len())
//
// Hamming balls are read off the k-th min-plus power of the lattice's
// adjacency matrix: entry (origin, v) is finite exactly when v is at most k
// directed hops away.
package flattice
