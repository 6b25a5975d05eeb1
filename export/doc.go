// Package export writes an F-lattice and search results in formats that
// external tools can render: JSON for scripts and plotting, Graphviz DOT
// with every node pinned to its lattice coordinate (render with
// `neato -n2` or `fdp`).
package export
