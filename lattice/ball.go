package lattice

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/flattice/matrix"
)

// Index returns the matrix row of every vertex: vertices sorted by
// Vertex.Less are numbered 0..Order()-1. AdjacencyMatrix, HammingBall and
// HopDistances use the same numbering.
func (g *Graph) Index() map[Vertex]int {
	_, idx := g.numbering()
	return idx
}

// numbering returns the vertices in Vertex.Less order and the inverse map.
func (g *Graph) numbering() ([]Vertex, map[Vertex]int) {
	order := g.Vertices()
	sortVertices(order)
	idx := make(map[Vertex]int, len(order))
	for i, v := range order {
		idx[v] = i
	}

	return order, idx
}

// AdjacencyMatrix encodes the raw graph (not only valid vertices) as a
// tropical matrix: 1 per edge, +Inf per non-edge, 0 on the diagonal. The
// second result is the vertex of each row, in Index order.
// Complexity: O(V²) time and memory.
func (g *Graph) AdjacencyMatrix() (*matrix.Tropical, []Vertex, error) {
	t, order, _, err := g.adjacency()
	if err != nil {
		return nil, nil, fmt.Errorf("AdjacencyMatrix: %w", err)
	}

	return t, order, nil
}

// adjacency builds the tropical adjacency matrix under numbering and also
// returns the index map, so callers locate rows without searching.
func (g *Graph) adjacency() (*matrix.Tropical, []Vertex, map[Vertex]int, error) {
	order, idx := g.numbering()

	adj := make([][]bool, len(order))
	for i := range adj {
		adj[i] = make([]bool, len(order))
	}
	for _, e := range g.edges {
		adj[idx[e.From]][idx[e.To]] = true
	}

	t, err := matrix.FromAdjacency(adj)
	if err != nil {
		return nil, nil, nil, err
	}

	return t, order, idx, nil
}

// originRow returns the matrix row of Origin.
func originRow(idx map[Vertex]int) (int, error) {
	o, ok := idx[Origin]
	if !ok {
		// New always emits edges from (0,0); reaching this means a broken graph.
		return 0, errors.New("origin missing from vertex order")
	}

	return o, nil
}

// HammingBall returns the vertices reachable from the origin in at most k
// directed hops, the origin included.
//
// The adjacency matrix is raised to the k-th min-plus power; a finite entry
// in the origin's row marks a vertex within k hops.
//
// Errors:
//   - ErrNegativeBallRadius for k < 0.
//   - ErrBallRadiusTooLarge for k > 2*radius+1.
//
// Complexity: O(V³ log k) with V ≈ (2*radius+3)².
func (g *Graph) HammingBall(k int) (VertexSet, error) {
	if k < 0 {
		return nil, fmt.Errorf("HammingBall(%d): %w", k, ErrNegativeBallRadius)
	}
	if k > g.MaxBallRadius() {
		return nil, fmt.Errorf("HammingBall(%d) on radius %d: %w", k, g.radius, ErrBallRadiusTooLarge)
	}

	a, order, idx, err := g.adjacency()
	if err != nil {
		return nil, fmt.Errorf("HammingBall(%d): %w", k, err)
	}
	o, err := originRow(idx)
	if err != nil {
		return nil, fmt.Errorf("HammingBall(%d): %w", k, err)
	}
	p, err := a.Power(k)
	if err != nil {
		return nil, fmt.Errorf("HammingBall(%d): %w", k, err)
	}

	ball := NewVertexSet(Origin)
	for j, v := range order {
		if p.Finite(o, j) {
			ball[v] = struct{}{}
		}
	}

	return ball, nil
}

// HammingBallValue is HammingBall for a dynamically typed radius.
// Returns ErrNonIntegerBallRadius for non-integral values.
func (g *Graph) HammingBallValue(v any) (VertexSet, error) {
	k, err := BallRadiusValue(v)
	if err != nil {
		return nil, fmt.Errorf("HammingBallValue: %w", err)
	}

	return g.HammingBall(k)
}

// HopDistances returns the directed hop distance from the origin to every
// vertex reachable from it, computed from the min-plus closure of the
// adjacency matrix. Unreachable vertices are absent from the map.
func (g *Graph) HopDistances() (map[Vertex]int, error) {
	a, order, idx, err := g.adjacency()
	if err != nil {
		return nil, fmt.Errorf("HopDistances: %w", err)
	}
	o, err := originRow(idx)
	if err != nil {
		return nil, fmt.Errorf("HopDistances: %w", err)
	}
	closure, err := matrix.ShortestWalks(a)
	if err != nil {
		return nil, fmt.Errorf("HopDistances: %w", err)
	}

	dist := make(map[Vertex]int, len(order))
	for j, v := range order {
		d, err := closure.At(o, j)
		if err != nil {
			return nil, fmt.Errorf("HopDistances: %w", err)
		}
		if !math.IsInf(d, 1) {
			dist[v] = int(d)
		}
	}

	return dist, nil
}
