package lattice

// ClosedOutNeighborhood returns the input vertices together with all of
// their direct successors. Vertices absent from the graph contribute only
// themselves. An empty input yields an empty, non-nil set.
// Complexity: O(Σ out-degree).
func (g *Graph) ClosedOutNeighborhood(vs []Vertex) VertexSet {
	out := make(VertexSet, len(vs)*3)
	for _, v := range vs {
		out[v] = struct{}{}
		for _, w := range g.succ[v] {
			out[w] = struct{}{}
		}
	}

	return out
}

// OpenOutNeighborhood returns the closed out-neighborhood minus the input
// set. An input vertex is excluded even when it is a successor of another
// input vertex.
func (g *Graph) OpenOutNeighborhood(vs []Vertex) VertexSet {
	out := g.ClosedOutNeighborhood(vs)
	for _, v := range vs {
		delete(out, v)
	}

	return out
}
