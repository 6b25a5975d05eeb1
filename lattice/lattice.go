package lattice

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/flattice/matrix"
)

// New builds the F-lattice of the given radius.
//
// For every generating point (x,y) with x,y in [0,radius] (x outer, y inner)
// edges are added from its reflections (x,y), (x,-y), (-x,y), (-x,-y) in that
// order; reflections that coincide on an axis add each edge once.
//
// Vertices exactly on the boundary Norm() == radius are not guaranteed to
// have all their successors: points one step further out never generate
// edges. The raw graph therefore also holds successor-less vertices with
// Norm() == radius+1.
//
// Returns ErrNegativeRadius if radius < 0.
// Complexity: O(radius²) time and memory.
func New(radius int) (*Graph, error) {
	if radius < 0 {
		return nil, fmt.Errorf("New(%d): %w", radius, ErrNegativeRadius)
	}
	g := &Graph{
		radius: radius,
		succ:   make(map[Vertex][]Vertex),
		adj:    make(map[Edge]struct{}),
	}
	for x := 0; x <= radius; x++ {
		for y := 0; y <= radius; y++ {
			g.addGenerator(x, y)
		}
	}

	return g, nil
}

// NewFromValue is New for a dynamically typed radius, as decoded from a
// config file or command line. See RadiusValue for the accepted values.
func NewFromValue(v any) (*Graph, error) {
	r, err := RadiusValue(v)
	if err != nil {
		return nil, fmt.Errorf("NewFromValue: %w", err)
	}

	return New(r)
}

// RadiusValue coerces a dynamically typed lattice radius to an int.
// Errors: ErrNonIntegerRadius, ErrNegativeRadius.
func RadiusValue(v any) (int, error) {
	return coerce(v, ErrNonIntegerRadius, ErrNegativeRadius)
}

// BallRadiusValue coerces a dynamically typed Hamming-ball radius to an int.
// The upper bound depends on the graph and is checked by HammingBall.
// Errors: ErrNonIntegerBallRadius, ErrNegativeBallRadius.
func BallRadiusValue(v any) (int, error) {
	return coerce(v, ErrNonIntegerBallRadius, ErrNegativeBallRadius)
}

// coerce maps matrix.IntegerValue failures onto the given sentinels.
func coerce(v any, typeErr, negErr error) (int, error) {
	n, err := matrix.IntegerValue(v)
	switch {
	case errors.Is(err, matrix.ErrBadType):
		return 0, fmt.Errorf("%v: %w", v, typeErr)
	case err != nil:
		return 0, err
	case n < 0:
		return 0, fmt.Errorf("%d: %w", n, negErr)
	}

	return n, nil
}

// addGenerator emits the edges of generating point (x,y) and its reflections.
func (g *Graph) addGenerator(x, y int) {
	if max(abs(x), abs(y)) > g.radius {
		return
	}
	// Even parity steps along x, odd parity along y.
	dx, dy := 1, 0
	if (x+y)%2 != 0 {
		dx, dy = 0, 1
	}
	for _, p := range [4]Vertex{{x, y}, {x, -y}, {-x, y}, {-x, -y}} {
		g.addEdge(p, Vertex{p.X + dx, p.Y + dy})
		g.addEdge(p, Vertex{p.X - dx, p.Y - dy})
	}
}

// addEdge inserts u→v once, recording first-seen order of vertices and edges.
func (g *Graph) addEdge(u, v Vertex) {
	e := Edge{From: u, To: v}
	if _, dup := g.adj[e]; dup {
		return
	}
	g.touch(u)
	g.touch(v)
	g.adj[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.succ[u] = append(g.succ[u], v)
}

// touch registers v in the vertex order the first time it is seen.
func (g *Graph) touch(v Vertex) {
	if _, seen := g.succ[v]; seen {
		return
	}
	g.succ[v] = nil
	g.vertices = append(g.vertices, v)
}

// Radius returns the construction radius.
func (g *Graph) Radius() int { return g.radius }

// MaxBallRadius returns the largest Hamming-ball radius the graph answers,
// 2*radius+1.
func (g *Graph) MaxBallRadius() int { return 2*g.radius + 1 }

// Order returns the number of vertices in the raw graph.
func (g *Graph) Order() int { return len(g.vertices) }

// Vertices returns every vertex in construction order. The slice is a copy.
func (g *Graph) Vertices() []Vertex {
	return append([]Vertex(nil), g.vertices...)
}

// Edges returns every directed edge in construction order. The slice is a copy.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Successors returns the direct successors of v, or nil when v has none or
// is not in the graph.
func (g *Graph) Successors(v Vertex) []Vertex {
	return append([]Vertex(nil), g.succ[v]...)
}

// HasEdge reports whether u→v is an edge.
func (g *Graph) HasEdge(u, v Vertex) bool {
	_, ok := g.adj[Edge{From: u, To: v}]
	return ok
}

// Contains reports whether v is a vertex of the raw graph.
func (g *Graph) Contains(v Vertex) bool {
	_, ok := g.succ[v]
	return ok
}

// IsValid reports whether v lies inside the radius, Norm() <= radius.
func (g *Graph) IsValid(v Vertex) bool { return v.Norm() <= g.radius }

// ValidNodes returns the vertices with Norm() <= radius in construction
// order. The list is computed on first call and cached for the lifetime of
// the graph; callers get a copy.
func (g *Graph) ValidNodes() []Vertex {
	g.validOnce.Do(func() {
		g.valid = make([]Vertex, 0, (2*g.radius+1)*(2*g.radius+1))
		for _, v := range g.vertices {
			if g.IsValid(v) {
				g.valid = append(g.valid, v)
			}
		}
	})

	return append([]Vertex(nil), g.valid...)
}
