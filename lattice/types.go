package lattice

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Vertex is an integer lattice point. Vertices are compared by value and
// are usable as map keys.
type Vertex struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the lattice point (0,0), the center of every Hamming ball.
var Origin = Vertex{}

// Norm returns the Chebyshev norm max(|x|,|y|).
func (v Vertex) Norm() int {
	return max(abs(v.X), abs(v.Y))
}

// String renders the vertex as "(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Less orders vertices by X, then Y.
func (v Vertex) Less(o Vertex) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	return v.Y < o.Y
}

// ParseVertex parses "x,y", optionally wrapped in parentheses.
func ParseVertex(s string) (Vertex, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vertex{}, fmt.Errorf("%q: %w", s, ErrBadVertex)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Vertex{}, fmt.Errorf("%q: %w", s, ErrBadVertex)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Vertex{}, fmt.Errorf("%q: %w", s, ErrBadVertex)
	}

	return Vertex{X: x, Y: y}, nil
}

// Edge is a directed edge From → To.
type Edge struct {
	From Vertex `json:"from"`
	To   Vertex `json:"to"`
}

// VertexSet is an unordered set of vertices.
type VertexSet map[Vertex]struct{}

// NewVertexSet returns a set holding vs.
func NewVertexSet(vs ...Vertex) VertexSet {
	s := make(VertexSet, len(vs))
	for _, v := range vs {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set.
func (s VertexSet) Contains(v Vertex) bool {
	_, ok := s[v]
	return ok
}

// Len returns the set size.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns the members ordered by Vertex.Less.
func (s VertexSet) Sorted() []Vertex {
	out := make([]Vertex, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sortVertices(out)
	return out
}

// IsSubsetOf reports whether every member of s is in o.
func (s VertexSet) IsSubsetOf(o VertexSet) bool {
	if len(s) > len(o) {
		return false
	}
	for v := range s {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold the same vertices.
func (s VertexSet) Equal(o VertexSet) bool {
	return len(s) == len(o) && s.IsSubsetOf(o)
}

// Graph is the F-lattice of a given radius: a directed graph over integer
// points whose edges run horizontally from even points (x+y even) and
// vertically from odd points. It is immutable once built.
//
// vertices and edges keep construction order; succ holds the successor
// lists in the same order and adj answers membership in O(1).
// valid caches the vertices with Norm() <= radius on first use.
type Graph struct {
	radius   int
	vertices []Vertex
	edges    []Edge
	succ     map[Vertex][]Vertex
	adj      map[Edge]struct{}

	validOnce sync.Once
	valid     []Vertex
}

func sortVertices(vs []Vertex) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
