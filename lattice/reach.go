package lattice

import (
	"fmt"

	"github.com/gammazero/deque"
)

// ReachableWithin returns the vertices at most k directed hops from the
// origin by breadth-first search over the successor lists. It answers the
// same question as HammingBall, with the same argument checks, in
// O(V + E) instead of a matrix power, and serves as its cross-check.
func (g *Graph) ReachableWithin(k int) (VertexSet, error) {
	if k < 0 {
		return nil, fmt.Errorf("ReachableWithin(%d): %w", k, ErrNegativeBallRadius)
	}
	if k > g.MaxBallRadius() {
		return nil, fmt.Errorf("ReachableWithin(%d) on radius %d: %w", k, g.radius, ErrBallRadiusTooLarge)
	}

	type item struct {
		v     Vertex
		depth int
	}
	seen := NewVertexSet(Origin)
	var q deque.Deque[item]
	q.PushBack(item{v: Origin})
	for q.Len() > 0 {
		cur := q.PopFront()
		if cur.depth == k {
			continue
		}
		for _, w := range g.succ[cur.v] {
			if seen.Contains(w) {
				continue
			}
			seen[w] = struct{}{}
			q.PushBack(item{v: w, depth: cur.depth + 1})
		}
	}

	return seen, nil
}
