package search

import (
	"fmt"

	"github.com/katalvlaran/flattice/lattice"
)

// Counterexample is a Hamming ball whose closed out-neighborhood is larger
// than that of some subset of the same size.
type Counterexample struct {
	BallRadius   int              `json:"ball_radius"`
	Ball         []lattice.Vertex `json:"ball"`
	BallClosed   []lattice.Vertex `json:"ball_closed"`
	Subset       []lattice.Vertex `json:"subset"`
	SubsetClosed []lattice.Vertex `json:"subset_closed"`
}

// ConjectureReport summarizes CheckBallConjecture.
type ConjectureReport struct {
	Holds bool `json:"holds"`
	// Checked lists the ball radii compared against a search result.
	Checked []int `json:"checked"`
	// Skipped lists the ball radii whose ball is larger than any searched
	// subset size.
	Skipped        []int           `json:"skipped"`
	Counterexample *Counterexample `json:"counterexample,omitempty"`
}

// CheckBallConjecture tests, for ball radii 1…g.MaxBallRadius(), whether
// the closed out-neighborhood of HammingBall(r) is no larger than that of
// the best subset of equal size in results (as returned by
// MinimumClosedNeighborhoods). It stops at the first counterexample.
func CheckBallConjecture(g *lattice.Graph, results []Result) (ConjectureReport, error) {
	if g == nil {
		return ConjectureReport{}, lattice.ErrNilGraph
	}

	rep := ConjectureReport{Holds: true, Checked: []int{}, Skipped: []int{}}
	for r := 1; r <= g.MaxBallRadius(); r++ {
		ball, err := g.HammingBall(r)
		if err != nil {
			return ConjectureReport{}, fmt.Errorf("CheckBallConjecture: %w", err)
		}
		size := ball.Len()
		if size >= len(results) {
			rep.Skipped = append(rep.Skipped, r)
			continue
		}
		rep.Checked = append(rep.Checked, r)

		members := ball.Sorted()
		ballClosed := g.ClosedOutNeighborhood(members)
		best := results[size]
		if ballClosed.Len() > best.ClosedSize {
			rep.Holds = false
			rep.Counterexample = &Counterexample{
				BallRadius:   r,
				Ball:         members,
				BallClosed:   ballClosed.Sorted(),
				Subset:       append([]lattice.Vertex(nil), best.Subset...),
				SubsetClosed: g.ClosedOutNeighborhood(best.Subset).Sorted(),
			}
			break
		}
	}

	return rep, nil
}
