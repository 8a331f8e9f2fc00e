// Package floydwarshall computes all-pairs shortest paths over a
// network.View and keeps, for every ordered pair, the arc list of the best
// path.
//
// Paths are stored as concatenable arc lists rather than predecessor
// pointers: when a relaxation through k improves (i, j), the new path is
// path(i,k) followed by path(k,j). Reading one pair is then a lookup.
//
// Complexity: O(V³) time, O(V²·L) space where L is the mean path length.
package floydwarshall

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/transit/network"
)

var (
	// ErrNilView indicates that a nil *network.View was passed.
	ErrNilView = errors.New("floydwarshall: view is nil")

	// ErrUnsupportedCriterion indicates a criterion that is not a plain
	// per-edge metric.
	ErrUnsupportedCriterion = errors.New("floydwarshall: criterion is not a per-edge metric")

	// ErrNegativeCycle indicates that some node reaches itself with
	// negative total weight.
	ErrNegativeCycle = errors.New("floydwarshall: negative weight cycle detected")
)

// Result holds the all-pairs distance matrix and path lists.
type Result struct {
	n     int
	dist  [][]float64
	paths [][]network.Path
}

// AllPairs runs Floyd–Warshall on v under criterion c.
//
// Stage 1 seeds direct arcs, skipping disabled ones; among parallel arcs
// the cheapest (first on ties) wins. Stage 2 relaxes in (k, i, j) order.
// A negative diagonal afterwards yields ErrNegativeCycle.
func AllPairs(v *network.View, c network.Criterion) (*Result, error) {
	if v == nil {
		return nil, ErrNilView
	}
	if !c.Metric() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedCriterion, c)
	}

	n := v.Len()
	r := &Result{
		n:     n,
		dist:  make([][]float64, n),
		paths: make([][]network.Path, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = make([]float64, n)
		r.paths[i] = make([]network.Path, n)
		for j := 0; j < n; j++ {
			if i != j {
				r.dist[i][j] = math.Inf(1)
			}
		}
	}

	// Stage 1: direct arcs.
	for _, a := range v.Arcs() {
		if !a.Enabled {
			continue
		}
		w := a.Weight(c)
		if a.From == a.To {
			if w < 0 {
				return nil, fmt.Errorf("%w: self-loop at %q", ErrNegativeCycle, v.Stop(a.From).Name)
			}
			continue
		}
		if w < r.dist[a.From][a.To] {
			r.dist[a.From][a.To] = w
			r.paths[a.From][a.To] = network.Path{a}
		}
	}

	// Stage 2: relax through every intermediate k.
	var dik, dkj float64
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik = r.dist[i][k]
			if math.IsInf(dik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				dkj = r.dist[k][j]
				if math.IsInf(dkj, 1) || dik+dkj >= r.dist[i][j] {
					continue
				}
				r.dist[i][j] = dik + dkj
				joined := make(network.Path, 0, len(r.paths[i][k])+len(r.paths[k][j]))
				joined = append(joined, r.paths[i][k]...)
				joined = append(joined, r.paths[k][j]...)
				r.paths[i][j] = joined
			}
		}
	}

	for i := 0; i < n; i++ {
		if r.dist[i][i] < 0 {
			return nil, fmt.Errorf("%w: through %q", ErrNegativeCycle, v.Stop(i).Name)
		}
	}

	return r, nil
}

// Size returns the number of nodes covered.
func (r *Result) Size() int { return r.n }

// Dist returns the best weight from i to j, +Inf when unreachable.
func (r *Result) Dist(i, j int) float64 { return r.dist[i][j] }

// Path returns a copy of the best arc list from i to j. found is false
// when j is unreachable from i; i == j yields an empty path.
func (r *Result) Path(i, j int) (network.Path, bool) {
	if math.IsInf(r.dist[i][j], 1) {
		return nil, false
	}

	return append(network.Path{}, r.paths[i][j]...), true
}
