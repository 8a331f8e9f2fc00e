// SPDX-License-Identifier: MIT
// Package bellmanford: standard single-target relaxation.

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transit/network"
)

// ShortestPath relaxes every enabled arc up to |V|-1 times under c and
// returns the path from source to target.
//
// A pass that relaxes nothing ends the loop early. If the |V|-1 passes all
// made progress, one more pass is run: any further improvement means a
// negative cycle is reachable from source and ErrNegativeCycle is
// returned. An unreachable target yields found == false.
//
// Complexity: O(V·E) time, O(V) space.
func ShortestPath(v *network.View, source, target int, c network.Criterion) (network.Path, bool, error) {
	if v == nil {
		return nil, false, ErrNilView
	}
	if !c.Metric() {
		return nil, false, fmt.Errorf("%w: %v", ErrUnsupportedCriterion, c)
	}
	if source < 0 || source >= v.Len() || target < 0 || target >= v.Len() {
		return nil, false, fmt.Errorf("%w: source=%d target=%d n=%d", ErrVertexNotFound, source, target, v.Len())
	}

	n := v.Len()
	dist := make([]float64, n)
	pred := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		pred[i] = -1
	}
	dist[source] = 0

	arcs := v.Arcs()
	relax := func() bool {
		changed := false
		for i, a := range arcs {
			if !a.Enabled || math.IsInf(dist[a.From], 1) {
				continue
			}
			if nd := dist[a.From] + a.Weight(c); nd < dist[a.To] {
				dist[a.To] = nd
				pred[a.To] = i
				changed = true
			}
		}
		return changed
	}

	settled := false
	for pass := 1; pass < n; pass++ {
		if !relax() {
			settled = true
			break
		}
	}
	if !settled && relax() {
		return nil, false, fmt.Errorf("%w: reachable from %q", ErrNegativeCycle, v.Stop(source).Name)
	}

	if math.IsInf(dist[target], 1) {
		return nil, false, nil
	}
	path, ok := network.TracePath(v, pred, source, target)

	return path, ok, nil
}
