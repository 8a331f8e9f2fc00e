// SPDX-License-Identifier: MIT
// Package network: ordered arc sequences returned by solvers.

package network

// Path is an ordered sequence of arcs; consecutive arcs share a node.
type Path []Arc

// Edges returns the live edges behind the path.
func (p Path) Edges() []*Edge {
	out := make([]*Edge, len(p))
	for i, a := range p {
		out[i] = a.Edge
	}

	return out
}

// Totals sums distance, time and cost along the path.
func (p Path) Totals() (distance, time, cost float64) {
	for _, a := range p {
		distance += a.Distance
		time += a.Time
		cost += a.Cost
	}

	return distance, time, cost
}

// Weight sums the arc weights under c.
func (p Path) Weight(c Criterion) float64 {
	var w float64
	for _, a := range p {
		w += a.Weight(c)
	}

	return w
}

// TracePath rebuilds the path ending at target from a predecessor-arc
// table (pred[v] = arc position used to reach v, or -1).
//
// It walks backwards from target to source. The result is rejected when
// the chain breaks, loops, or when its first arc does not start at
// source. source == target yields an empty path.
// Complexity: O(V).
func TracePath(v *View, pred []int, source, target int) (Path, bool) {
	if source == target {
		return Path{}, true
	}
	var rev Path
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps >= len(pred) || pred[cur] < 0 {
			return nil, false
		}
		a := v.arcs[pred[cur]]
		rev = append(rev, a)
		cur = a.From
	}
	if len(rev) == 0 || rev[len(rev)-1].From != source {
		return nil, false
	}

	path := make(Path, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}

	return path, true
}
