// SPDX-License-Identifier: MIT
// Package bellmanford: transfer-minimizing search over (node, line) states.

package bellmanford

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transit/network"
)

// state is a node reached while riding a given line.
type state struct {
	node int
	line string
}

// transition moves between states along one arc.
type transition struct {
	from, to int
	arc      int
	weight   float64
}

// stateGraph is the expanded search space of MinTransfers.
type stateGraph struct {
	states []state
	index  map[state]int
	trans  []transition
}

// MinTransfers returns the path from source to target with the fewest line
// changes, breaking ties by total distance.
//
// The search runs Bellman-Ford over states (node, line). The lines
// available at a node are the lines of all its incoming arcs, plus
// network.NoLine at the source. Every enabled arc u→w connects each
// (u, L) to (w, line(arc)) with weight Penalty·[L ≠ line(arc) and
// L ≠ NoLine] + distance(arc). Among the states at target the cheapest
// wins. Transfers are recounted from the returned path, so the count does
// not depend on Penalty.
//
// Returns found == false when no state at target is reachable.
// Complexity: O(S·T) where S ≤ V + E states and T ≤ E·max-lines transitions.
func MinTransfers(v *network.View, source, target int, opts ...Option) (network.Path, int, bool, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if v == nil {
		return nil, 0, false, ErrNilView
	}
	if source < 0 || source >= v.Len() || target < 0 || target >= v.Len() {
		return nil, 0, false, fmt.Errorf("%w: source=%d target=%d n=%d", ErrVertexNotFound, source, target, v.Len())
	}
	if source == target {
		return network.Path{}, 0, true, nil
	}

	sg := expand(v, source, cfg.Penalty)
	start := sg.index[state{node: source, line: network.NoLine}]

	dist := make([]float64, len(sg.states))
	predState := make([]int, len(sg.states))
	predArc := make([]int, len(sg.states))
	for i := range dist {
		dist[i] = math.Inf(1)
		predState[i] = -1
		predArc[i] = -1
	}
	dist[start] = 0

	relax := func() bool {
		changed := false
		for _, t := range sg.trans {
			if math.IsInf(dist[t.from], 1) {
				continue
			}
			if nd := dist[t.from] + t.weight; nd < dist[t.to] {
				dist[t.to] = nd
				predState[t.to] = t.from
				predArc[t.to] = t.arc
				changed = true
			}
		}
		return changed
	}
	settled := false
	for pass := 1; pass < len(sg.states); pass++ {
		if !relax() {
			settled = true
			break
		}
	}
	if !settled && relax() {
		return nil, 0, false, fmt.Errorf("%w: transfer search from %q", ErrNegativeCycle, v.Stop(source).Name)
	}

	best := -1
	for i, s := range sg.states {
		if s.node != target || math.IsInf(dist[i], 1) {
			continue
		}
		if best < 0 || dist[i] < dist[best] {
			best = i
		}
	}
	if best < 0 {
		return nil, 0, false, nil
	}

	var rev network.Path
	for cur, steps := best, 0; cur != start; steps++ {
		if steps > len(sg.states) || predArc[cur] < 0 {
			return nil, 0, false, nil
		}
		rev = append(rev, v.Arc(predArc[cur]))
		cur = predState[cur]
	}
	path := make(network.Path, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	if len(path) == 0 || path[0].From != source {
		return nil, 0, false, nil
	}

	return path, network.CountTransfers(path), true, nil
}

// expand builds the (node, line) state graph in deterministic order.
func expand(v *network.View, source int, penalty float64) *stateGraph {
	sg := &stateGraph{index: make(map[state]int)}
	add := func(s state) {
		if _, ok := sg.index[s]; !ok {
			sg.index[s] = len(sg.states)
			sg.states = append(sg.states, s)
		}
	}

	// Lines come from every incoming arc, enabled or not; closures only
	// remove transitions.
	lines := make([][]string, v.Len())
	seen := make([]map[string]bool, v.Len())
	addLine := func(node int, line string) {
		if seen[node] == nil {
			seen[node] = make(map[string]bool)
		}
		if !seen[node][line] {
			seen[node][line] = true
			lines[node] = append(lines[node], line)
		}
		add(state{node: node, line: line})
	}
	addLine(source, network.NoLine)
	for _, a := range v.Arcs() {
		addLine(a.To, a.Line)
	}

	for ai, a := range v.Arcs() {
		if !a.Enabled {
			continue
		}
		to := sg.index[state{node: a.To, line: a.Line}]
		for _, prev := range lines[a.From] {
			w := a.Distance
			if prev != a.Line && prev != network.NoLine {
				w += penalty
			}
			sg.trans = append(sg.trans, transition{
				from:   sg.index[state{node: a.From, line: prev}],
				to:     to,
				arc:    ai,
				weight: w,
			})
		}
	}

	return sg
}
