// SPDX-License-Identifier: MIT
// Package network: undirected projection used by spanning-tree solvers.

package network

import "fmt"

// UndirectedEdge stands for every directed arc between U and V; it keeps
// the cheapest one.
type UndirectedEdge struct {
	U, V   int
	Weight float64

	// Edge is the original directed edge that won the pair.
	Edge *Edge
}

// Projection is the undirected view of a View under one metric.
type Projection struct {
	// N is the number of nodes; indices match the source View.
	N int

	// Edges are ordered by first appearance of their pair in the View.
	Edges []UndirectedEdge

	// Adj[i] lists positions in Edges touching node i.
	Adj [][]int
}

type pairKey struct{ lo, hi int }

// Project collapses every unordered node pair with at least one enabled
// arc into a single undirected edge carrying the minimum weight under c.
// On equal weights the first arc seen wins. Self-loops are dropped.
// c must be Distance, Time or Cost.
// Complexity: O(V + E).
func Project(v *View, c Criterion) (*Projection, error) {
	if !c.Metric() {
		return nil, fmt.Errorf("network: Project: %w: %v", ErrUnknownCriterion, c)
	}
	p := &Projection{N: v.Len(), Adj: make([][]int, v.Len())}
	pos := make(map[pairKey]int)
	for _, a := range v.arcs {
		if !a.Enabled || a.From == a.To {
			continue
		}
		key := pairKey{lo: a.From, hi: a.To}
		if key.lo > key.hi {
			key.lo, key.hi = key.hi, key.lo
		}
		w := a.Weight(c)
		if i, ok := pos[key]; ok {
			if w < p.Edges[i].Weight {
				p.Edges[i] = UndirectedEdge{U: a.From, V: a.To, Weight: w, Edge: a.Edge}
			}
			continue
		}
		pos[key] = len(p.Edges)
		p.Edges = append(p.Edges, UndirectedEdge{U: a.From, V: a.To, Weight: w, Edge: a.Edge})
	}
	for i, e := range p.Edges {
		p.Adj[e.U] = append(p.Adj[e.U], i)
		p.Adj[e.V] = append(p.Adj[e.V], i)
	}

	return p, nil
}

// Project is shorthand for Project(g.BaseSnapshot(), c).
func (g *Graph) Project(c Criterion) (*Projection, error) {
	return Project(g.BaseSnapshot(), c)
}
