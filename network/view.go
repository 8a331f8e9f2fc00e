// SPDX-License-Identifier: MIT
// File: view.go
// Role: Immutable per-query snapshots of the network.
// Determinism:
//   - Node indices follow registration order; arcs follow Graph.Edges order.
// Concurrency:
//   - Snapshot/BaseSnapshot take the read lock once; the View shares no
//     mutable state with the Graph afterwards.

package network

import (
	"errors"
	"fmt"
	"math"
)

// ErrArcOutOfRange indicates an arc endpoint outside [0, len(nodes)).
var ErrArcOutOfRange = errors.New("network: arc endpoint out of range")

// Stop is the frozen identity of one node inside a View.
type Stop struct {
	ID       string
	Name     string
	Category string
}

// stopOf copies the mutable labels of n. Caller holds at least the read
// lock when n is registered in a graph.
func stopOf(n *Node) Stop {
	return Stop{ID: n.ID, Name: n.Name, Category: n.Category}
}

// Arc is the frozen state of one edge inside a View.
//
// Edge is kept for identity only. Its fields may change after the
// snapshot; read ID, Name and metrics from the Arc instead.
type Arc struct {
	// Edge is the live edge this arc was taken from.
	Edge *Edge

	// ID and Name are copied from Edge at snapshot time.
	ID   string
	Name string

	// From and To are node indices within the owning View.
	From int
	To   int

	// BaseTime and BaseCost are the undisturbed values at snapshot time.
	BaseTime float64
	BaseCost float64

	Enabled  bool
	Distance float64
	Time     float64
	Cost     float64
	Event    string

	// Line is LineOf(Edge) at snapshot time.
	Line string
}

// Weight returns the arc value under c. Transfers uses Distance, which is
// the tie-break term of the transfer-minimizing search.
func (a Arc) Weight(c Criterion) float64 {
	switch c {
	case Time:
		return a.Time
	case Cost:
		return a.Cost
	default:
		return a.Distance
	}
}

// View is an immutable snapshot of nodes and per-edge state.
// Solvers address nodes by index and arcs by position in Arcs().
type View struct {
	nodes []*Node
	stops []Stop
	index map[*Node]int
	arcs  []Arc
	out   [][]int
}

// NewView assembles a View from explicit nodes and arcs. Arc endpoints
// must index into nodes. Used by Snapshot and by callers that want to run
// solvers on hypothetical states. Node labels are copied here, so callers
// must not mutate nodes concurrently.
// Complexity: O(V + E).
func NewView(nodes []*Node, arcs []Arc) (*View, error) {
	v := &View{
		nodes: append([]*Node(nil), nodes...),
		stops: make([]Stop, len(nodes)),
		index: make(map[*Node]int, len(nodes)),
		arcs:  append([]Arc(nil), arcs...),
		out:   make([][]int, len(nodes)),
	}
	for i, n := range v.nodes {
		v.index[n] = i
		v.stops[i] = stopOf(n)
	}
	for i, a := range v.arcs {
		if a.From < 0 || a.From >= len(nodes) || a.To < 0 || a.To >= len(nodes) {
			return nil, fmt.Errorf("%w: arc %d (%d→%d) with %d nodes",
				ErrArcOutOfRange, i, a.From, a.To, len(nodes))
		}
		v.out[a.From] = append(v.out[a.From], i)
	}

	return v, nil
}

// Snapshot captures the current event state of every edge.
func (g *Graph) Snapshot() *View {
	return g.snapshot(false)
}

// BaseSnapshot captures every edge at its baseline (enabled, base
// time/cost, Normal) without mutating the graph.
func (g *Graph) BaseSnapshot() *View {
	return g.snapshot(true)
}

func (g *Graph) snapshot(base bool) *View {
	g.mu.RLock()
	defer g.mu.RUnlock()

	index := make(map[*Node]int, len(g.nodes))
	for i, n := range g.nodes {
		index[n] = i
	}
	edges := g.edgesLocked()
	arcs := make([]Arc, 0, len(edges))
	for _, e := range edges {
		a := Arc{
			Edge:     e,
			ID:       e.ID,
			Name:     e.Name,
			From:     index[e.from],
			To:       index[e.to],
			BaseTime: e.BaseTime,
			BaseCost: e.BaseCost,
			Enabled:  e.Enabled,
			Distance: e.Distance,
			Time:     e.Time,
			Cost:     e.Cost,
			Event:    e.Event,
			Line:     LineOf(e),
		}
		if base {
			a.Enabled = true
			a.Time = e.BaseTime
			a.Cost = e.BaseCost
			a.Event = EventNormalLabel
		}
		arcs = append(arcs, a)
	}
	// Endpoints come from the graph's own index, so they are always in range.
	v, _ := NewView(g.nodes, arcs)

	return v
}

// Len returns the number of nodes.
func (v *View) Len() int { return len(v.nodes) }

// Node returns the node at index i.
func (v *View) Node(i int) *Node { return v.nodes[i] }

// Stop returns the labels of node i as they were at snapshot time.
func (v *View) Stop(i int) Stop { return v.stops[i] }

// Stops returns the frozen labels in index order. The slice must not be
// modified.
func (v *View) Stops() []Stop { return v.stops }

// Nodes returns the nodes in index order. The slice must not be modified.
func (v *View) Nodes() []*Node { return v.nodes }

// Index returns the position of n, or false when n is not in the view.
func (v *View) Index(n *Node) (int, bool) {
	i, ok := v.index[n]
	return i, ok
}

// Arcs returns every arc. The slice must not be modified.
func (v *View) Arcs() []Arc { return v.arcs }

// Arc returns the arc at position i.
func (v *View) Arc(i int) Arc { return v.arcs[i] }

// Out returns the arc positions leaving node i.
func (v *View) Out(i int) []int { return v.out[i] }

// HasDisabled reports whether any arc is disabled.
func (v *View) HasDisabled() bool {
	for _, a := range v.arcs {
		if !a.Enabled {
			return true
		}
	}

	return false
}

// HasNegative reports whether an enabled arc has a negative or NaN weight
// under c. Such weights only appear when edge fields were written
// directly, bypassing validation.
func (v *View) HasNegative(c Criterion) bool {
	for _, a := range v.arcs {
		if !a.Enabled {
			continue
		}
		if w := a.Weight(c); w < 0 || math.IsNaN(w) {
			return true
		}
	}

	return false
}
