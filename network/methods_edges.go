// SPDX-License-Identifier: MIT
// Package network: edge lifecycle and edge-level introspection.
//
// Every edge lives in exactly two lists: out[from] and to.incoming. All
// helpers below update both or neither.

package network

import (
	"fmt"

	"github.com/google/uuid"
)

// EdgeChange lists optional edge updates for ModifyEdge. Nil fields are
// left untouched.
type EdgeChange struct {
	Name     *string
	From     *Node
	To       *Node
	Distance *float64
	Time     *float64
	Cost     *float64
}

// AddEdge creates a directed edge from → to and wires it into both
// adjacency indices. Unregistered endpoints are registered first.
//
// Returns ErrNilNode if an endpoint is nil and ErrNegativeMetric if any
// metric is negative or NaN.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(name string, from, to *Node, distance, time, cost float64, opts ...EdgeOption) (*Edge, error) {
	if from == nil || to == nil {
		return nil, fmt.Errorf("network: AddEdge %q: %w", name, ErrNilNode)
	}
	if !validMetric(distance) || !validMetric(time) || !validMetric(cost) {
		return nil, fmt.Errorf("network: AddEdge %q (d=%g t=%g c=%g): %w",
			name, distance, time, cost, ErrNegativeMetric)
	}

	e := &Edge{
		ID:       uuid.NewString(),
		Name:     name,
		Distance: distance,
		BaseTime: time,
		BaseCost: cost,
		from:     from,
		to:       to,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.Reset()

	g.mu.Lock()
	defer g.mu.Unlock()

	if other, ok := g.edgesByID[e.ID]; ok && other != e {
		return nil, fmt.Errorf("network: AddEdge %q: %w", e.ID, ErrDuplicateID)
	}
	if err := g.addNodeLocked(from); err != nil {
		return nil, err
	}
	if err := g.addNodeLocked(to); err != nil {
		return nil, err
	}
	g.linkLocked(e)
	g.edgesByID[e.ID] = e

	return e, nil
}

// RemoveEdge deletes e from both adjacency indices.
// Returns ErrNilEdge for nil, ErrEdgeNotFound when e is in neither index,
// and ErrInconsistent when it was found in only one of them.
// Complexity: O(d).
func (g *Graph) RemoveEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeEdgeLocked(e)
}

func (g *Graph) removeEdgeLocked(e *Edge) error {
	okOut := g.unlinkOutLocked(e)
	okIn := unlinkIn(e)
	switch {
	case !okOut && !okIn:
		return ErrEdgeNotFound
	case okOut != okIn:
		return fmt.Errorf("network: RemoveEdge %q: %w", e.Name, ErrInconsistent)
	}
	delete(g.edgesByID, e.ID)

	return nil
}

// ModifyEdge applies ch to e.
//
// Endpoint changes unlink e from the old lists and relink it into the new
// ones, registering unseen nodes. Time and cost changes also update the
// baseline so later resets revert to the new values. Metrics and endpoint
// IDs are validated before anything is mutated, so a failed call leaves
// e and the graph unchanged. Afterwards the event state is reset to
// Normal/enabled.
func (g *Graph) ModifyEdge(e *Edge, ch EdgeChange) error {
	if e == nil {
		return ErrNilEdge
	}
	for _, v := range []*float64{ch.Distance, ch.Time, ch.Cost} {
		if v != nil && !validMetric(*v) {
			return fmt.Errorf("network: ModifyEdge %q: %w", e.ID, ErrNegativeMetric)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.edgesByID[e.ID] != e {
		return ErrEdgeNotFound
	}
	// Both endpoints are checked before the first relink so that a
	// rejected change leaves e where it was.
	moveFrom := ch.From != nil && ch.From != e.from
	moveTo := ch.To != nil && ch.To != e.to
	if moveFrom {
		if err := g.checkNodeLocked(ch.From); err != nil {
			return fmt.Errorf("network: ModifyEdge %q: %w", e.ID, err)
		}
	}
	if moveTo {
		if err := g.checkNodeLocked(ch.To); err != nil {
			return fmt.Errorf("network: ModifyEdge %q: %w", e.ID, err)
		}
	}
	if moveFrom && moveTo && ch.From != ch.To && ch.From.ID == ch.To.ID {
		if _, ok := g.out[ch.From]; !ok {
			if _, ok = g.out[ch.To]; !ok {
				return fmt.Errorf("network: ModifyEdge %q: AddNode %q: %w", e.ID, ch.To.ID, ErrDuplicateID)
			}
		}
	}

	if moveFrom {
		if err := g.addNodeLocked(ch.From); err != nil {
			return err
		}
		g.unlinkOutLocked(e)
		e.from = ch.From
		g.out[e.from] = append(g.out[e.from], e)
	}
	if moveTo {
		if err := g.addNodeLocked(ch.To); err != nil {
			return err
		}
		unlinkIn(e)
		e.to = ch.To
		e.to.incoming = append(e.to.incoming, e)
	}
	if ch.Name != nil {
		e.Name = *ch.Name
	}
	if ch.Distance != nil {
		e.Distance = *ch.Distance
	}
	if ch.Time != nil {
		e.BaseTime = *ch.Time
	}
	if ch.Cost != nil {
		e.BaseCost = *ch.Cost
	}
	e.Reset()

	return nil
}

// Edges returns every edge, grouped by origin in node registration order.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgesLocked()
}

func (g *Graph) edgesLocked() []*Edge {
	all := make([]*Edge, 0, len(g.edgesByID))
	for _, n := range g.nodes {
		all = append(all, g.out[n]...)
	}

	return all
}

// EdgeByID looks an edge up by identifier.
func (g *Graph) EdgeByID(id string) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edgesByID[id]

	return e, ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edgesByID)
}

// HasDisabled reports whether any edge is currently disabled.
func (g *Graph) HasDisabled() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, e := range g.edgesByID {
		if !e.Enabled {
			return true
		}
	}

	return false
}

// ForEachEdge calls fn for every edge in deterministic order while
// holding the write lock. It is the only sanctioned way to rewrite the
// per-edge event state. fn must not call back into g.
func (g *Graph) ForEachEdge(fn func(e *Edge)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range g.edgesLocked() {
		fn(e)
	}
}

// ResetEvents restores every edge to its baseline.
func (g *Graph) ResetEvents() {
	g.ForEachEdge((*Edge).Reset)
}

func (g *Graph) linkLocked(e *Edge) {
	g.out[e.from] = append(g.out[e.from], e)
	e.to.incoming = append(e.to.incoming, e)
}

func (g *Graph) unlinkOutLocked(e *Edge) bool {
	list, ok := g.out[e.from]
	if !ok {
		return false
	}
	list, removed := removeEdgeRef(list, e)
	g.out[e.from] = list

	return removed
}

func unlinkIn(e *Edge) bool {
	if e.to == nil {
		return false
	}
	list, removed := removeEdgeRef(e.to.incoming, e)
	e.to.incoming = list

	return removed
}

// removeEdgeRef deletes the first occurrence of e, preserving order.
func removeEdgeRef(list []*Edge, e *Edge) ([]*Edge, bool) {
	for i, x := range list {
		if x == e {
			return append(list[:i], list[i+1:]...), true
		}
	}

	return list, false
}
