// SPDX-License-Identifier: MIT
// Package planner: spanning tree and reachability queries.

package planner

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/transit/bfs"
	"github.com/katalvlaran/transit/network"
	"github.com/katalvlaran/transit/prim_kruskal"
)

// Spanning tree methods.
const (
	MethodPrim    = prim_kruskal.MethodPrim
	MethodKruskal = prim_kruskal.MethodKruskal
)

// ParseMethod maps a case-insensitive method token to MethodPrim or
// MethodKruskal.
func ParseMethod(s string) (string, error) {
	m, err := prim_kruskal.ParseMethod(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidMSTRequest, err)
	}

	return m, nil
}

// MinimumSpanningTree builds a spanning tree of the undirected projection
// under c. The graph is read at its base state; no events are drawn.
// ok is false when the network is disconnected.
func (p *Planner) MinimumSpanningTree(c network.Criterion, method string) (Tree, bool, error) {
	m, err := ParseMethod(method)
	if err != nil {
		p.rec.SpanningTreeQuery(MethodInvalid, OutcomeError)
		return Tree{}, false, err
	}
	if !c.Metric() {
		p.rec.SpanningTreeQuery(m, OutcomeError)
		return Tree{}, false, fmt.Errorf("%w: criterion %s has no edge weight", ErrInvalidMSTRequest, c)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	proj, err := network.Project(p.graph.BaseSnapshot(), c)
	if err != nil {
		p.rec.SpanningTreeQuery(m, OutcomeError)
		return Tree{}, false, fmt.Errorf("%w: %w", ErrInvalidMSTRequest, err)
	}
	opts := prim_kruskal.DefaultOptions()
	prim_kruskal.WithMethod(m)(&opts)
	edges, total, err := prim_kruskal.Compute(proj, opts)
	if errors.Is(err, prim_kruskal.ErrDisconnected) {
		p.log.Debug("spanning tree: network disconnected",
			slog.String("method", m), slog.String("criterion", c.String()))
		p.rec.SpanningTreeQuery(m, OutcomeNoRoute)
		return Tree{}, false, nil
	}
	if err != nil {
		p.rec.SpanningTreeQuery(m, OutcomeError)
		return Tree{}, false, err
	}
	p.rec.SpanningTreeQuery(m, OutcomeFound)

	return Tree{Edges: edges, Total: total, Method: m, Criterion: c}, true, nil
}

// Reachable lists the stops reachable from origin, origin included, in
// breadth-first order. It reads the base state of the network.
func (p *Planner) Reachable(origin *network.Node) ([]network.Stop, error) {
	if origin == nil {
		return nil, fmt.Errorf("planner: Reachable: %w", network.ErrNilNode)
	}
	v := p.graph.BaseSnapshot()
	src, ok := v.Index(origin)
	if !ok {
		return nil, fmt.Errorf("planner: Reachable %q: %w", origin.ID, network.ErrNodeNotFound)
	}
	order, err := bfs.Reachable(v, src)
	if err != nil {
		return nil, err
	}
	out := make([]network.Stop, len(order))
	for i, idx := range order {
		out[i] = v.Stop(idx)
	}

	return out, nil
}
