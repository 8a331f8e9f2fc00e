// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// helpers.go: stop lookup and link emission shared by constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// stop returns the stop with the given ID, creating and registering it
// with cfg.category when absent.
func stop(g *network.Graph, cfg builderConfig, method, id string) (*network.Node, error) {
	if n, ok := g.NodeByID(id); ok {
		return n, nil
	}
	n, err := network.NewNode(id, cfg.category, network.WithNodeID(id))
	if err != nil {
		return nil, fmt.Errorf("%s: NewNode(%q): %w", method, id, err)
	}
	if err = g.AddNode(n); err != nil {
		return nil, fmt.Errorf("%s: AddNode(%q): %w", method, id, err)
	}

	return n, nil
}

// stops creates (or reuses) stops for indices 0..n-1.
func stops(g *network.Graph, cfg builderConfig, method string, n int) ([]*network.Node, error) {
	out := make([]*network.Node, n)
	for i := 0; i < n; i++ {
		s, err := stop(g, cfg, method, cfg.idFn(i))
		if err != nil {
			return nil, err
		}
		out[i] = s
	}

	return out, nil
}

// link emits u→v and, unless cfg.oneWay, v→u with the same metrics.
// Existing connections with the same ID are kept, so re-running a
// constructor does not duplicate edges.
func link(g *network.Graph, cfg builderConfig, method string, u, v *network.Node) error {
	m := cfg.metricFn(cfg.rng)
	if err := addOnce(g, method, u, v, m); err != nil {
		return err
	}
	if cfg.oneWay {
		return nil
	}

	return addOnce(g, method, v, u, m)
}

func addOnce(g *network.Graph, method string, u, v *network.Node, m Metrics) error {
	id := edgeID(u, v)
	if _, ok := g.EdgeByID(id); ok {
		return nil
	}
	if _, err := g.AddEdge(id, u, v, m.Distance, m.Time, m.Cost, network.WithEdgeID(id)); err != nil {
		return fmt.Errorf("%s: AddEdge(%s, %+v): %w", method, id, m, err)
	}

	return nil
}

// edgeID names a connection "from→to".
func edgeID(u, v *network.Node) string {
	return u.ID + "→" + v.ID
}
