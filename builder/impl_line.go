// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_line.go: Line(n) and Ring(n) constructors.
//
// Contract:
//   • Line: n ≥ 2, links i-1 → i for i=1..n-1.
//   • Ring: n ≥ 3, Line plus the closing link n-1 → 0.
//   • Links are two-way unless WithOneWay is set.
//
// Complexity: O(n) stops + O(n) connections.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// Line returns a Constructor for an n-stop service line.
func Line(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < MinLineStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodLine, n, MinLineStops, ErrTooFewVertices)
		}
		return chain(g, cfg, MethodLine, n, false)
	}
}

// Ring returns a Constructor for an n-stop circular line.
func Ring(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < MinRingStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRing, n, MinRingStops, ErrTooFewVertices)
		}
		return chain(g, cfg, MethodRing, n, true)
	}
}

func chain(g *network.Graph, cfg builderConfig, method string, n int, closed bool) error {
	nodes, err := stops(g, cfg, method, n)
	if err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err = link(g, cfg, method, nodes[i-1], nodes[i]); err != nil {
			return err
		}
	}
	if closed {
		return link(g, cfg, method, nodes[n-1], nodes[0])
	}

	return nil
}
