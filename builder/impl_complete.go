// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_complete.go: Complete(n): every pair of stops linked.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// Complete returns a Constructor linking every unordered pair i<j.
func Complete(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < MinCompleteStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteStops, ErrTooFewVertices)
		}
		nodes, err := stops(g, cfg, MethodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = link(g, cfg, MethodComplete, nodes[i], nodes[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
