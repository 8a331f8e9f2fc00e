// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_star.go: Star(n): a hub stop with n-1 spokes.
//
// Contract:
//   • n ≥ 2 (hub + at least one leaf).
//   • The hub ID is HubID; leaves use cfg.idFn(1..n-1).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// Star returns a Constructor for a hub-and-spoke network.
func Star(n int) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < MinStarStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarStops, ErrTooFewVertices)
		}
		hub, err := stop(g, cfg, MethodStar, HubID)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf, err := stop(g, cfg, MethodStar, cfg.idFn(i))
			if err != nil {
				return err
			}
			if err = link(g, cfg, MethodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
