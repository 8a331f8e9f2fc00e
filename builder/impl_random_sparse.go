// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// impl_random_sparse.go: RandomSparse(n, p): Erdős–Rényi style network.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • For 0 < p < 1 an RNG is required (WithSeed/WithRand).
//   • Each unordered pair i<j is linked with probability p, tested in
//     ascending (i, j) order so one seed always yields one network.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// RandomSparse returns a Constructor for a random network.
func RandomSparse(n int, p float64) Constructor {
	return func(g *network.Graph, cfg builderConfig) error {
		if n < MinSparseStops {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomSparse, n, MinSparseStops, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		nodes, err := stops(g, cfg, MethodRandomSparse, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == 0:
					continue
				case p == 1 || cfg.rng.Float64() <= p:
					if err = link(g, cfg, MethodRandomSparse, nodes[i], nodes[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
