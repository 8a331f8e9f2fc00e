// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// api.go: entry points that apply Constructors to a network.Graph.
//
// Contract:
//   • Constructors run in the order given; the first error aborts the build.
//   • A nil Constructor is reported as ErrConstructFailed with its index.
//   • Options are applied once per call and shared by every Constructor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/transit/network"
)

// Constructor adds stops and connections to g using cfg.
type Constructor func(g *network.Graph, cfg builderConfig) error

// BuildNetwork creates an empty network and applies cons in order.
// Complexity: sum of the constructors' costs.
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*network.Graph, error) {
	g := network.NewGraph()
	if err := Extend(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	return g, nil
}

// Extend applies cons to an existing graph. Stops are matched by ID, so
// several calls with different categories can share transfer stops.
func Extend(g *network.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Extend: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Extend: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}
