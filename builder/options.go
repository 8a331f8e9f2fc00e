// SPDX-License-Identifier: MIT
// Package: transit/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//     Constructors themselves return errors and never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the stop ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetricFn overrides the per-connection metric generator. Panics on nil.
func WithMetricFn(fn MetricFn) BuilderOption {
	if fn == nil {
		panic("builder: WithMetricFn(nil)")
	}
	return func(c *builderConfig) {
		c.metricFn = fn
	}
}

// WithCategory tags created stops with a line category.
func WithCategory(tag string) BuilderOption {
	return func(c *builderConfig) {
		c.category = tag
	}
}

// WithOneWay emits only the forward connection of every link.
func WithOneWay() BuilderOption {
	return func(c *builderConfig) {
		c.oneWay = true
	}
}
